package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range []string{"python", "web-development", "sql", "php"} {
		assert.True(t, ValidCategory(c), c)
	}
	for _, c := range []string{"", "Python", "java", "web development"} {
		assert.False(t, ValidCategory(c), c)
	}
}

func TestValidWeekdayAndSlot(t *testing.T) {
	assert.True(t, ValidWeekday("Monday"))
	assert.False(t, ValidWeekday("Sunday"))
	assert.False(t, ValidWeekday("monday"))

	assert.True(t, ValidTimeSlot("12-2"))
	assert.False(t, ValidTimeSlot("6-8"))
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
