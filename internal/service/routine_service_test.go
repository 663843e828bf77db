package service

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimetable(t *testing.T) {
	routines := []model.Routine{
		{Day: "Monday", TimeSlot: "8-10", GroupCode: "PY1", GroupName: "Python Basics"},
		{Day: "Wednesday", TimeSlot: "2-4", GroupCode: "SQL2", GroupName: "Advanced SQL"},
		{Day: "Saturday", TimeSlot: "8-10", GroupCode: "X", GroupName: "ignored"},
		{Day: "Monday", TimeSlot: "7-9", GroupCode: "X", GroupName: "ignored"},
	}

	tt := BuildTimetable(routines)

	assert.Equal(t, model.Weekdays, tt.Days)
	assert.Equal(t, model.TimeSlots, tt.Slots)
	require.Len(t, tt.Grid, len(model.Weekdays))

	// Every known day carries every known slot, free ones as nil.
	for _, day := range model.Weekdays {
		require.Len(t, tt.Grid[day], len(model.TimeSlots))
	}

	mon := tt.Grid["Monday"]["8-10"]
	require.NotNil(t, mon)
	assert.Equal(t, "PY1", mon.Code)
	assert.Equal(t, "Python Basics", mon.Name)

	wed := tt.Grid["Wednesday"]["2-4"]
	require.NotNil(t, wed)
	assert.Equal(t, "SQL2", wed.Code)

	assert.Nil(t, tt.Grid["Friday"]["10-12"])

	// Entries outside the known grid never create new cells.
	_, ok := tt.Grid["Saturday"]
	assert.False(t, ok)
	_, ok = tt.Grid["Monday"]["7-9"]
	assert.False(t, ok)
}

func TestBuildTimetableEmpty(t *testing.T) {
	tt := BuildTimetable(nil)
	for _, day := range model.Weekdays {
		for _, slot := range model.TimeSlots {
			assert.Nil(t, tt.Grid[day][slot])
		}
	}
}

func TestBuildTimetableLastWriteWins(t *testing.T) {
	routines := []model.Routine{
		{Day: "Tuesday", TimeSlot: "10-12", GroupCode: "A", GroupName: "first"},
		{Day: "Tuesday", TimeSlot: "10-12", GroupCode: "B", GroupName: "second"},
	}

	tt := BuildTimetable(routines)
	cell := tt.Grid["Tuesday"]["10-12"]
	require.NotNil(t, cell)
	assert.Equal(t, "B", cell.Code)
}
