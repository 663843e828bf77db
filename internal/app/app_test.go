package app

import (
	"sync"
	"testing"

	"learnhub_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigPublishesSnapshot(t *testing.T) {
	initial := &config.Config{JWT: config.JWTConfig{Secret: "initial"}}
	a := &App{Config: config.NewStore(initial)}

	var seen []*config.Config
	a.RegisterConfigCallback(func(cfg *config.Config) {
		seen = append(seen, cfg)
	})

	next := &config.Config{JWT: config.JWTConfig{Secret: "next"}}
	a.ApplyConfig(next)

	assert.Same(t, next, a.Config.Get())
	require.Len(t, seen, 1)
	assert.Same(t, next, seen[0])

	// The replaced snapshot is untouched for readers still holding it.
	assert.Equal(t, "initial", initial.JWT.Secret)
}

func TestApplyConfigConcurrentReaders(t *testing.T) {
	a := &App{Config: config.NewStore(&config.Config{JWT: config.JWTConfig{Secret: "one"}})}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				secret := a.Config.Get().JWT.Secret
				if secret != "one" && secret != "two" {
					t.Errorf("read torn config snapshot: %q", secret)
					return
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		secret := "one"
		if i%2 == 0 {
			secret = "two"
		}
		a.ApplyConfig(&config.Config{JWT: config.JWTConfig{Secret: secret}})
	}
	wg.Wait()
}
