package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 2*time.Second, cfg.Sim.MatchmakingDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sim.RoomCreationDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sim.SignInDelay)
	assert.Equal(t, 3*time.Second, cfg.Sim.ConfettiDuration)
}

func TestLoadEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("D23_STORAGE_DRIVER", "memory")
	t.Setenv("D23_SIM_MATCHMAKING_DELAY", "250ms")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Sim.MatchmakingDelay)
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
