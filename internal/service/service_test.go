package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"d23_web/internal/repository"
	"d23_web/pkg/config"
)

var testSim = config.SimConfig{
	MatchmakingDelay:  20 * time.Millisecond,
	RoomCreationDelay: 20 * time.Millisecond,
	SignInDelay:       20 * time.Millisecond,
	ConfettiDuration:  20 * time.Millisecond,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSessions(t *testing.T) *Sessions {
	t.Helper()
	return newTestSessionsWith(t, testSim)
}

func newTestSessionsWith(t *testing.T, sim config.SimConfig) *Sessions {
	t.Helper()
	log := discardLogger()
	provider := repository.NewMemoryProvider(repository.DefaultFixtures())
	return NewSessions(NewPages(provider, sim, log), NewHub(log), time.Hour, log)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func do(t *testing.T, s *Session, page, action string, body any) error {
	t.Helper()
	var raw json.RawMessage
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		raw = b
	}
	return s.With(context.Background(), page, func(p Page) error {
		return p.Do(context.Background(), action, raw)
	})
}

func viewOf(t *testing.T, s *Session, page string) *View {
	t.Helper()
	var v *View
	require.NoError(t, s.With(context.Background(), page, func(p Page) error {
		var err error
		v, err = p.View(context.Background())
		return err
	}))
	return v
}

// pageOf 取得已掛載頁面的具體型別
func pageOf[T Page](t *testing.T, s *Session, name string) T {
	t.Helper()
	var out T
	require.NoError(t, s.With(context.Background(), name, func(p Page) error {
		var ok bool
		out, ok = p.(T)
		require.True(t, ok, "page %s has type %T", name, p)
		return nil
	}))
	return out
}

func openOverlay(t *testing.T, s *Session, page, key string) {
	t.Helper()
	require.NoError(t, s.With(context.Background(), page, func(p Page) error {
		return p.Overlays().Open(key)
	}))
}

func closeOverlay(t *testing.T, s *Session, page string) {
	t.Helper()
	require.NoError(t, s.With(context.Background(), page, func(p Page) error {
		p.Overlays().Close()
		return nil
	}))
}

func setField(t *testing.T, s *Session, page, key, field, value string) {
	t.Helper()
	require.NoError(t, s.With(context.Background(), page, func(p Page) error {
		return p.Overlays().SetField(key, field, value)
	}))
}
