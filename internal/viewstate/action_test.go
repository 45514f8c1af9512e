package viewstate

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionCompletes(t *testing.T) {
	a := NewAction[[]string](10 * time.Millisecond)
	settled := make(chan Status, 1)
	a.OnSettle(func(s Status) { settled <- s })

	require.NoError(t, a.Start(func() ([]string, error) { return []string{"a", "b"}, nil }))
	assert.Equal(t, StatusPending, a.Status())
	assert.ErrorIs(t, a.Start(func() ([]string, error) { return nil, nil }), ErrActionPending)

	select {
	case s := <-settled:
		assert.Equal(t, StatusDone, s)
	case <-time.After(time.Second):
		t.Fatal("action did not settle")
	}

	res, err := a.Result()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res)
}

func TestActionFailure(t *testing.T) {
	a := NewAction[int](time.Millisecond)
	require.NoError(t, a.Start(func() (int, error) { return 0, errors.New("boom") }))

	require.Eventually(t, func() bool { return a.Status() == StatusFailed }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "boom", a.Snapshot().Error)
}

func TestActionCancelDropsCompletion(t *testing.T) {
	a := NewAction[int](20 * time.Millisecond)
	var calls atomic.Int32
	a.OnSettle(func(Status) { calls.Add(1) })

	require.NoError(t, a.Start(func() (int, error) { return 42, nil }))
	a.Cancel()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, StatusIdle, a.Status())
	assert.Zero(t, calls.Load())
	res, _ := a.Result()
	assert.Zero(t, res)
}

func TestActionRestartAfterDone(t *testing.T) {
	a := NewAction[int](20 * time.Millisecond)
	require.NoError(t, a.Start(func() (int, error) { return 1, nil }))
	require.Eventually(t, func() bool { return a.Status() == StatusDone }, time.Second, time.Millisecond)

	require.NoError(t, a.Start(func() (int, error) { return 2, nil }))
	res, _ := a.Result()
	assert.Zero(t, res, "result is cleared while pending")
	require.Eventually(t, func() bool { return a.Status() == StatusDone }, time.Second, time.Millisecond)
	res, _ = a.Result()
	assert.Equal(t, 2, res)
}
