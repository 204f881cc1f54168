package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	runs atomic.Int64
	err  error
}

func (r *countingRunner) RunOnce(_ context.Context) error {
	r.runs.Add(1)
	return r.err
}

func TestScheduler_RunsImmediately(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, time.Hour, time.Second, slog.New(slog.DiscardHandler))

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runner.runs.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "first run should fire without waiting an interval")
}

func TestScheduler_KeepsRunningAfterFailure(t *testing.T) {
	runner := &countingRunner{err: errors.New("cycle failed")}
	s := New(runner, 20*time.Millisecond, time.Second, slog.New(slog.DiscardHandler))

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return runner.runs.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "a failing run must not stop the schedule")
}

func TestScheduler_StopPreventsFurtherRuns(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, 20*time.Millisecond, time.Second, slog.New(slog.DiscardHandler))

	require.NoError(t, s.Start())
	assert.Eventually(t, func() bool {
		return runner.runs.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	s.Stop()
	after := runner.runs.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after, runner.runs.Load())
}
