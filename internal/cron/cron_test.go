package cron

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpiredTokens() (int64, error) {
	p.calls.Add(1)
	return 3, p.err
}

type countingCleaner struct {
	calls atomic.Int32
	days  atomic.Int32
}

func (c *countingCleaner) CleanupOldLogs(days int) (int64, error) {
	c.calls.Add(1)
	c.days.Store(int32(days))
	return 0, nil
}

func TestStartCleanupTasks_RunsOnStartup(t *testing.T) {
	purger := &countingPurger{err: errors.New("db down")}
	cleaner := &countingCleaner{}

	c, err := StartCleanupTasks(purger, cleaner, 45)
	require.NoError(t, err)
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return purger.calls.Load() == 1 && cleaner.calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.EqualValues(t, 45, cleaner.days.Load())
	assert.Len(t, c.Entries(), 2)
}
