package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFiringLockKey(t *testing.T) {
	scheduleID := uuid.New()

	t.Run("StableForSchedule", func(t *testing.T) {
		// Sweeps started on different days must contend on the same
		// lock, otherwise two of them can post the same occurrence.
		assert.Equal(t, firingLockKey(scheduleID), firingLockKey(scheduleID))
	})

	t.Run("DistinctAcrossSchedules", func(t *testing.T) {
		assert.NotEqual(t, firingLockKey(scheduleID), firingLockKey(uuid.New()))
	})
}
