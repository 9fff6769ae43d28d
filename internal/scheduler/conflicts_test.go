package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pawpal/internal/domain"
)

func TestDetectTimeConflictsAcrossPets(t *testing.T) {
	t.Parallel()

	owner := mustOwner(t, 60)
	milo := mustPet(t, owner, "Milo", "cat", 3)
	rex := mustPet(t, owner, "Rex", "dog", 5)

	require.NoError(t, milo.AddTask(mustTask(t, "t1", "Feed", 5, domain.PriorityLow, "care", &domain.TaskOpts{StartTime: intPtr(480)})))
	require.NoError(t, rex.AddTask(mustTask(t, "t2", "Walk", 15, domain.PriorityMedium, "exercise", &domain.TaskOpts{StartTime: intPtr(480)})))

	s := mustScheduler(t, owner)
	conflicts := s.DetectTimeConflicts(false)

	require.Len(t, conflicts, 1)
	assert.Equal(t, 480, conflicts[0].StartTime)
	assert.Equal(t, "Warning: 08:00 conflict between Milo - Feed, Rex - Walk.", conflicts[0].String())
}

func TestDetectTimeConflictsIgnoresUntimedAndDistinctStarts(t *testing.T) {
	t.Parallel()

	owner := mustOwner(t, 60)
	dog := mustPet(t, owner, "Max", "dog", 3)

	require.NoError(t, dog.AddTask(mustTask(t, "t1", "Feed", 5, domain.PriorityLow, "care", &domain.TaskOpts{StartTime: intPtr(480)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t2", "Walk", 15, domain.PriorityMedium, "exercise", &domain.TaskOpts{StartTime: intPtr(540)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t3", "Brush", 10, domain.PriorityLow, "grooming", nil)))
	require.NoError(t, dog.AddTask(mustTask(t, "t4", "Play", 10, domain.PriorityLow, "exercise", nil)))

	s := mustScheduler(t, owner)
	assert.Empty(t, s.DetectTimeConflicts(false), "untimed tasks never participate in conflicts")
}

func TestDetectTimeConflictsOrderedByStartTime(t *testing.T) {
	t.Parallel()

	owner := mustOwner(t, 60)
	dog := mustPet(t, owner, "Max", "dog", 3)

	require.NoError(t, dog.AddTask(mustTask(t, "t1", "Brush", 10, domain.PriorityLow, "grooming", &domain.TaskOpts{StartTime: intPtr(600)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t2", "Trim nails", 10, domain.PriorityLow, "grooming", &domain.TaskOpts{StartTime: intPtr(600)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t3", "Feed", 5, domain.PriorityHigh, "feeding", &domain.TaskOpts{StartTime: intPtr(480)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t4", "Medicate", 5, domain.PriorityCritical, "medical", &domain.TaskOpts{StartTime: intPtr(480)})))

	s := mustScheduler(t, owner)
	conflicts := s.DetectTimeConflicts(false)

	require.Len(t, conflicts, 2)
	assert.Equal(t, 480, conflicts[0].StartTime)
	assert.Equal(t, 600, conflicts[1].StartTime)
}

func TestDetectTimeConflictsRespectsCompletionFlag(t *testing.T) {
	t.Parallel()

	owner := mustOwner(t, 60)
	dog := mustPet(t, owner, "Max", "dog", 3)

	done := mustTask(t, "t1", "Feed", 5, domain.PriorityLow, "care", &domain.TaskOpts{StartTime: intPtr(480)})
	done.MarkCompleted(date(2025, time.March, 10))
	require.NoError(t, dog.AddTask(done))
	require.NoError(t, dog.AddTask(mustTask(t, "t2", "Walk", 15, domain.PriorityMedium, "exercise", &domain.TaskOpts{StartTime: intPtr(480)})))

	s := mustScheduler(t, owner)
	assert.Empty(t, s.DetectTimeConflicts(false))
	assert.Len(t, s.DetectTimeConflicts(true), 1)
}

func TestDetectTimeConflictsDoesNotMutate(t *testing.T) {
	t.Parallel()

	owner := mustOwner(t, 60)
	dog := mustPet(t, owner, "Max", "dog", 3)
	require.NoError(t, dog.AddTask(mustTask(t, "t1", "Feed", 5, domain.PriorityLow, "care", &domain.TaskOpts{StartTime: intPtr(480)})))
	require.NoError(t, dog.AddTask(mustTask(t, "t2", "Walk", 15, domain.PriorityMedium, "exercise", &domain.TaskOpts{StartTime: intPtr(480)})))

	s := mustScheduler(t, owner)
	first := s.DetectTimeConflicts(false)
	second := s.DetectTimeConflicts(false)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, dog.TaskCount())
}

func TestClockLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00:00", ClockLabel(0))
	assert.Equal(t, "08:00", ClockLabel(480))
	assert.Equal(t, "09:05", ClockLabel(545))
	assert.Equal(t, "23:59", ClockLabel(1439))
}
