package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, id, title string, duration int, priority Priority, taskType string, opts *TaskOpts) *Task {
	t.Helper()
	task, err := NewTask(id, title, duration, priority, taskType, opts)
	require.NoError(t, err, "failed to create task %q", id)
	return task
}

func intPtr(v int) *int {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewTask(t *testing.T) {
	t.Parallel()

	task, err := NewTask("task_001", "Morning Walk", 30, PriorityHigh, "exercise", &TaskOpts{
		Recurrence: RecurrenceDaily,
		StartTime:  intPtr(540),
	})
	require.NoError(t, err)

	assert.Equal(t, "task_001", task.ID)
	assert.Equal(t, "Morning Walk", task.Title)
	assert.Equal(t, "Morning Walk", task.Description, "description should default to the title")
	assert.Equal(t, RecurrenceDaily, task.Recurrence)
	assert.False(t, task.Completed)
	assert.True(t, task.LastCompleted.IsZero())

	// Nil opts produces a one-time, untimed task.
	task, err = NewTask("task_002", "Vet Visit", 45, PriorityCritical, "medical", nil)
	require.NoError(t, err)
	assert.Equal(t, RecurrenceNone, task.Recurrence)
	assert.Nil(t, task.StartTime)
}

func TestNewTaskValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		id       string
		title    string
		duration int
		priority Priority
		opts     *TaskOpts
		wantErr  error
	}{
		{
			name:     "empty ID",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			wantErr:  ErrTaskIDEmpty,
		},
		{
			name:     "empty title",
			id:       "t1",
			duration: 10,
			priority: PriorityLow,
			wantErr:  ErrTaskTitleEmpty,
		},
		{
			name:     "zero duration",
			id:       "t1",
			title:    "Walk",
			priority: PriorityLow,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "negative duration",
			id:       "t1",
			title:    "Walk",
			duration: -5,
			priority: PriorityLow,
			wantErr:  ErrInvalidDuration,
		},
		{
			name:     "unknown priority",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: Priority("urgent"),
			wantErr:  ErrInvalidPriority,
		},
		{
			name:     "unknown recurrence",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			opts:     &TaskOpts{Recurrence: Recurrence("fortnightly")},
			wantErr:  ErrInvalidRecurrence,
		},
		{
			name:     "interval recurrence without days",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			opts:     &TaskOpts{Recurrence: RecurrenceInterval},
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "interval days without interval recurrence",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			opts:     &TaskOpts{Recurrence: RecurrenceDaily, IntervalDays: 3},
			wantErr:  ErrInvalidInterval,
		},
		{
			name:     "start time past midnight",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			opts:     &TaskOpts{StartTime: intPtr(24 * 60)},
			wantErr:  ErrInvalidStartTime,
		},
		{
			name:     "negative start time",
			id:       "t1",
			title:    "Walk",
			duration: 10,
			priority: PriorityLow,
			opts:     &TaskOpts{StartTime: intPtr(-1)},
			wantErr:  ErrInvalidStartTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTask(tc.id, tc.title, tc.duration, tc.priority, "care", tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPriorityRank(t *testing.T) {
	t.Parallel()

	// The scale must be strictly totally ordered.
	assert.Less(t, Priority("bogus").Rank(), PriorityLow.Rank())
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityCritical.Rank())
}

func TestMarkCompleted(t *testing.T) {
	t.Parallel()

	task := mustTask(t, "t1", "Feed", 5, PriorityLow, "care", nil)
	require.False(t, task.Completed)

	day := date(2025, time.March, 10)
	task.MarkCompleted(day)
	assert.True(t, task.Completed)
	assert.Equal(t, day, task.LastCompleted)

	// A second call must not error and refreshes the date.
	next := day.AddDate(0, 0, 1)
	task.MarkCompleted(next)
	assert.True(t, task.Completed)
	assert.Equal(t, next, task.LastCompleted)
}

func TestIsDueOn(t *testing.T) {
	t.Parallel()

	day := date(2025, time.March, 10)

	testCases := []struct {
		name   string
		opts   *TaskOpts
		done   *time.Time // completion date, nil for never completed
		target time.Time
		want   bool
	}{
		{
			name:   "never completed one-time task is always due",
			opts:   nil,
			target: day,
			want:   true,
		},
		{
			name:   "never completed recurring task is always due",
			opts:   &TaskOpts{Recurrence: RecurrenceWeekly},
			target: day,
			want:   true,
		},
		{
			name:   "completed one-time task is never due again",
			opts:   nil,
			done:   &day,
			target: day.AddDate(0, 0, 365),
			want:   false,
		},
		{
			name:   "daily task is not due on its completion day",
			opts:   &TaskOpts{Recurrence: RecurrenceDaily},
			done:   &day,
			target: day,
			want:   false,
		},
		{
			name:   "daily task is due the next day",
			opts:   &TaskOpts{Recurrence: RecurrenceDaily},
			done:   &day,
			target: day.AddDate(0, 0, 1),
			want:   true,
		},
		{
			name:   "weekly task is not due after six days",
			opts:   &TaskOpts{Recurrence: RecurrenceWeekly},
			done:   &day,
			target: day.AddDate(0, 0, 6),
			want:   false,
		},
		{
			name:   "weekly task is due after seven days",
			opts:   &TaskOpts{Recurrence: RecurrenceWeekly},
			done:   &day,
			target: day.AddDate(0, 0, 7),
			want:   true,
		},
		{
			name:   "interval task is not due before the interval elapses",
			opts:   &TaskOpts{Recurrence: RecurrenceInterval, IntervalDays: 3},
			done:   &day,
			target: day.AddDate(0, 0, 2),
			want:   false,
		},
		{
			name:   "interval task is due once the interval elapses",
			opts:   &TaskOpts{Recurrence: RecurrenceInterval, IntervalDays: 3},
			done:   &day,
			target: day.AddDate(0, 0, 3),
			want:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			task := mustTask(t, "t1", "Care", 10, PriorityMedium, "care", tc.opts)
			if tc.done != nil {
				task.MarkCompleted(*tc.done)
			}

			before := *task
			assert.Equal(t, tc.want, task.IsDueOn(tc.target))
			assert.Equal(t, before, *task, "IsDueOn must not mutate the task")
		})
	}
}

func TestDaysBetweenTruncatesToCalendarDates(t *testing.T) {
	t.Parallel()

	evening := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)
	morning := time.Date(2025, time.March, 11, 0, 15, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(evening, morning))
	assert.Equal(t, -1, DaysBetween(morning, evening))
	assert.Equal(t, 0, DaysBetween(morning, morning))
}

func TestTaskClone(t *testing.T) {
	t.Parallel()

	task := mustTask(t, "t1", "Brush", 15, PriorityMedium, "grooming", &TaskOpts{
		StartTime: intPtr(600),
		Species:   []string{"dog"},
		Tags:      []string{"coat"},
		DependsOn: []string{"t0"},
	})

	clone := task.Clone()
	require.Equal(t, task.ID, clone.ID)

	*clone.StartTime = 700
	clone.Species[0] = "cat"
	clone.Tags[0] = "nails"
	clone.DependsOn[0] = "t9"

	assert.Equal(t, 600, *task.StartTime)
	assert.Equal(t, "dog", task.Species[0])
	assert.Equal(t, "coat", task.Tags[0])
	assert.Equal(t, "t0", task.DependsOn[0])
}

func TestTaskString(t *testing.T) {
	t.Parallel()

	task := mustTask(t, "t1", "Feed", 5, PriorityLow, "care", &TaskOpts{Recurrence: RecurrenceDaily})
	assert.Equal(t, "t1: Feed (5 min, daily, pending)", task.String())

	task.MarkCompleted(date(2025, time.March, 10))
	assert.Equal(t, "t1: Feed (5 min, daily, done)", task.String())
}
