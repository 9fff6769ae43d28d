package domain

import (
	"errors"
	"fmt"
	"time"
)

// Priority is the closed set of urgency categories a task can carry.
type Priority string

// Possible priority values, ordered from least to most urgent.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Recurrence describes when a completed task becomes due again.
type Recurrence string

// Possible recurrence values.
const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceInterval Recurrence = "interval"
)

// Task-specific validation errors.
var (
	// ErrTaskIDEmpty is returned when a task ID is empty.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrInvalidDuration is returned when a task duration is not positive.
	ErrInvalidDuration = errors.New("task duration must be greater than 0")

	// ErrInvalidPriority is returned when a priority is not one of the known categories.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidRecurrence is returned when a recurrence is not one of the known rules.
	ErrInvalidRecurrence = errors.New("invalid task recurrence")

	// ErrInvalidInterval is returned when an interval recurrence has no positive
	// day count, or a non-interval recurrence carries one.
	ErrInvalidInterval = errors.New("interval days must be set if and only if recurrence is interval")

	// ErrInvalidStartTime is returned when a fixed start time is outside 0..1439
	// minutes from midnight.
	ErrInvalidStartTime = errors.New("start time must be between 0 and 1439 minutes from midnight")
)

// Task represents a single schedulable unit of pet care work. Timing,
// recurrence, and dependency metadata drive the planning engine; the
// remaining fields are descriptive.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Duration      int        `json:"duration_minutes"`
	Priority      Priority   `json:"priority"`
	Type          string     `json:"task_type"`
	Completed     bool       `json:"completed"`
	Recurrence    Recurrence `json:"recurrence"`
	IntervalDays  int        `json:"interval_days,omitempty"`
	StartTime     *int       `json:"start_time_minutes,omitempty"` // Minutes from midnight; nil means untimed
	LastCompleted time.Time  `json:"last_completed,omitempty"`     // Zero time means never completed
	Species       []string   `json:"species,omitempty"`            // Applicable species; empty means all
	Tags          []string   `json:"tags,omitempty"`
	DependsOn     []string   `json:"depends_on,omitempty"` // Task IDs that must be scheduled first

	// NeedsSpecialCare marks tasks that only apply to pets with special needs.
	NeedsSpecialCare bool `json:"needs_special_care,omitempty"`
}

// TaskOpts carries the optional metadata accepted by NewTask. The zero
// value is valid and produces a one-time, untimed task.
type TaskOpts struct {
	Description      string
	Recurrence       Recurrence
	IntervalDays     int
	StartTime        *int
	LastCompleted    time.Time
	Species          []string
	Tags             []string
	DependsOn        []string
	NeedsSpecialCare bool
}

// NewTask creates a Task from the required fields plus optional metadata.
// A nil opts is treated as the zero TaskOpts. The description defaults to
// the title when empty. Returns an error if validation fails.
func NewTask(id, title string, duration int, priority Priority, taskType string, opts *TaskOpts) (*Task, error) {
	if opts == nil {
		opts = &TaskOpts{}
	}

	recurrence := opts.Recurrence
	if recurrence == "" {
		recurrence = RecurrenceNone
	}

	description := opts.Description
	if description == "" {
		description = title
	}

	task := &Task{
		ID:               id,
		Title:            title,
		Description:      description,
		Duration:         duration,
		Priority:         priority,
		Type:             taskType,
		Recurrence:       recurrence,
		IntervalDays:     opts.IntervalDays,
		StartTime:        opts.StartTime,
		LastCompleted:    opts.LastCompleted,
		Species:          opts.Species,
		Tags:             opts.Tags,
		DependsOn:        opts.DependsOn,
		NeedsSpecialCare: opts.NeedsSpecialCare,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if t.Duration <= 0 {
		return ErrInvalidDuration
	}

	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
	default:
		return ErrInvalidPriority
	}

	switch t.Recurrence {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceInterval:
	default:
		return ErrInvalidRecurrence
	}

	if (t.Recurrence == RecurrenceInterval) != (t.IntervalDays > 0) {
		return ErrInvalidInterval
	}

	if t.StartTime != nil && (*t.StartTime < 0 || *t.StartTime >= 24*60) {
		return ErrInvalidStartTime
	}

	return nil
}

// Rank maps the priority category to a numeric urgency used for ordering.
// Higher means more urgent; the scale is strictly totally ordered.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// MarkCompleted sets the completion flag and records the completion date.
// The date is supplied by the caller; the core never reads the wall clock.
// Calling it again simply refreshes the completion date.
func (t *Task) MarkCompleted(on time.Time) {
	t.Completed = true
	t.LastCompleted = on
}

// IsDueOn reports whether the task should appear as schedulable on the
// target date. A task that was never completed is always due. A completed
// one-time task is never due again. Recurring tasks become due once the
// configured number of days has elapsed since the last completion.
// This method is pure: it never mutates the task.
func (t *Task) IsDueOn(target time.Time) bool {
	if t.LastCompleted.IsZero() {
		return true
	}

	gap := DaysBetween(t.LastCompleted, target)

	switch t.Recurrence {
	case RecurrenceDaily:
		return gap >= 1
	case RecurrenceWeekly:
		return gap >= 7
	case RecurrenceInterval:
		return gap >= t.IntervalDays
	default:
		// One-time tasks never come back once completed.
		return !t.Completed
	}
}

// Clone returns a deep copy of the task. Slices are copied so the clone
// can be mutated without affecting the original.
func (t *Task) Clone() *Task {
	clone := *t
	if t.StartTime != nil {
		start := *t.StartTime
		clone.StartTime = &start
	}
	clone.Species = append([]string(nil), t.Species...)
	clone.Tags = append([]string(nil), t.Tags...)
	clone.DependsOn = append([]string(nil), t.DependsOn...)
	return &clone
}

// String renders the task in the compact single-line form used by logs
// and the demo CLI.
func (t *Task) String() string {
	status := "pending"
	if t.Completed {
		status = "done"
	}
	return fmt.Sprintf("%s: %s (%d min, %s, %s)", t.ID, t.Description, t.Duration, t.Recurrence, status)
}

// DaysBetween returns the number of whole calendar days from a to b in UTC.
// Both instants are truncated to their calendar date first, so an evening
// completion still counts as one day before the following morning.
func DaysBetween(a, b time.Time) int {
	ad := time.Date(a.UTC().Year(), a.UTC().Month(), a.UTC().Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.UTC().Year(), b.UTC().Month(), b.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
