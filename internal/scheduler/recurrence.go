package scheduler

import (
	"fmt"
	"time"

	"github.com/phrazzld/pawpal/internal/domain"
)

// recurrenceDays returns how many days after a completion the next
// occurrence of the task becomes due, or 0 for non-recurring tasks.
func recurrenceDays(task *domain.Task) int {
	switch task.Recurrence {
	case domain.RecurrenceDaily:
		return 1
	case domain.RecurrenceWeekly:
		return 7
	case domain.RecurrenceInterval:
		return task.IntervalDays
	default:
		return 0
	}
}

// NextOccurrence computes the next instance of a recurring task completed
// on the given date, or nil when the task does not recur. The transition
// is pure with respect to the owner graph: it only reads the task and the
// taken predicate, and returns a fresh value for the caller to insert.
//
// The new instance keeps the recurrence rule, duration, timing, and
// dependency metadata of the original, starts uncompleted, and records the
// completion date so due-ness is computed from it. Its ID is the original
// ID suffixed with the next due date, with a numeric counter appended
// until the taken predicate reports the ID as free, so repeated
// completions never collide.
func NextOccurrence(task *domain.Task, completedOn time.Time, taken func(id string) bool) *domain.Task {
	days := recurrenceDays(task)
	if days <= 0 {
		return nil
	}

	nextDue := completedOn.AddDate(0, 0, days)
	base := fmt.Sprintf("%s-%s", task.ID, nextDue.UTC().Format("20060102"))
	id := base
	for counter := 1; taken != nil && taken(id); counter++ {
		id = fmt.Sprintf("%s-%d", base, counter)
	}

	next := task.Clone()
	next.ID = id
	next.Completed = false
	next.LastCompleted = completedOn
	return next
}
