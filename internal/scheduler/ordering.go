package scheduler

import (
	"strings"

	"github.com/phrazzld/pawpal/internal/domain"
)

// untimedStart sorts tasks without a fixed start time after every timed task.
const untimedStart = 1 << 30

// SortKey selects the primary ordering for OrganizeTasks.
type SortKey string

// Possible sort keys. SortByTime is the canonical composite ordering and
// the one used whenever ordering determines feasibility.
const (
	SortByTime     SortKey = "time"
	SortByPriority SortKey = "priority"
	SortByDuration SortKey = "duration"
	SortByTitle    SortKey = "title"
)

func startKey(t *domain.Task) int {
	if t.StartTime == nil {
		return untimedStart
	}
	return *t.StartTime
}

// CompareTasks compares two tasks using the canonical composite key:
// timed tasks before untimed ones and ascending start time, then
// descending priority rank, then ascending duration, then ascending
// case-sensitive title. The title level makes the ordering a total order
// over distinct titles, so any input permutation sorts identically.
func CompareTasks(a, b *domain.Task) int {
	return CompareTasksScored(a, b, a.Priority.Rank(), b.Priority.Rank())
}

// CompareTasksScored is CompareTasks with caller-supplied urgency scores
// substituted for the raw priority rank at the second level. The schedule
// planner uses it to layer preference boosts on top of priority without
// re-stating the rest of the composite key.
func CompareTasksScored(a, b *domain.Task, scoreA, scoreB int) int {
	if d := startKey(a) - startKey(b); d != 0 {
		return d
	}
	if d := scoreB - scoreA; d != 0 {
		return d
	}
	if d := a.Duration - b.Duration; d != 0 {
		return d
	}
	return strings.Compare(a.Title, b.Title)
}

// CompareTasksDurationFirst is CompareTasksScored with the duration level
// promoted above the urgency score. The schedule planner uses it when the
// owner prefers knocking out short tasks first.
func CompareTasksDurationFirst(a, b *domain.Task, scoreA, scoreB int) int {
	if d := startKey(a) - startKey(b); d != 0 {
		return d
	}
	if d := a.Duration - b.Duration; d != 0 {
		return d
	}
	if d := scoreB - scoreA; d != 0 {
		return d
	}
	return strings.Compare(a.Title, b.Title)
}
