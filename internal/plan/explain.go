package plan

import (
	"fmt"
	"strings"

	"github.com/phrazzld/pawpal/internal/domain"
	"github.com/phrazzld/pawpal/internal/scheduler"
)

// EntryKind classifies an explanation entry.
type EntryKind string

// Possible entry kinds.
const (
	EntryScheduled EntryKind = "scheduled"
	EntrySkipped   EntryKind = "skipped"
	EntryExcluded  EntryKind = "excluded"
	EntryNote      EntryKind = "note"
)

// Skip and exclusion reasons recorded during generation.
const (
	ReasonAlreadyCompleted = "already completed"
	ReasonNotDue           = "not due today"
	ReasonNotApplicable    = "not applicable to pet"
	ReasonAvoidedType      = "owner avoids task type"
	ReasonAvoidedTag       = "owner avoids task tags"
	ReasonNoTime           = "not enough time remaining"
	ReasonUnmetDependency  = "unmet dependencies"
)

// Entry is one structured reason in a schedule's explanation: why a task
// was admitted, skipped, or excluded, or a general note about the run.
type Entry struct {
	Kind   EntryKind `json:"kind"`
	TaskID string    `json:"task_id,omitempty"`
	Title  string    `json:"title,omitempty"`
	Reason string    `json:"reason"`
}

// String renders the entry as a single human-readable line.
func (e Entry) String() string {
	switch e.Kind {
	case EntryScheduled:
		return fmt.Sprintf("Scheduled %s (%s).", e.Title, e.Reason)
	case EntrySkipped:
		return fmt.Sprintf("Skipped %s; %s.", e.Title, e.Reason)
	case EntryExcluded:
		return fmt.Sprintf("Excluded %s: %s.", e.Title, e.Reason)
	default:
		return e.Reason
	}
}

// admissionReason explains why an admitted task was chosen: a fixed start
// time, urgency, or a preference match. Falls back to plain time fit.
func (s *Schedule) admissionReason(task *domain.Task) string {
	var parts []string
	if task.StartTime != nil {
		parts = append(parts, "fixed start "+scheduler.ClockLabel(*task.StartTime))
	}
	if task.Priority.Rank() >= domain.PriorityHigh.Rank() {
		parts = append(parts, string(task.Priority)+" priority")
	}
	if s.preferenceBonus(task) > 0 {
		parts = append(parts, "preference match")
	}
	if len(parts) == 0 {
		parts = append(parts, "fits available time")
	}
	return strings.Join(parts, ", ")
}
