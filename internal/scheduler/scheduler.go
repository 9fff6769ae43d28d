package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/phrazzld/pawpal/internal/domain"
	"github.com/phrazzld/pawpal/internal/events"
)

// Scheduler-specific errors.
var (
	// ErrNilOwner is returned when a scheduler is created without an owner.
	ErrNilOwner = errors.New("owner cannot be nil")

	// ErrInvalidSortKey is returned when an unknown sort key is requested.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidStatus is returned when a filter carries an unknown status.
	ErrInvalidStatus = errors.New("invalid task status filter")
)

// Scheduler operates over one owner's aggregate task set. It holds a
// non-owning reference to the owner for the duration of its operations
// and never outlives the single logical caller mutating that owner.
type Scheduler struct {
	owner   *domain.Owner
	logger  *slog.Logger
	emitter events.EventEmitter
}

// NewScheduler creates a scheduler over the given owner's pets. A nil
// logger falls back to slog.Default.
func NewScheduler(owner *domain.Owner, logger *slog.Logger) (*Scheduler, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		owner:  owner,
		logger: logger.With("component", "scheduler"),
	}, nil
}

// SetEventEmitter registers an emitter that receives a TaskCompletedEvent
// for every completion transition. Emission failures are logged, never
// propagated: observation must not block planning.
func (s *Scheduler) SetEventEmitter(emitter events.EventEmitter) {
	s.emitter = emitter
}

// AllTasks returns every task across all pets in pet insertion order.
func (s *Scheduler) AllTasks(includeCompleted bool) []*domain.Task {
	return s.owner.AllTasks(includeCompleted)
}

// PendingTasks returns all incomplete tasks across pets.
func (s *Scheduler) PendingTasks() []*domain.Task {
	return s.owner.AllTasks(false)
}

// TasksByPet returns tasks grouped by pet name.
func (s *Scheduler) TasksByPet(includeCompleted bool) map[string][]*domain.Task {
	grouped := make(map[string][]*domain.Task, len(s.owner.Pets()))
	for _, pet := range s.owner.Pets() {
		grouped[pet.Name] = pet.Tasks(includeCompleted)
	}
	return grouped
}

// OrganizeTasks returns the owner's tasks ordered primarily by the
// requested key. Whatever the primary key, the canonical composite
// comparison is applied below it, so the result is deterministic for any
// input order.
func (s *Scheduler) OrganizeTasks(includeCompleted bool, by SortKey) ([]*domain.Task, error) {
	tasks := s.owner.AllTasks(includeCompleted)

	switch by {
	case SortByTime:
		slices.SortStableFunc(tasks, CompareTasks)
	case SortByPriority:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			if d := b.Priority.Rank() - a.Priority.Rank(); d != 0 {
				return d
			}
			return CompareTasks(a, b)
		})
	case SortByDuration:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			if d := a.Duration - b.Duration; d != 0 {
				return d
			}
			return CompareTasks(a, b)
		})
	case SortByTitle:
		slices.SortStableFunc(tasks, func(a, b *domain.Task) int {
			if d := strings.Compare(a.Title, b.Title); d != 0 {
				return d
			}
			return CompareTasks(a, b)
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, by)
	}

	return tasks, nil
}

// TaskStatus narrows FilterTasks to pending or completed tasks.
type TaskStatus string

// Possible status filter values. The empty string matches all tasks.
const (
	StatusAny       TaskStatus = ""
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// TaskFilter selects tasks by pet, status, and type. Zero-valued criteria
// match everything.
type TaskFilter struct {
	PetName  string
	Status   TaskStatus
	TaskType string
}

// FilterTasks returns the tasks matching every supplied criterion, in pet
// insertion order. An unknown status is rejected at this boundary rather
// than silently matching nothing.
func (s *Scheduler) FilterTasks(filter TaskFilter) ([]*domain.Task, error) {
	switch filter.Status {
	case StatusAny, StatusPending, StatusCompleted:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}

	matched := make([]*domain.Task, 0)
	for _, pet := range s.owner.Pets() {
		if filter.PetName != "" && pet.Name != filter.PetName {
			continue
		}
		for _, task := range pet.Tasks(true) {
			if filter.Status == StatusPending && task.Completed {
				continue
			}
			if filter.Status == StatusCompleted && !task.Completed {
				continue
			}
			if filter.TaskType != "" && task.Type != filter.TaskType {
				continue
			}
			matched = append(matched, task)
		}
	}
	return matched, nil
}

// MarkTaskCompleted locates a task by ID across all pets and applies the
// completion transition on the given date. When the task recurs, the next
// occurrence is inserted into the same pet. Returns false when no task
// carries the ID; that is an ordinary absence, not a fault.
func (s *Scheduler) MarkTaskCompleted(ctx context.Context, id string, on time.Time) (bool, error) {
	for _, pet := range s.owner.Pets() {
		if !pet.HasTask(id) {
			continue
		}
		task, err := pet.Task(id)
		if err != nil {
			return false, err
		}

		task.MarkCompleted(on)

		spawnedID := ""
		if next := NextOccurrence(task, on, pet.HasTask); next != nil {
			if err := pet.AddTask(next); err != nil {
				return false, fmt.Errorf("inserting next occurrence of task %q: %w", id, err)
			}
			spawnedID = next.ID
			s.logger.Debug("spawned next recurring occurrence",
				"task_id", id,
				"next_task_id", next.ID,
				"pet", pet.Name)
		}

		s.emitCompleted(ctx, events.NewTaskCompletedEvent(id, pet.Name, on, spawnedID))
		return true, nil
	}

	s.logger.Debug("task not found for completion", "task_id", id)
	return false, nil
}

func (s *Scheduler) emitCompleted(ctx context.Context, event *events.TaskCompletedEvent) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit task completed event",
			"error", err,
			"task_id", event.TaskID)
	}
}
