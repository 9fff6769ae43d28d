package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskCompletedEvent records that a task was marked completed, and, when
// the task recurs, which task was spawned as its next occurrence. It
// carries plain identifiers rather than task pointers so handlers cannot
// reach back into the owner's task graph.
type TaskCompletedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// TaskID is the identifier of the completed task
	TaskID string `json:"task_id"`

	// PetName is the pet the completed task belongs to
	PetName string `json:"pet_name"`

	// CompletedOn is the planning date the completion was recorded for
	CompletedOn time.Time `json:"completed_on"`

	// SpawnedTaskID is the identifier of the next recurring occurrence,
	// or empty when the task does not recur
	SpawnedTaskID string `json:"spawned_task_id,omitempty"`
}

// NewTaskCompletedEvent creates a TaskCompletedEvent with a fresh event ID.
func NewTaskCompletedEvent(taskID, petName string, completedOn time.Time, spawnedTaskID string) *TaskCompletedEvent {
	return &TaskCompletedEvent{
		ID:            uuid.New(),
		TaskID:        taskID,
		PetName:       petName,
		CompletedOn:   completedOn,
		SpawnedTaskID: spawnedTaskID,
	}
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *TaskCompletedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the scheduler to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *TaskCompletedEvent) error
}
