package domain

import "errors"

// Pet-specific validation errors.
var (
	// ErrPetNameEmpty is returned when a pet name is empty.
	ErrPetNameEmpty = errors.New("pet name cannot be empty")

	// ErrPetSpeciesEmpty is returned when a pet species is empty.
	ErrPetSpeciesEmpty = errors.New("pet species cannot be empty")

	// ErrNilTask is returned when a nil task is added to a pet.
	ErrNilTask = errors.New("task cannot be nil")
)

// Pet owns an insertion-ordered collection of care tasks for one animal.
// Task IDs are unique within the pet; the pet exclusively owns its tasks.
type Pet struct {
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Age          int      `json:"age"`
	SpecialNeeds []string `json:"special_needs,omitempty"`

	tasks []*Task
	byID  map[string]*Task
}

// NewPet creates a Pet with no tasks. Returns an error if validation fails.
func NewPet(name, species string, age int, specialNeeds ...string) (*Pet, error) {
	if name == "" {
		return nil, ErrPetNameEmpty
	}
	if species == "" {
		return nil, ErrPetSpeciesEmpty
	}

	return &Pet{
		Name:         name,
		Species:      species,
		Age:          age,
		SpecialNeeds: specialNeeds,
		byID:         make(map[string]*Task),
	}, nil
}

// HasSpecialNeeds reports whether the pet has any recorded special needs.
func (p *Pet) HasSpecialNeeds() bool {
	return len(p.SpecialNeeds) > 0
}

// AddTask inserts a task into the pet's collection, preserving insertion
// order. Returns ErrDuplicateTask if a task with the same ID already exists.
func (p *Pet) AddTask(task *Task) error {
	if task == nil {
		return ErrNilTask
	}
	if _, exists := p.byID[task.ID]; exists {
		return ErrDuplicateTask
	}

	p.tasks = append(p.tasks, task)
	p.byID[task.ID] = task
	return nil
}

// RemoveTask removes a task by ID. Returns true if a removal occurred.
func (p *Pet) RemoveTask(id string) bool {
	if _, exists := p.byID[id]; !exists {
		return false
	}

	delete(p.byID, id)
	for i, task := range p.tasks {
		if task.ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			break
		}
	}
	return true
}

// Task returns the task with the given ID, or ErrTaskNotFound.
func (p *Pet) Task(id string) (*Task, error) {
	task, ok := p.byID[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// HasTask reports whether a task with the given ID belongs to the pet.
func (p *Pet) HasTask(id string) bool {
	_, ok := p.byID[id]
	return ok
}

// Tasks returns the pet's tasks in insertion order, optionally excluding
// completed ones. An empty pet yields an empty slice, never nil panics.
func (p *Pet) Tasks(includeCompleted bool) []*Task {
	result := make([]*Task, 0, len(p.tasks))
	for _, task := range p.tasks {
		if !includeCompleted && task.Completed {
			continue
		}
		result = append(result, task)
	}
	return result
}

// PendingTasks returns the pet's incomplete tasks in insertion order.
func (p *Pet) PendingTasks() []*Task {
	return p.Tasks(false)
}

// TaskCount returns the number of tasks the pet owns, completed included.
func (p *Pet) TaskCount() int {
	return len(p.tasks)
}
