package domain

import "errors"

// Owner-specific validation errors.
var (
	// ErrOwnerNameEmpty is returned when an owner name is empty.
	ErrOwnerNameEmpty = errors.New("owner name cannot be empty")

	// ErrInvalidAvailableTime is returned when available time is negative.
	ErrInvalidAvailableTime = errors.New("available time cannot be negative")

	// ErrNilPet is returned when a nil pet is added to an owner.
	ErrNilPet = errors.New("pet cannot be nil")
)

// Preferences captures the owner's stated scheduling preferences as typed
// sets rather than a loose attribute bag, so typos in category names fail
// at the call site instead of silently matching nothing.
type Preferences struct {
	PreferredTaskTypes []string `json:"preferred_task_types,omitempty"`
	AvoidTaskTypes     []string `json:"avoid_task_types,omitempty"`
	PreferredTags      []string `json:"preferred_tags,omitempty"`
	AvoidTags          []string `json:"avoid_tags,omitempty"`

	// MaxTasks caps how many tasks a single schedule may admit. Nil means
	// no cap.
	MaxTasks *int `json:"max_tasks,omitempty"`

	// PrioritizeShort breaks priority ties in favor of shorter tasks.
	PrioritizeShort bool `json:"prioritize_short_tasks,omitempty"`
}

// Owner holds the household: a name-keyed, insertion-ordered collection of
// pets, the owner's daily time budget, and their scheduling preferences.
type Owner struct {
	Name          string      `json:"name"`
	AvailableTime int         `json:"available_time_minutes"`
	Preferences   Preferences `json:"preferences"`

	pets   []*Pet
	byName map[string]*Pet
}

// NewOwner creates an Owner with no pets. Returns an error if validation fails.
func NewOwner(name string, availableTime int) (*Owner, error) {
	if name == "" {
		return nil, ErrOwnerNameEmpty
	}
	if availableTime < 0 {
		return nil, ErrInvalidAvailableTime
	}

	return &Owner{
		Name:          name,
		AvailableTime: availableTime,
		byName:        make(map[string]*Pet),
	}, nil
}

// SetPreferences replaces the owner's scheduling preferences.
func (o *Owner) SetPreferences(prefs Preferences) {
	o.Preferences = prefs
}

// AddPet adds a pet to the owner, preserving insertion order. Returns
// ErrDuplicatePet if a pet with the same name already belongs to the owner.
func (o *Owner) AddPet(pet *Pet) error {
	if pet == nil {
		return ErrNilPet
	}
	if _, exists := o.byName[pet.Name]; exists {
		return ErrDuplicatePet
	}

	o.pets = append(o.pets, pet)
	o.byName[pet.Name] = pet
	return nil
}

// RemovePet removes a pet by name, together with all tasks it owns.
// Returns true if a removal occurred.
func (o *Owner) RemovePet(name string) bool {
	if _, exists := o.byName[name]; !exists {
		return false
	}

	delete(o.byName, name)
	for i, pet := range o.pets {
		if pet.Name == name {
			o.pets = append(o.pets[:i], o.pets[i+1:]...)
			break
		}
	}
	return true
}

// Pet returns the pet with the given name, or ErrPetNotFound. The explicit
// error forces callers to handle absence instead of receiving a sentinel.
func (o *Owner) Pet(name string) (*Pet, error) {
	pet, ok := o.byName[name]
	if !ok {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

// Pets returns the owner's pets in insertion order.
func (o *Owner) Pets() []*Pet {
	return append([]*Pet(nil), o.pets...)
}

// AllTasks concatenates every pet's task list in pet insertion order,
// optionally excluding completed tasks. An empty owner yields an empty slice.
func (o *Owner) AllTasks(includeCompleted bool) []*Task {
	tasks := make([]*Task, 0)
	for _, pet := range o.pets {
		tasks = append(tasks, pet.Tasks(includeCompleted)...)
	}
	return tasks
}
