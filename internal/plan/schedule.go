package plan

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/phrazzld/pawpal/internal/domain"
	"github.com/phrazzld/pawpal/internal/scheduler"
)

// Schedule construction errors.
var (
	// ErrNilOwner is returned when a schedule is created without an owner.
	ErrNilOwner = errors.New("owner cannot be nil")

	// ErrNilPet is returned when a schedule is created without a pet.
	ErrNilPet = errors.New("pet cannot be nil")
)

// ConflictPair records a candidate that was refused admission because it
// shares a fixed start time with an already admitted task.
type ConflictPair struct {
	Task *domain.Task // The refused candidate
	With *domain.Task // The admitted task it collides with
}

// Schedule selects and orders a feasible subset of one pet's due tasks
// for one planning date within the owner's time budget. It holds
// non-owning references into the owner's existing tasks and is cheap to
// throw away and regenerate.
type Schedule struct {
	date      time.Time
	owner     *domain.Owner
	pet       *domain.Pet
	available []*domain.Task
	params    *Params
	logger    *slog.Logger

	scheduled    []*domain.Task
	scheduledIDs map[string]bool
	conflicts    []ConflictPair
	totalTime    int
	entries      []Entry
}

// New creates a schedule for the given date, owner, and pet. A nil
// available list means the pet's current tasks; nil params mean the
// default score weights; a nil logger falls back to slog.Default.
func New(date time.Time, owner *domain.Owner, pet *domain.Pet, available []*domain.Task, params *Params, logger *slog.Logger) (*Schedule, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	if pet == nil {
		return nil, ErrNilPet
	}
	if available == nil {
		available = pet.Tasks(true)
	}
	if params == nil {
		params = NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Schedule{
		date:         date,
		owner:        owner,
		pet:          pet,
		available:    available,
		params:       params,
		logger:       logger.With("component", "schedule", "pet", pet.Name),
		scheduledIDs: make(map[string]bool),
	}, nil
}

// Date returns the planning date the schedule was built for.
func (s *Schedule) Date() time.Time {
	return s.date
}

// Generate runs the filter, order, and admit phases from a
// clean slate. It never fails: an infeasible day simply yields an empty
// or partial schedule with explanatory entries. Generation reads the
// owner graph but never mutates it, so regenerating with unchanged
// inputs produces an identical result.
func (s *Schedule) Generate() {
	s.scheduled = make([]*domain.Task, 0, len(s.available))
	s.scheduledIDs = make(map[string]bool)
	s.conflicts = nil
	s.totalTime = 0
	s.entries = nil

	candidates, excluded := s.filterCandidates()
	s.orderCandidates(candidates)
	s.admitCandidates(candidates)

	s.entries = append(s.entries, excluded...)

	if len(s.scheduled) == 0 && s.owner.AvailableTime <= 0 {
		s.entries = append(s.entries, Entry{Kind: EntryNote, Reason: "No tasks scheduled because available time is zero."})
	}

	s.logger.Debug("generated schedule",
		"date", s.date.Format("2006-01-02"),
		"scheduled", len(s.scheduled),
		"total_minutes", s.totalTime,
		"available_minutes", s.owner.AvailableTime)
}

// filterCandidates keeps the tasks that are due, applicable, and not
// avoided by the owner, recording an exclusion entry for everything else.
func (s *Schedule) filterCandidates() ([]*domain.Task, []Entry) {
	avoidTypes := toSet(s.owner.Preferences.AvoidTaskTypes)
	avoidTags := toSet(s.owner.Preferences.AvoidTags)

	candidates := make([]*domain.Task, 0, len(s.available))
	var excluded []Entry

	exclude := func(task *domain.Task, reason string) {
		excluded = append(excluded, Entry{Kind: EntryExcluded, TaskID: task.ID, Title: task.Title, Reason: reason})
	}

	for _, task := range s.available {
		switch {
		case task.Completed:
			exclude(task, ReasonAlreadyCompleted)
		case !task.IsDueOn(s.date):
			exclude(task, ReasonNotDue)
		case !s.matchesPet(task):
			exclude(task, ReasonNotApplicable)
		case avoidTypes[task.Type]:
			exclude(task, ReasonAvoidedType)
		case intersects(task.Tags, avoidTags):
			exclude(task, ReasonAvoidedTag)
		default:
			candidates = append(candidates, task)
		}
	}

	return candidates, excluded
}

// orderCandidates applies the canonical composite ordering with the
// preference-aware score substituted for the raw priority rank.
func (s *Schedule) orderCandidates(candidates []*domain.Task) {
	compare := scheduler.CompareTasksScored
	if s.owner.Preferences.PrioritizeShort {
		compare = scheduler.CompareTasksDurationFirst
	}
	slices.SortStableFunc(candidates, func(a, b *domain.Task) int {
		return compare(a, b, s.score(a), s.score(b))
	})
}

// admitCandidates greedily admits ordered candidates within the time
// budget. Dependency resolution is a fixed-point loop bounded by the
// candidate count: a task whose dependencies are not yet admitted is
// deferred to the next pass, and one whose dependencies can no longer be
// satisfied is permanently excluded rather than retried forever.
func (s *Schedule) admitCandidates(candidates []*domain.Task) {
	// alive tracks candidates that could still be admitted; a dependency
	// outside this set and not already admitted is unsatisfiable.
	alive := make(map[string]bool, len(candidates))
	for _, task := range candidates {
		alive[task.ID] = true
	}

	maxTasks := s.owner.Preferences.MaxTasks

	remaining := candidates
	progress := true
	for len(remaining) > 0 && progress {
		progress = false
		var deferred []*domain.Task

		for i, task := range remaining {
			if !s.dependenciesMet(task) {
				if s.dependenciesSatisfiable(task, alive) {
					deferred = append(deferred, task)
				} else {
					delete(alive, task.ID)
					s.entries = append(s.entries, Entry{Kind: EntrySkipped, TaskID: task.ID, Title: task.Title, Reason: ReasonUnmetDependency})
				}
				continue
			}

			if maxTasks != nil && len(s.scheduled) >= *maxTasks {
				s.entries = append(s.entries, Entry{Kind: EntryNote, Reason: "Stopped scheduling due to max tasks preference."})
				s.logger.Debug("admission capped", "max_tasks", *maxTasks, "unconsidered", len(remaining)-i+len(deferred))
				return
			}

			if s.AddTask(task) {
				progress = true
				s.entries = append(s.entries, Entry{Kind: EntryScheduled, TaskID: task.ID, Title: task.Title, Reason: s.admissionReason(task)})
				continue
			}

			// Refused admission: permanently skipped, with the reason.
			delete(alive, task.ID)
			if with := s.findStartConflict(task); with != nil {
				s.entries = append(s.entries, Entry{Kind: EntrySkipped, TaskID: task.ID, Title: task.Title, Reason: "time conflict with " + with.Title})
			} else {
				s.entries = append(s.entries, Entry{Kind: EntrySkipped, TaskID: task.ID, Title: task.Title, Reason: ReasonNoTime})
			}
		}

		remaining = deferred
	}

	// Whatever is left was deferred on every pass without progress.
	for _, task := range remaining {
		s.entries = append(s.entries, Entry{Kind: EntrySkipped, TaskID: task.ID, Title: task.Title, Reason: ReasonUnmetDependency})
	}
}

// AddTask is the manual override: it forces a task through the admission
// check, re-validating the time budget and fixed-start collisions, and
// reports whether the task was admitted. Generate uses the same path, so
// a forced task obeys the same feasibility rules as a planned one.
func (s *Schedule) AddTask(task *domain.Task) bool {
	if task == nil || task.Duration <= 0 {
		return false
	}
	if s.totalTime+task.Duration > s.owner.AvailableTime {
		return false
	}
	if with := s.findStartConflict(task); with != nil {
		s.conflicts = append(s.conflicts, ConflictPair{Task: task, With: with})
		return false
	}

	s.scheduled = append(s.scheduled, task)
	s.scheduledIDs[task.ID] = true
	s.totalTime += task.Duration
	return true
}

// Validate recomputes the schedule's footprint and reports whether it
// still fits the owner's time budget with no two admitted tasks sharing
// a fixed start time. It returns a boolean so callers can surface a
// warning instead of aborting.
func (s *Schedule) Validate() bool {
	total := 0
	starts := make(map[int]bool)
	for _, task := range s.scheduled {
		total += task.Duration
		if task.StartTime != nil {
			if starts[*task.StartTime] {
				return false
			}
			starts[*task.StartTime] = true
		}
	}
	return total <= s.owner.AvailableTime
}

// TotalTime recomputes and returns the summed duration of the scheduled
// tasks in minutes.
func (s *Schedule) TotalTime() int {
	total := 0
	for _, task := range s.scheduled {
		total += task.Duration
	}
	s.totalTime = total
	return total
}

// ScheduledTasks returns the admitted tasks in admission order.
func (s *Schedule) ScheduledTasks() []*domain.Task {
	return append([]*domain.Task(nil), s.scheduled...)
}

// Conflicts returns the fixed-start collisions detected during admission.
func (s *Schedule) Conflicts() []ConflictPair {
	return append([]ConflictPair(nil), s.conflicts...)
}

// Entries returns the structured explanation entries in decision order.
func (s *Schedule) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// Explanation renders the reasoning behind the schedule as one line per
// decision, in the order the decisions were made.
func (s *Schedule) Explanation() string {
	lines := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		lines = append(lines, entry.String())
	}
	return strings.Join(lines, "\n")
}

// score computes the preference-aware urgency used in place of the raw
// priority rank when ordering candidates.
func (s *Schedule) score(task *domain.Task) int {
	return task.Priority.Rank()*s.params.PriorityWeight + s.preferenceBonus(task)
}

func (s *Schedule) preferenceBonus(task *domain.Task) int {
	prefs := s.owner.Preferences
	bonus := 0
	if slices.Contains(prefs.PreferredTaskTypes, task.Type) {
		bonus += s.params.PreferredTypeBonus
	}
	if intersects(task.Tags, toSet(prefs.PreferredTags)) {
		bonus += s.params.PreferredTagBonus
	}
	if task.NeedsSpecialCare && s.pet.HasSpecialNeeds() {
		bonus += s.params.SpecialNeedsBonus
	}
	return bonus
}

// matchesPet reports whether the task applies to the schedule's pet:
// the species set is empty or contains the pet's species, and any
// special-needs requirement is met.
func (s *Schedule) matchesPet(task *domain.Task) bool {
	if len(task.Species) > 0 {
		found := false
		for _, species := range task.Species {
			if strings.EqualFold(species, s.pet.Species) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if task.NeedsSpecialCare && !s.pet.HasSpecialNeeds() {
		return false
	}
	return true
}

func (s *Schedule) dependenciesMet(task *domain.Task) bool {
	for _, dep := range task.DependsOn {
		if !s.scheduledIDs[dep] {
			return false
		}
	}
	return true
}

// dependenciesSatisfiable reports whether every unmet dependency could
// still be admitted on a later pass. Missing dependencies and chains
// broken by a permanent skip make a task unsatisfiable; so do cycles,
// once no pass makes progress.
func (s *Schedule) dependenciesSatisfiable(task *domain.Task, alive map[string]bool) bool {
	for _, dep := range task.DependsOn {
		if !s.scheduledIDs[dep] && !alive[dep] {
			return false
		}
	}
	return true
}

func (s *Schedule) findStartConflict(task *domain.Task) *domain.Task {
	if task.StartTime == nil {
		return nil
	}
	for _, admitted := range s.scheduled {
		if admitted.StartTime != nil && *admitted.StartTime == *task.StartTime {
			return admitted
		}
	}
	return nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func intersects(values []string, set map[string]bool) bool {
	for _, v := range values {
		if set[v] {
			return true
		}
	}
	return false
}
