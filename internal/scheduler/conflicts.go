package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phrazzld/pawpal/internal/domain"
)

// ConflictEntry names one task participating in a time conflict.
type ConflictEntry struct {
	PetName string
	Task    *domain.Task
}

// Conflict reports two or more tasks sharing an identical fixed start
// time. Conflicts are advisory: detection never mutates state and never
// blocks schedule generation.
type Conflict struct {
	StartTime int // Minutes from midnight
	Entries   []ConflictEntry
}

// ClockLabel renders minutes from midnight as HH:MM.
func ClockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// String renders the conflict as a human-readable warning line.
func (c Conflict) String() string {
	names := make([]string, 0, len(c.Entries))
	for _, entry := range c.Entries {
		names = append(names, fmt.Sprintf("%s - %s", entry.PetName, entry.Task.Title))
	}
	return fmt.Sprintf("Warning: %s conflict between %s.", ClockLabel(c.StartTime), strings.Join(names, ", "))
}

// DetectTimeConflicts groups tasks across all pets by identical fixed
// start time and reports every group with at least two members, ordered
// by start time. Untimed tasks never participate in conflicts.
func (s *Scheduler) DetectTimeConflicts(includeCompleted bool) []Conflict {
	byTime := make(map[int][]ConflictEntry)
	for _, pet := range s.owner.Pets() {
		for _, task := range pet.Tasks(includeCompleted) {
			if task.StartTime == nil {
				continue
			}
			byTime[*task.StartTime] = append(byTime[*task.StartTime], ConflictEntry{PetName: pet.Name, Task: task})
		}
	}

	starts := make([]int, 0, len(byTime))
	for start, entries := range byTime {
		if len(entries) >= 2 {
			starts = append(starts, start)
		}
	}
	sort.Ints(starts)

	conflicts := make([]Conflict, 0, len(starts))
	for _, start := range starts {
		conflicts = append(conflicts, Conflict{StartTime: start, Entries: byTime[start]})
	}
	return conflicts
}
