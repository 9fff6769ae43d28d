// Command pawpal runs a demonstration of the pet care planning core:
// it builds a small household, organizes and filters the tasks, reports
// time conflicts, and generates an explained schedule for each pet.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/phrazzld/pawpal/internal/config"
	"github.com/phrazzld/pawpal/internal/domain"
	"github.com/phrazzld/pawpal/internal/plan"
	"github.com/phrazzld/pawpal/internal/platform/logger"
	"github.com/phrazzld/pawpal/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pawpal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log := logger.Setup(cfg.App)

	owner, err := buildHousehold(cfg.Planner.AvailableTimeMinutes)
	if err != nil {
		return fmt.Errorf("building demo household: %w", err)
	}

	sched, err := scheduler.NewScheduler(owner, log)
	if err != nil {
		return err
	}

	date := cfg.Planner.ResolvePlanningDate(time.Now().UTC())
	log.Info("planning day",
		"owner", owner.Name,
		"date", date.Format("2006-01-02"),
		"available_minutes", owner.AvailableTime)

	divider := strings.Repeat("=", 60)
	fmt.Println(divider)
	fmt.Println("TODAY'S SCHEDULE - PAWPAL")
	fmt.Println(divider)
	fmt.Printf("Owner: %s\n", owner.Name)
	fmt.Printf("Pets: %d\n\n", len(owner.Pets()))

	if err := printTasksByTime(sched); err != nil {
		return err
	}
	if err := printPendingDogTasks(sched); err != nil {
		return err
	}
	printConflicts(sched)

	for _, pet := range owner.Pets() {
		if err := printPetSchedule(date, owner, pet, log); err != nil {
			return err
		}
	}

	allTasks := owner.AllTasks(false)
	total := 0
	for _, task := range allTasks {
		total += task.Duration
	}
	fmt.Println()
	fmt.Println(divider)
	fmt.Printf("SUMMARY: %d total tasks, %d minutes\n", len(allTasks), total)
	fmt.Println(divider)

	return nil
}

func printTasksByTime(sched *scheduler.Scheduler) error {
	fmt.Println("ALL TASKS SORTED BY TIME")
	fmt.Println(strings.Repeat("-", 60))

	tasks, err := sched.OrganizeTasks(false, scheduler.SortByTime)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		fmt.Printf("  %s [%-8s] %-20s (%d min)\n",
			timeLabel(task), strings.ToUpper(string(task.Priority)), task.Title, task.Duration)
	}
	fmt.Println()
	return nil
}

func printPendingDogTasks(sched *scheduler.Scheduler) error {
	fmt.Println("FILTERED: ONLY PENDING DOG TASKS")
	fmt.Println(strings.Repeat("-", 60))

	tasks, err := sched.FilterTasks(scheduler.TaskFilter{PetName: "Max", Status: scheduler.StatusPending})
	if err != nil {
		return err
	}
	for _, task := range tasks {
		fmt.Printf("  [%-8s] %-20s (%d min)\n",
			strings.ToUpper(string(task.Priority)), task.Title, task.Duration)
	}
	fmt.Println()
	return nil
}

func printConflicts(sched *scheduler.Scheduler) {
	fmt.Println("TIME CONFLICT WARNINGS")
	fmt.Println(strings.Repeat("-", 60))

	conflicts := sched.DetectTimeConflicts(false)
	if len(conflicts) == 0 {
		fmt.Println("  No time conflicts detected.")
	}
	for _, conflict := range conflicts {
		fmt.Printf("  %s\n", conflict)
	}
	fmt.Println()
}

func printPetSchedule(date time.Time, owner *domain.Owner, pet *domain.Pet, log *slog.Logger) error {
	fmt.Printf("\n%s (%s, Age: %d)\n", pet.Name, strings.ToUpper(pet.Species), pet.Age)
	fmt.Println(strings.Repeat("-", 60))

	schedule, err := plan.New(date, owner, pet, nil, nil, log)
	if err != nil {
		return err
	}
	schedule.Generate()

	scheduled := schedule.ScheduledTasks()
	if len(scheduled) == 0 {
		fmt.Println("  No tasks scheduled")
	}
	for _, task := range scheduled {
		fmt.Printf("  %s [%-8s] %-20s (%d min)\n",
			timeLabel(task), strings.ToUpper(string(task.Priority)), task.Title, task.Duration)
		fmt.Printf("      %s\n", task.Description)
	}
	fmt.Printf("\n  Total time for %s: %d minutes\n", pet.Name, schedule.TotalTime())

	fmt.Println("\n  Why:")
	for _, entry := range schedule.Entries() {
		fmt.Printf("    %s\n", entry)
	}
	return nil
}

func timeLabel(task *domain.Task) string {
	if task.StartTime == nil {
		return "--:--"
	}
	return scheduler.ClockLabel(*task.StartTime)
}

func buildHousehold(availableTime int) (*domain.Owner, error) {
	owner, err := domain.NewOwner("Sarah", availableTime)
	if err != nil {
		return nil, err
	}

	dog, err := domain.NewPet("Max", "dog", 3)
	if err != nil {
		return nil, err
	}
	cat, err := domain.NewPet("Whiskers", "cat", 5)
	if err != nil {
		return nil, err
	}
	if err := owner.AddPet(dog); err != nil {
		return nil, err
	}
	if err := owner.AddPet(cat); err != nil {
		return nil, err
	}

	type spec struct {
		pet      *domain.Pet
		id       string
		title    string
		duration int
		priority domain.Priority
		taskType string
		opts     *domain.TaskOpts
	}

	specs := []spec{
		{
			pet: dog, id: "task_003", title: "Brush Fur", duration: 15,
			priority: domain.PriorityMedium, taskType: "grooming",
			opts: &domain.TaskOpts{
				Description: "Brush Max's fur to prevent matting",
				StartTime:   intPtr(600),
				Recurrence:  domain.RecurrenceWeekly,
			},
		},
		{
			pet: dog, id: "task_001", title: "Morning Walk", duration: 30,
			priority: domain.PriorityHigh, taskType: "exercise",
			opts: &domain.TaskOpts{
				Description: "Take Max for his morning walk around the neighborhood",
				StartTime:   intPtr(540),
				Recurrence:  domain.RecurrenceDaily,
			},
		},
		{
			pet: dog, id: "task_002", title: "Feed Breakfast", duration: 10,
			priority: domain.PriorityHigh, taskType: "feeding",
			opts: &domain.TaskOpts{
				Description: "Give Max his breakfast (2 cups of dry food)",
				StartTime:   intPtr(480),
				Recurrence:  domain.RecurrenceDaily,
			},
		},
		{
			pet: cat, id: "task_005", title: "Clean Litter Box", duration: 10,
			priority: domain.PriorityMedium, taskType: "cleaning",
			opts: &domain.TaskOpts{
				Description: "Scoop and clean Whiskers' litter box",
				StartTime:   intPtr(550),
				Recurrence:  domain.RecurrenceDaily,
			},
		},
		{
			pet: cat, id: "task_004", title: "Feed Breakfast", duration: 5,
			priority: domain.PriorityHigh, taskType: "feeding",
			opts: &domain.TaskOpts{
				Description: "Give Whiskers wet food for breakfast",
				StartTime:   intPtr(480),
				Recurrence:  domain.RecurrenceDaily,
			},
		},
	}

	for _, s := range specs {
		task, err := domain.NewTask(s.id, s.title, s.duration, s.priority, s.taskType, s.opts)
		if err != nil {
			return nil, err
		}
		if err := s.pet.AddTask(task); err != nil {
			return nil, err
		}
	}

	return owner, nil
}

func intPtr(v int) *int {
	return &v
}
