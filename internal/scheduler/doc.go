// Package scheduler organizes, filters, and transitions care tasks across
// all of an owner's pets. It defines the canonical composite task ordering
// used throughout the planner, detects same-start-time conflicts, and
// applies the completion transition that spawns the next occurrence of a
// recurring task.
package scheduler
