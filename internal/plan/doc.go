// Package plan generates a per-pet, per-date care schedule: it filters a
// pet's tasks down to those due and applicable on the planning date,
// orders them with the canonical composite comparison plus a
// preference-aware urgency score, and greedily admits tasks into the
// owner's available time budget while resolving dependencies.
//
// A Schedule is a derived, disposable view over the owner's existing
// tasks. Generating it never mutates the owner graph, and regenerating
// with unchanged inputs produces an identical result.
package plan
