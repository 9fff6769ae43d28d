// Package events provides event records and a small in-memory dispatcher
// for observing the planning core.
//
// The core stays free of presentation concerns: when the scheduler
// completes a task (and possibly spawns its next recurring occurrence) it
// emits a TaskCompletedEvent, and any registered handler can react
// without the scheduler knowing about it.
package events
