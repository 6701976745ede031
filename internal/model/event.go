package model

import "time"

// AssignmentEventKind is what happened to an assignment.
type AssignmentEventKind string

const (
	EventCreated   AssignmentEventKind = "created"
	EventUpdated   AssignmentEventKind = "updated"
	EventDeleted   AssignmentEventKind = "deleted"
	EventCompleted AssignmentEventKind = "completed"
	EventReopened  AssignmentEventKind = "reopened"
)

// AssignmentEvent is emitted once per effective store mutation.
type AssignmentEvent struct {
	Kind         AssignmentEventKind `json:"kind"`
	AssignmentID string              `json:"assignment_id"`
	At           time.Time           `json:"at"`
}
