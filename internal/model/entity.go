package model

import (
	"strconv"
	"time"
)

// Slot names used in Entities.Slots.
const (
	SlotClass        = "class"
	SlotDateStart    = "date_start"
	SlotDateEnd      = "date_end"
	SlotDateExpr     = "date_expr"
	SlotPriority     = "priority"
	SlotDifficultyLo = "difficulty_min"
	SlotDifficultyHi = "difficulty_max"
	SlotAssignmentID = "assignment_id"
	SlotAssignment   = "assignment_name"
	SlotTitle        = "title"
	SlotAnaphora     = "anaphora"
	SlotOverdue      = "overdue"
)

// DateRange is an inclusive, resolved absolute range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Entities holds the slots extracted from one utterance. Zero values mean
// the slot was not found.
type Entities struct {
	ClassName      string     `json:"class,omitempty"`
	NewClass       bool       `json:"new_class,omitempty"`
	DateRange      *DateRange `json:"date_range,omitempty"`
	DateExpr       string     `json:"date_expr,omitempty"`
	Priority       Priority   `json:"priority,omitempty"`
	DifficultyMin  int        `json:"difficulty_min,omitempty"`
	DifficultyMax  int        `json:"difficulty_max,omitempty"`
	AssignmentID   string     `json:"assignment_id,omitempty"`
	AssignmentName string     `json:"assignment_name,omitempty"`
	Candidates     []string   `json:"candidates,omitempty"`
	Title          string     `json:"title,omitempty"`
	Anaphora       bool       `json:"anaphora,omitempty"`
	Overdue        bool       `json:"overdue,omitempty"`
}

// Empty reports whether no slot was filled. Anaphora alone counts as a slot.
func (e Entities) Empty() bool {
	return e.ClassName == "" && e.DateRange == nil && e.Priority == "" &&
		e.DifficultyMin == 0 && e.DifficultyMax == 0 && e.AssignmentID == "" &&
		len(e.Candidates) == 0 && e.Title == "" && !e.Anaphora && !e.Overdue
}

// HasFilter reports whether any slot narrows an assignment query.
func (e Entities) HasFilter() bool {
	return e.ClassName != "" || e.DateRange != nil || e.Priority != "" ||
		e.DifficultyMin != 0 || e.DifficultyMax != 0 || e.Overdue
}

// Slots flattens the entities into slot name / value pairs.
func (e Entities) Slots() map[string]string {
	slots := map[string]string{}
	if e.ClassName != "" {
		slots[SlotClass] = e.ClassName
	}
	if e.DateRange != nil {
		slots[SlotDateStart] = e.DateRange.Start.Format(time.RFC3339)
		slots[SlotDateEnd] = e.DateRange.End.Format(time.RFC3339)
	}
	if e.DateExpr != "" {
		slots[SlotDateExpr] = e.DateExpr
	}
	if e.Priority != "" {
		slots[SlotPriority] = string(e.Priority)
	}
	if e.DifficultyMin != 0 {
		slots[SlotDifficultyLo] = strconv.Itoa(e.DifficultyMin)
	}
	if e.DifficultyMax != 0 {
		slots[SlotDifficultyHi] = strconv.Itoa(e.DifficultyMax)
	}
	if e.AssignmentID != "" {
		slots[SlotAssignmentID] = e.AssignmentID
	}
	if e.AssignmentName != "" {
		slots[SlotAssignment] = e.AssignmentName
	}
	if e.Title != "" {
		slots[SlotTitle] = e.Title
	}
	if e.Anaphora {
		slots[SlotAnaphora] = "true"
	}
	if e.Overdue {
		slots[SlotOverdue] = "true"
	}
	return slots
}

// Clone returns a copy that shares no memory with e.
func (e Entities) Clone() Entities {
	if e.DateRange != nil {
		r := *e.DateRange
		e.DateRange = &r
	}
	if e.Candidates != nil {
		e.Candidates = append([]string(nil), e.Candidates...)
	}
	return e
}
