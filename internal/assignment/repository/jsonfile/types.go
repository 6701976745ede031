package jsonfile

import (
	"time"

	"homework-assistant/internal/model"
)

const fileVersion = 1

type fileFormat struct {
	Version     int          `json:"version"`
	Assignments []fileRecord `json:"assignments"`
}

type fileRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	ClassName   string     `json:"class"`
	DueDate     time.Time  `json:"due_date"`
	Priority    string     `json:"priority"`
	Difficulty  int        `json:"difficulty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toRecord(a model.Assignment) fileRecord {
	return fileRecord{
		ID:          a.ID,
		Name:        a.Name,
		ClassName:   a.ClassName,
		DueDate:     a.DueDate,
		Priority:    string(a.Priority),
		Difficulty:  a.Difficulty,
		Completed:   a.Completed,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (r fileRecord) toModel() model.Assignment {
	return model.Assignment{
		ID:          r.ID,
		Name:        r.Name,
		ClassName:   r.ClassName,
		DueDate:     r.DueDate,
		Priority:    model.Priority(r.Priority),
		Difficulty:  r.Difficulty,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}.Clone()
}
