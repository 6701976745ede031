package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"homework-assistant/internal/analysis"
	"homework-assistant/internal/assignment"
	"homework-assistant/pkg/log"
)

// Handler is the assignment HTTP delivery layer used by the GUI forms.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)
	Classes(c *gin.Context)
	Workload(c *gin.Context)
	Events(c *gin.Context)
	ExportCalendar(c *gin.Context)
}

type Config struct {
	HorizonDays int
	Location    *time.Location
}

type handler struct {
	l           log.Logger
	uc          assignment.UseCase
	horizonDays int
	loc         *time.Location
	now         func() time.Time
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the assignment domain.
func New(l log.Logger, uc assignment.UseCase, cfg Config) *handler {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = analysis.DefaultHorizonDays
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &handler{
		l:           l,
		uc:          uc,
		horizonDays: cfg.HorizonDays,
		loc:         cfg.Location,
		now:         time.Now,
	}
}
