package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"homework-assistant/internal/assignment"
	"homework-assistant/internal/chat"
	"homework-assistant/internal/middleware"
	"homework-assistant/pkg/log"
)

const (
	DefaultHost            = "127.0.0.1"
	DefaultShutdownTimeout = 5 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Domains
	assignments assignment.UseCase
	chat        chat.UseCase
	horizonDays int
	location    *time.Location
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimitPerMin int
	AllowRemote     bool

	Assignments assignment.UseCase
	Chat        chat.UseCase
	HorizonDays int
	Location    *time.Location
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		host:            host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		mw:              middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin, AllowRemote: cfg.AllowRemote}),
		assignments:     cfg.Assignments,
		chat:            cfg.Chat,
		horizonDays:     cfg.HorizonDays,
		location:        cfg.Location,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assignments == nil {
		return errors.New("assignment use case is required")
	}
	if srv.chat == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
