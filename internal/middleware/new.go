package middleware

import (
	"homework-assistant/pkg/log"
)

const (
	DefaultRateLimitPerMin = 600
	// maxClients bounds the limiter map.
	maxClients = 1000
)

type Config struct {
	RateLimitPerMin int
	// AllowRemote disables the loopback guard.
	AllowRemote bool
}

type Middleware struct {
	l           log.Logger
	limiter     *rateLimiter
	allowRemote bool
}

func New(l log.Logger, cfg Config) Middleware {
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}
	return Middleware{
		l:           l,
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
		allowRemote: cfg.AllowRemote,
	}
}
