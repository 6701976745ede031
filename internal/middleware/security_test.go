package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"homework-assistant/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_, r := gin.CreateTestContext(httptest.NewRecorder())
	r.Use(mw.LoopbackOnly(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remote string, header map[string]string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remote
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLoopbackOnly(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{}))

	tests := []struct {
		name   string
		remote string
		header map[string]string
		want   int
	}{
		{"ipv4 loopback", "127.0.0.1:50000", nil, http.StatusOK},
		{"ipv6 loopback", "[::1]:50000", nil, http.StatusOK},
		{"lan client", "192.168.1.20:50000", nil, http.StatusForbidden},
		{"spoofed header", "10.0.0.5:50000", map[string]string{"X-Forwarded-For": "127.0.0.1"}, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := get(r, tt.remote, tt.header); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAllowRemote(t *testing.T) {
	r := newEngine(New(log.NewNop(), Config{AllowRemote: true}))
	if got := get(r, "192.168.1.20:50000", nil); got != http.StatusOK {
		t.Errorf("expected 200, got %d", got)
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and one token per second.
	r := newEngine(New(log.NewNop(), Config{RateLimitPerMin: 60}))

	for i := 0; i < 6; i++ {
		if got := get(r, "127.0.0.1:50000", nil); got != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, got)
		}
	}
	if got := get(r, "127.0.0.1:50000", nil); got != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", got)
	}
	if got := get(r, "127.0.0.1:50001", map[string]string{"X-Real-IP": "127.0.0.2"}); got != http.StatusOK {
		t.Errorf("another client keeps its own budget, got %d", got)
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	if ip := extractIP(req); ip != "127.0.0.1" {
		t.Errorf("expected remote addr host, got %s", ip)
	}
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	if ip := extractIP(req); ip != "10.0.0.1" {
		t.Errorf("expected first forwarded ip, got %s", ip)
	}
}
