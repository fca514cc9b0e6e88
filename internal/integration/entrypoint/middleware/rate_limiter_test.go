// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRateLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func newLimitedEngine(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func doLoginRequest(engine *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:52000"
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	t.Run("requests within the limit pass", func(t *testing.T) {
		rl, _ := newTestRateLimiter(t, 3, time.Minute)
		engine := newLimitedEngine(rl)

		for i := 0; i < 3; i++ {
			if w := doLoginRequest(engine); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
			}
		}
	})

	t.Run("requests over the limit get 429", func(t *testing.T) {
		rl, _ := newTestRateLimiter(t, 2, time.Minute)
		engine := newLimitedEngine(rl)

		doLoginRequest(engine)
		doLoginRequest(engine)

		if w := doLoginRequest(engine); w.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", w.Code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		rl, mr := newTestRateLimiter(t, 1, time.Minute)
		engine := newLimitedEngine(rl)

		doLoginRequest(engine)
		if w := doLoginRequest(engine); w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 before window expiry, got %d", w.Code)
		}

		mr.FastForward(2 * time.Minute)

		if w := doLoginRequest(engine); w.Code != http.StatusOK {
			t.Errorf("expected 200 after window expiry, got %d", w.Code)
		}
	})

	t.Run("redis failure fails open", func(t *testing.T) {
		rl, mr := newTestRateLimiter(t, 1, time.Minute)
		engine := newLimitedEngine(rl)

		mr.Close()

		if w := doLoginRequest(engine); w.Code != http.StatusOK {
			t.Errorf("expected request to pass when redis is down, got %d", w.Code)
		}
	})

	t.Run("test environment skips rate limiting", func(t *testing.T) {
		t.Setenv("ENV", "test")

		rl, _ := newTestRateLimiter(t, 1, time.Minute)
		engine := newLimitedEngine(rl)

		for i := 0; i < 5; i++ {
			if w := doLoginRequest(engine); w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200 in test env, got %d", i+1, w.Code)
			}
		}
	})
}

func TestRateLimiter_Reset(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("E2E_MODE", "false")

	rl, _ := newTestRateLimiter(t, 1, time.Minute)
	engine := newLimitedEngine(rl)

	doLoginRequest(engine)
	if w := doLoginRequest(engine); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	if err := rl.Reset(context.Background(), "10.0.0.1"); err != nil {
		t.Fatalf("failed to reset limiter: %v", err)
	}

	if w := doLoginRequest(engine); w.Code != http.StatusOK {
		t.Errorf("expected 200 after reset, got %d", w.Code)
	}
}
