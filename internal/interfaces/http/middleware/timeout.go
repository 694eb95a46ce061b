// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout middleware to prevent long-running requests. The handler
// runs in its own goroutine; once the deadline fires, its writes are
// discarded so the timeout response and the handler never touch the
// ResponseWriter concurrently.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		tw := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = tw

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if tw.markTimedOut() {
				tw.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
				tw.ResponseWriter.WriteHeader(http.StatusRequestTimeout)
				tw.ResponseWriter.Write([]byte(`{"error":"Request timeout"}`))
			}
			c.Abort()
		}
	}
}

// timeoutWriter serializes access to the underlying ResponseWriter.
// After a timeout, handler writes are swallowed; if the handler wrote
// first, the timeout response is suppressed instead.
type timeoutWriter struct {
	gin.ResponseWriter
	mu       sync.Mutex
	timedOut bool
	wrote    bool
}

// markTimedOut flips the writer into timed-out mode and reports
// whether the timeout response may still be written.
func (w *timeoutWriter) markTimedOut() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timedOut = true
	return !w.wrote
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(s), nil
	}
	w.wrote = true
	return w.ResponseWriter.WriteString(s)
}
