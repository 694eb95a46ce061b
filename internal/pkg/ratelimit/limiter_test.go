// internal/pkg/ratelimit/limiter_test.go
package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowUpToLimit(t *testing.T) {
	l := NewLimiter(time.Minute, 3)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
}

func TestKeysAreIndependent(t *testing.T) {
	l := NewLimiter(time.Minute, 1)

	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestRejectedRequestsAreNotRecorded(t *testing.T) {
	now := time.Now()
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("k"))
	assert.True(t, l.Allow("k"))

	// A burst of rejected requests must not extend the window.
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow("k"))
	}

	// Just past the original window both recorded requests expire; if
	// the rejections had been recorded this would still be blocked.
	now = now.Add(time.Minute + time.Second)
	assert.True(t, l.Allow("k"))
}

func TestWindowSlides(t *testing.T) {
	now := time.Now()
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("k"))

	now = now.Add(40 * time.Second)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))

	// First request ages out, second is still inside the window.
	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("k"))
	assert.False(t, l.Allow("k"))
}

func TestEmptyKeyFallsBack(t *testing.T) {
	l := NewLimiter(time.Minute, 1)

	assert.True(t, l.Allow(""))
	assert.False(t, l.Allow(FallbackKey))
}

func TestRemaining(t *testing.T) {
	l := NewLimiter(time.Minute, 3)

	assert.Equal(t, 3, l.Remaining("k"))
	l.Allow("k")
	assert.Equal(t, 2, l.Remaining("k"))
	l.Allow("k")
	l.Allow("k")
	assert.Equal(t, 0, l.Remaining("k"))

	// Remaining never records anything.
	assert.Equal(t, 0, l.Remaining("k"))
	assert.Equal(t, 3, l.Remaining("other"))
}
