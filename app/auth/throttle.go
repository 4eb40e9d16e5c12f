package auth

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	loginMaxAttempts = 5
	loginWindow      = time.Minute
)

type attemptWindow struct {
	count int
	start time.Time
}

// LoginThrottle bounds login attempts per client key (source address) to a
// fixed window. State is process-local and resets on restart. Counters are
// updated under a single mutex so concurrent attempts from the same address
// never undercount.
type LoginThrottle struct {
	max    int
	window time.Duration

	mu       sync.Mutex
	attempts *gocache.Cache

	now func() time.Time
}

func NewLoginThrottle() *LoginThrottle {
	return &LoginThrottle{
		max:      loginMaxAttempts,
		window:   loginWindow,
		attempts: gocache.New(loginWindow, 5*time.Minute),
		now:      time.Now,
	}
}

// Allow records one attempt for key and reports whether it is within the
// window budget. The first attempt after a window elapses starts a fresh one.
func (t *LoginThrottle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	if v, ok := t.attempts.Get(key); ok {
		w := v.(*attemptWindow)
		if now.Sub(w.start) < t.window {
			w.count++
			return w.count <= t.max
		}
	}

	t.attempts.Set(key, &attemptWindow{count: 1, start: now}, t.window)
	return true
}

// Reset drops all counters.
func (t *LoginThrottle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempts.Flush()
}
