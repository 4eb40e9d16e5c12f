package auth

import (
	"sync"
	"testing"
	"time"
)

func TestLoginThrottleWindow(t *testing.T) {
	now := time.Now()
	throttle := NewLoginThrottle()
	throttle.now = func() time.Time { return now }

	for i := 1; i <= 5; i++ {
		if !throttle.Allow("10.0.0.1") {
			t.Fatalf("attempt %d rejected; want first 5 allowed", i)
		}
	}

	if throttle.Allow("10.0.0.1") {
		t.Error("6th attempt within the window allowed; want rejected")
	}
	if throttle.Allow("10.0.0.1") {
		t.Error("7th attempt within the window allowed; want rejected")
	}

	// Another client is unaffected.
	if !throttle.Allow("10.0.0.2") {
		t.Error("attempt from a different key rejected")
	}

	// After the window elapses the counter starts over.
	now = now.Add(61 * time.Second)
	if !throttle.Allow("10.0.0.1") {
		t.Error("attempt after window elapsed rejected; want allowed")
	}
}

func TestLoginThrottleReset(t *testing.T) {
	throttle := NewLoginThrottle()

	for i := 0; i < 6; i++ {
		throttle.Allow("10.0.0.9")
	}
	if throttle.Allow("10.0.0.9") {
		t.Fatal("expected key to be throttled before reset")
	}

	throttle.Reset()

	if !throttle.Allow("10.0.0.9") {
		t.Error("attempt after Reset rejected; want allowed")
	}
}

func TestLoginThrottleConcurrent(t *testing.T) {
	throttle := NewLoginThrottle()

	const attempts = 50
	allowed := make(chan bool, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- throttle.Allow("10.0.0.7")
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}

	if count != 5 {
		t.Errorf("allowed %d concurrent attempts; want exactly 5", count)
	}
}
