package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// CoarseResolution is how often the coarse clock refreshes.
const CoarseResolution = 500 * time.Microsecond

var (
	coarseOnce sync.Once
	coarseNow  atomic.Pointer[time.Time]
)

// StartCoarseClock starts the goroutine that refreshes the cached time
// every CoarseResolution. Only the first call starts it; the goroutine
// lives as long as the process, like the logging facility itself.
func StartCoarseClock() {
	coarseOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseResolution)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It starts the clock on
// first use, so callers never see a zero time.
func CoarseNow() time.Time {
	if p := coarseNow.Load(); p != nil {
		return *p
	}
	StartCoarseClock()
	return *coarseNow.Load()
}
