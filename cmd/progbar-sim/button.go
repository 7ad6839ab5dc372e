package main

import (
	"sync/atomic"
	"time"
)

// virtualButton is held down for a fixed time after each key press, since terminals do not report key release.
type virtualButton struct {
	hold      time.Duration
	releaseAt atomic.Int64
}

func (b *virtualButton) press(now time.Time) {
	b.releaseAt.Store(now.Add(b.hold).UnixNano())
}

func (b *virtualButton) Get() bool {
	return time.Now().UnixNano() < b.releaseAt.Load()
}
