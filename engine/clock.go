package engine

import "time"

// Clock supplies the current time. Injected so due-date computation and
// overdue detection are testable with a fixed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
