package clock

import "time"

// Clock supplies the current zoned timestamp. Services receive it as a
// dependency so tests can pin the instant an event is recorded at.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func NewSystem(loc *time.Location) Clock {
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed always returns the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

// DefaultLocation resolves the payroll timezone from TZ_NAME, defaulting to
// Asia/Manila. Falls back to UTC when the zone database is unavailable.
func DefaultLocation(name string) *time.Location {
	if name == "" {
		name = "Asia/Manila"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
