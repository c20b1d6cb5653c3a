package clock

import "time"

// ReferenceZone is the fixed timezone used for "is this event upcoming"
// cutoffs, matching where the business operates.
const ReferenceZone = "America/Mexico_City"

// Clock allows injecting time into services and projections.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystem returns a clock backed by time.Now in the reference zone.
// Falls back to UTC if the zone database is unavailable.
func NewSystem() Clock {
	loc, err := time.LoadLocation(ReferenceZone)
	if err != nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock that always returns the same instant (useful for tests).
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
