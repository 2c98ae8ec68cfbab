package clock

import (
	"time"

	"roomescape/internal/pkg/config"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	location *time.Location
}

// NewRealClock reports wall-clock time in the business time zone.
func NewRealClock(cfg config.Config) Clock {
	return &RealClock{location: time.FixedZone(cfg.Clock.TimeZone, cfg.Clock.TimeZoneOffset)}
}

func (c *RealClock) Now() time.Time {
	if c.location == nil {
		return time.Now()
	}
	return time.Now().In(c.location)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
