package clock

import (
	"fmt"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/yatzy/internal/common/clock Clock

// Clock tells the time a game was completed
type Clock interface {
	Now() time.Time
}

// Config holds configuration for the system clock
type Config struct {
	// Timezone is an IANA name such as "Europe/Oslo"; empty uses the host zone.
	// Score dates are formatted in this zone.
	Timezone string
}

// ZoneClock reads the system clock in a fixed location
type ZoneClock struct {
	location *time.Location
}

// New returns the system clock in the configured zone
func New(cfg *Config) (*ZoneClock, error) {
	location := time.Local
	if cfg != nil && cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", cfg.Timezone, err)
		}
		location = loc
	}

	return &ZoneClock{location: location}, nil
}

// Now returns the current time in the clock's zone
func (c *ZoneClock) Now() time.Time {
	return time.Now().In(c.location)
}

// Location returns the zone Now reports in
func (c *ZoneClock) Location() *time.Location {
	return c.location
}
