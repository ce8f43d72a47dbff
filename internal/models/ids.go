// ABOUTME: Workout id schemes
// ABOUTME: UUIDs by default, truncated millisecond timestamps for compatibility

package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces an id for a workout created at now.
type IDGenerator func(now time.Time) string

// UUIDIDs generates random UUIDs. It ignores the clock.
func UUIDIDs(time.Time) string {
	return uuid.NewString()
}

// TimestampIDs keeps the last 10 digits of the unix millisecond clock.
// Two workouts created within the same millisecond get the same id.
func TimestampIDs(now time.Time) string {
	s := strconv.FormatInt(now.UnixMilli(), 10)
	if len(s) > 10 {
		s = s[len(s)-10:]
	}
	return s
}

// IDScheme resolves a configured scheme name to a generator.
func IDScheme(name string) (IDGenerator, bool) {
	switch name {
	case "", "uuid":
		return UUIDIDs, true
	case "timestamp":
		return TimestampIDs, true
	}
	return nil, false
}
