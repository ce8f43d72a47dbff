// ABOUTME: Core workout model with running and cycling variants
// ABOUTME: Provides constructors, validators, and derived metric/label computation

package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Kind is the activity-type tag of a workout.
type Kind string

const (
	Running Kind = "running"
	Cycling Kind = "cycling"
)

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case Running:
		return Running, nil
	case Cycling:
		return Cycling, nil
	}
	return "", &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown workout type %q (use running or cycling)", s)}
}

// Title returns the capitalized kind name.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Icon returns the emoji shown next to a workout of this kind.
func (k Kind) Icon() string {
	if k == Running {
		return "🏃‍♂️"
	}
	return "🚴‍♀️"
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the coordinate the way the CLI prints it.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lng)
}

// ValidateCoordinates checks if latitude and longitude are within valid ranges.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return &ValidationError{Field: "coords", Reason: "coordinates cannot be NaN"}
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return &ValidationError{Field: "coords", Reason: "coordinates cannot be infinite"}
	}
	if lat < -90 || lat > 90 {
		return &ValidationError{Field: "lat", Reason: "latitude must be between -90 and 90"}
	}
	if lng < -180 || lng > 180 {
		return &ValidationError{Field: "lng", Reason: "longitude must be between -180 and 180"}
	}
	return nil
}

// Fields holds the numeric input of a workout. Only the extra field
// matching the workout kind is meaningful.
type Fields struct {
	DistanceKm     float64
	DurationMin    float64
	Cadence        float64
	ElevationGainM float64
}

// ValidateFields applies the per-kind numeric rules.
func ValidateFields(kind Kind, f Fields) error {
	if err := positive("distance", f.DistanceKm); err != nil {
		return err
	}
	if err := positive("duration", f.DurationMin); err != nil {
		return err
	}
	switch kind {
	case Running:
		if err := positive("cadence", f.Cadence); err != nil {
			return err
		}
		if f.ElevationGainM != 0 {
			return &ValidationError{Field: "elevation", Reason: "running workouts have no elevation gain"}
		}
	case Cycling:
		if err := finite("elevation", f.ElevationGainM); err != nil {
			return err
		}
		if f.ElevationGainM < 0 {
			return &ValidationError{Field: "elevation", Reason: "must not be negative"}
		}
		if f.Cadence != 0 {
			return &ValidationError{Field: "cadence", Reason: "cycling workouts have no cadence"}
		}
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown workout type %q", kind)}
	}
	return nil
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	return nil
}

func positive(field string, v float64) error {
	if err := finite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &ValidationError{Field: field, Reason: "must be a positive number"}
	}
	return nil
}

// Workout is a single recorded activity.
type Workout struct {
	ID             string
	Kind           Kind
	CreatedAt      time.Time
	Coords         Coordinate
	DistanceKm     float64
	DurationMin    float64
	Cadence        float64
	ElevationGainM float64
	ViewCount      int

	// Derived; always recomputed, never trusted from storage.
	Pace  float64
	Speed float64
	Label string
}

// Option configures NewWorkout.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID IDGenerator
}

// WithClock overrides the creation time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides the id scheme.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) { o.newID = gen }
}

// NewWorkout creates a validated workout with a fresh id, zero views,
// and computed metric and label.
func NewWorkout(kind Kind, coords Coordinate, f Fields, opts ...Option) (*Workout, error) {
	o := options{now: time.Now, newID: UUIDIDs}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ValidateCoordinates(coords.Lat, coords.Lng); err != nil {
		return nil, err
	}
	if err := ValidateFields(kind, f); err != nil {
		return nil, err
	}

	now := o.now()
	w := &Workout{
		ID:             o.newID(now),
		Kind:           kind,
		CreatedAt:      now,
		Coords:         coords,
		DistanceKm:     f.DistanceKm,
		DurationMin:    f.DurationMin,
		Cadence:        f.Cadence,
		ElevationGainM: f.ElevationGainM,
	}
	Recompute(w)
	return w, nil
}

// Fields returns the workout's current numeric input.
func (w *Workout) Fields() Fields {
	return Fields{
		DistanceKm:     w.DistanceKm,
		DurationMin:    w.DurationMin,
		Cadence:        w.Cadence,
		ElevationGainM: w.ElevationGainM,
	}
}

// Recompute re-derives the metric and label from the current field values.
func Recompute(w *Workout) {
	w.Pace, w.Speed = 0, 0
	switch w.Kind {
	case Running:
		w.Pace = Metric(w.Kind, w.DistanceKm, w.DurationMin)
	case Cycling:
		w.Speed = Metric(w.Kind, w.DistanceKm, w.DurationMin)
	}
	w.Label = Describe(w.Kind, w.CreatedAt)
}

// TouchView records that the workout was focused.
func TouchView(w *Workout) {
	w.ViewCount++
}

// Metric computes pace (min/km) for running and speed (km/h) for cycling.
func Metric(kind Kind, distanceKm, durationMin float64) float64 {
	switch kind {
	case Running:
		return durationMin / distanceKm
	case Cycling:
		return distanceKm / (durationMin / 60)
	}
	return 0
}

// Describe builds the display label, e.g. "Running on April 14".
func Describe(kind Kind, createdAt time.Time) string {
	return fmt.Sprintf("%s on %s %d", kind.Title(), createdAt.Month(), createdAt.Day())
}

// Metric returns the derived metric for the workout's kind.
func (w *Workout) Metric() float64 {
	if w.Kind == Running {
		return w.Pace
	}
	return w.Speed
}

// MetricUnit returns the unit of Metric.
func (w *Workout) MetricUnit() string {
	if w.Kind == Running {
		return "min/km"
	}
	return "km/h"
}

// ExtraValue returns the kind-specific input field (cadence or elevation gain).
func (w *Workout) ExtraValue() float64 {
	if w.Kind == Running {
		return w.Cadence
	}
	return w.ElevationGainM
}

// ExtraUnit returns the unit of ExtraValue.
func (w *Workout) ExtraUnit() string {
	if w.Kind == Running {
		return "spm"
	}
	return "m"
}

// Clone returns a copy that can be mutated independently.
func (w *Workout) Clone() *Workout {
	c := *w
	return &c
}
