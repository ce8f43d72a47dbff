// ABOUTME: Unit tests for workout models
// ABOUTME: Tests constructors, validators, derived metrics, and id schemes

package models

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

var april14 = time.Date(2024, time.April, 14, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return april14 }

func TestNewWorkout_Running(t *testing.T) {
	w, err := NewWorkout(Running, Coordinate{Lat: 40, Lng: 40},
		Fields{DistanceKm: 5, DurationMin: 25, Cadence: 180}, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}

	if w.Pace != 5.0 {
		t.Errorf("expected pace 5.0, got %f", w.Pace)
	}
	if w.Speed != 0 {
		t.Errorf("expected no speed on running workout, got %f", w.Speed)
	}
	if w.Label != "Running on April 14" {
		t.Errorf("expected label 'Running on April 14', got '%s'", w.Label)
	}
	if w.ViewCount != 0 {
		t.Errorf("expected zero views, got %d", w.ViewCount)
	}
	if _, err := uuid.Parse(w.ID); err != nil {
		t.Errorf("expected uuid id, got %q", w.ID)
	}
	if !w.CreatedAt.Equal(april14) {
		t.Errorf("expected CreatedAt %v, got %v", april14, w.CreatedAt)
	}
}

func TestNewWorkout_Cycling(t *testing.T) {
	w, err := NewWorkout(Cycling, Coordinate{Lat: 40, Lng: 40},
		Fields{DistanceKm: 20, DurationMin: 60, ElevationGainM: 100}, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}

	if w.Speed != 20.0 {
		t.Errorf("expected speed 20.0, got %f", w.Speed)
	}
	if w.Pace != 0 {
		t.Errorf("expected no pace on cycling workout, got %f", w.Pace)
	}
	if w.Label != "Cycling on April 14" {
		t.Errorf("expected label 'Cycling on April 14', got '%s'", w.Label)
	}
}

func TestNewWorkout_ZeroElevationAllowed(t *testing.T) {
	_, err := NewWorkout(Cycling, Coordinate{}, Fields{DistanceKm: 1, DurationMin: 1})
	if err != nil {
		t.Errorf("expected zero elevation to be valid, got %v", err)
	}
}

func TestNewWorkout_MetricMatchesFormula(t *testing.T) {
	inputs := []Fields{
		{DistanceKm: 1, DurationMin: 4, Cadence: 170},
		{DistanceKm: 12.3, DurationMin: 61.5, Cadence: 160},
		{DistanceKm: 0.4, DurationMin: 2.2, Cadence: 150},
	}
	for _, f := range inputs {
		run, err := NewWorkout(Running, Coordinate{}, f)
		if err != nil {
			t.Fatalf("running %+v: %v", f, err)
		}
		if run.Metric() != f.DurationMin/f.DistanceKm {
			t.Errorf("running %+v: metric %f does not match formula", f, run.Metric())
		}
		if !strings.HasPrefix(run.Label, "Running on ") {
			t.Errorf("running %+v: unexpected label %q", f, run.Label)
		}

		cf := Fields{DistanceKm: f.DistanceKm, DurationMin: f.DurationMin, ElevationGainM: 10}
		cyc, err := NewWorkout(Cycling, Coordinate{}, cf)
		if err != nil {
			t.Fatalf("cycling %+v: %v", cf, err)
		}
		if cyc.Metric() != cf.DistanceKm/(cf.DurationMin/60) {
			t.Errorf("cycling %+v: metric %f does not match formula", cf, cyc.Metric())
		}
		if !strings.HasPrefix(cyc.Label, "Cycling on ") {
			t.Errorf("cycling %+v: unexpected label %q", cf, cyc.Label)
		}
	}
}

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		fields  Fields
		wantErr bool
	}{
		{"valid_running", Running, Fields{DistanceKm: 5, DurationMin: 25, Cadence: 180}, false},
		{"valid_cycling", Cycling, Fields{DistanceKm: 20, DurationMin: 60, ElevationGainM: 100}, false},
		{"invalid_zero_distance", Running, Fields{DistanceKm: 0, DurationMin: 25, Cadence: 180}, true},
		{"invalid_negative_duration", Cycling, Fields{DistanceKm: 5, DurationMin: -1}, true},
		{"invalid_zero_cadence", Running, Fields{DistanceKm: 5, DurationMin: 25}, true},
		{"invalid_negative_elevation", Cycling, Fields{DistanceKm: 5, DurationMin: 25, ElevationGainM: -3}, true},
		{"invalid_nan_distance", Running, Fields{DistanceKm: math.NaN(), DurationMin: 25, Cadence: 180}, true},
		{"invalid_inf_elevation", Cycling, Fields{DistanceKm: 5, DurationMin: 25, ElevationGainM: math.Inf(1)}, true},
		{"invalid_running_with_elevation", Running, Fields{DistanceKm: 5, DurationMin: 25, Cadence: 180, ElevationGainM: 10}, true},
		{"invalid_cycling_with_cadence", Cycling, Fields{DistanceKm: 5, DurationMin: 25, Cadence: 90}, true},
		{"invalid_kind", Kind("swimming"), Fields{DistanceKm: 5, DurationMin: 25}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.kind, tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFields(%s, %+v) error = %v, wantErr %v", tt.kind, tt.fields, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestNewWorkout_InvalidLeavesNothing(t *testing.T) {
	w, err := NewWorkout(Running, Coordinate{Lat: 40, Lng: 40}, Fields{DistanceKm: -5, DurationMin: 25, Cadence: 180})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if w != nil {
		t.Error("expected nil workout on validation failure")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "distance" {
		t.Errorf("expected distance ValidationError, got %v", err)
	}
}

func TestNewWorkout_InvalidCoordinates(t *testing.T) {
	_, err := NewWorkout(Running, Coordinate{Lat: 91, Lng: 0}, Fields{DistanceKm: 5, DurationMin: 25, Cadence: 180})
	if err == nil || !strings.Contains(err.Error(), "latitude") {
		t.Errorf("expected latitude error, got %v", err)
	}
}

func TestRecompute(t *testing.T) {
	w, err := NewWorkout(Running, Coordinate{}, Fields{DistanceKm: 5, DurationMin: 25, Cadence: 180}, WithClock(fixedClock))
	if err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}

	w.DistanceKm = 10
	Recompute(w)

	if w.Pace != 2.5 {
		t.Errorf("expected pace 2.5 after recompute, got %f", w.Pace)
	}
	if w.Label != "Running on April 14" {
		t.Errorf("label changed unexpectedly: %q", w.Label)
	}
}

func TestRecompute_ClearsStaleMetric(t *testing.T) {
	w := &Workout{Kind: Cycling, DistanceKm: 30, DurationMin: 90, Pace: 99, CreatedAt: april14}
	Recompute(w)

	if w.Pace != 0 {
		t.Errorf("expected stale pace cleared, got %f", w.Pace)
	}
	if w.Speed != 20 {
		t.Errorf("expected speed 20, got %f", w.Speed)
	}
}

func TestTouchView(t *testing.T) {
	w := &Workout{}
	TouchView(w)
	TouchView(w)
	if w.ViewCount != 2 {
		t.Errorf("expected 2 views, got %d", w.ViewCount)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"running", Running, false},
		{"Cycling", Cycling, false},
		{" RUNNING ", Running, false},
		{"swimming", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"valid_chicago", 41.8781, -87.6298, false},
		{"valid_origin", 0, 0, false},
		{"valid_north_pole", 90, 0, false},
		{"valid_south_pole", -90, 0, false},
		{"valid_antimeridian_east", 0, 180, false},
		{"valid_antimeridian_west", 0, -180, false},
		{"invalid_lat_too_high", 91, 0, true},
		{"invalid_lat_too_low", -91, 0, true},
		{"invalid_lng_too_high", 0, 181, true},
		{"invalid_lng_too_low", 0, -181, true},
		{"invalid_lat_nan", math.NaN(), 0, true},
		{"invalid_lng_nan", 0, math.NaN(), true},
		{"invalid_lat_inf", math.Inf(1), 0, true},
		{"invalid_lng_inf", 0, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.lat, tt.lng)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinates(%f, %f) error = %v, wantErr %v", tt.lat, tt.lng, err, tt.wantErr)
			}
		})
	}
}

func TestTimestampIDs(t *testing.T) {
	now := time.UnixMilli(1713087000123)
	id := TimestampIDs(now)
	if id != "3087000123" {
		t.Errorf("expected last 10 digits '3087000123', got %q", id)
	}
	if TimestampIDs(now) != id {
		t.Error("expected same id for same millisecond")
	}
}

func TestIDScheme(t *testing.T) {
	if _, ok := IDScheme("uuid"); !ok {
		t.Error("expected uuid scheme")
	}
	if _, ok := IDScheme(""); !ok {
		t.Error("expected empty scheme to default to uuid")
	}
	if _, ok := IDScheme("timestamp"); !ok {
		t.Error("expected timestamp scheme")
	}
	if _, ok := IDScheme("ulid"); ok {
		t.Error("expected unknown scheme to be rejected")
	}
}

func TestWorkout_DisplayHelpers(t *testing.T) {
	run := &Workout{Kind: Running, Cadence: 180, Pace: 5}
	if run.MetricUnit() != "min/km" || run.ExtraUnit() != "spm" || run.ExtraValue() != 180 {
		t.Errorf("unexpected running helpers: %s %s %f", run.MetricUnit(), run.ExtraUnit(), run.ExtraValue())
	}

	cyc := &Workout{Kind: Cycling, ElevationGainM: 100, Speed: 20}
	if cyc.MetricUnit() != "km/h" || cyc.ExtraUnit() != "m" || cyc.ExtraValue() != 100 || cyc.Metric() != 20 {
		t.Errorf("unexpected cycling helpers: %s %s %f", cyc.MetricUnit(), cyc.ExtraUnit(), cyc.ExtraValue())
	}
}
