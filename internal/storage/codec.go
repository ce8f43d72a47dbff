// ABOUTME: Persistence codec for the workout collection
// ABOUTME: Serializes snapshots to a slot and rehydrates typed workouts on load

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/workouts/internal/models"
)

// snapshotEntry is the persisted shape of one workout. Derived fields are
// written for readers of the raw snapshot but ignored on load.
type snapshotEntry struct {
	Type           string     `json:"type"`
	ID             string     `json:"id"`
	Coordinate     [2]float64 `json:"coordinate"`
	DistanceKm     float64    `json:"distanceKm"`
	DurationMin    float64    `json:"durationMin"`
	CreatedAt      time.Time  `json:"createdAt"`
	ViewCount      int        `json:"viewCount"`
	Cadence        *float64   `json:"cadence,omitempty"`
	ElevationGainM *float64   `json:"elevationGainM,omitempty"`
	Label          string     `json:"label,omitempty"`
	Pace           float64    `json:"pace,omitempty"`
	Speed          float64    `json:"speed,omitempty"`
}

func toEntry(w *models.Workout) snapshotEntry {
	e := snapshotEntry{
		Type:        string(w.Kind),
		ID:          w.ID,
		Coordinate:  [2]float64{w.Coords.Lat, w.Coords.Lng},
		DistanceKm:  w.DistanceKm,
		DurationMin: w.DurationMin,
		CreatedAt:   w.CreatedAt,
		ViewCount:   w.ViewCount,
		Label:       w.Label,
		Pace:        w.Pace,
		Speed:       w.Speed,
	}
	switch w.Kind {
	case models.Running:
		cadence := w.Cadence
		e.Cadence = &cadence
	case models.Cycling:
		elevation := w.ElevationGainM
		e.ElevationGainM = &elevation
	}
	return e
}

// rehydrate rebuilds a typed workout from a persisted entry by dispatching on
// its type tag. Numeric fields are restored as saved; derived fields are
// recomputed.
func rehydrate(index int, e snapshotEntry) (*models.Workout, error) {
	w := &models.Workout{
		ID:          e.ID,
		CreatedAt:   e.CreatedAt,
		Coords:      models.Coordinate{Lat: e.Coordinate[0], Lng: e.Coordinate[1]},
		DistanceKm:  e.DistanceKm,
		DurationMin: e.DurationMin,
		ViewCount:   e.ViewCount,
	}
	switch models.Kind(e.Type) {
	case models.Running:
		w.Kind = models.Running
		if e.Cadence != nil {
			w.Cadence = *e.Cadence
		}
	case models.Cycling:
		w.Kind = models.Cycling
		if e.ElevationGainM != nil {
			w.ElevationGainM = *e.ElevationGainM
		}
	default:
		return nil, &UnrecognizedVariantError{Index: index, ID: e.ID, Type: e.Type}
	}
	models.Recompute(w)
	return w, nil
}

// Encode serializes workouts into the snapshot format.
func Encode(ws []*models.Workout) ([]byte, error) {
	entries := make([]snapshotEntry, len(ws))
	for i, w := range ws {
		entries[i] = toEntry(w)
	}
	return json.Marshal(entries)
}

// Decode parses a snapshot. Entries that cannot be decoded or carry an unknown
// type are skipped and reported as warnings; only a snapshot that is not a JSON
// array fails as a whole.
func Decode(data []byte) ([]*models.Workout, []error, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}

	workouts := make([]*models.Workout, 0, len(raw))
	var warnings []error
	for i, msg := range raw {
		var e snapshotEntry
		if err := json.Unmarshal(msg, &e); err != nil {
			warnings = append(warnings, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		w, err := rehydrate(i, e)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		workouts = append(workouts, w)
	}
	return workouts, warnings, nil
}

// LoadResult is the outcome of Codec.Load.
type LoadResult struct {
	Workouts []*models.Workout
	// Warnings lists entries that were skipped.
	Warnings []error
}

// Codec saves and loads the workout collection through a Slot.
type Codec struct {
	slot   Slot
	logger *log.Logger
}

// NewCodec creates a codec over slot. A nil logger discards log output.
func NewCodec(slot Slot, logger *log.Logger) *Codec {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Codec{slot: slot, logger: logger}
}

// Slot returns the underlying slot.
func (c *Codec) Slot() Slot { return c.slot }

// Save overwrites the snapshot with ws.
func (c *Codec) Save(ws []*models.Workout) error {
	data, err := Encode(ws)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := c.slot.Write(data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	c.logger.Debug("saved snapshot", "slot", c.slot.Name(), "workouts", len(ws))
	return nil
}

// Clear removes the snapshot.
func (c *Codec) Clear() error {
	if err := c.slot.Clear(); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	return nil
}

// Load reads the snapshot. An empty slot yields an empty result and no error.
// A slot that cannot be read or decoded yields an empty result together with
// a *PersistenceError, so callers can start with an empty collection.
func (c *Codec) Load() (LoadResult, error) {
	data, err := c.slot.Read()
	if errors.Is(err, ErrSlotEmpty) {
		return LoadResult{}, nil
	}
	if err != nil {
		return LoadResult{}, &PersistenceError{Op: "read", Err: err}
	}

	workouts, warnings, err := Decode(data)
	if err != nil {
		return LoadResult{}, &PersistenceError{Op: "decode", Err: err}
	}
	for _, w := range warnings {
		c.logger.Warn("skipped snapshot entry", "err", w)
	}
	return LoadResult{Workouts: workouts, Warnings: warnings}, nil
}
