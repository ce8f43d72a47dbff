// ABOUTME: Export and import functionality for workout data
// ABOUTME: Supports a versioned YAML backup format

package storage

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/workouts/internal/models"
)

// BackupVersion is the current backup format version.
const BackupVersion = "1.0"

// Backup represents the YAML backup format.
type Backup struct {
	Version    string          `yaml:"version"`
	ExportedAt time.Time       `yaml:"exported_at"`
	Tool       string          `yaml:"tool"`
	Workouts   []WorkoutBackup `yaml:"workouts"`
}

// WorkoutBackup represents a workout in the backup format.
type WorkoutBackup struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Latitude       float64   `yaml:"latitude"`
	Longitude      float64   `yaml:"longitude"`
	DistanceKm     float64   `yaml:"distance_km"`
	DurationMin    float64   `yaml:"duration_min"`
	Cadence        float64   `yaml:"cadence,omitempty"`
	ElevationGainM float64   `yaml:"elevation_gain_m,omitempty"`
	ViewCount      int       `yaml:"view_count"`
	CreatedAt      time.Time `yaml:"created_at"`
}

// ExportBackup exports workouts to YAML format.
func ExportBackup(ws []*models.Workout) ([]byte, error) {
	backup := Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC(),
		Tool:       "workouts",
		Workouts:   make([]WorkoutBackup, len(ws)),
	}

	for i, w := range ws {
		backup.Workouts[i] = WorkoutBackup{
			ID:             w.ID,
			Type:           string(w.Kind),
			Latitude:       w.Coords.Lat,
			Longitude:      w.Coords.Lng,
			DistanceKm:     w.DistanceKm,
			DurationMin:    w.DurationMin,
			Cadence:        w.Cadence,
			ElevationGainM: w.ElevationGainM,
			ViewCount:      w.ViewCount,
			CreatedAt:      w.CreatedAt,
		}
	}

	return yaml.Marshal(backup)
}

// ImportBackup parses a YAML backup into workouts. Entries with an unknown
// type abort the import; a backup is expected to be produced by this tool.
func ImportBackup(data []byte) ([]*models.Workout, error) {
	var backup Backup
	if err := yaml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if backup.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version: %s (expected %s)", backup.Version, BackupVersion)
	}

	if backup.Tool != "workouts" {
		return nil, fmt.Errorf("wrong tool: %s (expected workouts)", backup.Tool)
	}

	ws := make([]*models.Workout, 0, len(backup.Workouts))
	for i, b := range backup.Workouts {
		if b.ID == "" {
			return nil, fmt.Errorf("workout %d: missing id", i)
		}
		e := snapshotEntry{
			Type:        b.Type,
			ID:          b.ID,
			Coordinate:  [2]float64{b.Latitude, b.Longitude},
			DistanceKm:  b.DistanceKm,
			DurationMin: b.DurationMin,
			CreatedAt:   b.CreatedAt,
			ViewCount:   b.ViewCount,
		}
		cadence, elevation := b.Cadence, b.ElevationGainM
		e.Cadence, e.ElevationGainM = &cadence, &elevation

		w, err := rehydrate(i, e)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return ws, nil
}
