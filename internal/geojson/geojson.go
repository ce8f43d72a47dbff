// ABOUTME: GeoJSON generation utilities
// ABOUTME: Converts workouts and map markers to GeoJSON FeatureCollections

package geojson

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/harper/workouts/internal/models"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry represents a GeoJSON Geometry.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// PointCoordinates represents [longitude, latitude] for a Point.
type PointCoordinates [2]float64

// LineCoordinates represents [[lng, lat], [lng, lat], ...] for a LineString.
type LineCoordinates []PointCoordinates

// NewCollection wraps features in a FeatureCollection.
func NewCollection(features []Feature) *FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// NewPoint builds a Point feature at c.
func NewPoint(c models.Coordinate, props map[string]interface{}) Feature {
	if props == nil {
		props = map[string]interface{}{}
	}
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: PointCoordinates{c.Lng, c.Lat},
		},
		Properties: props,
	}
}

// ToPointsFeatureCollection converts workouts to a FeatureCollection of Points
// with a bounding box around them.
func ToPointsFeatureCollection(ws []*models.Workout) *FeatureCollection {
	features := make([]Feature, 0, len(ws))
	coords := make([]models.Coordinate, 0, len(ws))

	for _, w := range ws {
		props := map[string]interface{}{
			"id":           w.ID,
			"type":         string(w.Kind),
			"label":        w.Label,
			"distance_km":  w.DistanceKm,
			"duration_min": w.DurationMin,
			"created_at":   w.CreatedAt.Format(time.RFC3339),
			"views":        w.ViewCount,
		}
		switch w.Kind {
		case models.Running:
			props["pace"] = w.Pace
			props["cadence"] = w.Cadence
		case models.Cycling:
			props["speed"] = w.Speed
			props["elevation_gain_m"] = w.ElevationGainM
		}

		features = append(features, NewPoint(w.Coords, props))
		coords = append(coords, w.Coords)
	}

	fc := NewCollection(features)
	fc.BBox = BoundingBox(coords)
	return fc
}

// ToLineFeatureCollection converts workouts to one LineString per kind,
// joining its workouts in creation order.
func ToLineFeatureCollection(ws []*models.Workout) *FeatureCollection {
	byKind := make(map[models.Kind][]*models.Workout)
	for _, w := range ws {
		byKind[w.Kind] = append(byKind[w.Kind], w)
	}

	features := make([]Feature, 0, len(byKind))

	for _, kind := range []models.Kind{models.Running, models.Cycling} {
		kindWorkouts := byKind[kind]
		if len(kindWorkouts) < 2 {
			// Need at least 2 points for a line
			continue
		}

		slices.SortStableFunc(kindWorkouts, func(a, b *models.Workout) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})

		coords := make(LineCoordinates, len(kindWorkouts))
		var total float64
		for i, w := range kindWorkouts {
			coords[i] = PointCoordinates{w.Coords.Lng, w.Coords.Lat}
			total += w.DistanceKm
		}

		features = append(features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coords,
			},
			Properties: map[string]interface{}{
				"type":              string(kind),
				"point_count":       len(kindWorkouts),
				"total_distance_km": total,
			},
		})
	}

	return NewCollection(features)
}

// BoundingBox returns [minLng, minLat, maxLng, maxLat] around coords,
// or nil when there are none.
func BoundingBox(coords []models.Coordinate) []float64 {
	if len(coords) == 0 {
		return nil
	}
	minLng, minLat := coords[0].Lng, coords[0].Lat
	maxLng, maxLat := minLng, minLat
	for _, c := range coords[1:] {
		minLng = min(minLng, c.Lng)
		minLat = min(minLat, c.Lat)
		maxLng = max(maxLng, c.Lng)
		maxLat = max(maxLat, c.Lat)
	}
	return []float64{minLng, minLat, maxLng, maxLat}
}

// ToJSON serializes a FeatureCollection to JSON.
func (fc *FeatureCollection) ToJSON() ([]byte, error) {
	return json.Marshal(fc)
}

// ToJSONIndent serializes a FeatureCollection to indented JSON.
func (fc *FeatureCollection) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(fc, "", "  ")
}
