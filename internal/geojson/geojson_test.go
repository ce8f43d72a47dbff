// ABOUTME: Unit tests for GeoJSON generation
// ABOUTME: Tests Point and LineString feature collection builders and bounding boxes

package geojson

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/harper/workouts/internal/models"
)

func newWorkout(t *testing.T, kind models.Kind, lat, lng float64, created time.Time) *models.Workout {
	t.Helper()
	f := models.Fields{DistanceKm: 10, DurationMin: 60}
	if kind == models.Running {
		f.Cadence = 175
	} else {
		f.ElevationGainM = 40
	}
	w, err := models.NewWorkout(kind, models.Coordinate{Lat: lat, Lng: lng}, f,
		models.WithClock(func() time.Time { return created }))
	if err != nil {
		t.Fatalf("failed to create workout: %v", err)
	}
	return w
}

func TestToPointsFeatureCollection(t *testing.T) {
	w := newWorkout(t, models.Running, 41.8781, -87.6298, time.Now())

	fc := ToPointsFeatureCollection([]*models.Workout{w})

	if fc.Type != "FeatureCollection" {
		t.Errorf("expected FeatureCollection type, got %s", fc.Type)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}

	feature := fc.Features[0]
	if feature.Type != "Feature" {
		t.Errorf("expected Feature type, got %s", feature.Type)
	}
	if feature.Geometry.Type != "Point" {
		t.Errorf("expected Point geometry, got %s", feature.Geometry.Type)
	}

	coords, ok := feature.Geometry.Coordinates.(PointCoordinates)
	if !ok {
		t.Fatal("expected PointCoordinates")
	}
	// GeoJSON uses [lng, lat] order
	if coords[0] != -87.6298 {
		t.Errorf("expected longitude -87.6298, got %f", coords[0])
	}
	if coords[1] != 41.8781 {
		t.Errorf("expected latitude 41.8781, got %f", coords[1])
	}

	if feature.Properties["id"] != w.ID {
		t.Errorf("expected id %s, got %v", w.ID, feature.Properties["id"])
	}
	if feature.Properties["type"] != "running" {
		t.Errorf("expected type running, got %v", feature.Properties["type"])
	}
	if feature.Properties["pace"] != 6.0 {
		t.Errorf("expected pace 6, got %v", feature.Properties["pace"])
	}
	if _, ok := feature.Properties["speed"]; ok {
		t.Error("running feature should not carry speed")
	}

	want := []float64{-87.6298, 41.8781, -87.6298, 41.8781}
	if len(fc.BBox) != 4 {
		t.Fatalf("expected bbox, got %v", fc.BBox)
	}
	for i := range want {
		if fc.BBox[i] != want[i] {
			t.Errorf("bbox[%d]: expected %f, got %f", i, want[i], fc.BBox[i])
		}
	}
}

func TestToPointsFeatureCollection_Empty(t *testing.T) {
	fc := ToPointsFeatureCollection(nil)
	if fc.BBox != nil {
		t.Errorf("expected no bbox, got %v", fc.BBox)
	}

	data, err := fc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(data) != `{"type":"FeatureCollection","features":[]}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

func TestToLineFeatureCollection(t *testing.T) {
	base := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	ws := []*models.Workout{
		newWorkout(t, models.Running, 41.90, -87.60, base.Add(2*time.Hour)),
		newWorkout(t, models.Running, 41.88, -87.63, base),
		newWorkout(t, models.Cycling, 40.71, -74.00, base),
	}

	fc := ToLineFeatureCollection(ws)

	// Cycling has a single point and gets no line
	if len(fc.Features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(fc.Features))
	}

	feature := fc.Features[0]
	if feature.Geometry.Type != "LineString" {
		t.Errorf("expected LineString geometry, got %s", feature.Geometry.Type)
	}

	coords, ok := feature.Geometry.Coordinates.(LineCoordinates)
	if !ok {
		t.Fatal("expected LineCoordinates")
	}
	if len(coords) != 2 {
		t.Fatalf("expected 2 coordinates, got %d", len(coords))
	}
	// Sorted by creation time
	if coords[0][1] != 41.88 {
		t.Errorf("expected first point to be the earlier workout, got %v", coords[0])
	}
	if feature.Properties["type"] != "running" {
		t.Errorf("expected type running, got %v", feature.Properties["type"])
	}
	if feature.Properties["total_distance_km"] != 20.0 {
		t.Errorf("expected total distance 20, got %v", feature.Properties["total_distance_km"])
	}

	// Input order is untouched
	if ws[0].Coords.Lat != 41.90 {
		t.Error("input slice was reordered")
	}
}

func TestBoundingBox(t *testing.T) {
	bbox := BoundingBox([]models.Coordinate{
		{Lat: 10, Lng: 20},
		{Lat: -5, Lng: 30},
		{Lat: 7, Lng: -40},
	})

	want := []float64{-40, -5, 30, 10}
	for i := range want {
		if bbox[i] != want[i] {
			t.Errorf("bbox[%d]: expected %f, got %f", i, want[i], bbox[i])
		}
	}

	if BoundingBox(nil) != nil {
		t.Error("expected nil bbox for no coordinates")
	}
}

func TestFeatureCollection_ToJSON(t *testing.T) {
	fc := ToPointsFeatureCollection([]*models.Workout{
		newWorkout(t, models.Cycling, 41.8781, -87.6298, time.Now()),
	})

	data, err := fc.ToJSONIndent()
	if err != nil {
		t.Fatalf("ToJSONIndent failed: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}

	if parsed["type"] != "FeatureCollection" {
		t.Errorf("expected type FeatureCollection, got %v", parsed["type"])
	}
	if _, ok := parsed["bbox"]; !ok {
		t.Error("expected bbox in JSON")
	}

	features := parsed["features"].([]interface{})
	props := features[0].(map[string]interface{})["properties"].(map[string]interface{})
	if props["speed"] != 10.0 {
		t.Errorf("expected speed 10, got %v", props["speed"])
	}
}
