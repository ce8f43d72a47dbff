// ABOUTME: Tests for the headless map widget
// ABOUTME: Drives it through the synchronizer and checks the GeoJSON export

package ui

import (
	"testing"
	"time"

	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/view"
)

func TestHeadlessMap_Synchronizer(t *testing.T) {
	m := NewHeadlessMap()
	list := NewTerminalList()
	sync := view.NewSynchronizer(m, list, 0)
	home := models.Coordinate{Lat: 51.5, Lng: -0.12}

	sync.ShowCurrentLocation(home)
	run := testWorkout(t, models.Running)
	sync.RenderCreated(run)

	center, zoom := m.Center()
	if center != home || zoom != view.DefaultZoom {
		t.Errorf("unexpected view %v @ %d", center, zoom)
	}

	markers := m.Markers()
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].Popup.Content != "Current location" {
		t.Errorf("unexpected default popup %q", markers[0].Popup.Content)
	}
	if markers[1].Popup.ClassName != "running-popup" {
		t.Errorf("unexpected popup class %q", markers[1].Popup.ClassName)
	}

	sync.Focus(run)
	if center, _ := m.Center(); center != run.Coords {
		t.Errorf("expected focus on workout, got %v", center)
	}
	if opts := m.LastViewOptions(); !opts.Animate || opts.PanDuration != time.Second {
		t.Errorf("expected animated pan, got %+v", opts)
	}

	sync.FitToAll([]*models.Workout{run})
	bounds := m.Bounds()
	if len(bounds) != 4 || bounds[0] != run.Coords.Lng || bounds[1] != run.Coords.Lat {
		t.Errorf("unexpected bounds %v", bounds)
	}

	sync.Reset(nil)
	if len(m.Markers()) != 1 {
		t.Errorf("expected only the default marker after reset, got %d", len(m.Markers()))
	}
	if len(list.Entries()) != 0 {
		t.Errorf("expected empty list after reset, got %d", len(list.Entries()))
	}
}

func TestHeadlessMap_Click(t *testing.T) {
	m := NewHeadlessMap()
	at := models.Coordinate{Lat: 1, Lng: 2}

	if m.Click(at) {
		t.Error("click without handler should report false")
	}

	var got models.Coordinate
	m.OnClick(func(c models.Coordinate) { got = c })
	if !m.Click(at) || got != at {
		t.Errorf("expected click to reach handler, got %v", got)
	}
}

func TestHeadlessMap_FeatureCollection(t *testing.T) {
	m := NewHeadlessMap()
	a := m.AddMarker(models.Coordinate{Lat: 10, Lng: 20})
	m.BindPopup(a, view.Popup{Content: "a", ClassName: "running-popup"})
	m.AddMarker(models.Coordinate{Lat: -10, Lng: -20})

	fc := m.FeatureCollection()
	if len(fc.Features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(fc.Features))
	}
	if fc.Features[0].Properties["popup"] != "a" {
		t.Errorf("unexpected popup property %v", fc.Features[0].Properties["popup"])
	}
	want := []float64{-20, -10, 20, 10}
	for i := range want {
		if fc.BBox[i] != want[i] {
			t.Errorf("bbox[%d]: expected %f, got %f", i, want[i], fc.BBox[i])
		}
	}

	m.FitBounds([]view.MarkerHandle{a})
	fc = m.FeatureCollection()
	if fc.BBox[0] != 20 || fc.BBox[2] != 20 {
		t.Errorf("expected fitted bbox, got %v", fc.BBox)
	}
}
