// ABOUTME: In-memory map widget that records view state and markers
// ABOUTME: Exports what would be drawn as a GeoJSON FeatureCollection

package ui

import (
	"github.com/harper/workouts/internal/geojson"
	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/view"
)

// Marker is a marker placed on a HeadlessMap.
type Marker struct {
	Coord models.Coordinate
	Popup view.Popup
}

// HeadlessMap is a view.MapWidget without a display.
type HeadlessMap struct {
	center  models.Coordinate
	zoom    int
	opts    view.ViewOptions
	markers map[view.MarkerHandle]*Marker
	order   []view.MarkerHandle
	next    view.MarkerHandle
	bounds  []float64
	onClick func(models.Coordinate)
}

// Compile-time checks that HeadlessMap implements the map contracts.
var (
	_ view.MapWidget     = (*HeadlessMap)(nil)
	_ view.MarkerClearer = (*HeadlessMap)(nil)
)

// NewHeadlessMap creates an empty map.
func NewHeadlessMap() *HeadlessMap {
	return &HeadlessMap{markers: make(map[view.MarkerHandle]*Marker)}
}

// SetView implements view.MapWidget.
func (m *HeadlessMap) SetView(center models.Coordinate, zoom int, opts view.ViewOptions) {
	m.center, m.zoom, m.opts = center, zoom, opts
	m.bounds = nil
}

// AddMarker implements view.MapWidget.
func (m *HeadlessMap) AddMarker(at models.Coordinate) view.MarkerHandle {
	h := m.next
	m.next++
	m.markers[h] = &Marker{Coord: at}
	m.order = append(m.order, h)
	return h
}

// BindPopup implements view.MapWidget.
func (m *HeadlessMap) BindPopup(h view.MarkerHandle, p view.Popup) {
	if mk, ok := m.markers[h]; ok {
		mk.Popup = p
	}
}

// OnClick implements view.MapWidget.
func (m *HeadlessMap) OnClick(fn func(models.Coordinate)) {
	m.onClick = fn
}

// FitBounds implements view.MapWidget.
func (m *HeadlessMap) FitBounds(handles []view.MarkerHandle) {
	coords := make([]models.Coordinate, 0, len(handles))
	for _, h := range handles {
		if mk, ok := m.markers[h]; ok {
			coords = append(coords, mk.Coord)
		}
	}
	m.bounds = geojson.BoundingBox(coords)
}

// ClearMarkers implements view.MarkerClearer.
func (m *HeadlessMap) ClearMarkers() {
	m.markers = make(map[view.MarkerHandle]*Marker)
	m.order = nil
}

// Click simulates a click on the map. It reports whether a handler was registered.
func (m *HeadlessMap) Click(at models.Coordinate) bool {
	if m.onClick == nil {
		return false
	}
	m.onClick(at)
	return true
}

// Center returns the current view center and zoom.
func (m *HeadlessMap) Center() (models.Coordinate, int) {
	return m.center, m.zoom
}

// LastViewOptions returns the options of the last SetView.
func (m *HeadlessMap) LastViewOptions() view.ViewOptions {
	return m.opts
}

// Bounds returns the box of the last FitBounds, or nil after a SetView.
func (m *HeadlessMap) Bounds() []float64 {
	return m.bounds
}

// Markers returns the markers in placement order.
func (m *HeadlessMap) Markers() []Marker {
	out := make([]Marker, 0, len(m.order))
	for _, h := range m.order {
		out = append(out, *m.markers[h])
	}
	return out
}

// FeatureCollection exports the markers as GeoJSON points. The bbox is the
// fitted bounds when set, else the box around all markers.
func (m *HeadlessMap) FeatureCollection() *geojson.FeatureCollection {
	markers := m.Markers()
	features := make([]geojson.Feature, 0, len(markers))
	coords := make([]models.Coordinate, 0, len(markers))
	for _, mk := range markers {
		features = append(features, geojson.NewPoint(mk.Coord, map[string]interface{}{
			"popup": mk.Popup.Content,
			"class": mk.Popup.ClassName,
		}))
		coords = append(coords, mk.Coord)
	}

	fc := geojson.NewCollection(features)
	fc.BBox = m.bounds
	if fc.BBox == nil {
		fc.BBox = geojson.BoundingBox(coords)
	}
	return fc
}
