// ABOUTME: Keeps the map and list in step with the workout collection
// ABOUTME: Translates collection changes into marker, popup, and entry renders

package view

import (
	"iter"
	"slices"
	"time"

	"github.com/harper/workouts/internal/models"
)

// DefaultZoom is the map zoom used for the current location and focus.
const DefaultZoom = 11

const (
	popupMaxWidth = 250
	popupMinWidth = 100
	focusPan      = time.Second
)

// Synchronizer renders workouts into a ListRenderer and, once the current
// location is known, a MapWidget.
type Synchronizer struct {
	mapw    MapWidget
	list    ListRenderer
	zoom    int
	current *models.Coordinate
	markers map[string]MarkerHandle
}

// NewSynchronizer creates a synchronizer. The map stays dark until
// ShowCurrentLocation is called; mapw may be nil when no map is available.
func NewSynchronizer(mapw MapWidget, list ListRenderer, zoom int) *Synchronizer {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Synchronizer{
		mapw:    mapw,
		list:    list,
		zoom:    zoom,
		markers: make(map[string]MarkerHandle),
	}
}

// MapReady reports whether markers are being drawn.
func (s *Synchronizer) MapReady() bool {
	return s.mapw != nil && s.current != nil
}

// ShowCurrentLocation centers the map on coord and places the default marker.
func (s *Synchronizer) ShowCurrentLocation(coord models.Coordinate) {
	if s.mapw == nil {
		return
	}
	s.current = &coord
	s.mapw.SetView(coord, s.zoom, ViewOptions{})
	h := s.mapw.AddMarker(coord)
	s.mapw.BindPopup(h, newPopup("Current location", "default-popup"))
}

// RenderCreated appends one entry and one marker for a new workout.
func (s *Synchronizer) RenderCreated(w *models.Workout) {
	s.list.Append(NewEntry(w))
	s.RenderMarker(w)
}

// RenderAll clears the list and renders seq in order.
func (s *Synchronizer) RenderAll(seq iter.Seq[*models.Workout]) {
	s.list.Clear()
	for w := range seq {
		s.list.Append(NewEntry(w))
	}
}

// RenderMarker places a marker with a popup for w.
func (s *Synchronizer) RenderMarker(w *models.Workout) {
	if !s.MapReady() {
		return
	}
	h := s.mapw.AddMarker(w.Coords)
	s.mapw.BindPopup(h, newPopup(w.Kind.Icon()+" "+w.Label, string(w.Kind)+"-popup"))
	s.markers[w.ID] = h
}

// RenderAllMarkers places a marker for every workout in ws.
func (s *Synchronizer) RenderAllMarkers(ws []*models.Workout) {
	for _, w := range ws {
		s.RenderMarker(w)
	}
}

// FitToAll fits the map to the markers of ws, placing any that are missing.
// An empty collection leaves the map as is.
func (s *Synchronizer) FitToAll(ws []*models.Workout) {
	if !s.MapReady() || len(ws) == 0 {
		return
	}
	handles := make([]MarkerHandle, 0, len(ws))
	for _, w := range ws {
		h, ok := s.markers[w.ID]
		if !ok {
			s.RenderMarker(w)
			h = s.markers[w.ID]
		}
		handles = append(handles, h)
	}
	s.mapw.FitBounds(handles)
}

// Focus pans the map to w.
func (s *Synchronizer) Focus(w *models.Workout) {
	if !s.MapReady() {
		return
	}
	s.mapw.SetView(w.Coords, s.zoom, ViewOptions{Animate: true, PanDuration: focusPan})
}

// Reset rebuilds the whole rendering after workouts were removed: markers are
// dropped (when the map supports it), the current location is shown again,
// and both list and markers are redrawn from ws.
func (s *Synchronizer) Reset(ws []*models.Workout) {
	s.markers = make(map[string]MarkerHandle)
	if s.MapReady() {
		if c, ok := s.mapw.(MarkerClearer); ok {
			c.ClearMarkers()
		}
		s.ShowCurrentLocation(*s.current)
	}
	s.RenderAll(slices.Values(ws))
	s.RenderAllMarkers(ws)
}

func newPopup(content, className string) Popup {
	return Popup{
		Content:   content,
		ClassName: className,
		MaxWidth:  popupMaxWidth,
		MinWidth:  popupMinWidth,
	}
}
