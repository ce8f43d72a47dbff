// ABOUTME: Contracts for the external map and list collaborators
// ABOUTME: The synchronizer renders through these; terminals, tests, and agents implement them

package view

import (
	"time"

	"github.com/harper/workouts/internal/models"
)

// MarkerHandle identifies a marker placed on a MapWidget.
type MarkerHandle int

// ViewOptions controls how SetView moves the map.
type ViewOptions struct {
	Animate     bool
	PanDuration time.Duration
}

// Popup is the content and behavior of a marker popup.
type Popup struct {
	Content      string
	ClassName    string
	MaxWidth     int
	MinWidth     int
	AutoClose    bool
	CloseOnClick bool
}

// MapWidget is the map the workouts are drawn on.
type MapWidget interface {
	SetView(center models.Coordinate, zoom int, opts ViewOptions)
	AddMarker(at models.Coordinate) MarkerHandle
	BindPopup(m MarkerHandle, p Popup)
	OnClick(fn func(models.Coordinate))
	FitBounds(markers []MarkerHandle)
}

// MarkerClearer is implemented by maps that can drop every marker at once.
// Reset uses it to rebuild the map after deletions.
type MarkerClearer interface {
	ClearMarkers()
}

// ListRenderer shows workouts as a list of entries.
type ListRenderer interface {
	Clear()
	Append(e Entry)
}
