// ABOUTME: In-memory map and list doubles for synchronizer tests
// ABOUTME: Record every call so tests can assert on render order

package view

import "github.com/harper/workouts/internal/models"

type setViewCall struct {
	Center models.Coordinate
	Zoom   int
	Opts   ViewOptions
}

type fakeMap struct {
	views   []setViewCall
	markers []models.Coordinate
	popups  map[MarkerHandle]Popup
	fits    [][]MarkerHandle
	cleared int
	onClick func(models.Coordinate)
}

func newFakeMap() *fakeMap {
	return &fakeMap{popups: map[MarkerHandle]Popup{}}
}

func (m *fakeMap) SetView(c models.Coordinate, zoom int, opts ViewOptions) {
	m.views = append(m.views, setViewCall{c, zoom, opts})
}

func (m *fakeMap) AddMarker(at models.Coordinate) MarkerHandle {
	m.markers = append(m.markers, at)
	return MarkerHandle(len(m.markers) - 1)
}

func (m *fakeMap) BindPopup(h MarkerHandle, p Popup) { m.popups[h] = p }
func (m *fakeMap) OnClick(fn func(models.Coordinate)) { m.onClick = fn }
func (m *fakeMap) FitBounds(hs []MarkerHandle)        { m.fits = append(m.fits, hs) }

func (m *fakeMap) ClearMarkers() {
	m.cleared++
	m.markers = nil
	m.popups = map[MarkerHandle]Popup{}
}

type fakeList struct {
	entries []Entry
	clears  int
}

func (l *fakeList) Clear() {
	l.clears++
	l.entries = nil
}

func (l *fakeList) Append(e Entry) { l.entries = append(l.entries, e) }

func (l *fakeList) ids() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.ID
	}
	return out
}
