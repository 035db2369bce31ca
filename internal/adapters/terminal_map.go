// Package adapters holds the terminal renderings of the map, the workout form
// and the workout list, plus the providers of the current position.
package adapters

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
)

var ErrNotListening = errors.New("nothing is listening for this event")

// TerminalMap keeps the markers in placement order and prints them.
type TerminalMap struct {
	zoom    int
	center  *models.Coordinates
	markers []controller.Marker
	onClick func(models.Coordinates) error
}

func NewTerminalMap(zoom int) *TerminalMap {
	return &TerminalMap{zoom: zoom}
}

func (m *TerminalMap) PlaceMarker(mk controller.Marker) {
	m.markers = append(m.markers, mk)
}

// RemoveMarker drops the marker of workout id. Markers at the same spot
// belonging to other workouts stay.
func (m *TerminalMap) RemoveMarker(id string) {
	for i, mk := range m.markers {
		if mk.ID == id {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return
		}
	}
}

// Recenter moves the view. A terminal has nothing to animate.
func (m *TerminalMap) Recenter(at models.Coordinates, _ bool) {
	m.center = &at
}

func (m *TerminalMap) OnMapClick(fn func(models.Coordinates) error) {
	m.onClick = fn
}

// Click simulates a click on the map at the given position.
func (m *TerminalMap) Click(at models.Coordinates) error {
	if m.onClick == nil {
		return ErrNotListening
	}
	return m.onClick(at)
}

func (m *TerminalMap) Markers() []controller.Marker {
	out := make([]controller.Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

func (m *TerminalMap) Center() (models.Coordinates, bool) {
	if m.center == nil {
		return models.Coordinates{}, false
	}
	return *m.center, true
}

// Render prints the center and every marker, colored by popup class.
func (m *TerminalMap) Render(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	if m.center == nil {
		fmt.Fprintf(w, "%s no current position\n", cyan("Map:"))
	} else {
		fmt.Fprintf(w, "%s centered on %s (zoom %d)\n", cyan("Map:"), m.center, m.zoom)
	}

	if len(m.markers) == 0 {
		fmt.Fprintln(w, "  no markers")
		return
	}
	for _, mk := range m.markers {
		paint := popupColor(mk.Class).SprintFunc()
		fmt.Fprintf(w, "  📍 %-22s %s\n", mk.Coords, paint(mk.Popup))
	}
}

func popupColor(class string) *color.Color {
	switch class {
	case models.Running.PopupClass():
		return color.New(color.FgGreen)
	case models.Cycling.PopupClass():
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgWhite)
	}
}
