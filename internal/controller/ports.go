package controller

import (
	"context"

	"github.com/misterclayt0n/mapty/internal/models"
)

// Marker is a workout pinned on the map.
type Marker struct {
	ID     string
	Coords models.Coordinates
	Popup  string
	Class  string
}

// MapAdapter renders markers and reports clicks.
type MapAdapter interface {
	PlaceMarker(m Marker)
	// RemoveMarker removes the marker of the workout with the given id.
	RemoveMarker(id string)
	Recenter(at models.Coordinates, animate bool)
	OnMapClick(fn func(at models.Coordinates) error)
}

// FormValues are the raw fields of the workout form.
type FormValues struct {
	Variant  models.Variant `toml:"type"`
	Distance float64        `toml:"distance"`
	Duration float64        `toml:"duration"`
	Extra    float64        `toml:"extra"` // Cadence or elevation gain.
}

// FormAdapter collects workout input.
type FormAdapter interface {
	Values() FormValues
	Show(at models.Coordinates)
	// Hide closes the form and clears its fields.
	Hide()
	SetVariant(v models.Variant)
	Populate(v FormValues)
	ShowError(msg string)
	OnSubmit(fn func(v FormValues) error)
	OnVariantChange(fn func(v models.Variant) error)
}

// Action is what the user asked for on a list entry.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionFocus  Action = "focus"
)

// ListAdapter renders the workout list.
type ListAdapter interface {
	RenderEntry(w *models.Workout)
	RemoveEntry(id string)
	OnEntryAction(fn func(id string, action Action) error)
}

// Host is the environment the app runs in.
type Host interface {
	// Reload reinitializes the app from scratch.
	Reload()
}

// Persister saves and loads the full workout sequence.
type Persister interface {
	Save(ctx context.Context, workouts []*models.Workout) error
	Load(ctx context.Context) []*models.Workout
	Clear(ctx context.Context) error
}
