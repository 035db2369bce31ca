package models

import "fmt"

const (
	ReasonNonPositive    = "non-finite-or-non-positive"
	ReasonUnknownVariant = "unknown-variant"
	ReasonCoordinates    = "invalid-coordinates"
	ReasonMissing        = "missing"
	ReasonNegative       = "negative"
)

// ValidationError reports bad workout input. Nothing is created when it is returned.
type ValidationError struct {
	Reason string
	Field  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UserMessage is the text shown next to the form.
func (e *ValidationError) UserMessage() string {
	switch e.Reason {
	case ReasonNonPositive:
		return fmt.Sprintf("%s must be a positive number", humanField(e.Field))
	case ReasonUnknownVariant:
		return "Workout type must be running or cycling"
	case ReasonCoordinates:
		return "Coordinates are outside the map"
	default:
		return fmt.Sprintf("%s is invalid", humanField(e.Field))
	}
}

func humanField(field string) string {
	switch field {
	case "distance":
		return "Distance"
	case "duration":
		return "Duration"
	case "cadence":
		return "Cadence"
	case "elevation_gain":
		return "Elevation gain"
	default:
		return field
	}
}
