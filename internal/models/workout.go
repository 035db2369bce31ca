package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Clock and NewID are package variables so tests can pin labels and identifiers.
var (
	Clock = time.Now
	NewID = uuid.NewString
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WorkoutInput carries the user supplied fields of a new workout.
// Extra is the variant field: cadence (spm) for running, elevation gain (m) for cycling.
type WorkoutInput struct {
	Variant  Variant
	Coords   Coordinates
	Distance float64 // km
	Duration float64 // min
	Extra    float64
}

// Workout is a single recorded run or ride. Everything except the click
// counter is fixed at construction.
type Workout struct {
	id        string
	createdAt time.Time
	coords    Coordinates
	distance  float64
	duration  float64
	clicks    int
	variant   Variant

	// Discriminated payload, only one is set.
	cadence       float64
	elevationGain float64

	// Cached at construction.
	metric      float64
	description string
}

// NewWorkout validates the input and builds a workout with a fresh id and creation time.
func NewWorkout(in WorkoutInput) (*Workout, error) {
	return build(NewID(), Clock(), 0, in)
}

// RestoreInput is a previously persisted workout. Derived fields are never
// part of it, they are recomputed.
type RestoreInput struct {
	ID        string
	CreatedAt time.Time
	Clicks    int
	WorkoutInput
}

// Restore rebuilds a workout from persisted data, applying the same checks as NewWorkout.
func Restore(in RestoreInput) (*Workout, error) {
	if in.ID == "" {
		return nil, &ValidationError{Reason: ReasonMissing, Field: "id"}
	}
	if in.CreatedAt.IsZero() {
		return nil, &ValidationError{Reason: ReasonMissing, Field: "created_at"}
	}
	if in.Clicks < 0 {
		return nil, &ValidationError{Reason: ReasonNegative, Field: "clicks"}
	}
	return build(in.ID, in.CreatedAt, in.Clicks, in.WorkoutInput)
}

func build(id string, createdAt time.Time, clicks int, in WorkoutInput) (*Workout, error) {
	if !in.Variant.Valid() {
		return nil, &ValidationError{Reason: ReasonUnknownVariant, Field: "variant"}
	}
	if err := in.Coords.Validate(); err != nil {
		return nil, err
	}
	if !positive(in.Distance) {
		return nil, &ValidationError{Reason: ReasonNonPositive, Field: "distance"}
	}
	if !positive(in.Duration) {
		return nil, &ValidationError{Reason: ReasonNonPositive, Field: "duration"}
	}
	if !positive(in.Extra) {
		return nil, &ValidationError{Reason: ReasonNonPositive, Field: in.Variant.ExtraField()}
	}

	w := &Workout{
		id:        id,
		createdAt: createdAt,
		coords:    in.Coords,
		distance:  in.Distance,
		duration:  in.Duration,
		clicks:    clicks,
		variant:   in.Variant,
	}

	switch in.Variant {
	case Running:
		w.cadence = in.Extra
		w.metric = in.Duration / in.Distance // min/km
	case Cycling:
		w.elevationGain = in.Extra
		w.metric = in.Distance / in.Duration
	}
	w.description = describe(in.Variant, createdAt)

	return w, nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func describe(v Variant, t time.Time) string {
	return fmt.Sprintf("%s on %s %d", v.Title(), monthNames[t.Month()-1], t.Day())
}

func (w *Workout) ID() string { return w.id }
func (w *Workout) CreatedAt() time.Time { return w.createdAt }
func (w *Workout) Coords() Coordinates { return w.coords }
func (w *Workout) Distance() float64 { return w.distance }
func (w *Workout) Duration() float64 { return w.duration }
func (w *Workout) Clicks() int { return w.clicks }
func (w *Workout) Variant() Variant { return w.variant }
func (w *Workout) Description() string { return w.description }

// Extra returns the variant field, cadence or elevation gain.
func (w *Workout) Extra() float64 {
	if w.variant == Running {
		return w.cadence
	}
	return w.elevationGain
}

// Cadence reports the steps per minute of a run.
func (w *Workout) Cadence() (float64, bool) {
	return w.cadence, w.variant == Running
}

// ElevationGain reports the meters climbed on a ride.
func (w *Workout) ElevationGain() (float64, bool) {
	return w.elevationGain, w.variant == Cycling
}

// Pace is minutes per km, only defined for runs.
func (w *Workout) Pace() (float64, bool) {
	if w.variant != Running {
		return 0, false
	}
	return w.metric, true
}

// Speed is km per minute, only defined for rides.
func (w *Workout) Speed() (float64, bool) {
	if w.variant != Cycling {
		return 0, false
	}
	return w.metric, true
}

// Metric returns pace or speed depending on the variant.
func (w *Workout) Metric() float64 {
	return w.metric
}

// Input returns the fields needed to recreate this workout, used to seed the edit form.
func (w *Workout) Input() WorkoutInput {
	return WorkoutInput{
		Variant:  w.variant,
		Coords:   w.coords,
		Distance: w.distance,
		Duration: w.duration,
		Extra:    w.Extra(),
	}
}

// RecordInteraction counts a focus on the workout.
func (w *Workout) RecordInteraction() {
	w.clicks++
}
