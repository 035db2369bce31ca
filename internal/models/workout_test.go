package models

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinClock(t *testing.T, now time.Time) {
	t.Helper()
	prev := Clock
	Clock = func() time.Time { return now }
	t.Cleanup(func() { Clock = prev })
}

func TestNewWorkout_Running(t *testing.T) {
	pinClock(t, time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC))

	w, err := NewWorkout(WorkoutInput{
		Variant:  Running,
		Coords:   Coordinates{Lat: 39, Lng: -12},
		Distance: 5.2,
		Duration: 24,
		Extra:    178,
	})
	require.NoError(t, err)

	pace, ok := w.Pace()
	require.True(t, ok)
	assert.Equal(t, 24/5.2, pace)
	assert.InDelta(t, 4.615, pace, 0.001)

	_, ok = w.Speed()
	assert.False(t, ok)

	cadence, ok := w.Cadence()
	require.True(t, ok)
	assert.Equal(t, 178.0, cadence)
	_, ok = w.ElevationGain()
	assert.False(t, ok)

	assert.Equal(t, "Running on October 19", w.Description())
	assert.NotEmpty(t, w.ID())
	assert.Equal(t, 0, w.Clicks())
	assert.Equal(t, Coordinates{Lat: 39, Lng: -12}, w.Coords())
}

func TestNewWorkout_Cycling(t *testing.T) {
	pinClock(t, time.Date(2026, time.March, 3, 18, 0, 0, 0, time.UTC))

	w, err := NewWorkout(WorkoutInput{
		Variant:  Cycling,
		Coords:   Coordinates{Lat: 39, Lng: -12},
		Distance: 27,
		Duration: 95,
		Extra:    523,
	})
	require.NoError(t, err)

	speed, ok := w.Speed()
	require.True(t, ok)
	assert.Equal(t, 27.0/95.0, speed)
	assert.InDelta(t, 0.284, speed, 0.001)

	elevation, ok := w.ElevationGain()
	require.True(t, ok)
	assert.Equal(t, 523.0, elevation)
	assert.Equal(t, 523.0, w.Extra())

	assert.Equal(t, "Cycling on March 3", w.Description())
}

func TestNewWorkout_MetricIsExact(t *testing.T) {
	inputs := [][2]float64{{0.1, 0.3}, {42.195, 180.5}, {1e-9, 1e9}, {7, 3}}
	for _, in := range inputs {
		run, err := NewWorkout(WorkoutInput{Variant: Running, Distance: in[0], Duration: in[1], Extra: 1})
		require.NoError(t, err)
		assert.Equal(t, in[1]/in[0], run.Metric())

		ride, err := NewWorkout(WorkoutInput{Variant: Cycling, Distance: in[0], Duration: in[1], Extra: 1})
		require.NoError(t, err)
		assert.Equal(t, in[0]/in[1], ride.Metric())
	}
}

func TestNewWorkout_Validation(t *testing.T) {
	valid := WorkoutInput{Variant: Running, Coords: Coordinates{Lat: 1, Lng: 1}, Distance: 1, Duration: 1, Extra: 1}

	tests := []struct {
		name   string
		mutate func(in *WorkoutInput)
		field  string
		reason string
	}{
		{"zero distance", func(in *WorkoutInput) { in.Distance = 0 }, "distance", ReasonNonPositive},
		{"negative duration", func(in *WorkoutInput) { in.Duration = -3 }, "duration", ReasonNonPositive},
		{"nan distance", func(in *WorkoutInput) { in.Distance = math.NaN() }, "distance", ReasonNonPositive},
		{"inf duration", func(in *WorkoutInput) { in.Duration = math.Inf(1) }, "duration", ReasonNonPositive},
		{"zero cadence", func(in *WorkoutInput) { in.Extra = 0 }, "cadence", ReasonNonPositive},
		{"negative elevation", func(in *WorkoutInput) { in.Variant = Cycling; in.Extra = -10 }, "elevation_gain", ReasonNonPositive},
		{"unknown variant", func(in *WorkoutInput) { in.Variant = "swimming" }, "variant", ReasonUnknownVariant},
		{"latitude out of range", func(in *WorkoutInput) { in.Coords.Lat = 91 }, "coords", ReasonCoordinates},
		{"nan longitude", func(in *WorkoutInput) { in.Coords.Lng = math.NaN() }, "coords", ReasonCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			w, err := NewWorkout(in)
			require.Error(t, err)
			assert.Nil(t, w)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.reason, verr.Reason)
			assert.NotEmpty(t, verr.UserMessage())
		})
	}
}

func TestNewWorkout_DistinctIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		w, err := NewWorkout(WorkoutInput{Variant: Cycling, Distance: 1, Duration: 1, Extra: 1})
		require.NoError(t, err)
		seen[w.ID()] = struct{}{}
	}
	assert.Len(t, seen, 500)
}

func TestRestore_RederivesMetricAndLabel(t *testing.T) {
	created := time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC)

	w, err := Restore(RestoreInput{
		ID:        "abc",
		CreatedAt: created,
		Clicks:    4,
		WorkoutInput: WorkoutInput{
			Variant:  Running,
			Coords:   Coordinates{Lat: 10, Lng: 20},
			Distance: 10,
			Duration: 50,
			Extra:    170,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", w.ID())
	assert.True(t, created.Equal(w.CreatedAt()))
	assert.Equal(t, 4, w.Clicks())
	assert.Equal(t, 5.0, w.Metric())
	assert.Equal(t, "Running on December 31", w.Description())
}

func TestRestore_RejectsIncompleteRecords(t *testing.T) {
	base := RestoreInput{
		ID:           "abc",
		CreatedAt:    time.Now(),
		WorkoutInput: WorkoutInput{Variant: Running, Distance: 1, Duration: 1, Extra: 1},
	}

	noID := base
	noID.ID = ""
	_, err := Restore(noID)
	assert.Error(t, err)

	noDate := base
	noDate.CreatedAt = time.Time{}
	_, err = Restore(noDate)
	assert.Error(t, err)

	negativeClicks := base
	negativeClicks.Clicks = -1
	_, err = Restore(negativeClicks)
	assert.Error(t, err)

	badDistance := base
	badDistance.Distance = 0
	_, err = Restore(badDistance)
	assert.Error(t, err)
}

func TestRecordInteraction(t *testing.T) {
	w, err := NewWorkout(WorkoutInput{Variant: Running, Distance: 1, Duration: 1, Extra: 1})
	require.NoError(t, err)

	w.RecordInteraction()
	w.RecordInteraction()
	assert.Equal(t, 2, w.Clicks())
	assert.Equal(t, 1.0, w.Metric())
}

func TestInputRoundTrip(t *testing.T) {
	in := WorkoutInput{Variant: Cycling, Coords: Coordinates{Lat: -33.9, Lng: 151.2}, Distance: 40, Duration: 80, Extra: 300}
	w, err := NewWorkout(in)
	require.NoError(t, err)
	assert.Equal(t, in, w.Input())
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant(" Running ")
	require.NoError(t, err)
	assert.Equal(t, Running, v)

	v, err = ParseVariant("CYCLING")
	require.NoError(t, err)
	assert.Equal(t, Cycling, v)

	_, err = ParseVariant("rowing")
	assert.Error(t, err)

	assert.Equal(t, "Cycling", Cycling.Title())
	assert.Equal(t, "running-popup", Running.PopupClass())
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("38.7223, -9.1393")
	require.NoError(t, err)
	assert.Equal(t, Coordinates{Lat: 38.7223, Lng: -9.1393}, c)

	_, err = ParseCoordinates("38.7")
	assert.Error(t, err)

	_, err = ParseCoordinates("abc,1")
	assert.Error(t, err)

	_, err = ParseCoordinates("100,1")
	assert.Error(t, err)
}
