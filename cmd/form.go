package cmd

import (
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/utils"
	"github.com/spf13/cobra"
)

// formFlags are the workout form fields as command flags.
type formFlags struct {
	variant   string
	distance  float64
	duration  float64
	cadence   float64
	elevation float64
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.variant, "type", "t", "", "Workout type: running or cycling")
	cmd.Flags().Float64VarP(&f.distance, "distance", "d", 0, "Distance in km")
	cmd.Flags().Float64VarP(&f.duration, "duration", "m", 0, "Duration in minutes")
	cmd.Flags().Float64Var(&f.cadence, "cadence", 0, "Cadence in steps/min (running)")
	cmd.Flags().Float64Var(&f.elevation, "elevation", 0, "Elevation gain in meters (cycling)")
}

func (f *formFlags) changed(cmd *cobra.Command) bool {
	for _, name := range []string{"type", "distance", "duration", "cadence", "elevation"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply fills the open form with the flags that were set.
func (f *formFlags) apply(cmd *cobra.Command, a *app.App) error {
	if cmd.Flags().Changed("type") {
		v, err := models.ParseVariant(f.variant)
		if err != nil {
			return err
		}
		if err := a.Form.ChangeVariant(v); err != nil {
			return err
		}
	}

	values := a.Form.Values()
	if cmd.Flags().Changed("distance") {
		values.Distance = f.distance
	}
	if cmd.Flags().Changed("duration") {
		values.Duration = f.duration
	}
	if cmd.Flags().Changed("cadence") {
		if values.Variant != models.Running {
			return fmt.Errorf("--cadence is for running workouts, use --elevation")
		}
		values.Extra = f.cadence
	}
	if cmd.Flags().Changed("elevation") {
		if values.Variant != models.Cycling {
			return fmt.Errorf("--elevation is for cycling workouts, use --cadence")
		}
		values.Extra = f.elevation
	}
	a.Form.Populate(values)
	return nil
}

// submitForm submits the open form and reports the new workout.
func submitForm(a *app.App) error {
	if err := a.Form.Submit(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("❌ %s", verr.UserMessage())
		}
		return err
	}

	w := a.List.Entries()[0]
	fmt.Printf("✅ Logged %s %s (%s)\n", w.Variant().Icon(), w.Description(), utils.ShortID(w.ID()))
	return nil
}

func resolve(a *app.App, prefix string) (*models.Workout, error) {
	w, ok := a.Resolve(prefix)
	if !ok {
		return nil, fmt.Errorf("No workout matches %q", prefix)
	}
	return w, nil
}
