package adapters

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
)

// TerminalForm holds the workout form in memory. Between runs its fields
// travel in the pending state file.
type TerminalForm struct {
	values   controller.FormValues
	visible  bool
	at       models.Coordinates
	errs     []string
	onSubmit func(controller.FormValues) error
	onChange func(models.Variant) error
}

func NewTerminalForm() *TerminalForm {
	return &TerminalForm{values: controller.FormValues{Variant: models.Running}}
}

func (f *TerminalForm) Values() controller.FormValues { return f.values }

func (f *TerminalForm) Show(at models.Coordinates) {
	f.visible = true
	f.at = at
	f.errs = nil
}

// Hide closes the form and empties the numeric fields. The selected type is kept.
func (f *TerminalForm) Hide() {
	f.visible = false
	f.errs = nil
	f.values = controller.FormValues{Variant: f.values.Variant}
}

func (f *TerminalForm) SetVariant(v models.Variant) {
	f.values.Variant = v
}

func (f *TerminalForm) Populate(v controller.FormValues) {
	f.values = v
}

func (f *TerminalForm) ShowError(msg string) {
	f.errs = append(f.errs, msg)
}

func (f *TerminalForm) OnSubmit(fn func(controller.FormValues) error) {
	f.onSubmit = fn
}

func (f *TerminalForm) OnVariantChange(fn func(models.Variant) error) {
	f.onChange = fn
}

// Resume reopens a form left open by an earlier run.
func (f *TerminalForm) Resume(at models.Coordinates, v controller.FormValues) {
	f.visible = true
	f.at = at
	f.values = v
}

// Submit sends the current fields to the submit listener.
func (f *TerminalForm) Submit() error {
	if f.onSubmit == nil {
		return ErrNotListening
	}
	return f.onSubmit(f.values)
}

// ChangeVariant simulates picking a workout type in the form.
func (f *TerminalForm) ChangeVariant(v models.Variant) error {
	if f.onChange == nil {
		return ErrNotListening
	}
	return f.onChange(v)
}

func (f *TerminalForm) Visible() bool { return f.visible }

func (f *TerminalForm) At() models.Coordinates { return f.at }

// Errors returns the messages shown since the form was opened.
func (f *TerminalForm) Errors() []string {
	out := make([]string, len(f.errs))
	copy(out, f.errs)
	return out
}

func (f *TerminalForm) Render(w io.Writer) {
	if !f.visible {
		fmt.Fprintln(w, "No workout pending. Pick a spot with `mapty pin`.")
		return
	}

	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "%s %s at %s\n", yellow("Pending:"), f.values.Variant.Title(), f.at)
	fmt.Fprintf(w, "  %-15s %s\n", "Distance", blankIfZero(f.values.Distance, "km"))
	fmt.Fprintf(w, "  %-15s %s\n", "Duration", blankIfZero(f.values.Duration, "min"))
	if f.values.Variant == models.Cycling {
		fmt.Fprintf(w, "  %-15s %s\n", "Elev Gain", blankIfZero(f.values.Extra, "m"))
	} else {
		fmt.Fprintf(w, "  %-15s %s\n", "Cadence", blankIfZero(f.values.Extra, "step/min"))
	}
	for _, msg := range f.errs {
		fmt.Fprintf(w, "  %s\n", red("⚠ "+msg))
	}
}

func blankIfZero(v float64, unit string) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%g %s", v, unit)
}
