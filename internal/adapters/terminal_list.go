package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/utils"
)

// TerminalList shows the workouts newest first, the way new entries appear
// right under the form.
type TerminalList struct {
	entries  []*models.Workout
	onAction func(string, controller.Action) error
}

func NewTerminalList() *TerminalList {
	return &TerminalList{}
}

func (l *TerminalList) RenderEntry(w *models.Workout) {
	l.entries = append([]*models.Workout{w}, l.entries...)
}

func (l *TerminalList) RemoveEntry(id string) {
	for i, w := range l.entries {
		if w.ID() == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *TerminalList) OnEntryAction(fn func(string, controller.Action) error) {
	l.onAction = fn
}

// Trigger simulates picking an action on the entry of workout id.
func (l *TerminalList) Trigger(id string, action controller.Action) error {
	if l.onAction == nil {
		return ErrNotListening
	}
	return l.onAction(id, action)
}

func (l *TerminalList) Entries() []*models.Workout {
	out := make([]*models.Workout, len(l.entries))
	copy(out, l.entries)
	return out
}

// Render prints the entries as a table. Pace and speed are rounded to one
// decimal here only.
func (l *TerminalList) Render(w io.Writer) {
	if len(l.entries) == 0 {
		fmt.Fprintln(w, "No workouts yet.")
		return
	}

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	idWidth, descWidth, numWidth := 10, 26, 14
	border := func(left, mid, right string) string {
		return left + strings.Repeat("─", idWidth) + mid +
			strings.Repeat("─", descWidth) + mid +
			strings.Repeat("─", numWidth) + mid +
			strings.Repeat("─", numWidth) + mid +
			strings.Repeat("─", numWidth) + mid +
			strings.Repeat("─", numWidth) + right
	}

	fmt.Fprintln(w, border("┌", "┬", "┐"))
	fmt.Fprintf(w, "│%-*s│%-*s│%-*s│%-*s│%-*s│%-*s│\n",
		idWidth, "ID",
		descWidth, "Workout",
		numWidth, "Distance",
		numWidth, "Duration",
		numWidth, "Pace/Speed",
		numWidth, "Cadence/Elev",
	)
	fmt.Fprintln(w, border("├", "┼", "┤"))

	for _, wk := range l.entries {
		desc := fmt.Sprintf("%s %s", wk.Variant().Icon(), wk.Description())
		paint := green
		if wk.Variant() == models.Cycling {
			paint = yellow
		}
		fmt.Fprintf(w, "│%s│%s│%-*s│%-*s│%-*s│%-*s│\n",
			cyan(pad(utils.ShortID(wk.ID()), idWidth)),
			paint(pad(desc, descWidth)),
			numWidth, fmt.Sprintf("%g km", wk.Distance()),
			numWidth, fmt.Sprintf("%g min", wk.Duration()),
			numWidth, metricLabel(wk),
			numWidth, extraLabel(wk),
		)
	}
	fmt.Fprintln(w, border("└", "┴", "┘"))
}

func metricLabel(w *models.Workout) string {
	if pace, ok := w.Pace(); ok {
		return fmt.Sprintf("%.1f min/km", pace)
	}
	speed, _ := w.Speed()
	return fmt.Sprintf("%.1f km/h", speed*60)
}

func extraLabel(w *models.Workout) string {
	if cadence, ok := w.Cadence(); ok {
		return fmt.Sprintf("%g spm", cadence)
	}
	elevation, _ := w.ElevationGain()
	return fmt.Sprintf("%g m", elevation)
}

// pad fills s to width runes. Colored cells are padded before painting so the
// escape codes do not count.
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
