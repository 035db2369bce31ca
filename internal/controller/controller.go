// Package controller keeps the workout store, its persisted copy, the map
// markers and the list entries in step.
package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/store"
	"go.uber.org/zap"
)

var (
	// ErrMapNotReady is returned by RequestCreate before the map has a position.
	ErrMapNotReady = errors.New("map is not ready: no current position")
	// ErrNoPendingLocation is returned by SubmitCreate when no location was picked.
	ErrNoPendingLocation = errors.New("no pending location: pick a spot on the map first")
)

type Deps struct {
	Store  *store.Store
	Codec  Persister
	Map    MapAdapter
	Form   FormAdapter
	List   ListAdapter
	Host   Host
	Logger *zap.Logger
}

// Controller runs every workout operation to completion before returning.
// It is not safe for concurrent use.
type Controller struct {
	store  *store.Store
	codec  Persister
	mapv   MapAdapter
	form   FormAdapter
	list   ListAdapter
	host   Host
	logger *zap.Logger
	state  *State
}

func New(d Deps, state *State) *Controller {
	if state == nil {
		state = NewState()
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		store:  d.Store,
		codec:  d.Codec,
		mapv:   d.Map,
		form:   d.Form,
		list:   d.List,
		host:   d.Host,
		logger: logger,
		state:  state,
	}
}

func (c *Controller) State() *State {
	return c.state
}

// OnMapReady marks the map usable and centers it on the current position.
func (c *Controller) OnMapReady(center models.Coordinates) {
	c.state.MapReady = true
	c.mapv.Recenter(center, false)
}

// RequestCreate opens the form for a workout at loc. A second request while
// the form is open moves the pending location.
func (c *Controller) RequestCreate(loc models.Coordinates) error {
	if !c.state.MapReady {
		return ErrMapNotReady
	}
	if err := loc.Validate(); err != nil {
		return err
	}

	c.state.Phase = AwaitingSubmit
	c.state.Pending = &loc
	c.form.Show(loc)
	return nil
}

// SubmitCreate builds a workout from the form at the pending location. On
// invalid input the form stays open and nothing changes.
func (c *Controller) SubmitCreate(ctx context.Context, v FormValues) (*models.Workout, error) {
	if c.state.Phase != AwaitingSubmit || c.state.Pending == nil {
		return nil, ErrNoPendingLocation
	}

	w, err := models.NewWorkout(models.WorkoutInput{
		Variant:  v.Variant,
		Coords:   *c.state.Pending,
		Distance: v.Distance,
		Duration: v.Duration,
		Extra:    v.Extra,
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.form.ShowError(verr.UserMessage())
		}
		return nil, err
	}

	c.store.Add(w)
	c.persist(ctx)
	c.render(w)
	c.form.Hide()

	if c.state.Editing != nil {
		c.logger.Info("workout edited", zap.String("replaced", c.state.Editing.ID()), zap.String("id", w.ID()))
	} else {
		c.logger.Info("workout created", zap.String("id", w.ID()), zap.String("type", string(w.Variant())))
	}
	c.state.reset()
	return w, nil
}

// Cancel closes the form. A workout taken out by an edit is put back.
func (c *Controller) Cancel(ctx context.Context) {
	if c.state.Phase != AwaitingSubmit {
		return
	}
	c.form.Hide()
	c.restoreEditing(ctx)
	c.state.reset()
}

// ChangeVariant switches the form to the fields of v.
func (c *Controller) ChangeVariant(v models.Variant) error {
	if !v.Valid() {
		return &models.ValidationError{Reason: models.ReasonUnknownVariant, Field: "variant"}
	}
	c.form.SetVariant(v)
	return nil
}

// RequestEdit opens the form seeded with the workout and takes the workout
// out of the store and the views until the form is submitted or cancelled.
// It reports whether the workout exists.
func (c *Controller) RequestEdit(ctx context.Context, id string) (bool, error) {
	w, ok := c.store.FindByID(id)
	if !ok {
		c.logger.Debug("edit of unknown workout ignored", zap.String("id", id))
		return false, nil
	}

	// Checked before anything changes so a refused edit leaves the state as it was.
	if !c.state.MapReady {
		return true, ErrMapNotReady
	}
	if err := w.Coords().Validate(); err != nil {
		return true, err
	}

	// Only one edit can be pending, an earlier one goes back first.
	if c.state.Editing != nil {
		c.restoreEditing(ctx)
	}

	if err := c.RequestCreate(w.Coords()); err != nil {
		return true, err
	}
	c.form.SetVariant(w.Variant())
	c.form.Populate(FormValues{
		Variant:  w.Variant(),
		Distance: w.Distance(),
		Duration: w.Duration(),
		Extra:    w.Extra(),
	})

	c.store.RemoveByID(id)
	c.unrender(id)
	c.state.Editing = w
	c.persist(ctx)
	return true, nil
}

// RequestDelete removes the workout everywhere. It reports whether the workout existed.
func (c *Controller) RequestDelete(ctx context.Context, id string) bool {
	if _, ok := c.store.RemoveByID(id); !ok {
		c.logger.Debug("delete of unknown workout ignored", zap.String("id", id))
		return false
	}

	c.unrender(id)
	c.persist(ctx)
	c.logger.Info("workout deleted", zap.String("id", id))
	return true
}

// Focus centers the map on the workout. It reports whether the workout exists.
func (c *Controller) Focus(id string) bool {
	w, ok := c.store.FindByID(id)
	if !ok {
		return false
	}
	c.mapv.Recenter(w.Coords(), true)
	return true
}

// HandleEntryAction dispatches an action picked on a list entry.
func (c *Controller) HandleEntryAction(ctx context.Context, id string, action Action) error {
	switch action {
	case ActionEdit:
		_, err := c.RequestEdit(ctx, id)
		return err
	case ActionDelete:
		c.RequestDelete(ctx, id)
		return nil
	case ActionFocus:
		c.Focus(id)
		return nil
	default:
		return fmt.Errorf("unknown list action %q", action)
	}
}

// Bootstrap loads the persisted workouts and renders them the same way live
// creations are rendered. It returns the number of workouts loaded.
func (c *Controller) Bootstrap(ctx context.Context) int {
	workouts := c.codec.Load(ctx)
	c.store.ReplaceAll(workouts)
	for _, w := range workouts {
		c.render(w)
	}

	c.logger.Debug("bootstrapped", zap.Int("workouts", len(workouts)))
	return len(workouts)
}

// Import appends workouts whose id is not stored yet, renders them and
// persists once. It returns how many were added.
func (c *Controller) Import(ctx context.Context, workouts []*models.Workout) int {
	added := 0
	for _, w := range workouts {
		if _, exists := c.store.FindByID(w.ID()); exists {
			continue
		}
		if c.state.Editing != nil && c.state.Editing.ID() == w.ID() {
			continue
		}
		c.store.Add(w)
		c.render(w)
		added++
	}
	if added > 0 {
		c.persist(ctx)
	}

	c.logger.Info("workouts imported", zap.Int("added", added), zap.Int("skipped", len(workouts)-added))
	return added
}

// ResetAll wipes the workouts and reloads the host. There is no confirmation
// step. When the stored copy cannot be removed the session is still reset and
// the failure is kept on the state.
func (c *Controller) ResetAll(ctx context.Context) error {
	clearErr := c.codec.Clear(ctx)

	for _, w := range c.store.All() {
		c.unrender(w.ID())
	}
	c.store.Clear()
	if c.state.Phase == AwaitingSubmit {
		c.form.Hide()
	}
	c.state.reset()
	c.state.PersistErr = clearErr
	if clearErr != nil {
		c.logger.Warn("could not clear stored workouts, reset in memory only", zap.Error(clearErr))
	}

	c.logger.Info("all workouts reset")
	c.host.Reload()
	return nil
}

func (c *Controller) restoreEditing(ctx context.Context) {
	w := c.state.Editing
	if w == nil {
		return
	}
	c.state.Editing = nil

	if _, exists := c.store.FindByID(w.ID()); exists {
		return
	}
	c.store.Add(w)
	c.persist(ctx)
	c.render(w)
	c.logger.Info("edit abandoned, workout restored", zap.String("id", w.ID()))
}

// render is the only path from a workout to the views.
func (c *Controller) render(w *models.Workout) {
	c.mapv.PlaceMarker(Marker{
		ID:     w.ID(),
		Coords: w.Coords(),
		Popup:  w.Variant().Icon() + " " + w.Description(),
		Class:  w.Variant().PopupClass(),
	})
	c.list.RenderEntry(w)
}

func (c *Controller) unrender(id string) {
	c.mapv.RemoveMarker(id)
	c.list.RemoveEntry(id)
}

// persist saves the store. A failure is kept on the state and logged, the
// in-memory session is unaffected.
func (c *Controller) persist(ctx context.Context) {
	if err := c.codec.Save(ctx, c.store.All()); err != nil {
		c.state.PersistErr = err
		c.logger.Warn("could not persist workouts, keeping them in memory", zap.Error(err))
		return
	}
	c.state.PersistErr = nil
}
