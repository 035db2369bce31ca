// Package app wires storage, persistence, the controller and the terminal
// adapters into one session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/misterclayt0n/mapty/internal/adapters"
	"github.com/misterclayt0n/mapty/internal/codec"
	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/storage"
	"github.com/misterclayt0n/mapty/internal/store"
	"github.com/misterclayt0n/mapty/internal/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// App is one session: a command line run from New to Close.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	kv       storage.KeyValueStorage
	stateDir string

	Store      *store.Store
	Codec      *codec.Codec
	Controller *controller.Controller
	Map        *adapters.TerminalMap
	Form       *adapters.TerminalForm
	List       *adapters.TerminalList
	Host       *adapters.CLIHost
	Geo        adapters.GeolocationProvider
}

type options struct {
	kv       storage.KeyValueStorage
	geo      adapters.GeolocationProvider
	out      io.Writer
	stateDir string
}

type Option func(*options)

// WithStorage uses kv instead of opening the configured backend.
func WithStorage(kv storage.KeyValueStorage) Option {
	return func(o *options) { o.kv = kv }
}

// WithGeolocation uses p instead of the configured provider.
func WithGeolocation(p adapters.GeolocationProvider) Option {
	return func(o *options) { o.geo = p }
}

// WithOutput sets where the host prints, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithStateDir sets the directory of the pending state file.
func WithStateDir(dir string) Option {
	return func(o *options) { o.stateDir = dir }
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if o.stateDir == "" {
		o.stateDir = cfg.Storage.Dir
	}
	if o.stateDir == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate state directory: %w", err)
		}
		o.stateDir = dir
	}

	if o.geo == nil {
		geo, err := adapters.NewGeolocation(cfg.Geo, cfg.Map.Home)
		if err != nil {
			return nil, err
		}
		o.geo = geo
	}

	if o.kv == nil {
		kv, err := storage.Open(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
		}
		o.kv = kv
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		kv:       o.kv,
		stateDir: o.stateDir,
		Store:    store.New(),
		Codec:    codec.New(o.kv, cfg.Storage.Key, logger.Named("codec")),
		Map:      adapters.NewTerminalMap(cfg.Map.ZoomLevel),
		Form:     adapters.NewTerminalForm(),
		List:     adapters.NewTerminalList(),
		Geo:      o.geo,
	}
	a.Host = adapters.NewCLIHost(o.out, func() error {
		return utils.ClearPendingState(a.stateDir)
	}, logger)

	a.Controller = controller.New(controller.Deps{
		Store:  a.Store,
		Codec:  a.Codec,
		Map:    a.Map,
		Form:   a.Form,
		List:   a.List,
		Host:   a.Host,
		Logger: logger.Named("controller"),
	}, a.restoreState())

	a.Map.OnMapClick(a.Controller.RequestCreate)
	a.Form.OnSubmit(func(v controller.FormValues) error {
		_, err := a.Controller.SubmitCreate(ctx, v)
		return err
	})
	a.Form.OnVariantChange(a.Controller.ChangeVariant)
	a.List.OnEntryAction(func(id string, action controller.Action) error {
		return a.Controller.HandleEntryAction(ctx, id, action)
	})

	return a, nil
}

// restoreState picks up the form left open by the previous run. An unreadable
// pending file is dropped.
func (a *App) restoreState() *controller.State {
	state := controller.NewState()

	pending, err := utils.LoadPendingState(a.stateDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.logger.Warn("discarding unreadable pending state", zap.Error(err))
		}
		return state
	}
	if pending.Phase != controller.AwaitingSubmit || pending.Pending == nil {
		return state
	}

	state.Phase = controller.AwaitingSubmit
	state.Pending = pending.Pending
	a.Form.Resume(*pending.Pending, pending.Form)

	if pending.Editing != "" {
		workouts, err := codec.Decode(pending.Editing)
		if err != nil || len(workouts) != 1 {
			a.logger.Warn("discarding workout under edit", zap.Error(err))
		} else {
			state.Editing = workouts[0]
		}
	}
	return state
}

// Start locates the user, then loads and renders the stored workouts. Without
// a position the map stays unusable for new workouts but the list still works.
func (a *App) Start(ctx context.Context) int {
	geoCtx := ctx
	if a.cfg.Geo.Timeout > 0 {
		var cancel context.CancelFunc
		geoCtx, cancel = context.WithTimeout(ctx, a.cfg.Geo.Timeout)
		defer cancel()
	}

	at, err := a.Geo.CurrentPosition(geoCtx)
	if err != nil {
		a.logger.Warn("could not get current position", zap.Error(err))
	} else {
		a.Controller.OnMapReady(at)
	}

	return a.Controller.Bootstrap(ctx)
}

// Close saves the pending form for the next run and closes the storage.
func (a *App) Close() error {
	var err error
	err = multierr.Append(err, a.savePending())
	err = multierr.Append(err, a.kv.Close())
	return err
}

func (a *App) savePending() error {
	state := a.Controller.State()
	if a.Host.Reloaded() || state.Phase != controller.AwaitingSubmit || state.Pending == nil {
		return utils.ClearPendingState(a.stateDir)
	}

	pending := &utils.PendingState{
		Phase:   state.Phase,
		Pending: state.Pending,
		Form:    a.Form.Values(),
		SavedAt: time.Now().UTC(),
	}
	if state.Editing != nil {
		payload, err := codec.Encode([]*models.Workout{state.Editing})
		if err != nil {
			return fmt.Errorf("failed to encode workout under edit: %w", err)
		}
		pending.Editing = payload
	}

	if err := utils.SavePendingState(a.stateDir, pending); err != nil {
		return fmt.Errorf("failed to save pending state: %w", err)
	}
	return nil
}

// Resolve finds the workout whose id is or starts with prefix.
func (a *App) Resolve(prefix string) (*models.Workout, bool) {
	workouts := a.Store.All()
	ids := make([]string, len(workouts))
	for i, w := range workouts {
		ids[i] = w.ID()
	}

	id, ok := utils.MatchID(ids, prefix)
	if !ok {
		return nil, false
	}
	return a.Store.FindByID(id)
}

// Editing is the workout under edit, if any, so commands can refer to it
// while it is out of the store.
func (a *App) Editing() *models.Workout {
	return a.Controller.State().Editing
}
