package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/misterclayt0n/mapty/internal/adapters"
	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/storage"
	"github.com/misterclayt0n/mapty/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	home   = models.Coordinates{Lat: 38.72, Lng: -9.14}
	pinned = models.Coordinates{Lat: 39, Lng: -12}
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = "file"
	cfg.Storage.Dir = t.TempDir()
	cfg.Geo.Provider = "static"
	cfg.Geo.Timeout = time.Second
	return cfg
}

// run opens a session the way a command does.
func run(t *testing.T, cfg *config.Config, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithGeolocation(adapters.Static{At: home}), WithOutput(&bytes.Buffer{})}, opts...)
	a, err := New(context.Background(), cfg, zaptest.NewLogger(t), opts...)
	require.NoError(t, err)
	a.Start(context.Background())
	return a
}

func TestApp_PinThenSubmitAcrossRuns(t *testing.T) {
	cfg := testConfig(t)

	first := run(t, cfg)
	center, ok := first.Map.Center()
	require.True(t, ok)
	assert.Equal(t, home, center)

	require.NoError(t, first.Map.Click(pinned))
	require.NoError(t, first.Close())
	assert.True(t, utils.PendingExists(cfg.Storage.Dir))

	second := run(t, cfg)
	assert.Equal(t, controller.AwaitingSubmit, second.Controller.State().Phase)
	assert.True(t, second.Form.Visible())
	assert.Equal(t, pinned, second.Form.At())

	require.NoError(t, second.Form.ChangeVariant(models.Cycling))
	second.Form.Populate(controller.FormValues{Variant: models.Cycling, Distance: 27, Duration: 95, Extra: 523})
	require.NoError(t, second.Form.Submit())
	require.NoError(t, second.Close())
	assert.False(t, utils.PendingExists(cfg.Storage.Dir))

	third := run(t, cfg)
	defer third.Close()
	require.Equal(t, 1, third.Store.Len())
	w := third.Store.All()[0]
	assert.Equal(t, pinned, w.Coords())
	assert.Equal(t, models.Cycling, w.Variant())
	assert.Len(t, third.Map.Markers(), 1)
	assert.Len(t, third.List.Entries(), 1)
}

func TestApp_InvalidSubmitKeepsPending(t *testing.T) {
	cfg := testConfig(t)

	a := run(t, cfg)
	require.NoError(t, a.Map.Click(pinned))
	a.Form.Populate(controller.FormValues{Variant: models.Running, Distance: -1, Duration: 10, Extra: 170})

	var verr *models.ValidationError
	require.True(t, errors.As(a.Form.Submit(), &verr))
	assert.NotEmpty(t, a.Form.Errors())
	require.NoError(t, a.Close())

	next := run(t, cfg)
	defer next.Close()
	assert.Equal(t, controller.AwaitingSubmit, next.Controller.State().Phase)
	assert.Equal(t, -1.0, next.Form.Values().Distance)
	assert.Equal(t, 0, next.Store.Len())
}

func TestApp_AbandonedEditIsRestored(t *testing.T) {
	cfg := testConfig(t)

	a := run(t, cfg)
	require.NoError(t, a.Map.Click(pinned))
	a.Form.Populate(controller.FormValues{Variant: models.Running, Distance: 5.2, Duration: 24, Extra: 178})
	require.NoError(t, a.Form.Submit())
	original := a.Store.All()[0]
	require.NoError(t, a.Close())

	editing := run(t, cfg)
	require.NoError(t, editing.List.Trigger(original.ID(), controller.ActionEdit))
	assert.Equal(t, 0, editing.Store.Len())
	require.NoError(t, editing.Close())

	resumed := run(t, cfg)
	assert.Equal(t, 0, resumed.Store.Len(), "still out of the store while the form is open")
	require.NotNil(t, resumed.Editing())
	assert.Equal(t, original.ID(), resumed.Editing().ID())
	assert.Equal(t, 178.0, resumed.Form.Values().Extra)

	resumed.Controller.Cancel(context.Background())
	require.NoError(t, resumed.Close())

	after := run(t, cfg)
	defer after.Close()
	require.Equal(t, 1, after.Store.Len())
	restored := after.Store.All()[0]
	assert.Equal(t, original.ID(), restored.ID())
	assert.True(t, original.CreatedAt().Equal(restored.CreatedAt()))
}

func TestApp_NoPosition(t *testing.T) {
	cfg := testConfig(t)
	cfg.Geo.Timeout = 10 * time.Millisecond

	a := run(t, cfg, WithGeolocation(adapters.Chain{}))
	defer a.Close()

	assert.False(t, a.Controller.State().MapReady)
	assert.ErrorIs(t, a.Map.Click(pinned), controller.ErrMapNotReady)
}

func TestApp_ResetClearsEverything(t *testing.T) {
	cfg := testConfig(t)

	a := run(t, cfg)
	require.NoError(t, a.Map.Click(pinned))
	a.Form.Populate(controller.FormValues{Variant: models.Running, Distance: 5, Duration: 25, Extra: 170})
	require.NoError(t, a.Form.Submit())
	require.NoError(t, a.Map.Click(home))
	require.NoError(t, a.Close())

	out := &bytes.Buffer{}
	b := run(t, cfg, WithOutput(out))
	require.NoError(t, b.Controller.ResetAll(context.Background()))
	assert.True(t, b.Host.Reloaded())
	assert.Contains(t, out.String(), "Starting over")
	require.NoError(t, b.Close())
	assert.False(t, utils.PendingExists(cfg.Storage.Dir))

	c := run(t, cfg)
	defer c.Close()
	assert.Equal(t, 0, c.Store.Len())
	assert.Equal(t, controller.Idle, c.Controller.State().Phase)
}

func TestApp_Resolve(t *testing.T) {
	cfg := testConfig(t)
	a := run(t, cfg)
	defer a.Close()

	require.NoError(t, a.Map.Click(pinned))
	a.Form.Populate(controller.FormValues{Variant: models.Running, Distance: 5, Duration: 25, Extra: 170})
	require.NoError(t, a.Form.Submit())
	w := a.Store.All()[0]

	found, ok := a.Resolve(utils.ShortID(w.ID()))
	require.True(t, ok)
	assert.Same(t, w, found)

	_, ok = a.Resolve("nope")
	assert.False(t, ok)
}

func TestApp_PersistFailureKeepsSession(t *testing.T) {
	cfg := testConfig(t)
	a := run(t, cfg, WithStorage(storage.Disabled{}))
	defer a.Close()

	require.NoError(t, a.Map.Click(pinned))
	a.Form.Populate(controller.FormValues{Variant: models.Running, Distance: 5, Duration: 25, Extra: 170})
	require.NoError(t, a.Form.Submit())

	assert.Equal(t, 1, a.Store.Len())
	assert.ErrorIs(t, a.Controller.State().PersistErr, storage.ErrUnavailable)
}

type closeFailing struct{ storage.Disabled }

func (closeFailing) Close() error { return errors.New("connection reset") }

func TestApp_CloseCombinesErrors(t *testing.T) {
	cfg := testConfig(t)
	a := run(t, cfg, WithStorage(closeFailing{}))

	err := a.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNew_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Backend = "floppy"

	_, err := New(context.Background(), cfg, nil, WithGeolocation(adapters.Static{At: home}))
	assert.Error(t, err)
}
