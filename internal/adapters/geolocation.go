package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ipinfo/go/v2/ipinfo"
	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/models"
	"go.uber.org/multierr"
)

var ErrNoPosition = errors.New("could not get current position")

// GeolocationProvider asks the environment for the current position once.
type GeolocationProvider interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// IPInfo resolves the position of the machine's public IP.
type IPInfo struct {
	client *ipinfo.Client
}

func NewIPInfo(httpClient *http.Client, token string) *IPInfo {
	return &IPInfo{client: ipinfo.NewClient(httpClient, nil, token)}
}

// NewIPInfoWithClient uses an already configured client, e.g. one pointing at
// a different base URL.
func NewIPInfoWithClient(client *ipinfo.Client) *IPInfo {
	return &IPInfo{client: client}
}

type lookup struct {
	core *ipinfo.Core
	err  error
}

// CurrentPosition returns when the lookup finishes or ctx is done, whichever
// comes first.
func (p *IPInfo) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	done := make(chan lookup, 1)
	go func() {
		core, err := p.client.GetIPInfo(nil)
		done <- lookup{core: core, err: err}
	}()

	select {
	case <-ctx.Done():
		return models.Coordinates{}, fmt.Errorf("%w: %w", ErrNoPosition, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return models.Coordinates{}, fmt.Errorf("%w: ipinfo: %w", ErrNoPosition, res.err)
		}
		if res.core == nil || res.core.Location == "" {
			return models.Coordinates{}, fmt.Errorf("%w: ipinfo returned no location", ErrNoPosition)
		}
		at, err := models.ParseCoordinates(res.core.Location)
		if err != nil {
			return models.Coordinates{}, fmt.Errorf("%w: %w", ErrNoPosition, err)
		}
		return at, nil
	}
}

// Static always answers with the same position.
type Static struct {
	At models.Coordinates
}

func (s Static) CurrentPosition(context.Context) (models.Coordinates, error) {
	return s.At, nil
}

// Chain asks each provider in turn and returns the first position found.
// Later providers are still asked once ctx is done, so a static fallback
// answers after a timed out lookup.
type Chain []GeolocationProvider

func (c Chain) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	var errs error
	for _, p := range c {
		at, err := p.CurrentPosition(ctx)
		if err == nil {
			return at, nil
		}
		errs = multierr.Append(errs, err)
	}
	if errs == nil {
		return models.Coordinates{}, ErrNoPosition
	}
	return models.Coordinates{}, errs
}

// NewGeolocation builds the provider configured in cfg. The home position,
// when set, is the last resort.
func NewGeolocation(cfg config.GeoConfig, home *config.Coordinates) (GeolocationProvider, error) {
	var chain Chain

	switch cfg.Provider {
	case "ipinfo":
		chain = append(chain, NewIPInfo(&http.Client{Timeout: cfg.Timeout}, cfg.IPInfoToken))
	case "static", "none", "":
	default:
		return nil, fmt.Errorf("unknown geolocation provider %q", cfg.Provider)
	}

	if home != nil {
		at := models.Coordinates{Lat: home.Lat, Lng: home.Lng}
		if err := at.Validate(); err != nil {
			return nil, fmt.Errorf("invalid home position: %w", err)
		}
		chain = append(chain, Static{At: at})
	}
	return chain, nil
}
