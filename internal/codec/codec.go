// Package codec persists the ordered workout sequence through a key-value storage.
package codec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/storage"
	"go.uber.org/zap"
)

// DefaultKey is the key the workouts are stored under.
const DefaultKey = "workouts"

// PersistenceError wraps a failed write or removal. Callers keep running in memory.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist workouts: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Codec serializes workouts as a JSON array of objects under a fixed key.
type Codec struct {
	kv     storage.KeyValueStorage
	key    string
	logger *zap.Logger
}

func New(kv storage.KeyValueStorage, key string, logger *zap.Logger) *Codec {
	if key == "" {
		key = DefaultKey
	}
	return &Codec{
		kv:     kv,
		key:    key,
		logger: logger,
	}
}

// record is the persisted shape of a workout. The layout follows what the
// browser version of the app kept in localStorage, so old payloads still load.
// Pace, speed and description are written for readers of the raw value but
// are recomputed on load.
type record struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	Coords        []float64  `json:"coords"`
	Distance      float64    `json:"distance"`
	Duration      float64    `json:"duration"`
	Type          string     `json:"type"`
	Cadence       *float64   `json:"cadence,omitempty"`
	ElevationGain *float64   `json:"elevationGain,omitempty"`
	Clicks        int        `json:"clicks"`
	Pace          *float64   `json:"pace,omitempty"`
	Speed         *float64   `json:"speed,omitempty"`
	Description   string     `json:"description,omitempty"`
}

func toRecord(w *models.Workout) record {
	r := record{
		ID:          w.ID(),
		Date:        w.CreatedAt(),
		Coords:      []float64{w.Coords().Lat, w.Coords().Lng},
		Distance:    w.Distance(),
		Duration:    w.Duration(),
		Type:        string(w.Variant()),
		Clicks:      w.Clicks(),
		Description: w.Description(),
	}

	metric := w.Metric()
	extra := w.Extra()
	switch w.Variant() {
	case models.Running:
		r.Cadence = &extra
		r.Pace = &metric
	case models.Cycling:
		r.ElevationGain = &extra
		r.Speed = &metric
	}
	return r
}

func fromRecord(r record) (*models.Workout, error) {
	variant := models.Variant(r.Type)

	var extra *float64
	switch variant {
	case models.Running:
		if r.ElevationGain != nil {
			return nil, fmt.Errorf("workout %s: running workout carries elevationGain", r.ID)
		}
		extra = r.Cadence
	case models.Cycling:
		if r.Cadence != nil {
			return nil, fmt.Errorf("workout %s: cycling workout carries cadence", r.ID)
		}
		extra = r.ElevationGain
	default:
		return nil, fmt.Errorf("workout %s: unknown type %q", r.ID, r.Type)
	}
	if extra == nil {
		return nil, fmt.Errorf("workout %s: missing %s", r.ID, variant.ExtraField())
	}
	if len(r.Coords) != 2 {
		return nil, fmt.Errorf("workout %s: coords must be [lat, lng], got %d values", r.ID, len(r.Coords))
	}

	return models.Restore(models.RestoreInput{
		ID:        r.ID,
		CreatedAt: r.Date,
		Clicks:    r.Clicks,
		WorkoutInput: models.WorkoutInput{
			Variant:  variant,
			Coords:   models.Coordinates{Lat: r.Coords[0], Lng: r.Coords[1]},
			Distance: r.Distance,
			Duration: r.Duration,
			Extra:    *extra,
		},
	})
}

// Encode renders workouts in the persisted layout.
func Encode(workouts []*models.Workout) (string, error) {
	records := make([]record, 0, len(workouts))
	for _, w := range workouts {
		records = append(records, toRecord(w))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses the persisted layout and rebuilds every workout. One bad
// element rejects the whole payload.
func Decode(payload string) ([]*models.Workout, error) {
	var records []record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("parse workouts: %w", err)
	}

	return restoreAll(records)
}

func restoreAll(records []record) ([]*models.Workout, error) {
	seen := make(map[string]struct{}, len(records))
	workouts := make([]*models.Workout, 0, len(records))
	for i, r := range records {
		w, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if _, dup := seen[w.ID()]; dup {
			return nil, fmt.Errorf("element %d: duplicate id %s", i, w.ID())
		}
		seen[w.ID()] = struct{}{}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

// Save writes the full sequence, replacing whatever was stored before.
func (c *Codec) Save(ctx context.Context, workouts []*models.Workout) error {
	payload, err := Encode(workouts)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}

	if err := c.kv.Set(ctx, c.key, payload); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	c.logger.Debug("workouts saved", zap.Int("count", len(workouts)), zap.Int("bytes", len(payload)))
	return nil
}

// Load is a best effort cold start: a missing, unreadable, unparsable or
// structurally invalid payload yields an empty sequence, never an error.
func (c *Codec) Load(ctx context.Context) []*models.Workout {
	payload, err := c.kv.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Warn("could not read stored workouts", zap.Error(err))
		}
		return []*models.Workout{}
	}

	workouts, err := Decode(payload)
	if err != nil {
		c.logger.Warn("discarding stored workouts", zap.Error(err))
		return []*models.Workout{}
	}

	c.logger.Debug("workouts loaded", zap.Int("count", len(workouts)))
	return workouts
}

// Clear removes the stored workouts. It is idempotent.
func (c *Codec) Clear(ctx context.Context) error {
	if err := c.kv.Remove(ctx, c.key); err != nil {
		return &PersistenceError{Op: "clear", Err: err}
	}
	return nil
}
