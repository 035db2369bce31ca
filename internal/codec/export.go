package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/mapty/internal/models"
)

// dump is the TOML export layout, one [[workout]] table per workout.
type dump struct {
	Workouts []dumpWorkout `toml:"workout"`
}

type dumpWorkout struct {
	ID            string    `toml:"id"`
	Description   string    `toml:"description,omitempty"` // Informational, recomputed on import.
	Date          time.Time `toml:"date"`
	Type          string    `toml:"type"`
	Lat           float64   `toml:"lat"`
	Lng           float64   `toml:"lng"`
	Distance      float64   `toml:"distance"`
	Duration      float64   `toml:"duration"`
	Cadence       float64   `toml:"cadence,omitzero"`
	ElevationGain float64   `toml:"elevation_gain,omitzero"`
	Clicks        int       `toml:"clicks"`
}

// ExportTOML writes workouts to w as a TOML document.
func ExportTOML(w io.Writer, workouts []*models.Workout) error {
	var d dump
	for _, wo := range workouts {
		dw := dumpWorkout{
			ID:          wo.ID(),
			Description: wo.Description(),
			Date:        wo.CreatedAt(),
			Type:        string(wo.Variant()),
			Lat:         wo.Coords().Lat,
			Lng:         wo.Coords().Lng,
			Distance:    wo.Distance(),
			Duration:    wo.Duration(),
			Clicks:      wo.Clicks(),
		}
		if cadence, ok := wo.Cadence(); ok {
			dw.Cadence = cadence
		}
		if elevation, ok := wo.ElevationGain(); ok {
			dw.ElevationGain = elevation
		}
		d.Workouts = append(d.Workouts, dw)
	}

	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ImportTOML reads a document written by ExportTOML. Unlike Load it is
// strict: the user asked for this file, so problems are reported.
func ImportTOML(r io.Reader) ([]*models.Workout, error) {
	var d dump
	if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}

	records := make([]record, 0, len(d.Workouts))
	for _, dw := range d.Workouts {
		dw := dw // per-iteration copy: &dw fields are kept below (go 1.21 loop semantics)
		rec := record{
			ID:       dw.ID,
			Date:     dw.Date,
			Coords:   []float64{dw.Lat, dw.Lng},
			Distance: dw.Distance,
			Duration: dw.Duration,
			Type:     dw.Type,
			Clicks:   dw.Clicks,
		}
		// A field of the other variant is kept so the record is rejected.
		switch models.Variant(dw.Type) {
		case models.Running:
			rec.Cadence = &dw.Cadence
			if dw.ElevationGain != 0 {
				rec.ElevationGain = &dw.ElevationGain
			}
		case models.Cycling:
			rec.ElevationGain = &dw.ElevationGain
			if dw.Cadence != 0 {
				rec.Cadence = &dw.Cadence
			}
		}
		records = append(records, rec)
	}

	return restoreAll(records)
}

// ExportFile writes the TOML dump to path, relative paths resolve against the working directory.
func ExportFile(path string, workouts []*models.Workout) (string, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	defer f.Close()

	if err := ExportTOML(f, workouts); err != nil {
		return "", err
	}
	return path, f.Close()
}

// ImportFile reads a TOML dump from path.
func ImportFile(path string) ([]*models.Workout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	defer f.Close()

	return ImportTOML(f)
}
