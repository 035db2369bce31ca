package codec

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportTOML(t *testing.T) {
	workouts := fakeWorkouts(t, gofakeit.New(11), 6)

	var buf bytes.Buffer
	require.NoError(t, ExportTOML(&buf, workouts))
	assert.Contains(t, buf.String(), "[[workout]]")

	imported, err := ImportTOML(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(viewsOf(workouts), viewsOf(imported)); diff != "" {
		t.Fatalf("import mismatch (-want +got):\n%s", diff)
	}
}

func TestImportTOML_Strict(t *testing.T) {
	tests := map[string]string{
		"broken toml": "[[workout]\nid =",
		"zero distance": `
[[workout]]
id = "a"
date = 2026-10-19T10:00:00Z
type = "running"
lat = 1.0
lng = 2.0
distance = 0.0
duration = 10.0
cadence = 170.0
`,
		"running with elevation": `
[[workout]]
id = "a"
date = 2026-10-19T10:00:00Z
type = "running"
lat = 1.0
lng = 2.0
distance = 3.0
duration = 10.0
cadence = 170.0
elevation_gain = 40.0
`,
		"cycling with cadence": `
[[workout]]
id = "a"
date = 2026-10-19T10:00:00Z
type = "cycling"
lat = 1.0
lng = 2.0
distance = 3.0
duration = 10.0
cadence = 90.0
elevation_gain = 40.0
`,
		"unknown type": `
[[workout]]
id = "a"
date = 2026-10-19T10:00:00Z
type = "hiking"
lat = 1.0
lng = 2.0
distance = 3.0
duration = 10.0
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ImportTOML(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestExportImportFile(t *testing.T) {
	workouts := fakeWorkouts(t, gofakeit.New(5), 3)
	path := filepath.Join(t.TempDir(), "dump.toml")

	written, err := ExportFile(path, workouts)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	imported, err := ImportFile(written)
	require.NoError(t, err)
	assert.Equal(t, viewsOf(workouts), viewsOf(imported))

	_, err = ImportFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
