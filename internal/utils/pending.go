package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
)

const pendingFile = "pending.toml"

// PendingState is the open form of one run, picked up by the next one.
type PendingState struct {
	Phase   controller.Phase      `toml:"phase"`
	Pending *models.Coordinates   `toml:"pending,omitempty"`
	Form    controller.FormValues `toml:"form"`
	// Editing is the workout taken out by an edit, in the persisted JSON layout.
	Editing string    `toml:"editing,omitempty"`
	SavedAt time.Time `toml:"saved_at"`
}

func getPendingPath(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, pendingFile), nil
}

func SavePendingState(dir string, state *PendingState) error {
	path, err := getPendingPath(dir)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(state)
}

func LoadPendingState(dir string) (*PendingState, error) {
	var state PendingState
	_, err := toml.DecodeFile(filepath.Join(dir, pendingFile), &state)
	if err != nil {
		return nil, err
	}

	return &state, nil
}

// ClearPendingState removes the pending file. A missing file is not an error.
func ClearPendingState(dir string) error {
	err := os.Remove(filepath.Join(dir, pendingFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func PendingExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, pendingFile))
	return !os.IsNotExist(err)
}
