package controller

import "github.com/misterclayt0n/mapty/internal/models"

// Phase of the single pending creation slot.
type Phase string

const (
	Idle           Phase = "idle"
	AwaitingSubmit Phase = "awaiting_submit"
)

// State is the mutable part of the controller. The caller owns it so it can
// be restored from and saved to the pending state file between runs.
type State struct {
	Phase   Phase
	Pending *models.Coordinates
	// Editing holds the workout taken out of the store by an edit, so an
	// abandoned edit can put it back.
	Editing  *models.Workout
	MapReady bool
	// PersistErr is the last failed save. The session goes on in memory.
	PersistErr error
}

func NewState() *State {
	return &State{Phase: Idle}
}

func (s *State) reset() {
	s.Phase = Idle
	s.Pending = nil
	s.Editing = nil
}
