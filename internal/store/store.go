// Package store holds the in-memory, ordered collection of workouts for a session.
package store

import "github.com/misterclayt0n/mapty/internal/models"

// Store keeps workouts in creation order. It is owned by a single controller
// and is not safe for concurrent use.
type Store struct {
	workouts []*models.Workout
}

func New() *Store {
	return &Store{}
}

// Add appends w. Validation already happened when w was built.
func (s *Store) Add(w *models.Workout) {
	s.workouts = append(s.workouts, w)
}

// FindByID returns the workout with the given id. A miss is a normal outcome.
func (s *Store) FindByID(id string) (*models.Workout, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.workouts[i], true
}

// RemoveByID removes and returns the workout with the given id.
func (s *Store) RemoveByID(id string) (*models.Workout, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}

	w := s.workouts[i]
	copy(s.workouts[i:], s.workouts[i+1:])
	s.workouts[len(s.workouts)-1] = nil
	s.workouts = s.workouts[:len(s.workouts)-1]
	return w, true
}

// All returns a snapshot of the workouts in insertion order. Reordering or
// truncating the returned slice does not affect the store.
func (s *Store) All() []*models.Workout {
	out := make([]*models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// ReplaceAll swaps the whole sequence, used once when loading persisted workouts.
func (s *Store) ReplaceAll(ws []*models.Workout) {
	s.workouts = make([]*models.Workout, len(ws))
	copy(s.workouts, ws)
}

func (s *Store) Len() int {
	return len(s.workouts)
}

func (s *Store) Clear() {
	s.workouts = nil
}

// Workout logs are small, a linear scan is enough.
func (s *Store) indexOf(id string) int {
	for i, w := range s.workouts {
		if w.ID() == id {
			return i
		}
	}
	return -1
}
