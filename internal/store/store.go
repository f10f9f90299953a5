// The data access layer of the console. All collections live in memory;
// every reload starts from seed data. Mutations are serialized by a single
// mutex because notification timers and the insight goroutine read state
// concurrently with UI callbacks.

package store

import (
	"errors"
	"sync"

	"github.com/Nicolas-29/nexus-admin/internal/models"
)

// ErrNotFound is returned when an id has no matching record in its
// collection.
var ErrNotFound = errors.New("record not found")

// Store holds the console's in-memory collections.
type Store struct {
	mu     sync.Mutex
	nextID int64

	series   []models.Series
	chapters []models.Chapter
	users    []models.User
	comments []models.Comment

	site models.SiteSettings
	ads  models.AdSettings
}

// New creates an empty Store. Collections start empty; call seed.Apply to
// load the default dataset.
func New() *Store {
	return &Store{
		nextID: 1,
		site:   defaultSiteSettings(),
		ads:    defaultAdSettings(),
	}
}

// allocateID hands out the next identifier. Identifiers are monotonic and
// shared across collections, so a new record can never collide with a
// live one. Caller must hold s.mu.
func (s *Store) allocateID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// noteID bumps the counter past a caller-supplied identifier (seed data
// carries fixed ids). Caller must hold s.mu.
func (s *Store) noteID(id int64) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}
