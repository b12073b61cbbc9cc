package store

import (
	"sync"

	"github.com/rs/zerolog/log"

	"intown-api/internal/models"
)

// Storage persists the resolved location between runs.
type Storage interface {
	Load() (*models.LocationDetails, error)
	Save(models.LocationDetails) error
	Clear() error
}

// LocationStore holds the user's currently resolved location together
// with the permission and loading flags the UI reacts to. It is an
// explicit object handed to its consumers, not package-level state, and
// all mutation goes through its setters.
type LocationStore struct {
	mu            sync.RWMutex
	location      *models.LocationDetails
	hasPermission *bool
	loading       bool
	lastError     string
	storage       Storage
	subscribers   []chan models.LocationDetails
}

// New creates a LocationStore backed by the given storage.
func New(storage Storage) *LocationStore {
	return &LocationStore{storage: storage}
}

// Location returns a copy of the current location, or nil when none has
// been resolved yet.
func (s *LocationStore) Location() *models.LocationDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return nil
	}
	loc := *s.location
	return &loc
}

// HasPermission reports the recorded permission state: nil means not yet
// determined.
func (s *LocationStore) HasPermission() *bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hasPermission == nil {
		return nil
	}
	v := *s.hasPermission
	return &v
}

// IsLoading reports whether a resolution is in flight.
func (s *LocationStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last recorded resolution error, empty when none.
func (s *LocationStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// SetLocation replaces the current location wholesale and persists it
// before returning, so a reload always observes the last write.
// Persistence failures are logged, never surfaced.
func (s *LocationStore) SetLocation(loc models.LocationDetails) {
	s.mu.Lock()
	s.location = &loc
	s.lastError = ""
	subs := make([]chan models.LocationDetails, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	if err := s.storage.Save(loc); err != nil {
		log.Error().Err(err).Msg("failed to persist location")
	}

	for _, sub := range subs {
		select {
		case sub <- loc:
		default:
			// Slow subscriber, drop the update. The next one supersedes it.
		}
	}
}

// SetPermission records the outcome of a permission prompt.
func (s *LocationStore) SetPermission(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasPermission = &granted
}

// SetLoading toggles the loading flag.
func (s *LocationStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// SetError records a resolution error for the UI to react to.
func (s *LocationStore) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
}

// Clear resets the location and permission state and removes the
// persisted record, as done on logout.
func (s *LocationStore) Clear() {
	s.mu.Lock()
	s.location = nil
	s.hasPermission = nil
	s.lastError = ""
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		log.Error().Err(err).Msg("failed to clear persisted location")
	}
}

// Load hydrates the store from storage at startup. Finding a persisted
// record implies permission was granted at some point, so the flag is
// set accordingly.
func (s *LocationStore) Load() {
	loc, err := s.storage.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load persisted location")
		return
	}
	if loc == nil {
		return
	}

	granted := true
	s.mu.Lock()
	s.location = loc
	s.hasPermission = &granted
	s.mu.Unlock()
}

// Subscribe returns a channel receiving every subsequent location
// update. Updates are dropped for subscribers that fall behind.
func (s *LocationStore) Subscribe() <-chan models.LocationDetails {
	ch := make(chan models.LocationDetails, 1)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()
	return ch
}
