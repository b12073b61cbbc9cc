package locate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"intown-api/internal/models"
	"intown-api/internal/store"
)

const (
	// A position fix is abandoned after this long.
	acquireTimeout = 10 * time.Second

	// A previous fix is reused without asking the provider again while
	// it is younger than this.
	maxFixAge = 5 * time.Minute
)

// Provider supplies raw device coordinates, however the platform obtains
// them.
type Provider interface {
	Name() string
	Coordinates(ctx context.Context) (models.Coordinates, error)
}

// Static is a Provider that always reports a fixed position.
type Static struct {
	Position models.Coordinates
}

func (s *Static) Name() string { return "static" }

func (s *Static) Coordinates(_ context.Context) (models.Coordinates, error) {
	return s.Position, nil
}

// Resolver acquires the user's position from a Provider, caching recent
// fixes and applying the acquisition timeout.
type Resolver struct {
	provider Provider

	mu        sync.Mutex
	lastFix   *models.Coordinates
	lastFixAt time.Time
	now       func() time.Time
}

// NewResolver creates a Resolver over the given provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{
		provider: provider,
		now:      time.Now,
	}
}

// Current requests a fresh position fix and returns the provider's
// error unchanged when acquisition fails. This is the strict contract:
// the caller decides how to degrade.
func (r *Resolver) Current(ctx context.Context) (models.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()

	coords, err := r.provider.Coordinates(ctx)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("locate: %s provider failed: %w", r.provider.Name(), err)
	}

	r.mu.Lock()
	r.lastFix = &coords
	r.lastFixAt = r.now()
	r.mu.Unlock()

	return coords, nil
}

// CurrentOrDefault always resolves to usable coordinates: a cached fix
// under five minutes old is reused, otherwise the provider is asked,
// and on any failure the fixed Hyderabad default is returned so
// downstream screens never block.
func (r *Resolver) CurrentOrDefault(ctx context.Context) models.Coordinates {
	r.mu.Lock()
	if r.lastFix != nil && r.now().Sub(r.lastFixAt) <= maxFixAge {
		coords := *r.lastFix
		r.mu.Unlock()
		return coords
	}
	r.mu.Unlock()

	coords, err := r.Current(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("coordinate acquisition failed, using default position")
		return models.Coordinates{
			Latitude:  models.DefaultLatitude,
			Longitude: models.DefaultLongitude,
		}
	}

	return coords
}

// Prompter asks the platform for location permission.
type Prompter interface {
	// Request prompts the user and reports whether access was granted.
	Request(ctx context.Context) (bool, error)
	// Check reports the current grant without prompting.
	Check(ctx context.Context) (bool, error)
}

// AlwaysGranted is the Prompter of platforms that defer prompting to
// acquisition time and therefore always report access.
type AlwaysGranted struct{}

func (AlwaysGranted) Request(_ context.Context) (bool, error) { return true, nil }
func (AlwaysGranted) Check(_ context.Context) (bool, error)   { return true, nil }

// Gate mediates permission prompts and records their outcome in the
// location store.
type Gate struct {
	prompter Prompter
	store    *store.LocationStore
}

// NewGate creates a Gate recording into the given store.
func NewGate(prompter Prompter, locations *store.LocationStore) *Gate {
	return &Gate{prompter: prompter, store: locations}
}

// Request prompts for foreground location access and records the
// boolean result. Prompt failures count as denied.
func (g *Gate) Request(ctx context.Context) bool {
	granted, err := g.prompter.Request(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("permission request failed")
		granted = false
	}
	g.store.SetPermission(granted)
	return granted
}

// Check reports the current grant without prompting and without
// touching the store.
func (g *Gate) Check(ctx context.Context) bool {
	granted, err := g.prompter.Check(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("permission check failed")
		return false
	}
	return granted
}
