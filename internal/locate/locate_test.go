package locate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intown-api/internal/models"
	"intown-api/internal/store"
)

type fakeProvider struct {
	coords models.Coordinates
	err    error
	calls  int
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Coordinates(_ context.Context) (models.Coordinates, error) {
	f.calls++
	if f.err != nil {
		return models.Coordinates{}, f.err
	}
	return f.coords, nil
}

func TestResolver_Current(t *testing.T) {
	provider := &fakeProvider{coords: models.Coordinates{Latitude: 12.9716, Longitude: 77.5946}}
	resolver := NewResolver(provider)

	coords, err := resolver.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12.9716, coords.Latitude)
	assert.Equal(t, 77.5946, coords.Longitude)
}

func TestResolver_CurrentPropagatesError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("no fix")}
	resolver := NewResolver(provider)

	_, err := resolver.Current(context.Background())
	assert.Error(t, err)
}

func TestResolver_CurrentOrDefaultNeverFails(t *testing.T) {
	provider := &fakeProvider{err: errors.New("denied")}
	resolver := NewResolver(provider)

	coords := resolver.CurrentOrDefault(context.Background())
	assert.Equal(t, models.DefaultLatitude, coords.Latitude)
	assert.Equal(t, models.DefaultLongitude, coords.Longitude)
}

func TestResolver_CurrentOrDefaultUsesProvider(t *testing.T) {
	provider := &fakeProvider{coords: models.Coordinates{Latitude: 17.44, Longitude: 78.35}}
	resolver := NewResolver(provider)

	coords := resolver.CurrentOrDefault(context.Background())
	assert.Equal(t, 17.44, coords.Latitude)
	assert.Equal(t, 78.35, coords.Longitude)
}

func TestResolver_ReusesRecentFix(t *testing.T) {
	provider := &fakeProvider{coords: models.Coordinates{Latitude: 17.44, Longitude: 78.35}}
	resolver := NewResolver(provider)

	now := time.Now()
	resolver.now = func() time.Time { return now }

	resolver.CurrentOrDefault(context.Background())
	assert.Equal(t, 1, provider.calls)

	// Within the five minute window the cached fix is reused.
	now = now.Add(4 * time.Minute)
	resolver.CurrentOrDefault(context.Background())
	assert.Equal(t, 1, provider.calls)

	// Past the window the provider is asked again.
	now = now.Add(2 * time.Minute)
	resolver.CurrentOrDefault(context.Background())
	assert.Equal(t, 2, provider.calls)
}

func TestStaticProvider(t *testing.T) {
	static := &Static{Position: models.Coordinates{Latitude: 1, Longitude: 2}}

	coords, err := static.Coordinates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.0, coords.Latitude)
	assert.Equal(t, 2.0, coords.Longitude)
}

type fakePrompter struct {
	granted bool
	err     error
}

func (f *fakePrompter) Request(_ context.Context) (bool, error) { return f.granted, f.err }
func (f *fakePrompter) Check(_ context.Context) (bool, error)   { return f.granted, f.err }

func newTestStore(t *testing.T) *store.LocationStore {
	return store.New(store.NewFileStorage(filepath.Join(t.TempDir(), "loc.json")))
}

func TestGate_RequestRecordsGrant(t *testing.T) {
	tests := []struct {
		name     string
		prompter *fakePrompter
		expected bool
	}{
		{
			name:     "granted",
			prompter: &fakePrompter{granted: true},
			expected: true,
		},
		{
			name:     "denied",
			prompter: &fakePrompter{granted: false},
			expected: false,
		},
		{
			name:     "prompt failure counts as denied",
			prompter: &fakePrompter{granted: true, err: errors.New("dbus gone")},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations := newTestStore(t)
			gate := NewGate(tt.prompter, locations)

			assert.Equal(t, tt.expected, gate.Request(context.Background()))

			perm := locations.HasPermission()
			require.NotNil(t, perm)
			assert.Equal(t, tt.expected, *perm)
		})
	}
}

func TestGate_CheckDoesNotTouchStore(t *testing.T) {
	locations := newTestStore(t)
	gate := NewGate(&fakePrompter{granted: true}, locations)

	assert.True(t, gate.Check(context.Background()))
	assert.Nil(t, locations.HasPermission())
}

func TestGate_AlwaysGranted(t *testing.T) {
	locations := newTestStore(t)
	gate := NewGate(AlwaysGranted{}, locations)

	assert.True(t, gate.Request(context.Background()))
	assert.True(t, gate.Check(context.Background()))
}
