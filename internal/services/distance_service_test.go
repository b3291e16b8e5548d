package services_test

import (
	"context"
	"sync"
	"testing"

	"logistics-api/internal/client/geocoding"
	"logistics-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	mu        sync.Mutex
	locations map[string]geocoding.Location
	calls     []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*geocoding.Location, error) {
	f.mu.Lock()
	f.calls = append(f.calls, address)
	f.mu.Unlock()

	loc, ok := f.locations[address]
	if !ok {
		return nil, geocoding.ErrAddressNotFound
	}
	return &loc, nil
}

func (f *fakeGeocoder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestHaversineKm(t *testing.T) {
	lagos := geocoding.Coordinates{Latitude: 6.5244, Longitude: 3.3792}
	abuja := geocoding.Coordinates{Latitude: 9.0765, Longitude: 7.3986}

	tests := []struct {
		name string
		a, b geocoding.Coordinates
		want float64
	}{
		{name: "same point is zero", a: lagos, b: lagos, want: 0},
		{name: "one degree of latitude at the equator", a: geocoding.Coordinates{}, b: geocoding.Coordinates{Latitude: 1}, want: 111.2},
		{name: "one degree of longitude at the equator", a: geocoding.Coordinates{}, b: geocoding.Coordinates{Longitude: 1}, want: 111.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.HaversineKm(tt.a, tt.b))
		})
	}

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t, services.HaversineKm(lagos, abuja), services.HaversineKm(abuja, lagos))
	})

	t.Run("known city pair", func(t *testing.T) {
		// Lagos to Abuja is roughly 526 km great-circle
		assert.InDelta(t, 526, services.HaversineKm(lagos, abuja), 2)
	})
}

func TestDistanceService_EstimateDistance(t *testing.T) {
	pickup := geocoding.Location{
		Coordinates: geocoding.Coordinates{Latitude: 6.5244, Longitude: 3.3792},
		DisplayName: "123 Main St, Lagos",
	}
	delivery := geocoding.Location{
		Coordinates: geocoding.Coordinates{Latitude: 6.5622, Longitude: 3.3792},
		DisplayName: "456 Oak Ave, Lagos",
	}

	geocoder := &fakeGeocoder{locations: map[string]geocoding.Location{
		"123 Main St": pickup,
		"456 Oak Ave": delivery,
	}}
	svc := services.NewDistanceService(geocoder)

	estimate, err := svc.EstimateDistance(context.Background(), "123 Main St", "456 Oak Ave")
	require.NoError(t, err)

	assert.Equal(t, 4.2, estimate.DistanceKm)
	assert.Equal(t, pickup, estimate.Pickup)
	assert.Equal(t, delivery, estimate.Delivery)
}

func TestDistanceService_EstimateDistance_PickupFailureSkipsDelivery(t *testing.T) {
	geocoder := &fakeGeocoder{locations: map[string]geocoding.Location{
		"456 Oak Ave": {Coordinates: geocoding.Coordinates{Latitude: 6.56}},
	}}
	svc := services.NewDistanceService(geocoder)

	_, err := svc.EstimateDistance(context.Background(), "nowhere", "456 Oak Ave")
	assert.ErrorIs(t, err, geocoding.ErrAddressNotFound)

	// The delivery address is never resolved when pickup fails
	assert.Equal(t, 1, geocoder.callCount())
	assert.Equal(t, []string{"nowhere"}, geocoder.calls)
}

func TestDistanceService_EstimateDistance_DeliveryFailure(t *testing.T) {
	geocoder := &fakeGeocoder{locations: map[string]geocoding.Location{
		"123 Main St": {Coordinates: geocoding.Coordinates{Latitude: 6.52}},
	}}
	svc := services.NewDistanceService(geocoder)

	_, err := svc.EstimateDistance(context.Background(), "123 Main St", "nowhere")
	assert.ErrorIs(t, err, geocoding.ErrAddressNotFound)
	assert.Equal(t, 2, geocoder.callCount())
}

// blockGate holds a geocode call open so completion order can be forced in
// tests.
type blockGate struct {
	started chan struct{}
	release chan struct{}
}

func newBlockGate() *blockGate {
	return &blockGate{started: make(chan struct{}), release: make(chan struct{})}
}

// blockingGeocoder resolves fixed locations but holds gated addresses until
// released.
type blockingGeocoder struct {
	locations map[string]geocoding.Location
	gates     map[string]*blockGate
}

func (b *blockingGeocoder) Geocode(_ context.Context, address string) (*geocoding.Location, error) {
	if g, ok := b.gates[address]; ok {
		close(g.started)
		<-g.release
	}
	loc, ok := b.locations[address]
	if !ok {
		return nil, geocoding.ErrAddressNotFound
	}
	return &loc, nil
}

func TestDistanceService_EstimateDistanceLatest_DiscardsStaleCompletions(t *testing.T) {
	gate := newBlockGate()
	geocoder := &blockingGeocoder{
		locations: map[string]geocoding.Location{
			"a":      {Coordinates: geocoding.Coordinates{Latitude: 1}},
			"b":      {Coordinates: geocoding.Coordinates{Latitude: 2}},
			"slow-b": {Coordinates: geocoding.Coordinates{Latitude: 2}},
		},
		gates: map[string]*blockGate{"slow-b": gate},
	}
	svc := services.NewDistanceService(geocoder)

	type result struct {
		estimate *services.DistanceEstimate
		err      error
	}

	// The first request blocks on its delivery lookup
	firstDone := make(chan result, 1)
	go func() {
		est, err := svc.EstimateDistanceLatest(context.Background(), "customer-1", "a", "slow-b")
		firstDone <- result{est, err}
	}()
	<-gate.started

	// A newer request for the same customer starts and finishes while the
	// first is still in flight
	estimate, err := svc.EstimateDistanceLatest(context.Background(), "customer-1", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 111.2, estimate.DistanceKm)

	// The first request now completes and must be discarded
	close(gate.release)
	first := <-firstDone
	assert.Nil(t, first.estimate)
	assert.ErrorIs(t, first.err, services.ErrSuperseded)
}

func TestDistanceService_EstimateDistanceLatest_SupersededByNewerInFlight(t *testing.T) {
	firstGate := newBlockGate()
	secondGate := newBlockGate()
	geocoder := &blockingGeocoder{
		locations: map[string]geocoding.Location{
			"a":      {Coordinates: geocoding.Coordinates{Latitude: 1}},
			"slow-b": {Coordinates: geocoding.Coordinates{Latitude: 2}},
			"slow-c": {Coordinates: geocoding.Coordinates{Latitude: 2}},
		},
		gates: map[string]*blockGate{"slow-b": firstGate, "slow-c": secondGate},
	}
	svc := services.NewDistanceService(geocoder)

	type result struct {
		estimate *services.DistanceEstimate
		err      error
	}

	firstDone := make(chan result, 1)
	go func() {
		est, err := svc.EstimateDistanceLatest(context.Background(), "customer-1", "a", "slow-b")
		firstDone <- result{est, err}
	}()
	<-firstGate.started

	secondDone := make(chan result, 1)
	go func() {
		est, err := svc.EstimateDistanceLatest(context.Background(), "customer-1", "a", "slow-c")
		secondDone <- result{est, err}
	}()
	<-secondGate.started

	// The older request completes first, but a newer one has already been
	// issued, so its result must still be discarded
	close(firstGate.release)
	first := <-firstDone
	assert.Nil(t, first.estimate)
	assert.ErrorIs(t, first.err, services.ErrSuperseded)

	// The newer request is unaffected
	close(secondGate.release)
	second := <-secondDone
	require.NoError(t, second.err)
	assert.Equal(t, 111.2, second.estimate.DistanceKm)
}

func TestDistanceService_EstimateDistanceLatest_IndependentKeys(t *testing.T) {
	geocoder := &fakeGeocoder{locations: map[string]geocoding.Location{
		"a": {Coordinates: geocoding.Coordinates{Latitude: 1}},
		"b": {Coordinates: geocoding.Coordinates{Latitude: 2}},
	}}
	svc := services.NewDistanceService(geocoder)

	// Different callers never supersede each other
	for _, key := range []string{"customer-1", "customer-2", "customer-1"} {
		estimate, err := svc.EstimateDistanceLatest(context.Background(), key, "a", "b")
		require.NoError(t, err)
		assert.Equal(t, 111.2, estimate.DistanceKm)
	}
}
