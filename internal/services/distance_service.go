package services

import (
	"context"
	"math"
	"sync"

	"logistics-api/internal/client/geocoding"
	"logistics-api/internal/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrSuperseded is returned when an estimate completed after a newer estimate
// for the same caller had already been issued. Address lookups are driven by
// debounced user input, so a stale completion must not overwrite a fresher
// distance.
var ErrSuperseded = errors.New("distance estimate superseded by a newer request")

const earthRadiusKm = 6371.0

// Geocoder resolves a free-text address to its best-match location.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geocoding.Location, error)
}

// DistanceEstimate is the result of resolving and measuring two addresses.
type DistanceEstimate struct {
	DistanceKm float64            `json:"distance_km"`
	Pickup     geocoding.Location `json:"pickup"`
	Delivery   geocoding.Location `json:"delivery"`
	Seq        uint64             `json:"seq,omitempty"`
}

// DistanceService turns two address strings into a distance in kilometers.
type DistanceService struct {
	geocoder Geocoder
	logger   *zap.Logger

	mu     sync.Mutex
	issued map[string]uint64
}

// NewDistanceService creates a new distance service.
func NewDistanceService(geocoder Geocoder) *DistanceService {
	return &DistanceService{
		geocoder: geocoder,
		logger:   logger.Log,
		issued:   make(map[string]uint64),
	}
}

// HaversineKm returns the great-circle distance in kilometers between two
// points in decimal degrees, rounded to one decimal place.
func HaversineKm(a, b geocoding.Coordinates) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLng := degreesToRadians(b.Longitude - a.Longitude)

	rLat1 := degreesToRadians(a.Latitude)
	rLat2 := degreesToRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// EstimateDistance geocodes both addresses and measures the distance between
// them. The lookups run sequentially; the delivery address is never resolved
// when the pickup lookup fails, and either failure fails the whole estimate
// with geocoding.ErrAddressNotFound. There is no partial result and no
// retry; the caller lets the user correct the address text and try again.
func (s *DistanceService) EstimateDistance(ctx context.Context, pickupAddress, deliveryAddress string) (*DistanceEstimate, error) {
	pickup, err := s.geocoder.Geocode(ctx, pickupAddress)
	if err != nil {
		return nil, err
	}

	delivery, err := s.geocoder.Geocode(ctx, deliveryAddress)
	if err != nil {
		return nil, err
	}

	return &DistanceEstimate{
		DistanceKm: HaversineKm(pickup.Coordinates, delivery.Coordinates),
		Pickup:     *pickup,
		Delivery:   *delivery,
	}, nil
}

// EstimateDistanceLatest behaves like EstimateDistance but tags each request
// for the given caller key with a monotonically increasing sequence number
// and discards completions once a newer request for the same key has been
// issued, returning ErrSuperseded. This backs the debounced address-preview
// flow where a stale in-flight lookup must not overwrite a fresher distance.
func (s *DistanceService) EstimateDistanceLatest(ctx context.Context, key, pickupAddress, deliveryAddress string) (*DistanceEstimate, error) {
	seq := s.nextSeq(key)

	estimate, err := s.EstimateDistance(ctx, pickupAddress, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if !s.accept(key, seq) {
		s.logger.Debug("discarding stale distance estimate",
			zap.String("key", key),
			zap.Uint64("seq", seq))
		return nil, ErrSuperseded
	}

	estimate.Seq = seq
	return estimate, nil
}

func (s *DistanceService) nextSeq(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[key]++
	return s.issued[key]
}

// accept reports whether seq is still the newest request issued for key. A
// request is stale as soon as a newer one starts, even if the newer one has
// not finished yet.
func (s *DistanceService) accept(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return seq == s.issued[key]
}
