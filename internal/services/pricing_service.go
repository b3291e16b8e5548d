package services

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	awsclient "logistics-api/internal/client/aws"
	"logistics-api/internal/constants"
	"logistics-api/internal/db"
	"logistics-api/internal/logger"
)

var (
	// ErrNotInitialized is returned when pricing is attempted before the
	// configuration snapshot has been loaded.
	ErrNotInitialized = errors.New("pricing configuration not loaded")

	// ErrNoZoneForDistance is returned when no zone band covers the requested
	// distance. This is an operator configuration gap, not user error, so
	// pricing aborts instead of guessing a fallback price.
	ErrNoZoneForDistance = errors.New("no delivery zone covers this distance")
)

// PromoEventPublisher emits promotion redemption events.
type PromoEventPublisher interface {
	PublishPromoRedeemed(ctx context.Context, event awsclient.PromoRedeemedEvent) error
}

// AdjustmentLine is one applied order-type surcharge.
type AdjustmentLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// PricingBreakdown is the itemized result of pricing one delivery. It is
// computed fresh on every call and never mutated afterwards.
type PricingBreakdown struct {
	DistanceKm   float64          `json:"distance_km"`
	ZoneName     string           `json:"zone_name"`
	BasePrice    float64          `json:"base_price"`
	Adjustments  []AdjustmentLine `json:"adjustments"`
	Subtotal     float64          `json:"subtotal"`
	Discount     float64          `json:"discount"`
	DiscountName string           `json:"discount_name,omitempty"`
	FinalPrice   float64          `json:"final_price"`
	PromoApplied string           `json:"promo_applied,omitempty"`
}

// snapshot is one immutable load of the pricing configuration. Lookups are
// keyed by lower-cased name/code so matching is case-insensitive.
type snapshot struct {
	zones       []db.DeliveryZone
	adjustments map[string]db.OrderTypeAdjustment
	promotions  map[string]db.Promotion
	loadedAt    time.Time
}

// PricingService deterministically prices a delivery from an in-memory
// snapshot of zones, adjustments and promotions. The snapshot is replaced
// wholesale by Initialize/Refresh and swapped atomically, so concurrent
// Price calls see either the old or the new configuration, never a mix.
type PricingService struct {
	queries db.Querier
	events  PromoEventPublisher
	logger  *zap.Logger
	now     func() time.Time

	snap atomic.Pointer[snapshot]
}

// NewPricingService creates a pricing service. events may be nil when no
// redemption event queue is configured.
func NewPricingService(queries db.Querier, events PromoEventPublisher) *PricingService {
	return &PricingService{
		queries: queries,
		events:  events,
		logger:  logger.Log,
		now:     time.Now,
	}
}

// Initialize loads the configuration snapshot: active zones ordered by
// ascending minimum distance, active adjustments, and promotions that are
// currently usable. The three reads run concurrently and the snapshot is
// only swapped in once all of them succeed, so a partially loaded
// configuration is never used for pricing.
func (s *PricingService) Initialize(ctx context.Context) error {
	var (
		zones       []db.DeliveryZone
		adjustments []db.OrderTypeAdjustment
		promotions  []db.Promotion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		zones, err = s.queries.ListActiveDeliveryZones(gctx)
		return errors.Wrap(err, "failed to load delivery zones")
	})
	g.Go(func() error {
		var err error
		adjustments, err = s.queries.ListActiveOrderTypeAdjustments(gctx)
		return errors.Wrap(err, "failed to load order type adjustments")
	})
	g.Go(func() error {
		var err error
		promotions, err = s.queries.ListPromotions(gctx)
		return errors.Wrap(err, "failed to load promotions")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	now := s.now()
	snap := &snapshot{
		zones:       zones,
		adjustments: make(map[string]db.OrderTypeAdjustment, len(adjustments)),
		promotions:  make(map[string]db.Promotion),
		loadedAt:    now,
	}
	for _, a := range adjustments {
		snap.adjustments[strings.ToLower(a.Name)] = a
	}
	// Expired, exhausted and inactive promotions are filtered out here, at
	// load time; they can never resurface from ValidatePromoCode.
	for _, p := range promotions {
		if promotionUsable(p, now) {
			snap.promotions[strings.ToLower(p.Code)] = p
		}
	}

	s.snap.Store(snap)
	s.logger.Info("pricing configuration loaded",
		zap.Int("zones", len(snap.zones)),
		zap.Int("adjustments", len(snap.adjustments)),
		zap.Int("promotions", len(snap.promotions)))
	return nil
}

// Refresh reloads the configuration snapshot.
func (s *PricingService) Refresh(ctx context.Context) error {
	return s.Initialize(ctx)
}

func promotionUsable(p db.Promotion, now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate.Valid && now.Before(p.StartDate.Time) {
		return false
	}
	if p.EndDate.Valid && now.After(p.EndDate.Time) {
		return false
	}
	if p.UsageLimit.Valid && p.UsageCount >= p.UsageLimit.Int32 {
		return false
	}
	return true
}

// findZone returns the first zone where minDistance <= distance < maxDistance.
// Zones are held in ascending minimum-distance order, so the first match is
// the lowest band. A nil result is a valid outcome, not an error.
func (s *snapshot) findZone(distance float64) *db.DeliveryZone {
	for i := range s.zones {
		z := &s.zones[i]
		if distance >= z.MinDistanceKm && distance < z.MaxDistanceKm {
			zone := *z
			return &zone
		}
	}
	return nil
}

// findAdjustment returns the active adjustment matching name
// case-insensitively, or nil when the name is unknown.
func (s *snapshot) findAdjustment(name string) *db.OrderTypeAdjustment {
	if a, ok := s.adjustments[strings.ToLower(name)]; ok {
		adj := a
		return &adj
	}
	return nil
}

// FindZone looks up the zone band covering distance in the current snapshot.
func (s *PricingService) FindZone(distance float64) *db.DeliveryZone {
	snap := s.snap.Load()
	if snap == nil {
		return nil
	}
	return snap.findZone(distance)
}

// FindAdjustment looks up an adjustment by name in the current snapshot.
func (s *PricingService) FindAdjustment(name string) *db.OrderTypeAdjustment {
	snap := s.snap.Load()
	if snap == nil {
		return nil
	}
	return snap.findAdjustment(name)
}

// ValidatePromoCode checks whether code can be applied to an order of the
// given value for the given customer. A nil result means not applicable
// (unknown code, order below the minimum, or a first-order-only promotion
// for a repeat customer); it is part of normal control flow, not an error.
func (s *PricingService) ValidatePromoCode(ctx context.Context, code string, customerID uuid.UUID, orderValue float64) (*db.Promotion, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrNotInitialized
	}

	promo, ok := snap.promotions[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, nil
	}
	if orderValue < promo.MinOrderValue {
		return nil, nil
	}

	if promo.FirstOrderOnly {
		count, err := s.queries.CountCustomerOrdersByStatus(ctx, db.CountCustomerOrdersByStatusParams{
			CustomerID: customerID,
			Status:     constants.FirstOrderPromoStatus,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to count customer orders")
		}
		if count > 0 {
			return nil, nil
		}
	}

	return &promo, nil
}

// Price composes the breakdown for one delivery. It is a pure function of
// the loaded snapshot and its arguments: no side effects, no external calls.
// Unrecognized adjustment names contribute nothing and raise no error.
func (s *PricingService) Price(distance float64, adjustmentNames []string, orderValue float64, promo *db.Promotion) (*PricingBreakdown, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, ErrNotInitialized
	}

	// Every lookup below resolves against this one snapshot so a racing
	// Refresh can never mix zones from one load with adjustments from
	// another.
	zone := snap.findZone(distance)
	if zone == nil {
		return nil, ErrNoZoneForDistance
	}

	breakdown := &PricingBreakdown{
		DistanceKm:  distance,
		ZoneName:    zone.Name,
		BasePrice:   zone.BasePrice,
		Adjustments: []AdjustmentLine{},
	}

	subtotal := zone.BasePrice
	for _, name := range adjustmentNames {
		adj := snap.findAdjustment(name)
		if adj == nil {
			continue
		}
		amount := adj.Value
		if adj.Kind == constants.AdjustmentKindPercentage {
			amount = zone.BasePrice * adj.Value / 100
		}
		breakdown.Adjustments = append(breakdown.Adjustments, AdjustmentLine{
			Name:   adj.Name,
			Amount: amount,
		})
		subtotal += amount
	}
	breakdown.Subtotal = subtotal

	if promo != nil {
		var discount float64
		switch promo.DiscountKind {
		case constants.DiscountKindFreeDelivery:
			discount = subtotal
		case constants.DiscountKindFlat:
			discount = promo.DiscountValue
			if discount > subtotal {
				discount = subtotal
			}
		case constants.DiscountKindPercentage:
			discount = subtotal * promo.DiscountValue / 100
			if promo.MaxDiscount.Valid && discount > promo.MaxDiscount.Float64 {
				discount = promo.MaxDiscount.Float64
			}
		}
		breakdown.Discount = discount
		breakdown.DiscountName = promo.Name
		breakdown.PromoApplied = promo.Code
	}

	final := subtotal - breakdown.Discount
	if final < 0 {
		final = 0
	}
	breakdown.FinalPrice = final

	return breakdown, nil
}

// IncrementPromoUsage bumps the usage counter for code and emits a
// redemption event, both best-effort in the background. Failures are logged
// and swallowed; counter drift is accepted over blocking a placed order.
func (s *PricingService) IncrementPromoUsage(code string, customerID uuid.UUID) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.incrementPromoUsage(ctx, code, customerID)
	}()
}

func (s *PricingService) incrementPromoUsage(ctx context.Context, code string, customerID uuid.UUID) {
	if err := s.queries.IncrementPromotionUsage(ctx, code); err != nil {
		s.logger.Error("failed to increment promo usage",
			zap.String("code", code),
			zap.Error(err))
	}
	if s.events == nil {
		return
	}
	event := awsclient.PromoRedeemedEvent{
		Code:       code,
		CustomerID: customerID.String(),
		RedeemedAt: s.now(),
	}
	if err := s.events.PublishPromoRedeemed(ctx, event); err != nil {
		s.logger.Error("failed to publish promo redemption event",
			zap.String("code", code),
			zap.Error(err))
	}
}
