package commands

import (
	"context"
	"errors"
	"log/slog"

	"roomfinder/internal/domain/grant"
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/infra"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/errs"
	"roomfinder/internal/pkg/metrics"
	"roomfinder/internal/pkg/tracing"
	"roomfinder/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrNoMatchingListings = errs.New("no listings match the requested area and filters")
	ErrTransactionFailed  = errs.New("purchase transaction failed")
	ErrGrantNotFound      = errs.New("grant not found")
)

type EntitlementCommands interface {
	Purchase(ctx context.Context, userID uuid.UUID, req grant.PurchaseRequest) (*PurchaseResult, error)
	RecordView(ctx context.Context, userID, grantID, listingID uuid.UUID) (*shared.ViewOutcome, error)
}

type entitlementCommandsImpl struct {
	uow    shared.UnitOfWork
	policy *pricing.Policy
	clock  clock.Clock
	tracer *tracing.Tracer
}

func NewEntitlementCommands(uow shared.UnitOfWork, policy *pricing.Policy, clk clock.Clock, tracer *tracing.Tracer) EntitlementCommands {
	return &entitlementCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clk,
		tracer: tracer,
	}
}

// Purchase pins the nearest listings and persists the grant with its access set in one transaction.
func (uc *entitlementCommandsImpl) Purchase(ctx context.Context, userID uuid.UUID, req grant.PurchaseRequest) (*PurchaseResult, error) {
	ctx, span := uc.tracer.Start(ctx, "entitlement.Purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("grant.area", req.Area().Key()),
		attribute.Int("grant.quantity", req.Quantity()),
	)

	quote, err := uc.policy.Quote(req.Quantity())
	if err != nil {
		metrics.PurchaseFailures.WithLabelValues("invalid_request").Inc()
		return nil, errs.Mark(err, grant.ErrInvalidRequest)
	}

	now := uc.clock.Now()
	var result *PurchaseResult

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pool, derr := tx.Reads().CandidatesByArea(ctx, req.Area(), req.Filter())
		if derr != nil {
			return derr
		}
		if len(pool) == 0 {
			return ErrNoMatchingListings
		}

		ranked := grant.SelectNearest(req.Origin(), pool, req.Quantity())
		g, derr := grant.New(userID, req, quote, grant.PinnedFromRanked(ranked), now)
		if derr != nil {
			return derr
		}

		if derr = tx.Grants().Create(ctx, tx.DB(), g); derr != nil {
			return derr
		}

		pinned := make([]PinnedSummary, len(ranked))
		for i, r := range ranked {
			pinned[i] = PinnedSummary{
				ListingID:  r.Item.ID,
				Title:      r.Item.Title,
				Rent:       r.Item.Rent,
				Rank:       r.Rank,
				DistanceKm: r.Distance.KmPtr(),
			}
		}
		result = &PurchaseResult{Grant: g, Pinned: pinned}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "purchase failed")
		return nil, uc.classifyPurchaseError(err, userID, req)
	}

	metrics.GrantsPurchased.WithLabelValues(req.Area().Key()).Inc()
	metrics.GrantRevenue.Add(float64(result.Grant.PricePaid()))

	slog.Info("grant purchased",
		"user_id", userID,
		"grant_id", result.Grant.ID(),
		"area", req.Area().String(),
		"quantity", req.Quantity(),
		"pinned", result.Grant.PinnedCount(),
		"price", result.Grant.PricePaid(),
		"expires_at", result.Grant.ExpiresAt())

	return result, nil
}

func (uc *entitlementCommandsImpl) classifyPurchaseError(err error, userID uuid.UUID, req grant.PurchaseRequest) error {
	switch {
	case errs.Is(err, ErrNoMatchingListings):
		metrics.PurchaseFailures.WithLabelValues("no_matching_listings").Inc()
		return err
	case errors.Is(err, context.Canceled):
		metrics.PurchaseFailures.WithLabelValues("canceled").Inc()
		return errs.Mark(err, ErrTransactionFailed)
	default:
		metrics.PurchaseFailures.WithLabelValues("transaction").Inc()
		slog.Error("purchase transaction failed",
			"user_id", userID,
			"area", req.Area().String(),
			"quantity", req.Quantity(),
			"error", err.Error())
		return errs.Mark(err, ErrTransactionFailed)
	}
}

// RecordView charges a detail view of a pinned listing against the grant's quota,
// at most once per listing and never beyond the purchased quantity.
func (uc *entitlementCommandsImpl) RecordView(ctx context.Context, userID, grantID, listingID uuid.UUID) (*shared.ViewOutcome, error) {
	outcome := &shared.ViewOutcome{GrantID: grantID, ListingID: listingID}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().GrantByID(ctx, grantID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrGrantNotFound
			}
			return derr
		}
		if snap.UserID != userID {
			return ErrGrantNotFound
		}

		pinned, derr := tx.Grants().IsPinned(ctx, tx.DB(), grantID, listingID)
		if derr != nil {
			return derr
		}
		if !pinned {
			return errs.Mark(errs.Newf("listing %s not pinned by grant %s", listingID, grantID), grant.ErrNotEntitled)
		}

		first, derr := tx.Grants().RecordView(ctx, tx.DB(), grantID, listingID, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if !first {
			outcome.Counted = false
			return nil
		}

		incremented, derr := tx.Grants().IncrementConsumed(ctx, tx.DB(), grantID)
		if derr != nil {
			return derr
		}
		outcome.Counted = incremented
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.GrantViews.WithLabelValues(boolLabel(outcome.Counted)).Inc()
	return outcome, nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
