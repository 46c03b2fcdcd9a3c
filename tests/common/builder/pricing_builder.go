//go:build unit || e2e

package builder

import (
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/pkg/config"
)

// DefaultPolicy is the policy the service runs with out of the box.
func DefaultPolicy() *pricing.Policy {
	cfg := config.NewTestConfig().Pricing
	p, err := pricing.NewPolicy(cfg.Table, cfg.PerUnitRate, cfg.MinDurationDays, cfg.MaxQuantity)
	if err != nil {
		panic(err)
	}
	return p
}
