package components

import (
	"roomfinder/internal/domain/pricing"
	"roomfinder/internal/pkg/clock"
	"roomfinder/internal/pkg/config"
	"roomfinder/internal/usecase"
	"roomfinder/internal/usecase/commands"
	"roomfinder/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewEntitlementCommands,
		commands.NewSweeperCommands,
		commands.NewListingCommands,
		// the access gate charges detail views through the entitlement engine
		func(c commands.EntitlementCommands) queries.ViewRecorder { return c },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAccessQueries,
		queries.NewPaymentQueries,
		queries.NewListingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPricingPolicy(cfg config.Config) (*pricing.Policy, error) {
	return pricing.NewPolicy(cfg.Pricing.Table, cfg.Pricing.PerUnitRate, cfg.Pricing.MinDurationDays, cfg.Pricing.MaxQuantity)
}
