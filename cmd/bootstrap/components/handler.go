package components

import (
	"roomfinder/internal/handler"
	"roomfinder/internal/handler/api"
	"roomfinder/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPaymentHandler,
		api.NewListingHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, payment *api.PaymentHandler, listing *api.ListingHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Payment: payment, Listing: listing}
		},
	),
	fx.Invoke(handler.NewRouter),
)
