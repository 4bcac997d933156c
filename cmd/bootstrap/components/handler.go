package components

import (
	"course-checkout/internal/handler"
	"course-checkout/internal/handler/api"
	"course-checkout/internal/handler/middleware"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		NewPaymentHandler,
		api.NewUserHandler,
		api.NewCourseHandler,
		api.NewDiscountCodeHandler,
		api.NewReviewHandler,
		api.NewTransactionHandler,
		api.NewExchangeRateHandler,
		api.NewJobHandler,
		api.NewManualTransactionHandler,
		api.NewWebFormHandler,
		api.NewStatsHandler,
		api.NewCartHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(cmds, users, cfg.Cookie, jwtService)
}

func NewPaymentHandler(checkout commands.CheckoutCommands, settlement commands.SettlementCommands, cfg config.Config) *api.PaymentHandler {
	return api.NewPaymentHandler(checkout, settlement, cfg.Razorpay)
}
