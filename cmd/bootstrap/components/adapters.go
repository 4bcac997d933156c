package components

import (
	"course-checkout/internal/infra/cache"
	"course-checkout/internal/infra/exchangerate"
	"course-checkout/internal/infra/gateway"
	"course-checkout/internal/infra/mail"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapters",
	fx.Provide(
		fx.Annotate(
			NewRazorpay,
			fx.As(new(shared.OrderGateway)),
		),
		fx.Annotate(
			NewStripe,
			fx.As(new(shared.SessionGateway)),
		),
		fx.Annotate(
			NewRateFetcher,
			fx.As(new(shared.RateFetcher)),
		),
		fx.Annotate(
			NewRateCache,
			fx.As(new(shared.RateCache)),
		),
		NewMailer,
	),
)

func NewRazorpay(cfg config.Config) *gateway.Razorpay {
	return gateway.NewRazorpay(cfg.Razorpay)
}

func NewStripe(cfg config.Config) *gateway.Stripe {
	return gateway.NewStripe(cfg.Stripe)
}

func NewMailer(cfg config.Config) (shared.Mailer, error) {
	return mail.New(cfg.Mail)
}

func NewRateFetcher(cfg config.Config, clk clock.Clock) *exchangerate.Client {
	return exchangerate.NewClient(cfg.ExchangeRate, clk)
}

func NewRateCache(client *redis.Client, cfg config.Config) *cache.RateCache {
	return cache.NewRateCache(client, cfg.ExchangeRate.CacheTTL)
}
