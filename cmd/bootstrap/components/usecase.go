package components

import (
	"time"

	"course-checkout/internal/domain/checkout"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/pkg/jwt"
	"course-checkout/internal/pkg/money"
	"course-checkout/internal/usecase"
	"course-checkout/internal/usecase/commands"
	"course-checkout/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewResolver,
	NewCheckoutSettings,
	NewMailSettings,
	NewIdentitySettings,
	NewTokenIssuer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCourseCommands,
		commands.NewDiscountCodeCommands,
		commands.NewReviewCommands,
		commands.NewCheckoutCommands,
		commands.NewSettlementCommands,
		commands.NewDiscountWindowCommands,
		commands.NewExchangeRateCommands,
		commands.NewManualTransactionCommands,
		commands.NewWebFormCommands,
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCourseQueries,
		queries.NewDiscountCodeQueries,
		queries.NewReviewQueries,
		queries.NewTransactionQueries,
		queries.NewExchangeRateQueries,
		queries.NewManualTransactionQueries,
		queries.NewWebFormQueries,
		queries.NewCartQueries,
		queries.NewStatsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewResolver(cfg config.Config) (*checkout.Resolver, error) {
	policy, err := checkout.ParseWindowPolicy(cfg.Checkout.WindowPolicy)
	if err != nil {
		return nil, err
	}
	capPercent, err := decimal.NewFromString(cfg.Checkout.CreditCapPercent)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid CHECKOUT_CREDIT_CAP_PERCENT %q", cfg.Checkout.CreditCapPercent)
	}
	return checkout.NewResolver(policy, capPercent), nil
}

func NewTokenIssuer(s *jwt.Service) commands.TokenIssuer {
	return s
}

func NewCheckoutSettings(cfg config.Config) commands.CheckoutSettings {
	return commands.CheckoutSettings{
		Currency:       cfg.Checkout.Currency,
		MinorUnitValue: cfg.Checkout.MinorUnitValue,
		GatewayTimeout: time.Duration(cfg.Checkout.GatewayTimeoutSec) * time.Second,
	}
}

func NewMailSettings(cfg config.Config) commands.MailSettings {
	return commands.MailSettings{
		OperatorAddr: cfg.Mail.OperatorAddr,
		TeamName:     cfg.Mail.TeamName,
	}
}

func NewIdentitySettings(cfg config.Config) (commands.IdentitySettings, error) {
	amount, err := decimal.NewFromString(cfg.Credit.DefaultAmount)
	if err != nil {
		return commands.IdentitySettings{}, errs.Wrapf(err, "invalid DEFAULT_INCASH_AMOUNT %q", cfg.Credit.DefaultAmount)
	}
	if amount.IsNegative() || !money.HasScale(amount) {
		return commands.IdentitySettings{}, errs.Wrapf(money.ErrNegativeAmount, "invalid DEFAULT_INCASH_AMOUNT %q", cfg.Credit.DefaultAmount)
	}
	return commands.IdentitySettings{
		CreditAmount:   amount,
		CreditValidity: time.Duration(cfg.Credit.DefaultExpiryDays) * 24 * time.Hour,
		VerifyURL:      cfg.Mail.VerifyURL,
		TeamName:       cfg.Mail.TeamName,
	}, nil
}
