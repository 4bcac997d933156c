package components

import (
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/readstore"
	"course-checkout/internal/infra/repository"
	"course-checkout/internal/infra/uow"
	"course-checkout/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCourseReadStore,
			fx.As(new(queries.CourseReadStore)),
		),
		fx.Annotate(
			readstore.NewDiscountCodeReadStore,
			fx.As(new(queries.DiscountCodeReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCreditReadStore,
			fx.As(new(queries.CreditReadStore)),
		),
		fx.Annotate(
			readstore.NewManualTransactionReadStore,
			fx.As(new(queries.ManualTransactionReadStore)),
		),
		fx.Annotate(
			readstore.NewWebFormReadStore,
			fx.As(new(queries.WebFormReadStore)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartReadStore)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		// The single-row rate table is read straight from its repository.
		fx.Annotate(
			repository.NewExchangeRateRepository,
			fx.As(new(queries.ExchangeRateReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
