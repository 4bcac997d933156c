package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"course-checkout/internal/domain/affiliate"
	"course-checkout/internal/domain/coupon"
	"course-checkout/internal/domain/course"
	"course-checkout/internal/domain/credit"
	"course-checkout/internal/domain/user"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errSavepointBegin     = errs.New("failed to create savepoint")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{tx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	tx pgx.Tx

	// Lazy-initialized repositories
	courseRepo       shared.CourseRepository
	couponRepo       shared.CouponRepository
	affiliateRepo    shared.AffiliateRepository
	creditRepo       shared.CreditRepository
	transactionRepo  shared.TransactionRepository
	enrollmentRepo   shared.EnrollmentRepository
	userRepo         shared.UserRepository
	reviewRepo       shared.ReviewRepository
	exchangeRateRepo shared.ExchangeRateRepository
	manualTxRepo     shared.ManualTransactionRepository
	webFormRepo      shared.WebFormRepository
	cartRepo         shared.CartRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) Courses() shared.CourseRepository {
	if t.courseRepo == nil {
		t.courseRepo = repository.NewCourseRepository(t.tx)
	}
	return t.courseRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.tx)
	}
	return t.couponRepo
}

func (t *pgTx) Affiliates() shared.AffiliateRepository {
	if t.affiliateRepo == nil {
		t.affiliateRepo = repository.NewAffiliateRepository(t.tx)
	}
	return t.affiliateRepo
}

func (t *pgTx) Credits() shared.CreditRepository {
	if t.creditRepo == nil {
		t.creditRepo = repository.NewCreditRepository(t.tx)
	}
	return t.creditRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.tx)
	}
	return t.transactionRepo
}

func (t *pgTx) Enrollments() shared.EnrollmentRepository {
	if t.enrollmentRepo == nil {
		t.enrollmentRepo = repository.NewEnrollmentRepository(t.tx)
	}
	return t.enrollmentRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.tx)
	}
	return t.userRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = repository.NewReviewRepository(t.tx)
	}
	return t.reviewRepo
}

func (t *pgTx) ExchangeRates() shared.ExchangeRateRepository {
	if t.exchangeRateRepo == nil {
		t.exchangeRateRepo = repository.NewExchangeRateRepository(t.tx)
	}
	return t.exchangeRateRepo
}

func (t *pgTx) ManualTransactions() shared.ManualTransactionRepository {
	if t.manualTxRepo == nil {
		t.manualTxRepo = repository.NewManualTransactionRepository(t.tx)
	}
	return t.manualTxRepo
}

func (t *pgTx) WebForms() shared.WebFormRepository {
	if t.webFormRepo == nil {
		t.webFormRepo = repository.NewWebFormRepository(t.tx)
	}
	return t.webFormRepo
}

func (t *pgTx) Carts() shared.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.tx)
	}
	return t.cartRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.tx}
	}
	return t.commandReads
}

// Savepoint uses a pgx nested transaction, which pgx issues as SAVEPOINT /
// RELEASE / ROLLBACK TO on the outer connection.
func (t *pgTx) Savepoint(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	nested, err := t.tx.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errSavepointBegin)
	}

	if err := fn(ctx, &pgTx{tx: nested}); err != nil {
		if rollbackErr := nested.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("savepoint rollback failed", "error", rollbackErr.Error())
		}
		return err
	}
	return nested.Commit(ctx)
}

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) CourseByID(ctx context.Context, id uuid.UUID) (*course.Course, error) {
	return repository.NewCourseRepository(r.dbtx).FindByID(ctx, id, false)
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return repository.NewCouponRepository(r.dbtx).FindByCode(ctx, code)
}

func (r *commandReads) AffiliateByCode(ctx context.Context, code string) (*affiliate.Code, error) {
	return repository.NewAffiliateRepository(r.dbtx).FindByCode(ctx, code)
}

func (r *commandReads) CreditByUserID(ctx context.Context, userID uuid.UUID) (*credit.StoredCredit, error) {
	return repository.NewCreditRepository(r.dbtx).FindByUserID(ctx, userID)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return repository.NewUserRepository(r.dbtx).FindByID(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return repository.NewUserRepository(r.dbtx).FindByEmail(ctx, email)
}

func (r *commandReads) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	return repository.NewEnrollmentRepository(r.dbtx).Exists(ctx, userID, courseID)
}
