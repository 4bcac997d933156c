//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of DefaultPassword
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

// CreateTestUser inserts a verified, active user. An existing email is reused.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	now := time.Now()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, verified, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, true, $6, $6) ON CONFLICT (email) DO NOTHING`,
		userID, strings.Split(email, "@")[0], email, passwordHash, role, now)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// CreateTestCredit grants a stored credit valid from an hour ago for a day.
func CreateTestCredit(t *testing.T, db DBLike, userID uuid.UUID, amount decimal.Decimal) uuid.UUID {
	t.Helper()

	creditID := uuid.New()
	now := time.Now()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO stored_credits (id, user_id, amount, starts_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		creditID, userID, amount, now.Add(-time.Hour), now.Add(24*time.Hour), now)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "UPDATE users SET credit_id = $1 WHERE id = $2", creditID, userID)
	require.NoError(t, err)

	return creditID
}

func CreateTestCourse(t *testing.T, db DBLike, name string, price decimal.Decimal) uuid.UUID {
	t.Helper()

	courseID := uuid.New()
	now := time.Now()
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-") + "-" + courseID.String()[:8]

	_, err := db.Exec(context.Background(), `INSERT INTO courses (id, name, slug, price, is_published, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, true, $5, $5)`,
		courseID, name, slug, price, now)
	require.NoError(t, err)

	return courseID
}

func CreateTestCoupon(t *testing.T, db DBLike, code string, percentage decimal.Decimal, maxUses int) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	now := time.Now()

	_, err := db.Exec(context.Background(), `INSERT INTO coupons (id, code, discount_percentage, max_use_times, starts_at, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		couponID, code, percentage, maxUses, now.Add(-time.Hour), now.Add(24*time.Hour), now)
	require.NoError(t, err)

	return couponID
}

func CreateTestEnrollment(t *testing.T, db DBLike, userID, courseID uuid.UUID) uuid.UUID {
	t.Helper()

	txID := uuid.New()
	now := time.Now()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO transactions (id, user_id, course_id, gateway, currency, base_price, checkout_price, provider_ref, payment_ref, is_paid, paid_at, created_at, updated_at)
		SELECT $1, $2, id, 'razorpay', 'INR', price, GREATEST(price, 1), $3, $4, true, $5, $5, $5 FROM courses WHERE id = $6`,
		txID, userID, "order_"+txID.String()[:8], "pay_"+txID.String()[:8], now, courseID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO enrollments (user_id, course_id, transaction_id, enrolled_at) VALUES ($1, $2, $3, $4)",
		userID, courseID, txID, now)
	require.NoError(t, err)

	return txID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
