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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestAsset(t *testing.T, db DBLike, ownerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	assetID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO assets (id, owner_id, title) VALUES ($1, $2, $3)",
		assetID, ownerID, title)
	require.NoError(t, err)

	return assetID
}

func CreateTestRentalTerms(t *testing.T, db DBLike, assetID, ownerID uuid.UUID, dailyRateCents int64) uuid.UUID {
	t.Helper()

	termsID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO rental_terms (id, asset_id, owner_id, daily_rate_cents) VALUES ($1, $2, $3, $4)",
		termsID, assetID, ownerID, dailyRateCents)
	require.NoError(t, err)

	return termsID
}

func CreateTestBooking(t *testing.T, db DBLike, termsID, assetID, requesterID uuid.UUID, startDate, endDate time.Time, totalCents int64, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, rental_terms_id, asset_id, requester_id, start_date, end_date, total_amount_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, termsID, assetID, requesterID, startDate, endDate, totalCents, status)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
