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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPasswordHash is the bcrypt hash of "password123".
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, full_name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (lower(email)) DO NOTHING`,
		userID, "Test "+role, email, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// TestListing is the subset of listing columns fixtures care about.
type TestListing struct {
	Title      string
	City       string
	Rent       int
	Latitude   *float64
	Longitude  *float64
	RoomType   string
	GenderPref string
	CreatedAt  time.Time
}

func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, l TestListing) uuid.UUID {
	t.Helper()

	if l.RoomType == "" {
		l.RoomType = "1BHK"
	}
	if l.GenderPref == "" {
		l.GenderPref = "Any"
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO listings
		(id, owner_id, title, description, rent, city, locality, latitude, longitude, room_type, gender_pref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, '', $7, $8, $9, $10, $11)`,
		id, ownerID, l.Title, "Contact the owner for a visit", l.Rent, l.City,
		l.Latitude, l.Longitude, l.RoomType, l.GenderPref, l.CreatedAt)
	require.NoError(t, err)
	return id
}

// CountRows is used to assert that failed purchases leave nothing behind.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
