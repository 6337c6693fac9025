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

	"library-service/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestStaffPassword = "password123"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce  sync.Once
	staffHash string
	hashErr   error
)

// CreateTestStaff inserts a staff account whose password is TestStaffPassword.
func CreateTestStaff(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		staffHash, hashErr = password.HashPasswordWithCost(TestStaffPassword, bcrypt.MinCost)
	})
	require.NoError(t, hashErr)

	staffID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO staff (id, username, password_hash, role) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
		staffID, username, staffHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM staff WHERE username = $1", username).Scan(&staffID)
		require.NoError(t, err)
	}
	return staffID
}

// SeedReferenceData inserts the eight-item catalogue in fixture order.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO checkables (isbn, kind, title, author, media_type) VALUES
		    ('1-0', 'media', 'The White Whale', 'Melvin H', 'BOOK'),
		    ('1-1', 'media', 'The Sorcerer''s Quest', 'Ana T', 'BOOK'),
		    ('1-2', 'media', 'When You''re Gone', 'Complaining at the Disco', 'MUSIC'),
		    ('1-3', 'media', 'Nature Around the World', 'DocuSpecialists', 'VIDEO'),
		    ('2-0', 'science_kit', 'Anatomy Model', NULL, NULL),
		    ('2-1', 'science_kit', 'Robotics Kit', NULL, NULL),
		    ('3-0', 'ticket', 'Science Museum Tickets', NULL, NULL),
		    ('3-1', 'ticket', 'National Park Day Pass', NULL, NULL)
		ON CONFLICT (isbn) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables except goose's version table and reseeds reference data.
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

	return SeedReferenceData(pool)
}
