// Package testutil holds helpers shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/photovault/photovault/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 720720

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// Migrations lists the schema migrations in apply order.
var Migrations = []string{
	"000001_users",
	"000002_galleries",
	"000003_photos",
}

// ResetSchema drops every table and reapplies all migrations.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i := len(Migrations) - 1; i >= 0; i-- {
		if err := ApplyMigration(ctx, pool, Migrations[i]+".down.sql"); err != nil {
			return err
		}
	}
	for _, name := range Migrations {
		if err := ApplyMigration(ctx, pool, name+".up.sql"); err != nil {
			return err
		}
	}
	return nil
}

// ApplyMigration executes one file from the migrations directory.
func ApplyMigration(ctx context.Context, pool *pgxpool.Pool, file string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	sql, err := os.ReadFile(filepath.Join(root, "migrations", file))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", file, err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply migration %s: %w", file, err)
	}
	return nil
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", "..")), nil
}

// NewID returns a fresh ULID, the id format every table uses.
func NewID() string {
	return ulid.Make().String()
}

// UniqueName returns prefix with a short random suffix.
func UniqueName(prefix string) string {
	id := NewID()
	return prefix + strings.ToLower(id[len(id)-10:])
}

// NewTestUser creates a user with unique username and email.
func NewTestUser(t testing.TB) *model.User {
	t.Helper()
	now := time.Now().UTC()
	name := UniqueName("user")
	return &model.User{
		ID:           NewID(),
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestGallery creates a gallery owned by userID.
func NewTestGallery(t testing.TB, userID, name string) *model.Gallery {
	t.Helper()
	now := time.Now().UTC()
	return &model.Gallery{
		ID:        NewID(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestPhoto creates a small PNG-typed photo owned by userID.
func NewTestPhoto(t testing.TB, userID string, galleryID *string) *model.Photo {
	t.Helper()
	data := []byte("\x89PNG\r\n\x1a\n")
	return &model.Photo{
		ID:               NewID(),
		Title:            UniqueName("photo"),
		OriginalFilename: "test.png",
		ContentType:      "image/png",
		Size:             int64(len(data)),
		Data:             data,
		UserID:           userID,
		GalleryID:        galleryID,
		CreatedAt:        time.Now().UTC(),
	}
}
