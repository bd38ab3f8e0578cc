package tokenstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/courierkit/pathao-go"
	"golang.org/x/oauth2"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "token.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteEmpty(t *testing.T) {
	t.Parallel()

	store := openTestSQLite(t)

	_, err := store.Load(context.Background())
	if !errors.Is(err, pathao.ErrNoToken) {
		t.Fatalf("Load() error = %v, want ErrNoToken", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestSQLite(t)

	saved := &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.AccessToken != "access" || loaded.TokenType != "Bearer" || loaded.RefreshToken != "refresh" {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
	if !loaded.Expiry.Equal(saved.Expiry) {
		t.Errorf("Expiry = %v, want %v", loaded.Expiry, saved.Expiry)
	}
}

func TestSQLiteUpsertKeepsSingleRow(t *testing.T) {
	t.Parallel()

	store := openTestSQLite(t)

	for _, access := range []string{"first", "second", "third"} {
		err := store.Save(context.Background(), &oauth2.Token{
			AccessToken: access,
			TokenType:   "Bearer",
			Expiry:      time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("Save(%q) error: %v", access, err)
		}
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.AccessToken != "third" {
		t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, "third")
	}

	var rows int
	if err := store.db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM pathao_token`).Scan(&rows); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}
}

func TestSQLiteEmptyRefreshStoredAsNull(t *testing.T) {
	t.Parallel()

	store := openTestSQLite(t)

	err := store.Save(context.Background(), &oauth2.Token{
		AccessToken: "access",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.RefreshToken != "" {
		t.Errorf("RefreshToken = %q, want empty", loaded.RefreshToken)
	}
}
