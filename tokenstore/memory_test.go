package tokenstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courierkit/pathao-go"
	"golang.org/x/oauth2"
)

func TestMemoryEmpty(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	_, err := store.Load(context.Background())
	if !errors.Is(err, pathao.ErrNoToken) {
		t.Fatalf("Load() error = %v, want ErrNoToken", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	saved := &oauth2.Token{
		AccessToken:  "access",
		TokenType:    "Bearer",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}
	if err := store.Save(context.Background(), saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.AccessToken != saved.AccessToken || loaded.RefreshToken != saved.RefreshToken {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
	if !loaded.Expiry.Equal(saved.Expiry) {
		t.Errorf("Expiry = %v, want %v", loaded.Expiry, saved.Expiry)
	}

	// The store hands out copies; callers must not share memory with it.
	loaded.AccessToken = "mutated"
	again, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if again.AccessToken != "access" {
		t.Errorf("AccessToken = %q after caller mutation, want %q", again.AccessToken, "access")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	t.Parallel()

	store := NewMemory()

	for _, access := range []string{"first", "second"} {
		if err := store.Save(context.Background(), &oauth2.Token{AccessToken: access}); err != nil {
			t.Fatalf("Save(%q) error: %v", access, err)
		}
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.AccessToken != "second" {
		t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, "second")
	}
}
