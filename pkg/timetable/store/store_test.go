package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

// exerciseStore checks the contract shared by every backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, KeySelection); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, KeySelection, `{"sheet":"1 курс"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, KeySelection, `{"sheet":"2 курс"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := s.Get(ctx, KeySelection)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `{"sheet":"2 курс"}` {
		t.Errorf("Expected last written value, got %q", got)
	}

	if _, err := s.Get(ctx, KeyWorkbook); !errors.Is(err, ErrNotFound) {
		t.Errorf("Slots must be independent, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != KeySelection+".json" {
		t.Errorf("Expected a single slot file and no temp files, got %v", entries)
	}

	// A second store over the same directory sees the data.
	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, err := reopened.Get(context.Background(), KeySelection); err != nil || got != `{"sheet":"2 курс"}` {
		t.Errorf("Reopened store Get = %q, %v", got, err)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(context.Background(), RedisOptions{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)

	if !mr.Exists(redisKeyPrefix + KeySelection) {
		t.Errorf("Expected key %q in redis", redisKeyPrefix+KeySelection)
	}
	if ttl := mr.TTL(redisKeyPrefix + KeySelection); ttl != 0 {
		t.Errorf("Expected no expiry, got %v", ttl)
	}
}

func TestRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisStore(context.Background(), RedisOptions{Addr: addr}); err == nil {
		t.Error("Expected connection error")
	}
}
