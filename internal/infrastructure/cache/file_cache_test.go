package cache

import (
	"testing"
	"time"

	"github.com/aish-sh/aish/internal/domain"
)

func TestSetAndGet(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	entry := domain.CacheEntry{
		Key:       Key("list files", "/home/user", "llama3.2"),
		Command:   "ls -la",
		Model:     "llama3.2",
		CreatedAt: time.Now(),
	}

	if err := cache.Set(entry); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, ok, err := cache.Get(entry.Key)
	if err != nil || !ok {
		t.Fatalf("Get = (%v, %v), want hit", ok, err)
	}
	if got.Command != "ls -la" {
		t.Fatalf("Command = %q, want %q", got.Command, "ls -la")
	}
}

func TestGetMissReturnsNoError(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	if _, ok, err := cache.Get(Key("x", "/", "m")); ok || err != nil {
		t.Fatalf("Get = (%v, %v), want clean miss", ok, err)
	}
}

func TestExpiredEntriesAreDropped(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	cache.ttl = time.Millisecond
	entry := domain.CacheEntry{
		Key:       Key("a", "/b", "c"),
		Command:   "df -h",
		CreatedAt: time.Now().Add(-time.Minute),
	}
	if err := cache.Set(entry); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	if _, ok, _ := cache.Get(entry.Key); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestClear(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	entry := domain.CacheEntry{Key: Key("a", "/b", "c"), Command: "ls", CreatedAt: time.Now()}
	if err := cache.Set(entry); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if _, ok, _ := cache.Get(entry.Key); ok {
		t.Fatal("expected empty cache after Clear")
	}
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	a := Key("list files", "/home", "llama3.2")
	if a != Key("list files", "/home", "llama3.2") {
		t.Fatal("Key not stable")
	}
	if a == Key("list files", "/home", "mistral") {
		t.Fatal("Key should vary with model")
	}
	if a == Key("list files", "/tmp", "llama3.2") {
		t.Fatal("Key should vary with directory")
	}
}
