package cache

import (
	"testing"
	"time"
)

func TestLRUCache_Basic(t *testing.T) {
	cache := NewLRUCache(3, time.Hour)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	if val, ok := cache.Get("a"); !ok || val != 1 {
		t.Errorf("expected 1, got %v", val)
	}

	// Add one more, should evict "b" (least recently used)
	cache.Set("d", 4)

	if _, ok := cache.Get("b"); ok {
		t.Error("expected 'b' to be evicted")
	}

	if cache.Len() != 3 {
		t.Errorf("expected cache length 3, got %d", cache.Len())
	}
}

func TestLRUCache_TTL(t *testing.T) {
	cache := NewLRUCache(10, 10*time.Millisecond)

	cache.Set("key", "value")

	if val, ok := cache.Get("key"); !ok || val != "value" {
		t.Error("expected value to be present")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok := cache.Get("key"); ok {
		t.Error("expected value to be expired")
	}
}

func TestLRUCache_DumpRestore(t *testing.T) {
	cache := NewLRUCache(10, time.Hour)
	cache.Set("a", "one")
	cache.Set("b", "two")

	restored := NewLRUCache(10, time.Hour)
	restored.Restore(cache.Dump())

	if val, ok := restored.Get("a"); !ok || val != "one" {
		t.Errorf("expected restored 'a', got %v", val)
	}
	if restored.Len() != 2 {
		t.Errorf("expected 2 restored entries, got %d", restored.Len())
	}
}

func TestLRUCache_RestoreSkipsExpired(t *testing.T) {
	dump := map[string]CacheEntry{
		"live": {Value: "v", ExpiresAt: time.Now().Add(time.Hour)},
		"dead": {Value: "v", ExpiresAt: time.Now().Add(-time.Hour)},
	}

	cache := NewLRUCache(10, time.Hour)
	cache.Restore(dump)

	if cache.Len() != 1 {
		t.Fatalf("expected 1 entry after restore, got %d", cache.Len())
	}
	if _, ok := cache.Get("dead"); ok {
		t.Error("expected expired entry to be skipped")
	}
}

func BenchmarkLRUCache_Set(b *testing.B) {
	cache := NewLRUCache(1000, 5*time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Set(HashKey(string(rune(i))), "value")
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	cache := NewLRUCache(1000, 5*time.Minute)
	for i := 0; i < 100; i++ {
		cache.Set(HashKey(string(rune(i))), "value")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(HashKey(string(rune(i % 100))))
	}
}
