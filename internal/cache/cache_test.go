package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestCondenseKeyDeterministic(t *testing.T) {
	a := CondenseKey("the text", 200, "openai", "gpt-4o-mini")
	b := CondenseKey("the text", 200, "openai", "gpt-4o-mini")
	if a != b {
		t.Errorf("same inputs produced different keys: %s vs %s", a, b)
	}
}

func TestCondenseKeyDistinct(t *testing.T) {
	base := CondenseKey("the text", 200, "openai", "gpt-4o-mini")

	variants := map[string]string{
		"different text":     CondenseKey("other text", 200, "openai", "gpt-4o-mini"),
		"different budget":   CondenseKey("the text", 300, "openai", "gpt-4o-mini"),
		"different provider": CondenseKey("the text", 200, "ollama", "gpt-4o-mini"),
		"different model":    CondenseKey("the text", 200, "openai", "gpt-4o"),
	}
	for name, key := range variants {
		if key == base {
			t.Errorf("%s produced the same key", name)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := CondenseKey("disk text", 100, "openai", "")
	value := []byte("condensed output")

	if err := c.Set(key, value, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("value not found after Set")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %q, want %q", got, value)
	}
}

func TestDiskCacheExpiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	key := CondenseKey("expiring", 100, "openai", "")
	if err := c.Set(key, []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, found := c.Get(key); found {
		t.Error("expired entry still retrievable")
	}
}

func TestDiskCacheMiss(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if _, found := c.Get("never-set"); found {
		t.Error("Get reported a hit for an absent key")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, found := c.Get("k")
	if !found || !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get = %q, %v", got, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("value still present after Delete")
	}
}

func TestLayeredCachePromotion(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	key := CondenseKey("promoted", 100, "openai", "")
	value := []byte("promoted output")

	// Seed only the disk layer, simulating a fresh process with a warm
	// disk cache
	if err := NewDiskCache(dir, time.Hour).Set(key, value, 0); err != nil {
		t.Fatalf("disk Set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("layered Get missed a disk entry")
	}
	if !bytes.Equal(got, value) {
		t.Errorf("got %q, want %q", got, value)
	}

	// The hit should now be served from memory
	if _, found := c.memory.Get(key); !found {
		t.Error("disk hit not promoted to memory layer")
	}
}

func TestLayeredCacheSetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	key := CondenseKey("both layers", 100, "openai", "")
	if err := c.Set(key, []byte("x"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := c.memory.Get(key); !found {
		t.Error("memory layer missing the entry")
	}
	if _, found := c.disk.Get(key); !found {
		t.Error("disk layer missing the entry")
	}
}
