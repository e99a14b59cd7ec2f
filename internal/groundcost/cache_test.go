package groundcost

import (
	"testing"
	"time"
)

type testValue struct {
	USDPerPFLOP float64 `json:"usdPerPFLOP"`
}

func TestFileCacheRoundTrip(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	want := testValue{USDPerPFLOP: 1234.5}
	if err := cache.Set("key", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got testValue
	if !cache.Get("key", time.Hour, &got) {
		t.Fatal("expected cache hit")
	}
	if got.USDPerPFLOP != want.USDPerPFLOP {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFileCacheExpiresAfterTTL(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	_ = cache.Set("key", testValue{USDPerPFLOP: 1})

	var got testValue
	if cache.Get("key", -time.Second, &got) {
		t.Error("expected cache miss for negative TTL")
	}
}

func TestFileCacheMissingKey(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	var got testValue
	if cache.Get("missing", time.Hour, &got) {
		t.Error("expected cache miss for missing key")
	}
}
