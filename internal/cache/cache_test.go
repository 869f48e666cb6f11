package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(true)
	defer c.Close()

	etag := c.Set("stats", []byte(`{"total_matches":1}`), time.Minute)
	data, got, ok := c.Get("stats")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != etag || string(data) != `{"total_matches":1}` {
		t.Errorf("Get = %s, %s", data, got)
	}
	if _, _, ok := c.Get("metadata"); ok {
		t.Error("unexpected hit for missing key")
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)
	defer c.Close()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("players", []byte("[]"), time.Minute)
	now = now.Add(2 * time.Minute)

	if _, _, ok := c.Get("players"); ok {
		t.Error("expired entry returned")
	}
	if s := c.Stats(); s["expired_keys"] != 1 || s["active_keys"] != 0 {
		t.Errorf("Stats = %v", s)
	}
	c.evict()
	if s := c.Stats(); s["total_keys"] != 0 {
		t.Errorf("after evict Stats = %v", s)
	}
}

func TestDisabledCache(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Hour)
	if etag != ComputeETag([]byte("v")) {
		t.Errorf("etag = %s", etag)
	}
	if _, _, ok := c.Get("k"); ok {
		t.Error("disabled cache returned a hit")
	}
	c.Close()
	c.Close()
}

func TestDeleteAndPurge(t *testing.T) {
	c := New(true)
	defer c.Close()
	c.Set("a", []byte("1"), time.Hour)
	c.Set("b", []byte("2"), time.Hour)

	c.Delete("a")
	if _, _, ok := c.Get("a"); ok {
		t.Error("deleted key still present")
	}
	c.Purge()
	if _, _, ok := c.Get("b"); ok {
		t.Error("purged key still present")
	}
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte("same"))
	if a != ComputeETag([]byte("same")) {
		t.Error("etag not stable")
	}
	if a == ComputeETag([]byte("other")) {
		t.Error("different bodies share an etag")
	}
	if a[:3] != `W/"` {
		t.Errorf("etag %s is not weak", a)
	}
}

func TestCheckETagMatch(t *testing.T) {
	etag := `W/"abc"`
	tests := []struct {
		header string
		want   bool
	}{
		{"", false},
		{"*", true},
		{`W/"abc"`, true},
		{`W/"zzz"`, false},
		{`W/"zzz", W/"abc"`, true},
	}
	for _, tt := range tests {
		if got := CheckETagMatch(tt.header, etag); got != tt.want {
			t.Errorf("CheckETagMatch(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
