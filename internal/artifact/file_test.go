package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "data"))

	if err := s.Put(ctx, MatchesKey(2020), []byte(`[1]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(ctx, MatchesKey(2020), []byte(`[1,2]`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err := s.Get(ctx, "matches/2020.json")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("Get = %s, want overwritten content", got)
	}

	entries, err := os.ReadDir(filepath.Join(s.Root(), "matches"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestFileStoreNotFound(t *testing.T) {
	s := NewFileStore(t.TempDir())
	_, err := s.Get(context.Background(), StatsKey)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreRejectsEscapingKeys(t *testing.T) {
	s := NewFileStore(t.TempDir())
	for _, key := range []string{"../x.json", "/abs.json", "a/../../b", ""} {
		if err := s.Put(context.Background(), key, []byte("{}")); err == nil {
			t.Errorf("Put(%q) should fail", key)
		}
	}
}

func TestFileStoreListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(t.TempDir())

	keys, err := s.List(ctx, MatchesPrefix)
	if err != nil || len(keys) != 0 {
		t.Fatalf("List on empty store = %v, %v", keys, err)
	}

	for _, k := range []string{MatchesKey(2021), MatchesKey(1999), StatsKey} {
		if err := s.Put(ctx, k, []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}
	keys, err = s.List(ctx, MatchesPrefix)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 2 || keys[0] != "matches/1999.json" || keys[1] != "matches/2021.json" {
		t.Errorf("List = %v", keys)
	}

	if err := s.Delete(ctx, MatchesKey(1999)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, MatchesKey(1999)); err != nil {
		t.Fatalf("Delete of missing key should succeed: %v", err)
	}
	if _, err := s.Get(ctx, MatchesKey(1999)); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted key still readable: %v", err)
	}
}

func TestParseMatchesKey(t *testing.T) {
	tests := []struct {
		key  string
		year int
		ok   bool
	}{
		{"matches/2020.json", 2020, true},
		{"matches/0.json", 0, false},
		{"matches/abc.json", 0, false},
		{"matches/2020.csv", 0, false},
		{"stats.json", 0, false},
	}
	for _, tt := range tests {
		year, ok := ParseMatchesKey(tt.key)
		if year != tt.year || ok != tt.ok {
			t.Errorf("ParseMatchesKey(%q) = %d, %v", tt.key, year, ok)
		}
	}
}
