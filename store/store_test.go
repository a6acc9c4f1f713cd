package store

import (
	"path/filepath"
	"testing"

	"github.com/etnz/dollartracker/config"
)

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	t.Run("default is jsonl", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Type = ""
		cfg.Store.Path = filepath.Join(dir, "ledger.jsonl")
		s, err := Open(cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()
		if _, ok := s.(*JSONLStore); !ok {
			t.Errorf("got %T, want *JSONLStore", s)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Type = "sqlite"
		cfg.Store.Path = filepath.Join(dir, "ledger.db")
		s, err := Open(cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()
		if _, ok := s.(*SQLiteStore); !ok {
			t.Errorf("got %T, want *SQLiteStore", s)
		}
	})

	t.Run("supabase requires url and key", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Type = "supabase"
		cfg.Store.SupabaseURL = "https://example.supabase.co"
		if _, err := Open(cfg); err == nil {
			t.Error("expected an error without a key")
		}
		cfg.Store.SupabaseKey = "k"
		s, err := Open(cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()
		if _, ok := s.(*SupabaseStore); !ok {
			t.Errorf("got %T, want *SupabaseStore", s)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store.Type = "redis"
		if _, err := Open(cfg); err == nil {
			t.Error("expected an error for an unknown type")
		}
	})
}
