// Package store provides the ledger persistence backends behind
// tracker.Book: a JSONL flat file, a local SQLite database, and a remote
// Supabase (PostgREST) service.
package store

import (
	"fmt"

	tracker "github.com/etnz/dollartracker"
	"github.com/etnz/dollartracker/config"
)

// Open creates the store selected by the configuration.
func Open(cfg *config.Config) (tracker.Store, error) {
	switch cfg.Store.Type {
	case "", "jsonl":
		return NewJSONL(cfg.Store.Path), nil
	case "sqlite":
		return NewSQLite(cfg.Store.Path)
	case "supabase":
		if cfg.Store.SupabaseURL == "" || cfg.Store.SupabaseKey == "" {
			return nil, fmt.Errorf("supabase store requires both url and key (set %s and %s)", config.EnvSupabaseURL, config.EnvSupabaseKey)
		}
		return NewSupabase(cfg.Store.SupabaseURL, cfg.Store.SupabaseKey), nil
	default:
		return nil, fmt.Errorf("unknown store type: %q", cfg.Store.Type)
	}
}
