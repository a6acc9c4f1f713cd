package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tracker "github.com/etnz/dollartracker"
)

// JSONLStore persists the ledger as one JSONL file. Creates append a single
// line; deletes rewrite the file through a temp file so a crash never leaves
// a half-written ledger.
type JSONLStore struct {
	path string
}

// NewJSONL creates a store backed by the JSONL file at path. The file is
// created lazily on first write.
func NewJSONL(path string) *JSONLStore {
	return &JSONLStore{path: path}
}

// Load reads the full ledger from the file. A missing file yields an empty
// ledger.
func (s *JSONLStore) Load(_ context.Context) (*tracker.Ledger, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		log.Printf("warning, ledger file %q does not exist, starting empty", s.path)
		return tracker.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger file %q: %w", s.path, err)
	}
	defer f.Close()
	return tracker.DecodeLedger(f)
}

// appendRecord writes one record at the end of the file, creating it (and
// its directory) if needed.
func (s *JSONLStore) appendRecord(rec tracker.Record) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger file %q: %w", s.path, err)
	}
	defer f.Close()
	return tracker.EncodeRecord(f, rec)
}

// rewrite persists the whole ledger atomically.
func (s *JSONLStore) rewrite(l *tracker.Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*.jsonl")
	if err != nil {
		return fmt.Errorf("create temp ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tracker.EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// deleteRecord reloads the ledger, removes the record, and rewrites the file.
func (s *JSONLStore) deleteRecord(ctx context.Context, kind tracker.RecordKind, id string) error {
	l, err := s.Load(ctx)
	if err != nil {
		return err
	}
	var ok bool
	switch kind {
	case tracker.KindBuy: // covers both trade kinds
		_, ok = l.RemoveTrade(id)
	case tracker.KindDeposit:
		_, ok = l.RemoveDeposit(id)
	case tracker.KindExpense:
		_, ok = l.RemoveExpense(id)
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", kind, id, tracker.ErrNotFound)
	}
	return s.rewrite(l)
}

func (s *JSONLStore) CreateTrade(_ context.Context, t tracker.Trade) error {
	return s.appendRecord(t)
}

func (s *JSONLStore) DeleteTrade(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, tracker.KindBuy, id)
}

func (s *JSONLStore) CreateDeposit(_ context.Context, d tracker.Deposit) error {
	return s.appendRecord(d)
}

func (s *JSONLStore) DeleteDeposit(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, tracker.KindDeposit, id)
}

func (s *JSONLStore) CreateExpense(_ context.Context, e tracker.Expense) error {
	return s.appendRecord(e)
}

func (s *JSONLStore) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteRecord(ctx, tracker.KindExpense, id)
}

func (s *JSONLStore) Close() error { return nil }

var _ tracker.Store = (*JSONLStore)(nil)
