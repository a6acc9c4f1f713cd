package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a record id matches nothing in the ledger or
// in a store.
var ErrNotFound = errors.New("record not found")

// Store is the persistence collaborator behind a Book. Implementations live
// in the store package; the engine itself never touches one.
type Store interface {
	// Load returns the full record snapshot.
	Load(ctx context.Context) (*Ledger, error)

	CreateTrade(ctx context.Context, t Trade) error
	DeleteTrade(ctx context.Context, id string) error
	CreateDeposit(ctx context.Context, d Deposit) error
	DeleteDeposit(ctx context.Context, id string) error
	CreateExpense(ctx context.Context, e Expense) error
	DeleteExpense(ctx context.Context, id string) error

	Close() error
}

// Book combines an in-memory ledger with its backing store. Writes are
// optimistic: the ledger is updated first, then the store; a store failure
// rolls the ledger back and returns the error. Reads always derive from the
// in-memory snapshot, so a Book gives read-your-writes even when the store
// is slow.
type Book struct {
	mu     sync.Mutex
	store  Store
	ledger *Ledger
}

// Open loads the store's snapshot into a new Book.
func Open(ctx context.Context, s Store) (*Book, error) {
	ledger, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger from store: %w", err)
	}
	return &Book{store: s, ledger: ledger}, nil
}

// AddTrade validates and records a trade.
func (b *Book) AddTrade(ctx context.Context, t Trade) error {
	if err := t.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ledger.trades = append(b.ledger.trades, t)
	if err := b.store.CreateTrade(ctx, t); err != nil {
		b.ledger.RemoveTrade(t.ID)
		return fmt.Errorf("could not persist trade: %w", err)
	}
	return nil
}

// AddDeposit validates and records a deposit.
func (b *Book) AddDeposit(ctx context.Context, d Deposit) error {
	if err := d.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ledger.deposits = append(b.ledger.deposits, d)
	if err := b.store.CreateDeposit(ctx, d); err != nil {
		b.ledger.RemoveDeposit(d.ID)
		return fmt.Errorf("could not persist deposit: %w", err)
	}
	return nil
}

// AddExpense validates and records an expense.
func (b *Book) AddExpense(ctx context.Context, e Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ledger.expenses = append(b.ledger.expenses, e)
	if err := b.store.CreateExpense(ctx, e); err != nil {
		b.ledger.RemoveExpense(e.ID)
		return fmt.Errorf("could not persist expense: %w", err)
	}
	return nil
}

// DeleteTrade removes the trade with the given id. The record is restored
// if the store delete fails.
func (b *Book) DeleteTrade(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed, ok := b.ledger.RemoveTrade(id)
	if !ok {
		return fmt.Errorf("trade %s: %w", id, ErrNotFound)
	}
	if err := b.store.DeleteTrade(ctx, id); err != nil {
		b.ledger.trades = append(b.ledger.trades, removed)
		return fmt.Errorf("could not delete trade: %w", err)
	}
	return nil
}

// DeleteDeposit removes the deposit with the given id, restoring it on
// store failure.
func (b *Book) DeleteDeposit(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed, ok := b.ledger.RemoveDeposit(id)
	if !ok {
		return fmt.Errorf("deposit %s: %w", id, ErrNotFound)
	}
	if err := b.store.DeleteDeposit(ctx, id); err != nil {
		b.ledger.deposits = append(b.ledger.deposits, removed)
		return fmt.Errorf("could not delete deposit: %w", err)
	}
	return nil
}

// DeleteExpense removes the expense with the given id, restoring it on
// store failure.
func (b *Book) DeleteExpense(ctx context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed, ok := b.ledger.RemoveExpense(id)
	if !ok {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}
	if err := b.store.DeleteExpense(ctx, id); err != nil {
		b.ledger.expenses = append(b.ledger.expenses, removed)
		return fmt.Errorf("could not delete expense: %w", err)
	}
	return nil
}

// Ledger returns the current in-memory ledger. Callers must treat it as a
// read-only snapshot.
func (b *Book) Ledger() *Ledger {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger
}

// Stats derives the portfolio statistics from the current snapshot.
func (b *Book) Stats() PortfolioStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.Stats()
}

// ProfitPerUnit derives the per-sale annotations from the current snapshot.
func (b *Book) ProfitPerUnit() map[string]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.ProfitPerUnit()
}

// NetBalance derives the net cash balance from the current snapshot.
func (b *Book) NetBalance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.NetBalance()
}

// Close closes the backing store.
func (b *Book) Close() error { return b.store.Close() }
