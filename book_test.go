package tracker

import (
	"context"
	"errors"
	"testing"
)

// fakeStore implements Store in memory and can be told to fail writes, to
// exercise the Book's rollback path.
type fakeStore struct {
	ledger  *Ledger
	failing bool
	creates int
	deletes int
}

var errStoreDown = errors.New("store down")

func newFakeStore() *fakeStore { return &fakeStore{ledger: NewLedger()} }

func (s *fakeStore) Load(context.Context) (*Ledger, error) {
	snap := NewLedger()
	snap.trades = s.ledger.Trades()
	snap.deposits = s.ledger.Deposits()
	snap.expenses = s.ledger.Expenses()
	return snap, nil
}

func (s *fakeStore) CreateTrade(_ context.Context, t Trade) error {
	if s.failing {
		return errStoreDown
	}
	s.creates++
	return s.ledger.Append(t)
}

func (s *fakeStore) DeleteTrade(_ context.Context, id string) error {
	if s.failing {
		return errStoreDown
	}
	if _, ok := s.ledger.RemoveTrade(id); !ok {
		return ErrNotFound
	}
	s.deletes++
	return nil
}

func (s *fakeStore) CreateDeposit(_ context.Context, d Deposit) error {
	if s.failing {
		return errStoreDown
	}
	s.creates++
	return s.ledger.Append(d)
}

func (s *fakeStore) DeleteDeposit(_ context.Context, id string) error {
	if s.failing {
		return errStoreDown
	}
	if _, ok := s.ledger.RemoveDeposit(id); !ok {
		return ErrNotFound
	}
	s.deletes++
	return nil
}

func (s *fakeStore) CreateExpense(_ context.Context, e Expense) error {
	if s.failing {
		return errStoreDown
	}
	s.creates++
	return s.ledger.Append(e)
}

func (s *fakeStore) DeleteExpense(_ context.Context, id string) error {
	if s.failing {
		return errStoreDown
	}
	if _, ok := s.ledger.RemoveExpense(id); !ok {
		return ErrNotFound
	}
	s.deletes++
	return nil
}

func (s *fakeStore) Close() error { return nil }

func TestBookAddTrade(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	book, err := Open(ctx, store)
	if err != nil {
		t.Fatal(err)
	}

	tr := buy(0, 100, 110)
	if err := book.AddTrade(ctx, tr); err != nil {
		t.Fatal(err)
	}

	if store.creates != 1 {
		t.Errorf("store saw %d creates, want 1", store.creates)
	}
	if got := book.Stats().CurrentHoldingsForeign; !almostEqual(got, 100) {
		t.Errorf("holdings after add = %v, want 100", got)
	}
}

func TestBookAddTradeRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	book, err := Open(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	store.failing = true

	if err := book.AddTrade(ctx, buy(0, 100, 110)); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected the store error, got %v", err)
	}

	// the optimistic insert must have been rolled back
	if got := len(book.Ledger().Trades()); got != 0 {
		t.Errorf("ledger holds %d trades after rollback, want 0", got)
	}
}

func TestBookAddValidatesFirst(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	book, err := Open(ctx, store)
	if err != nil {
		t.Fatal(err)
	}

	if err := book.AddTrade(ctx, NewBuy(day(0), -1, 100, -100, "")); err == nil {
		t.Fatal("invalid trade accepted")
	}
	if store.creates != 0 {
		t.Error("invalid trade reached the store")
	}
}

func TestBookDeleteRestoresOnFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	book, err := Open(ctx, store)
	if err != nil {
		t.Fatal(err)
	}

	d := NewDeposit(day(0), 5000, "seed")
	if err := book.AddDeposit(ctx, d); err != nil {
		t.Fatal(err)
	}

	store.failing = true
	if err := book.DeleteDeposit(ctx, d.ID); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected the store error, got %v", err)
	}

	if got := len(book.Ledger().Deposits()); got != 1 {
		t.Errorf("deposit not restored after failed delete, have %d", got)
	}
}

func TestBookDeleteUnknownID(t *testing.T) {
	ctx := context.Background()
	book, err := Open(ctx, newFakeStore())
	if err != nil {
		t.Fatal(err)
	}

	if err := book.DeleteTrade(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBookReadYourWrites(t *testing.T) {
	ctx := context.Background()
	book, err := Open(ctx, newFakeStore())
	if err != nil {
		t.Fatal(err)
	}

	if err := book.AddDeposit(ctx, NewDeposit(day(0), 10000, "seed")); err != nil {
		t.Fatal(err)
	}
	if err := book.AddTrade(ctx, NewBuy(day(1), 100, 110, 11000, "")); err != nil {
		t.Fatal(err)
	}

	if got := book.NetBalance(); !almostEqual(got, -1000) {
		t.Errorf("net balance = %v, want -1000", got)
	}
}
