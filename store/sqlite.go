package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	tracker "github.com/etnz/dollartracker"
)

// Schema creates the three record tables. Dates are stored as RFC 3339
// strings so rows stay readable with the sqlite3 shell.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id             TEXT PRIMARY KEY,
	kind           TEXT NOT NULL,
	amount_foreign REAL NOT NULL,
	rate_local     REAL NOT NULL,
	total_local    REAL NOT NULL,
	date           TEXT NOT NULL,
	note           TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS deposits (
	id           TEXT PRIMARY KEY,
	amount_local REAL NOT NULL,
	source       TEXT NOT NULL DEFAULT '',
	date         TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS expenses (
	id           TEXT PRIMARY KEY,
	amount_local REAL NOT NULL,
	reason       TEXT NOT NULL DEFAULT '',
	date         TEXT NOT NULL
);
`

// SQLiteStore is the local database fallback when no remote store is
// configured.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and ensures the schema.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*tracker.Ledger, error) {
	ledger := tracker.NewLedger()

	rows, err := s.db.QueryContext(ctx, `SELECT id, kind, amount_foreign, rate_local, total_local, date, note FROM trades ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t tracker.Trade
		var kind, date string
		if err := rows.Scan(&t.ID, &kind, &t.AmountForeign, &t.RateLocal, &t.TotalLocal, &date, &t.Note); err != nil {
			return nil, err
		}
		t.Kind = tracker.RecordKind(kind)
		if t.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("trade %s: bad date %q: %w", t.ID, date, err)
		}
		if err := ledger.Append(t); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, amount_local, source, date FROM deposits ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("load deposits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d tracker.Deposit
		var date string
		if err := rows.Scan(&d.ID, &d.AmountLocal, &d.Source, &date); err != nil {
			return nil, err
		}
		if d.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("deposit %s: bad date %q: %w", d.ID, date, err)
		}
		if err := ledger.Append(d); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT id, amount_local, reason, date FROM expenses ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e tracker.Expense
		var date string
		if err := rows.Scan(&e.ID, &e.AmountLocal, &e.Reason, &date); err != nil {
			return nil, err
		}
		if e.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("expense %s: bad date %q: %w", e.ID, date, err)
		}
		if err := ledger.Append(e); err != nil {
			return nil, err
		}
	}
	return ledger, rows.Err()
}

func (s *SQLiteStore) CreateTrade(ctx context.Context, t tracker.Trade) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (id, kind, amount_foreign, rate_local, total_local, date, note)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Kind), t.AmountForeign, t.RateLocal, t.TotalLocal,
		t.Date.Format(time.RFC3339Nano), t.Note,
	)
	return err
}

func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "trades", id)
}

func (s *SQLiteStore) CreateDeposit(ctx context.Context, d tracker.Deposit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deposits (id, amount_local, source, date)
		VALUES (?, ?, ?, ?)`,
		d.ID, d.AmountLocal, d.Source, d.Date.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) DeleteDeposit(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "deposits", id)
}

func (s *SQLiteStore) CreateExpense(ctx context.Context, e tracker.Expense) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount_local, reason, date)
		VALUES (?, ?, ?, ?)`,
		e.ID, e.AmountLocal, e.Reason, e.Date.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteFrom(ctx, "expenses", id)
}

func (s *SQLiteStore) deleteFrom(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, tracker.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

var _ tracker.Store = (*SQLiteStore)(nil)
