package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	tracker "github.com/etnz/dollartracker"
)

// SupabaseStore talks to a Supabase project over its PostgREST API. Three
// tables back the three record kinds: trades, deposits, expenses.
type SupabaseStore struct {
	baseURL string // https://<project>.supabase.co
	apiKey  string
	client  *http.Client
}

// NewSupabase creates a remote store for the given project URL and API key.
func NewSupabase(baseURL, apiKey string) *SupabaseStore {
	return &SupabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// row shapes mirror the table columns.

type supaTrade struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	AmountForeign float64   `json:"amount_foreign"`
	RateLocal     float64   `json:"rate_local"`
	TotalLocal    float64   `json:"total_local"`
	Date          time.Time `json:"date"`
	Note          string    `json:"note,omitempty"`
}

type supaDeposit struct {
	ID          string    `json:"id"`
	AmountLocal float64   `json:"amount_local"`
	Source      string    `json:"source,omitempty"`
	Date        time.Time `json:"date"`
}

type supaExpense struct {
	ID          string    `json:"id"`
	AmountLocal float64   `json:"amount_local"`
	Reason      string    `json:"reason,omitempty"`
	Date        time.Time `json:"date"`
}

// do performs one PostgREST request and decodes the JSON response into out
// when out is non-nil.
func (s *SupabaseStore) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/rest/v1/"+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=minimal")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *SupabaseStore) Load(ctx context.Context) (*tracker.Ledger, error) {
	ledger := tracker.NewLedger()

	var trades []supaTrade
	if err := s.do(ctx, http.MethodGet, "trades?select=*&order=date.asc", nil, &trades); err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	for _, r := range trades {
		err := ledger.Append(tracker.Trade{
			ID: r.ID, Kind: tracker.RecordKind(r.Kind),
			AmountForeign: r.AmountForeign, RateLocal: r.RateLocal, TotalLocal: r.TotalLocal,
			Date: r.Date, Note: r.Note,
		})
		if err != nil {
			return nil, err
		}
	}

	var deposits []supaDeposit
	if err := s.do(ctx, http.MethodGet, "deposits?select=*&order=date.asc", nil, &deposits); err != nil {
		return nil, fmt.Errorf("load deposits: %w", err)
	}
	for _, r := range deposits {
		if err := ledger.Append(tracker.Deposit{ID: r.ID, AmountLocal: r.AmountLocal, Source: r.Source, Date: r.Date}); err != nil {
			return nil, err
		}
	}

	var expenses []supaExpense
	if err := s.do(ctx, http.MethodGet, "expenses?select=*&order=date.asc", nil, &expenses); err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	for _, r := range expenses {
		if err := ledger.Append(tracker.Expense{ID: r.ID, AmountLocal: r.AmountLocal, Reason: r.Reason, Date: r.Date}); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}

func (s *SupabaseStore) CreateTrade(ctx context.Context, t tracker.Trade) error {
	row := supaTrade{ID: t.ID, Kind: string(t.Kind), AmountForeign: t.AmountForeign, RateLocal: t.RateLocal, TotalLocal: t.TotalLocal, Date: t.Date, Note: t.Note}
	return s.do(ctx, http.MethodPost, "trades", []supaTrade{row}, nil)
}

func (s *SupabaseStore) DeleteTrade(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "trades?id=eq."+url.QueryEscape(id), nil, nil)
}

func (s *SupabaseStore) CreateDeposit(ctx context.Context, d tracker.Deposit) error {
	row := supaDeposit{ID: d.ID, AmountLocal: d.AmountLocal, Source: d.Source, Date: d.Date}
	return s.do(ctx, http.MethodPost, "deposits", []supaDeposit{row}, nil)
}

func (s *SupabaseStore) DeleteDeposit(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "deposits?id=eq."+url.QueryEscape(id), nil, nil)
}

func (s *SupabaseStore) CreateExpense(ctx context.Context, e tracker.Expense) error {
	row := supaExpense{ID: e.ID, AmountLocal: e.AmountLocal, Reason: e.Reason, Date: e.Date}
	return s.do(ctx, http.MethodPost, "expenses", []supaExpense{row}, nil)
}

func (s *SupabaseStore) DeleteExpense(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "expenses?id=eq."+url.QueryEscape(id), nil, nil)
}

func (s *SupabaseStore) Close() error { return nil }

var _ tracker.Store = (*SupabaseStore)(nil)
