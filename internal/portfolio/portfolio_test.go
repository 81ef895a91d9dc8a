package portfolio

import (
	"context"
	"testing"

	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/types"
)

func TestCleanRows(t *testing.T) {
	rows := [][]string{
		{"Ticker", "Qty"},
		{"AAPL", "10"},
		{""},
		{"  "},
		{"symbol"},
		{"BTC"},
		{"MSFT", "not-a-number"},
	}

	holdings := CleanRows(rows)

	if len(holdings) != 3 {
		t.Fatalf("Expected 3 holdings, got %d: %+v", len(holdings), holdings)
	}
	if holdings[0].Ticker != "AAPL" || holdings[0].Qty != 10 {
		t.Errorf("Expected AAPL qty 10, got %+v", holdings[0])
	}
	if holdings[1].Ticker != "BTC" || holdings[1].Qty != 0 {
		t.Errorf("Expected BTC without qty, got %+v", holdings[1])
	}
	if holdings[2].Ticker != "MSFT" || holdings[2].Qty != 0 {
		t.Errorf("Expected MSFT with unparseable qty dropped to 0, got %+v", holdings[2])
	}
}

func TestCleanRowsAllHeaders(t *testing.T) {
	rows := [][]string{{"ticker"}, {"SYMBOL"}, {"Asset"}, {"stock"}}
	if holdings := CleanRows(rows); len(holdings) != 0 {
		t.Errorf("Expected header-only rows to yield nothing, got %+v", holdings)
	}
}

func TestLoadStatic(t *testing.T) {
	cfg := &store.Config{}
	cfg.Portfolio.Static = []string{"AAPL:10", "GOOGL", " SPY : 2.5 ", ""}

	pf, err := New(cfg).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !pf.Configured {
		t.Fatal("Expected static portfolio to be configured")
	}
	if len(pf.Holdings) != 3 {
		t.Fatalf("Expected 3 holdings, got %d", len(pf.Holdings))
	}
	if pf.Holdings[0].Ticker != "AAPL" || pf.Holdings[0].Qty != 10 {
		t.Errorf("Expected AAPL qty 10, got %+v", pf.Holdings[0])
	}
	if pf.Holdings[2].Ticker != "SPY" || pf.Holdings[2].Qty != 2.5 {
		t.Errorf("Expected SPY qty 2.5, got %+v", pf.Holdings[2])
	}
}

func TestLoadUnconfigured(t *testing.T) {
	t.Setenv("GOOGLE_SHEET_ID", "")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")

	cfg := &store.Config{}
	cfg.Portfolio.Sheet.CredentialsFile = "does-not-exist.json"

	pf, err := New(cfg).Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error when unconfigured, got %v", err)
	}
	if pf.Configured {
		t.Error("Expected unconfigured portfolio")
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	// sheet ID set but no readable credentials file: degraded, not an error
	t.Setenv("GOOGLE_SHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "does-not-exist.json")

	cfg := &store.Config{}
	pf, err := New(cfg).Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error for missing credentials, got %v", err)
	}
	if pf.Configured {
		t.Error("Expected unconfigured portfolio when credentials are missing")
	}
}

func TestQuoteTab(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Sheet1", "Sheet1"},
		{"My Holdings", "'My Holdings'"},
		{"Q1-2026", "'Q1-2026'"},
		{"Bob's Sheet", "'Bob''s Sheet'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := quoteTab(tt.in); got != tt.want {
			t.Errorf("quoteTab(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPortfolioString(t *testing.T) {
	pf := types.Portfolio{
		Configured: true,
		Holdings: []types.Holding{
			{Ticker: "AAPL", Qty: 10},
			{Ticker: "BTC"},
		},
	}
	want := "- AAPL (qty 10)\n- BTC"
	if got := pf.String(); got != want {
		t.Errorf("Portfolio.String() = %q, want %q", got, want)
	}

	if got := (types.Portfolio{}).String(); got != types.NoPortfolioMarker {
		t.Errorf("Expected no-portfolio marker for zero value, got %q", got)
	}
}
