package portfolio

import (
	"context"
	"os"
	"strconv"
	"strings"

	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/trace"
	"llm-newsletter-bot/internal/types"
)

// headerWords are spreadsheet header cells that must not be mistaken for
// tickers.
var headerWords = map[string]bool{
	"ticker": true,
	"symbol": true,
	"asset":  true,
	"stock":  true,
}

// Source resolves the user's holdings from the static config list or, when
// that is empty, from the configured Google Sheet. Absent configuration and
// any read failure both yield an unconfigured Portfolio so the run can
// continue without portfolio context.
type Source struct {
	cfg *store.Config
}

func New(cfg *store.Config) *Source {
	return &Source{cfg: cfg}
}

// Load returns the portfolio. The error is only informational: callers treat
// a failed load the same as "no portfolio".
func (s *Source) Load(ctx context.Context) (types.Portfolio, error) {
	ctx, span := trace.StartSpan(ctx, "portfolio.Load")
	defer span.End()

	if len(s.cfg.Portfolio.Static) > 0 {
		p := fromStatic(s.cfg.Portfolio.Static)
		logger.Stage(ctx, "portfolio", "source", "static", "holdings", len(p.Holdings))
		return p, nil
	}

	sheetID := envOr("GOOGLE_SHEET_ID", s.cfg.Portfolio.Sheet.ID)
	credsFile := envOr("GOOGLE_CREDENTIALS_FILE", s.cfg.Portfolio.Sheet.CredentialsFile)
	if sheetID == "" {
		logger.Info(ctx, "No portfolio configured, skipping")
		return types.Portfolio{}, nil
	}
	if _, err := os.Stat(credsFile); err != nil {
		logger.Warn(ctx, "Service account credentials not found, skipping portfolio", "file", credsFile)
		return types.Portfolio{}, nil
	}

	tab := envOr("PORTFOLIO_TAB_NAME", s.cfg.Portfolio.Sheet.Tab)
	rows, err := s.readSheet(ctx, sheetID, tab, credsFile)
	if err != nil {
		return types.Portfolio{}, err
	}

	holdings := CleanRows(rows)
	if len(holdings) == 0 {
		// A sheet with only headers or blanks behaves exactly like no
		// portfolio at all.
		logger.Warn(ctx, "Sheet contained no portfolio rows", "sheet", sheetID, "tab", tab)
		return types.Portfolio{}, nil
	}

	logger.Stage(ctx, "portfolio", "source", "sheet", "holdings", len(holdings))
	return types.Portfolio{Configured: true, Holdings: holdings}, nil
}

// fromStatic parses "TICKER" or "TICKER:QTY" config entries.
func fromStatic(entries []string) types.Portfolio {
	holdings := make([]types.Holding, 0, len(entries))
	for _, e := range entries {
		ticker, qtyStr, _ := strings.Cut(strings.TrimSpace(e), ":")
		ticker = strings.TrimSpace(ticker)
		if ticker == "" {
			continue
		}
		h := types.Holding{Ticker: ticker}
		if q, err := strconv.ParseFloat(strings.TrimSpace(qtyStr), 64); err == nil {
			h.Qty = q
		}
		holdings = append(holdings, h)
	}
	if len(holdings) == 0 {
		return types.Portfolio{}
	}
	return types.Portfolio{Configured: true, Holdings: holdings}
}

// CleanRows converts raw sheet rows (ticker column, optional quantity column)
// into holdings, dropping blanks and header cells.
func CleanRows(rows [][]string) []types.Holding {
	holdings := []types.Holding{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		ticker := strings.TrimSpace(row[0])
		if ticker == "" || headerWords[strings.ToLower(ticker)] {
			continue
		}
		h := types.Holding{Ticker: ticker}
		if len(row) > 1 {
			if q, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64); err == nil {
				h.Qty = q
			}
		}
		holdings = append(holdings, h)
	}
	return holdings
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
