package portfolio

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"llm-newsletter-bot/internal/logger"
)

// tickerRange covers the ticker column and the optional quantity column,
// skipping the header row.
const tickerRange = "B2:C"

// readSheet reads the holdings columns from the configured tab, falling back
// to the spreadsheet's first sheet when the tab does not exist.
func (s *Source) readSheet(ctx context.Context, sheetID, tab, credsFile string) ([][]string, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	readRange := quoteTab(tab) + "!" + tickerRange
	resp, err := svc.Spreadsheets.Values.Get(sheetID, readRange).Context(ctx).Do()
	if err != nil {
		logger.Warn(ctx, "Tab not readable, falling back to first sheet", "tab", tab, "error", err)
		resp, err = svc.Spreadsheets.Values.Get(sheetID, tickerRange).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheetID, err)
		}
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, strings.TrimSpace(fmt.Sprint(cell)))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// quoteTab wraps the tab name in single quotes for A1 notation when it is not
// a bare identifier. Embedded quotes double per the A1 escaping rule.
func quoteTab(tab string) string {
	plain := true
	for _, r := range tab {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			plain = false
			break
		}
	}
	if plain && tab != "" {
		return tab
	}
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'"
}
