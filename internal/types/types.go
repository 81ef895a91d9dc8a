package types

import (
	"fmt"
	"strings"
	"time"
)

// NoNewsMarker is placed in the prompt when every feed came back empty.
const NoNewsMarker = "No news articles found."

// NoPortfolioMarker is placed in the prompt when no portfolio is configured.
const NoPortfolioMarker = "No portfolio configured."

type Article struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// Digest is the aggregated feed output: the surviving articles plus
// the prepared text block handed to the prompt composer.
type Digest struct {
	Articles []Article `json:"articles"`
	Text     string    `json:"text"`
}

type Holding struct {
	Ticker string  `json:"ticker"`
	Qty    float64 `json:"qty,omitempty"`
}

// Portfolio carries holdings with explicit presence. Configured stays false
// when no portfolio source is set up or the read failed, so downstream stages
// can gate portfolio-dependent content without sniffing empty strings.
type Portfolio struct {
	Configured bool      `json:"configured"`
	Holdings   []Holding `json:"holdings,omitempty"`
}

// String renders the holdings as the bulleted block injected into the prompt.
func (p Portfolio) String() string {
	if !p.Configured || len(p.Holdings) == 0 {
		return NoPortfolioMarker
	}
	var b strings.Builder
	for _, h := range p.Holdings {
		if h.Qty > 0 {
			fmt.Fprintf(&b, "- %s (qty %g)\n", h.Ticker, h.Qty)
		} else {
			fmt.Fprintf(&b, "- %s\n", h.Ticker)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
