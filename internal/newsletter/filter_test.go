package newsletter

import (
	"strings"
	"testing"
)

const sampleDraft = `## 🎤 The Bit (The Macro Thesis)
Rates stay higher for longer.

## 🌍 The Setup (Top 5 High-Impact Stories)

### **Chips hit a wall**

Export controls bite.

👉 [Read more](https://example.com/chips)

## 💼 Bag Check (Portfolio Stress Test)
* **Direct Hit:** NVDA
* **The Verdict:** Thesis Intact

### Sub-analysis

Still fine.

## 🔔 The Playbook (Actionable Moves)
* Sit on hands.

---
**Constraint:** Be brief.
`

func TestFilterWithoutPortfolio(t *testing.T) {
	out := Filter(sampleDraft, false)

	if strings.Contains(out, "Bag Check") {
		t.Error("Expected Bag Check section to be removed without portfolio")
	}
	if strings.Contains(out, "The Playbook") {
		t.Error("Expected Playbook section to be removed without portfolio")
	}
	if strings.Contains(out, "Direct Hit") || strings.Contains(out, "Sub-analysis") {
		t.Error("Expected section bodies and their subsections to be removed")
	}
	if !strings.Contains(out, "The Bit") || !strings.Contains(out, "The Setup") {
		t.Error("Expected non-portfolio sections to survive")
	}
	if !strings.Contains(out, "Chips hit a wall") {
		t.Error("Expected story subsection of a kept section to survive")
	}
}

func TestFilterWithPortfolio(t *testing.T) {
	out := Filter(sampleDraft, true)

	if !strings.Contains(out, "Bag Check") || !strings.Contains(out, "The Playbook") {
		t.Error("Expected portfolio sections to be retained with portfolio")
	}
	if !strings.Contains(out, "Direct Hit") {
		t.Error("Expected section body to be retained with portfolio")
	}
}

func TestFilterDisclaimerOnceAndLast(t *testing.T) {
	for _, hasPortfolio := range []bool{true, false} {
		out := Filter(sampleDraft, hasPortfolio)

		if n := strings.Count(out, Disclaimer); n != 1 {
			t.Errorf("hasPortfolio=%v: expected disclaimer exactly once, found %d", hasPortfolio, n)
		}
		if !strings.HasSuffix(out, Disclaimer+"\n") {
			t.Errorf("hasPortfolio=%v: expected disclaimer to be last", hasPortfolio)
		}
	}
}

func TestFilterSectionAtEOF(t *testing.T) {
	draft := "## Intro\nhello\n\n## 🔔 The Playbook (Actionable Moves)\n* trailing section"

	out := Filter(draft, false)

	if strings.Contains(out, "trailing section") {
		t.Error("Expected section running to EOF to be removed")
	}
	if !strings.Contains(out, "hello") {
		t.Error("Expected preceding content to survive")
	}
}

func TestFilterContentAfterStrippedSection(t *testing.T) {
	draft := "## 💼 Bag Check (Portfolio Stress Test)\nsecret\n\n## Outro\nvisible"

	out := Filter(draft, false)

	if strings.Contains(out, "secret") {
		t.Error("Expected stripped section body to be gone")
	}
	if !strings.Contains(out, "visible") {
		t.Error("Expected section after the stripped one to survive")
	}
}
