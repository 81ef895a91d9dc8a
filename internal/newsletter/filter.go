package newsletter

import "strings"

// Disclaimer is appended to every issue, exactly once, always last.
const Disclaimer = `**Disclaimer:** This newsletter is generated automatically from public news ` +
	`feeds and is provided for informational purposes only. Nothing in it constitutes ` +
	`financial, investment, legal, or tax advice, and no content should be relied upon ` +
	`when making investment decisions. Past performance is not indicative of future ` +
	`results. Consult a licensed financial advisor before acting on any information ` +
	`contained herein.`

// portfolioSections are the heading markers of the two sections that only
// make sense when portfolio context was fed to the model.
var portfolioSections = []string{"Bag Check", "The Playbook"}

// Filter post-processes a generated draft: portfolio-dependent sections are
// excised when no portfolio was configured, and the disclaimer is appended.
func Filter(draft string, hasPortfolio bool) string {
	out := draft
	if !hasPortfolio {
		for _, marker := range portfolioSections {
			out = stripSection(out, marker)
		}
	}
	out = strings.TrimRight(out, "\n")
	return out + "\n\n---\n" + Disclaimer + "\n"
}

// stripSection removes the section whose "## " heading contains marker,
// from the heading line up to the next top- or second-level heading or EOF.
// Subsection headings ("###" and deeper) stay inside the excised block.
func stripSection(text, marker string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	skipping := false
	for _, line := range lines {
		if isSectionBoundary(line) {
			skipping = strings.HasPrefix(strings.TrimSpace(line), "## ") &&
				strings.Contains(line, marker)
		}
		if !skipping {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isSectionBoundary(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "# ") || strings.HasPrefix(t, "## ")
}
