package feeds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/store"
	"llm-newsletter-bot/internal/trace"
	"llm-newsletter-bot/internal/types"
)

// Aggregator fetches the category feeds and prepares the news text block.
type Aggregator struct {
	categories     []store.FeedCategory
	maxPerCategory int
	maxTotal       int
	freshness      time.Duration
	parser         *gofeed.Parser
	scraper        *Scraper
}

// DefaultCategories returns the fixed Google News topic feeds used when the
// config does not override them.
func DefaultCategories() []store.FeedCategory {
	return []store.FeedCategory{
		{Name: "World", URL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx1YlY4U0FtVnVHZ0pWVXlnQVAB?hl=en-US&gl=US&ceid=US:en"},
		{Name: "Business", URL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGx6TVdZU0FtVnVHZ0pWVXlnQVAB?hl=en-US&gl=US&ceid=US:en"},
		{Name: "Technology", URL: "https://news.google.com/rss/topics/CAAqJggKIiBDQkFTRWdvSUwyMHZNRGRqTVhZU0FtVnVHZ0pWVXlnQVAB?hl=en-US&gl=US&ceid=US:en"},
		{Name: "Stock Markets", URL: "https://news.google.com/rss/search?q=stock%20markets&hl=en-US&gl=US&ceid=US:en"},
		{Name: "Cryptocurrency", URL: "https://news.google.com/rss/topics/CAAqJAgKIh5DQkFTRUFvS0wyMHZNSFp3YWpSZlloSUNaVzRvQUFQAQ?hl=en-US&gl=US&ceid=US:en"},
	}
}

// New creates an aggregator from the run configuration.
func New(cfg *store.Config) *Aggregator {
	categories := cfg.Feeds.Categories
	if len(categories) == 0 {
		categories = DefaultCategories()
	}
	timeout := time.Duration(cfg.Feeds.TimeoutSeconds) * time.Second

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}

	return &Aggregator{
		categories:     categories,
		maxPerCategory: cfg.Feeds.MaxPerCategory,
		maxTotal:       cfg.Feeds.MaxTotal,
		freshness:      time.Duration(cfg.Feeds.FreshnessHours) * time.Hour,
		parser:         parser,
		scraper:        NewScraper(timeout),
	}
}

// Headlines fetches every category feed, filters and dedupes the items, and
// returns them with the prepared text block. Individual feed failures are
// logged and skipped; Headlines itself never fails the run.
func (a *Aggregator) Headlines(ctx context.Context) (types.Digest, error) {
	ctx, span := trace.StartSpan(ctx, "feeds.Headlines")
	defer span.End()

	all := []types.Article{}
	for _, cat := range a.categories {
		articles, err := a.fetchCategory(ctx, cat)
		if err != nil || len(articles) == 0 {
			if err != nil {
				logger.ErrorWithErr(ctx, "Feed fetch failed, trying fallback scrape", err, "category", cat.Name)
			}
			articles, err = a.scraper.ScrapeCategory(ctx, cat.Name, a.maxPerCategory)
			if err != nil {
				logger.Warn(ctx, "Skipping category", "category", cat.Name, "error", err)
				continue
			}
		}
		logger.Info(ctx, "Fetched category", "category", cat.Name, "articles", len(articles))
		all = append(all, articles...)
	}

	fresh := filterFresh(all, time.Now(), a.freshness)
	unique := dedupeByTitle(fresh)
	if len(unique) > a.maxTotal {
		unique = unique[:a.maxTotal]
	}

	logger.Stage(ctx, "feeds", "fetched", len(all), "fresh", len(fresh), "unique", len(unique))
	return types.Digest{Articles: unique, Text: PrepareText(unique)}, nil
}

// fetchCategory parses one RSS feed into articles, capped per category.
func (a *Aggregator) fetchCategory(ctx context.Context, cat store.FeedCategory) ([]types.Article, error) {
	feed, err := a.parser.ParseURLWithContext(cat.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", cat.Name, err)
	}

	articles := []types.Article{}
	for _, item := range feed.Items {
		if len(articles) >= a.maxPerCategory {
			break
		}
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		title, source := splitSource(title)
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		articles = append(articles, types.Article{
			Title:       title,
			URL:         link,
			Source:      source,
			Category:    cat.Name,
			Summary:     flattenDescription(item.Description, title),
			PublishedAt: published,
		})
	}
	return articles, nil
}

// splitSource peels the trailing publisher name off a Google News headline
// ("Headline - Publisher").
func splitSource(title string) (headline, source string) {
	if i := strings.LastIndex(title, " - "); i > 0 {
		return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+3:])
	}
	return title, "Unknown"
}

// flattenDescription strips feed description HTML down to a short text line.
// Google News descriptions are HTML link lists, which are dropped when they
// only repeat the headline.
func flattenDescription(desc, title string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	if text == "" || strings.HasPrefix(text, title) {
		return ""
	}
	if len(text) > 200 {
		// cut on a rune boundary
		cut := 200
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

// filterFresh drops articles older than the freshness window. Articles with
// no parseable date pass through.
func filterFresh(articles []types.Article, now time.Time, window time.Duration) []types.Article {
	cutoff := now.Add(-window)
	fresh := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		if a.PublishedAt.IsZero() || !a.PublishedAt.Before(cutoff) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}

// dedupeByTitle keeps the first occurrence of each normalized title across
// categories.
func dedupeByTitle(articles []types.Article) []types.Article {
	seen := map[string]bool{}
	unique := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		key := strings.ToLower(strings.TrimSpace(a.Title))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, a)
	}
	return unique
}

// PrepareText turns the articles into the text block handed to the prompt
// composer, one stanza per article grouped under a shared header.
func PrepareText(articles []types.Article) string {
	if len(articles) == 0 {
		return types.NoNewsMarker
	}

	var b strings.Builder
	b.WriteString("# Latest News\n\n")
	for i, a := range articles {
		fmt.Fprintf(&b, "## Article %d: %s\n", i+1, a.Title)
		fmt.Fprintf(&b, "Category: %s\n", a.Category)
		fmt.Fprintf(&b, "Source: %s\n", a.Source)
		fmt.Fprintf(&b, "URL: %s\n", a.URL)
		if a.Summary != "" {
			fmt.Fprintf(&b, "Summary: %s\n", a.Summary)
		}
		b.WriteString("\n---\n\n")
	}
	return b.String()
}
