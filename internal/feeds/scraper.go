package feeds

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/types"
)

// Scraper is the fallback headline source: when a category's RSS feed is
// unreachable or empty, it scrapes the Google News search page instead.
type Scraper struct {
	timeout time.Duration
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{timeout: timeout}
}

// ScrapeCategory searches Google News for the category topic and extracts
// article cards from the result page.
func (s *Scraper) ScrapeCategory(ctx context.Context, category string, maxArticles int) ([]types.Article, error) {
	articles := []types.Article{}

	c := colly.NewCollector(
		colly.AllowedDomains("news.google.com", "www.google.com"),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	c.OnHTML("article", func(e *colly.HTMLElement) {
		if len(articles) >= maxArticles {
			return
		}

		title := strings.TrimSpace(e.ChildText("h3, h4"))
		link := e.ChildAttr("a", "href")
		if title == "" || link == "" {
			return
		}

		// Google News uses relative ./articles/ links on result pages
		if strings.HasPrefix(link, "./articles/") {
			link = "https://news.google.com" + link[1:]
		}

		articles = append(articles, types.Article{
			Title:    title,
			URL:      link,
			Source:   "Google News",
			Category: category,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "category", category, "url", r.Request.URL.String())
	})

	query := url.QueryEscape(category + " news")
	searchURL := fmt.Sprintf("https://news.google.com/search?q=%s&hl=en-US&gl=US&ceid=US:en", query)

	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("failed to scrape Google News for %s: %w", category, err)
	}
	c.Wait()

	logger.Info(ctx, "Fallback scrape completed", "category", category, "articles", len(articles))
	return articles, nil
}
