package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeedCategory maps a named news topic to its RSS source.
type FeedCategory struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	Feeds struct {
		MaxPerCategory int            `yaml:"max_per_category"`
		MaxTotal       int            `yaml:"max_total"`
		FreshnessHours int            `yaml:"freshness_hours"`
		TimeoutSeconds int            `yaml:"timeout_seconds"`
		Categories     []FeedCategory `yaml:"categories"`
	} `yaml:"feeds"`
	Portfolio struct {
		// Static holdings as "TICKER" or "TICKER:QTY" entries. When set, the
		// spreadsheet is never consulted.
		Static []string `yaml:"static"`
		Sheet  struct {
			ID              string `yaml:"id"`
			Tab             string `yaml:"tab"`
			CredentialsFile string `yaml:"credentials_file"`
		} `yaml:"sheet"`
	} `yaml:"portfolio"`
	LLM struct {
		Provider    string  `yaml:"provider"`
		Model       string  `yaml:"model"`
		MaxTokens   int     `yaml:"max_tokens"`
		Temperature float32 `yaml:"temperature"`
		System      string  `yaml:"system"`
	} `yaml:"llm"`
	SMTP struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"smtp"`
	Templates struct {
		Prompt string `yaml:"prompt"`
		Email  string `yaml:"email"`
	} `yaml:"templates"`
	Archive struct {
		Dir string `yaml:"dir"`
	} `yaml:"archive"`
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "GEMINI", "OPENAI", "NOOP":
	default:
		return fmt.Errorf("invalid llm.provider '%s': must be 'GEMINI', 'OPENAI', or 'NOOP'", c.LLM.Provider)
	}
	if c.LLM.Model == "" && c.LLM.Provider != "NOOP" {
		return errors.New("llm.model cannot be empty")
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1-65535, got %d", c.SMTP.Port)
	}
	if c.Feeds.MaxPerCategory <= 0 {
		return fmt.Errorf("feeds.max_per_category must be positive, got %d", c.Feeds.MaxPerCategory)
	}
	if c.Feeds.MaxTotal <= 0 {
		return fmt.Errorf("feeds.max_total must be positive, got %d", c.Feeds.MaxTotal)
	}
	if c.Templates.Prompt == "" || c.Templates.Email == "" {
		return errors.New("templates.prompt and templates.email cannot be empty")
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Feeds.MaxPerCategory == 0 {
		c.Feeds.MaxPerCategory = 8
	}
	if c.Feeds.MaxTotal == 0 {
		c.Feeds.MaxTotal = 25
	}
	if c.Feeds.FreshnessHours == 0 {
		c.Feeds.FreshnessHours = 24
	}
	if c.Feeds.TimeoutSeconds == 0 {
		c.Feeds.TimeoutSeconds = 15
	}
	if c.Portfolio.Sheet.Tab == "" {
		c.Portfolio.Sheet.Tab = "Sheet1"
	}
	if c.Portfolio.Sheet.CredentialsFile == "" {
		c.Portfolio.Sheet.CredentialsFile = "service_account.json"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "GEMINI"
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2048
	}
	if c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.Templates.Prompt == "" {
		c.Templates.Prompt = "templates/prompt.tmpl"
	}
	if c.Templates.Email == "" {
		c.Templates.Email = "templates/email.html"
	}
	if c.Archive.Dir == "" {
		c.Archive.Dir = "archive"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
