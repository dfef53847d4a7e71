// Package notifier delivers queued damage notifications by email.
//
// It runs as a one-shot job: fetch pending items from the pipeline API,
// render and send one email per item, then report each outcome back.
package notifier

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Config holds all notifier configuration values.
type Config struct {
	APIURL         string
	PipelineAPIKey string
	RequestTimeout time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	CompanyName string
	BatchSize   int
	RateLimit   rate.Limit
	RateBurst   int
	DryRun      bool
}

// LoadConfig reads configuration from environment variables. SMTP settings are
// checked by Validate once command-line overrides are applied.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.APIURL = os.Getenv("NOTIFIER_API_URL")
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("NOTIFIER_API_URL is required")
	}

	cfg.PipelineAPIKey = os.Getenv("PIPELINE_API_KEY")
	if cfg.PipelineAPIKey == "" {
		return nil, fmt.Errorf("PIPELINE_API_KEY is required")
	}

	timeout, err := parseDuration("NOTIFIER_REQUEST_TIMEOUT", os.Getenv("NOTIFIER_REQUEST_TIMEOUT"), 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	dryRun, err := parseBool(os.Getenv("NOTIFIER_DRY_RUN"), false)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFIER_DRY_RUN value: %w", err)
	}
	cfg.DryRun = dryRun

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")

	port, err := parsePositiveInt("SMTP_PORT", os.Getenv("SMTP_PORT"), 587)
	if err != nil {
		return nil, err
	}
	cfg.SMTPPort = port

	batch, err := parsePositiveInt("NOTIFIER_BATCH_SIZE", os.Getenv("NOTIFIER_BATCH_SIZE"), 20)
	if err != nil {
		return nil, err
	}
	cfg.BatchSize = batch

	limit, err := parseRate(os.Getenv("NOTIFIER_RATE_LIMIT"), 1)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFIER_RATE_LIMIT value: %w", err)
	}
	cfg.RateLimit = limit

	burst, err := parsePositiveInt("NOTIFIER_RATE_BURST", os.Getenv("NOTIFIER_RATE_BURST"), 1)
	if err != nil {
		return nil, err
	}
	cfg.RateBurst = burst

	cfg.CompanyName = os.Getenv("NOTIFIER_COMPANY_NAME")
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Frota"
	}

	return cfg, nil
}

// Validate checks the settings that depend on each other. A dry run needs no SMTP server.
func (c *Config) Validate() error {
	if c.DryRun {
		return nil
	}
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required unless NOTIFIER_DRY_RUN is set")
	}
	if c.SMTPFrom == "" {
		return fmt.Errorf("SMTP_FROM is required unless NOTIFIER_DRY_RUN is set")
	}
	return nil
}

func parseDuration(name, s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return d, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}

func parsePositiveInt(name, s string, defaultVal int) (int, error) {
	if s == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", name, s)
	}
	return n, nil
}

// parseRate reads "N", "N/s", "N/m" or "N/h" as events per second.
func parseRate(s string, defaultVal rate.Limit) (rate.Limit, error) {
	if s == "" {
		return defaultVal, nil
	}

	count, unit, hasUnit := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(count, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("rate must be a positive number, got %q", s)
	}
	if !hasUnit {
		return rate.Limit(n), nil
	}

	var per time.Duration
	switch strings.ToLower(unit) {
	case "s":
		per = time.Second
	case "m":
		per = time.Minute
	case "h":
		per = time.Hour
	default:
		return 0, fmt.Errorf("rate unit must be s, m, or h, got %q", unit)
	}
	return rate.Limit(n / per.Seconds()), nil
}
