// Package config loads the YAML configuration for the gongmo pipeline,
// applying defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized as overrides.
const (
	EnvCalendarID      = "GONGMO_CALENDAR_ID"
	EnvCalendarToken   = "GONGMO_CALENDAR_TOKEN"
	EnvTokenPassphrase = "GONGMO_TOKEN_PASSPHRASE"
)

// Config is the top-level application configuration.
type Config struct {
	// CalendarID is the target calendar for event sync.
	CalendarID string `yaml:"calendar_id"`

	// CalendarAPIBase is the calendar REST endpoint. Overridable for tests.
	CalendarAPIBase string `yaml:"calendar_api_base"`

	// TokenFile is the path to the stored API token. The file may be
	// encrypted; see TokenPassphrase.
	TokenFile string `yaml:"token_file"`

	// BaseURL is the source site root.
	BaseURL string `yaml:"base_url"`

	// RequestDelaySeconds is the politeness pause between successive
	// fetches to the source site.
	RequestDelaySeconds float64 `yaml:"request_delay"`

	// RequestTimeoutSeconds bounds a single page fetch.
	RequestTimeoutSeconds float64 `yaml:"request_timeout"`

	// MaxRetries is the attempt ceiling for a page fetch.
	MaxRetries int `yaml:"max_retries"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// NoiseKeywords are company-name substrings that mark promotional or
	// navigational rows rather than real offerings. Tied to the source
	// site's boilerplate; override when retargeting.
	NoiseKeywords []string `yaml:"noise_keywords"`

	// OutputDir receives the static site export.
	OutputDir string `yaml:"output_dir"`

	// GitRemote and GitBranch control the publish push.
	GitRemote string `yaml:"git_remote"`
	GitBranch string `yaml:"git_branch"`

	// Site metadata embedded in the static export.
	SiteURL         string `yaml:"site_url"`
	SiteTitle       string `yaml:"site_title"`
	SiteDescription string `yaml:"site_description"`
}

// defaultNoiseKeywords are the source site's known promotional and
// navigational labels that leak into company-name cells.
var defaultNoiseKeywords = []string{
	"실시간",
	"인기주",
	"빨간색",
	"매매",
	"비상장",
	"공모주일정",
	"IPO 청구",
	"IPO 승인",
	"청약일정",
	"신규상장",
	"최근 IPO",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CalendarAPIBase:       "https://www.googleapis.com/calendar/v3",
		TokenFile:             "token.json",
		BaseURL:               "http://www.38.co.kr",
		RequestDelaySeconds:   1.5,
		RequestTimeoutSeconds: 10,
		MaxRetries:            3,
		LogLevel:              "info",
		NoiseKeywords:         append([]string(nil), defaultNoiseKeywords...),
		OutputDir:             "docs",
		GitRemote:             "origin",
		GitBranch:             "main",
		SiteURL:               "https://jiun.dev/gong-mo/",
		SiteTitle:             "공모주 캘린더 - 대한민국 IPO 청약 일정",
		SiteDescription:       "대한민국 공모주 청약 일정과 IPO 캘린더 정보를 확인하세요.",
	}
}

// Load reads the YAML config at path on top of the defaults, then applies
// environment overrides. A missing file is not an error when path is the
// empty string; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if id := os.Getenv(EnvCalendarID); id != "" {
		cfg.CalendarID = id
	}

	return cfg, nil
}

// RequestDelay returns the politeness delay as a duration.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelaySeconds * float64(time.Second))
}

// RequestTimeout returns the fetch timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds * float64(time.Second))
}
