package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the root configuration for intrack, stored in
// <base>/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `json:"log_level"`
	// FilterCacheSize bounds the number of compiled filter expressions kept.
	FilterCacheSize int `json:"filter_cache_size"`
	Calendar        CalendarConfig `json:"calendar"`
}

// CalendarConfig holds Microsoft Graph / Outlook calendar settings used by
// `intrack calendar push`.
type CalendarConfig struct {
	// TenantID is the Azure AD tenant. Use "common" for personal/multi-tenant accounts.
	TenantID string `json:"tenant_id"`
	// ClientID is the Azure app (client) ID for the OAuth2 device code flow.
	ClientID string `json:"client_id"`
	// Timezone is the IANA timezone for deadline events (e.g. "Asia/Singapore"). Empty = UTC.
	Timezone string `json:"timezone"`
	// ReminderMinutes is how long before a deadline Outlook reminds you.
	ReminderMinutes int `json:"reminder_minutes"`
}

const (
	// DefaultTenantID is the Microsoft "common" tenant (supports personal and
	// multi-tenant organisational accounts without additional registration).
	DefaultTenantID = "common"
	// DefaultClientID is the well-known public Azure CLI app ID.
	// It supports device code flow without a client secret and requires no
	// app registration.
	DefaultClientID = "04b07795-8542-4c4a-95af-30b2c573d5ab"
	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = "warn"
	// DefaultFilterCacheSize is used when the file leaves it unset.
	DefaultFilterCacheSize = 128
	// DefaultReminderMinutes is one day.
	DefaultReminderMinutes = 24 * 60
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		LogLevel:        DefaultLogLevel,
		FilterCacheSize: DefaultFilterCacheSize,
		Calendar: CalendarConfig{
			TenantID:        DefaultTenantID,
			ClientID:        DefaultClientID,
			ReminderMinutes: DefaultReminderMinutes,
		},
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// intrack configuration
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Environment variables (also read from a .env file in the working
// directory) take precedence:
//   INTRACK_HOME               data directory (default ~/.intrack)
//   INTRACK_LOG_LEVEL          overrides "log_level"
//   INTRACK_CALENDAR_TIMEZONE  overrides "calendar.timezone"
{
  // Log level for diagnostics on stderr: debug, info, warn, error.
  "log_level": "warn",

  // Number of compiled filter expressions kept in memory by the shell.
  "filter_cache_size": 128,

  // ── Microsoft Graph / Outlook calendar (intrack calendar push) ──────────
  "calendar": {
    // Azure AD tenant ID.
    // • "common"  – personal Microsoft accounts and any organisation (default)
    // • Your organisation's tenant GUID
    "tenant_id": "common",

    // Azure application (client) ID used for the OAuth2 device code flow.
    // The built-in value is the public Azure CLI app – no app registration needed.
    "client_id": "04b07795-8542-4c4a-95af-30b2c573d5ab",

    // IANA timezone for deadline events, e.g. "Asia/Singapore". Empty = UTC.
    "timezone": "",

    // Minutes before a deadline that Outlook shows a reminder.
    "reminder_minutes": 1440
  }
}
`

// LoadDotEnv loads a .env file from the working directory into the process
// environment, if one exists. Variables already set are not overwritten.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// FilePath returns the path to <base>/config.json.
func FilePath(base string) string {
	return filepath.Join(base, "config.json")
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads <base>/config.json, creating it with annotated defaults on
// first run, then applies environment overrides.
func Load(base string) (Config, error) {
	path := FilePath(base)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		cfg := defaultConfig()
		applyEnv(&cfg)
		return cfg, nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	def := defaultConfig()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.FilterCacheSize <= 0 {
		cfg.FilterCacheSize = def.FilterCacheSize
	}
	if cfg.Calendar.TenantID == "" {
		cfg.Calendar.TenantID = def.Calendar.TenantID
	}
	if cfg.Calendar.ClientID == "" {
		cfg.Calendar.ClientID = def.Calendar.ClientID
	}
	if cfg.Calendar.ReminderMinutes <= 0 {
		cfg.Calendar.ReminderMinutes = def.Calendar.ReminderMinutes
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("INTRACK_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("INTRACK_CALENDAR_TIMEZONE")); v != "" {
		cfg.Calendar.Timezone = v
	}
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
