package config

import (
	"encoding/json"
	"os"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	in := "// header\n{\n  // note\n  \"log_level\": \"debug\" // trailing stays\n}\n"
	got := string(stripLineComments([]byte(in)))
	want := "{\n  \"log_level\": \"debug\" // trailing stays\n}\n\n"
	if got != want {
		t.Errorf("stripLineComments = %q, want %q", got, want)
	}
}

func TestTemplateMatchesDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal(stripLineComments([]byte(configTemplate)), &cfg); err != nil {
		t.Fatalf("template is not valid JSON after stripping comments: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("template = %+v, want %+v", cfg, defaultConfig())
	}
}

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	base := t.TempDir()
	t.Setenv("INTRACK_LOG_LEVEL", "")
	t.Setenv("INTRACK_CALENDAR_TIMEZONE", "")

	cfg, err := Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
	data, err := os.ReadFile(FilePath(base))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if string(data) != configTemplate {
		t.Error("written config does not match template")
	}
}

func TestLoadFillsDefaultsAndEnv(t *testing.T) {
	base := t.TempDir()
	partial := "// mine\n{\n  \"calendar\": { \"timezone\": \"Asia/Singapore\" }\n}\n"
	if err := os.WriteFile(FilePath(base), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INTRACK_LOG_LEVEL", "debug")
	t.Setenv("INTRACK_CALENDAR_TIMEZONE", "")

	cfg, err := Load(base)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env override %q", cfg.LogLevel, "debug")
	}
	if cfg.Calendar.Timezone != "Asia/Singapore" {
		t.Errorf("Timezone = %q, want %q", cfg.Calendar.Timezone, "Asia/Singapore")
	}
	if cfg.Calendar.ClientID != DefaultClientID || cfg.Calendar.TenantID != DefaultTenantID {
		t.Errorf("calendar defaults not filled: %+v", cfg.Calendar)
	}
	if cfg.FilterCacheSize != DefaultFilterCacheSize || cfg.Calendar.ReminderMinutes != DefaultReminderMinutes {
		t.Errorf("numeric defaults not filled: %+v", cfg)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(FilePath(base), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(base); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
