package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"scssx/common"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Skeleton.SelectorType != common.SelectorTypeFull {
		t.Errorf("SelectorType = %s, want full", cfg.Skeleton.SelectorType)
	}
	if cfg.Skeleton.Syntax != common.SyntaxScss {
		t.Errorf("Syntax = %s, want scss", cfg.Skeleton.Syntax)
	}
	if cfg.Output.Method != common.OutputMethodAsk {
		t.Errorf("Method = %s, want ask", cfg.Output.Method)
	}
	if cfg.Output.NameTemplate != "{{ .Name }}" {
		t.Errorf("NameTemplate = %q, must not be expanded", cfg.Output.NameTemplate)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
skeleton:
  selector_type: simple
  syntax: sass
output:
  method: file
  name_template: "{{ .Name }}-styles"
  file_name_transliterate: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "report.zip") + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Skeleton.SelectorType != common.SelectorTypeSimple {
		t.Errorf("SelectorType = %s, want simple", cfg.Skeleton.SelectorType)
	}
	if cfg.Skeleton.Syntax != common.SyntaxSass {
		t.Errorf("Syntax = %s, want sass", cfg.Skeleton.Syntax)
	}
	if cfg.Output.Method != common.OutputMethodFile {
		t.Errorf("Method = %s, want file", cfg.Output.Method)
	}
	if cfg.Output.NameTemplate != "{{ .Name }}-styles" {
		t.Errorf("NameTemplate = %q", cfg.Output.NameTemplate)
	}
	if !cfg.Output.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File log mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nskeleton:\n  syntax: sass\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Skeleton.Syntax != common.SyntaxSass {
		t.Errorf("Syntax = %s, want sass", cfg.Skeleton.Syntax)
	}
	// untouched values come from the template
	if cfg.Skeleton.SelectorType != common.SelectorTypeFull {
		t.Errorf("SelectorType = %s, want full", cfg.Skeleton.SelectorType)
	}
	if cfg.Output.Method != common.OutputMethodAsk {
		t.Errorf("Method = %s, want ask", cfg.Output.Method)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
skeleton:
  syntax: scss
  invalid indent
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_InvalidEnum(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "enum.yaml")

	if err := os.WriteFile(configPath, []byte("version: 1\nskeleton:\n  syntax: less\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Fatal("Expected error for unknown syntax")
	}
	if !strings.Contains(err.Error(), "not a valid Syntax") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
`

	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_values.yaml")

	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected validation error for invalid version")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	cfg := &Config{}
	if _, err = unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Skeleton.Syntax = common.SyntaxSass
	cfg.Output.Method = common.OutputMethodPreview

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	// enums are dumped by name
	for _, want := range []string{"syntax: sass", "method: preview", "selector_type: full"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() output does not contain %q:\n%s", want, data)
		}
	}

	cfg2 := &Config{}
	if _, err = unmarshalConfig(data, cfg2, false); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Skeleton != cfg.Skeleton || cfg2.Output != cfg.Output {
		t.Errorf("config mismatch after dump/load: got %+v, want %+v", cfg2, cfg)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}
