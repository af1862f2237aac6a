package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/spf13/pflag"

	"github.com/leesalminen/votehist/dataset"
	"github.com/leesalminen/votehist/model"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Dataset != dataset.DefaultPath || cfg.Field != model.VoteCountColumn ||
		cfg.Scale != 20 || cfg.Marker != "#" || cfg.Format != FormatText || cfg.Source != SourceCSV {
		t.Fatalf("Load() = %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "votehist.yaml")
	data := "scale: 5\nmarker: \"*\"\nformat: json\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOTEHIST_MARKER", "=")

	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", FormatText, "")
	if err := BindFlags(v, flags, "format"); err != nil {
		t.Fatal(err)
	}
	if err := flags.Parse([]string{"--format", "text"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(v, file)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scale != 5 {
		t.Errorf("Scale = %d, want 5 from file", cfg.Scale)
	}
	if cfg.Marker != "=" {
		t.Errorf("Marker = %q, want = from env", cfg.Marker)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want text from flag", cfg.Format)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() expected error for a missing named file")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Scale: 20, Format: FormatText, Source: SourceCSV, BatchSize: 1}
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"negative field", func(c *Config) { c.Field = -1 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"format", func(c *Config) { c.Format = "xml" }},
		{"source", func(c *Config) { c.Source = "s3" }},
		{"batch size", func(c *Config) { c.BatchSize = 0 }},
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mod(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.NotValid) {
				t.Fatalf("Validate() error = %v, want NotValid", err)
			}
		})
	}
}

func TestDatasetOptions(t *testing.T) {
	cfg := Config{Field: 3, Column: ""}
	opts := cfg.DatasetOptions()
	if opts.Columns.VoteCount != 3 || opts.Columns.Title != -1 {
		t.Fatalf("DatasetOptions() = %+v", opts)
	}
	cfg.Field = model.VoteCountColumn
	if opts := cfg.DatasetOptions(); opts.Columns != model.DefaultColumns() {
		t.Fatalf("DatasetOptions() = %+v", opts)
	}
}
