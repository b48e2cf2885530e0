package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/strandkit/strand/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
format = "fasta"
alphabet = "dna"
delimiter = "|"
scale = 3.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "fasta" {
		t.Errorf("Format = %q, want fasta", cfg.Format)
	}
	if cfg.Alphabet != "dna" {
		t.Errorf("Alphabet = %q, want dna", cfg.Alphabet)
	}
	if cfg.Delimiter != "|" {
		t.Errorf("Delimiter = %q, want |", cfg.Delimiter)
	}
	if cfg.Scale != 3.0 {
		t.Errorf("Scale = %v, want 3.0", cfg.Scale)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`alphabet = "rna"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Alphabet != "rna" {
		t.Errorf("Alphabet = %q, want rna", cfg.Alphabet)
	}
	// Unset fields keep the built-in defaults.
	if cfg.Scale != 2.0 {
		t.Errorf("Scale = %v, want default 2.0", cfg.Scale)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`format = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("code = %v, want MALFORMED_INPUT", errors.GetCode(err))
	}
}

func TestConfigContext(t *testing.T) {
	cfg := Config{Format: "ig"}
	ctx := withConfig(context.Background(), cfg)

	if got := configFromContext(ctx); got.Format != "ig" {
		t.Errorf("Format = %q, want ig", got.Format)
	}
}

func TestConfigFromContextDefault(t *testing.T) {
	cfg := configFromContext(context.Background())
	if cfg.Scale != 2.0 {
		t.Errorf("Scale = %v, want default 2.0", cfg.Scale)
	}
}
