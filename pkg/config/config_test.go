package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type validatedConfig struct {
	Name string `yaml:"name"`
}

var errBadName = errors.New("name is required")

func (c *validatedConfig) Validate() error {
	if c.Name == "" {
		return errBadName
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, "name: app\nport: 8080\n")

	var cfg testConfig
	if err := Load(p, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "app" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_APP_NAME", "from-env")
	p := writeFile(t, "name: ${TEST_APP_NAME}\n")

	var cfg testConfig
	if err := Load(p, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("Name = %q", cfg.Name)
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	p := writeFile(t, "name: \"\"\n")

	var cfg validatedConfig
	if err := Load(p, &cfg); !errors.Is(err, errBadName) {
		t.Errorf("want validation error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Error("missing file should fail Load")
	}
}

func TestLoadIfExists(t *testing.T) {
	var cfg testConfig
	cfg.Name = "untouched"

	if err := LoadIfExists(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err != nil {
		t.Fatalf("missing file should be fine: %v", err)
	}
	if cfg.Name != "untouched" {
		t.Errorf("target mutated: %+v", cfg)
	}

	p := writeFile(t, "name: present\n")
	if err := LoadIfExists(p, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "present" {
		t.Errorf("Name = %q", cfg.Name)
	}
}
