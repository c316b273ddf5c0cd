package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Source   SourceConfig      `yaml:"source"`
	Notebook NotebookConfig    `yaml:"notebook"`
	Pandoc   PandocConfig      `yaml:"pandoc"`
	Ledger   LedgerConfig      `yaml:"ledger"`
	Import   ImportConfig      `yaml:"import"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Source.Validate(); err != nil {
		return err
	}
	if err := c.Notebook.Validate(); err != nil {
		return err
	}
	return c.Ledger.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	LogFile  string     `yaml:"log_file"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds the watch-mode status server configuration.
// Port 0 disables the server.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the status server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Enabled reports whether the status server should run.
func (c *HTTPConfig) Enabled() bool {
	return c.Port > 0
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Min(0), validation.Max(65535)),
	)
}

// SourceConfig holds the path to the Notable notes directory.
type SourceConfig struct {
	Path      string `yaml:"path"`
	Recursive bool   `yaml:"recursive"`
}

// Validate validates the source configuration.
func (c *SourceConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// NotebookConfig holds the destination Zim notebook layout.
type NotebookConfig struct {
	Path           string `yaml:"path"`
	NotesDir       string `yaml:"notes_dir"`
	JournalDir     string `yaml:"journal_dir"`
	JournalSection string `yaml:"journal_section"`
}

// Validate validates the notebook configuration.
func (c *NotebookConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.JournalDir, validation.Required),
		validation.Field(&c.JournalSection, validation.Required),
	)
}

// PandocConfig holds the external converter invocation settings.
type PandocConfig struct {
	Path string `yaml:"path"`
}

// LedgerConfig holds the import ledger database path.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the ledger configuration.
func (c *LedgerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ImportConfig holds run-mode toggles.
type ImportConfig struct {
	DryRun bool `yaml:"dry_run"`
	Watch  bool `yaml:"watch"`
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 0,
			},
		},
		Notebook: NotebookConfig{
			NotesDir:       "raw_ai_notes",
			JournalDir:     "Journal",
			JournalSection: "AI Notes",
		},
		Pandoc: PandocConfig{
			Path: "pandoc",
		},
		Ledger: LedgerConfig{
			Path: "notable2zim.db",
		},
	}
}
