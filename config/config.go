package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Theme     ThemeConfig   `toml:"theme"`
	Workspace WorkspaceInfo `toml:"workspace"`
	Service   ServiceConfig `toml:"service"`
	Export    ExportConfig  `toml:"export"`
	Display   DisplayConfig `toml:"display"`
	Logging   LoggingConfig `toml:"logging"`
}

type WorkspaceInfo struct {
	Name string `toml:"name"`
}

// ServiceConfig points at the remote generation service.
type ServiceConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
}

// ExportConfig controls where serialized specifications are written.
type ExportConfig struct {
	Dir      string `toml:"dir,omitempty"`      // default: current directory
	Filename string `toml:"filename,omitempty"` // default: specification.json
}

type ThemeConfig struct {
	FG          string `toml:"fg,omitempty"`
	Accent      string `toml:"accent,omitempty"`
	Muted       string `toml:"muted,omitempty"`
	Dim         string `toml:"dim,omitempty"`
	SectionOpen string `toml:"section_open,omitempty"`
	SectionShut string `toml:"section_shut,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
	Error       string `toml:"error,omitempty"`
	Success     string `toml:"success,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`
	SpinnerFG   string `toml:"spinner_fg,omitempty"`
}

type DisplayConfig struct {
	ShowPreview *bool `toml:"show_preview,omitempty"` // side-by-side raw JSON pane
}

type LoggingConfig struct {
	Debug bool   `toml:"debug,omitempty"`
	File  string `toml:"file,omitempty"` // default: ~/.config/specdash/specdash.log
}

const defaultTimeout = 60 * time.Second

// ResolvedBaseURL returns the generation service URL. The
// SPECDASH_SERVICE_URL environment variable overrides the config file;
// with neither set, the local development port is used.
func (c Config) ResolvedBaseURL() string {
	if env := os.Getenv("SPECDASH_SERVICE_URL"); env != "" {
		return strings.TrimRight(env, "/")
	}
	if c.Service.BaseURL != "" {
		return strings.TrimRight(c.Service.BaseURL, "/")
	}
	return "http://localhost:8001"
}

// ResolvedTimeout returns the HTTP client timeout.
func (c Config) ResolvedTimeout() time.Duration {
	if c.Service.TimeoutSeconds > 0 {
		return time.Duration(c.Service.TimeoutSeconds) * time.Second
	}
	return defaultTimeout
}

// ResolvedExportPath returns the full path exports are written to. The
// extension is fixed: a configured filename without ".json" gets it appended.
func (c Config) ResolvedExportPath() string {
	dir := c.Export.Dir
	if dir == "" {
		dir = "."
	}
	dir = expandHome(dir)
	name := c.Export.Filename
	if name == "" {
		name = "specification.json"
	}
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	return filepath.Join(dir, name)
}

// ResolvedLogPath returns the log file path.
func (c Config) ResolvedLogPath() string {
	if c.Logging.File != "" {
		return expandHome(c.Logging.File)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "specdash.log"
	}
	return filepath.Join(home, ".config", "specdash", "specdash.log")
}

// ResolvedShowPreview returns whether the raw JSON preview pane starts visible.
func (c Config) ResolvedShowPreview() bool {
	if c.Display.ShowPreview != nil {
		return *c.Display.ShowPreview
	}
	return false
}

// WorkspaceName returns the configured workspace name or a fallback.
func (c Config) WorkspaceName() string {
	if c.Workspace.Name != "" {
		return c.Workspace.Name
	}
	return "specdash"
}

// DefaultConfigPath returns ~/.config/specdash/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "specdash", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ResolvedTheme fills in defaults for any theme colors the user didn't set.
func (c Config) ResolvedTheme() ThemeConfig {
	t := c.Theme
	def := func(field *string, fallback string) {
		if *field == "" {
			*field = fallback
		}
	}
	def(&t.FG, "252")
	def(&t.Accent, "33")
	def(&t.Muted, "245")
	def(&t.Dim, "240")
	def(&t.SectionOpen, "78")
	def(&t.SectionShut, "245")
	def(&t.StatusBarBG, "236")
	def(&t.StatusBarFG, "250")
	def(&t.Error, "203")
	def(&t.Success, "78")
	def(&t.CursorBG, "238")
	def(&t.SpinnerFG, "205")
	return t
}
