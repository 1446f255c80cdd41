// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohan/voicecv-cli/internal/storage"
)

// DefaultAPIBase is the backend used when nothing else is configured.
const DefaultAPIBase = "http://127.0.0.1:8000"

// Environment variable names recognized by ApplyEnv.
const (
	EnvAPIBase = "VOICECV_API_BASE"
	EnvStore   = "VOICECV_STORE"
	EnvAPIKey  = "GEMINI_API_KEY"
	EnvTTS     = "VOICECV_TTS"
	EnvSTT     = "VOICECV_STT"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Backend
	APIBase string `json:"api_base,omitempty"` // Base URL of the VoiceToCV/TalentPath backend

	// Storage
	StorePath   string `json:"store_path,omitempty"`   // Path to the local store file
	DownloadDir string `json:"download_dir,omitempty"` // Directory for generated CV documents

	// Voice engines: external commands with an optional "{}" text placeholder
	TTSCommand string `json:"tts_command,omitempty"` // e.g. "espeak {}"
	STTCommand string `json:"stt_command,omitempty"` // e.g. "voice2text --once"

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key for cover letter drafting
	Voice   bool   `json:"voice,omitempty"`   // Speak agent replies by default
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns ~/.voicecv/config.json, or a relative
// fallback when the home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".voicecv", "config.json")
	}
	return filepath.Join(home, ".voicecv", "config.json")
}

// ApplyEnv overlays environment variables onto the config. Environment
// values win over file values; CLI flags are applied after this and win
// over both.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIBase); v != "" {
		c.APIBase = v
	}
	if v := os.Getenv(EnvStore); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvTTS); v != "" {
		c.TTSCommand = v
	}
	if v := os.Getenv(EnvSTT); v != "" {
		c.STTCommand = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIBase != "" && !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return fmt.Errorf("config error: 'api_base' must be an http(s) URL, got %q", c.APIBase)
	}

	if c.DownloadDir != "" {
		if info, err := os.Stat(c.DownloadDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: 'download_dir' is not a directory: %s", c.DownloadDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIBase == "" {
		result.APIBase = defaults.APIBase
	}
	if result.StorePath == "" {
		result.StorePath = defaults.StorePath
	}
	if result.DownloadDir == "" {
		result.DownloadDir = defaults.DownloadDir
	}
	if result.TTSCommand == "" {
		result.TTSCommand = defaults.TTSCommand
	}
	if result.STTCommand == "" {
		result.STTCommand = defaults.STTCommand
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolvedAPIBase returns the configured backend URL or the default.
func (c *Config) ResolvedAPIBase() string {
	if c.APIBase != "" {
		return c.APIBase
	}
	return DefaultAPIBase
}

// ResolvedStorePath returns the configured store path or the default.
func (c *Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return storage.DefaultPath()
}

// SplitCommand splits a configured engine command into name and args.
// Returns an empty name when the command is blank or unconfigured.
func SplitCommand(command string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
