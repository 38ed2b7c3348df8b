// Package config loads chemiz settings from an optional YAML file, a .env
// file and CHEMIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/chemiz/chemiz/internal/quiz"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHEMIZ"

// Config holds application configuration.
type Config struct {
	Quiz  Quiz  `mapstructure:"quiz"`
	Data  Data  `mapstructure:"data"`
	Store Store `mapstructure:"store"`
	Log   Log   `mapstructure:"log"`
}

// Quiz configures question generation and grading.
type Quiz struct {
	Theme          string `mapstructure:"theme"`           // basic | concept
	Mode           string `mapstructure:"mode"`            // short | choice
	AdvanceConcept bool   `mapstructure:"advance_concept"` // next concept question after a correct answer
	Seed           uint64 `mapstructure:"seed"`            // 0 = seeded from time
}

// Data points at optional replacements for the built-in content.
type Data struct {
	Dataset       string `mapstructure:"dataset"`       // custom dataset JSON file
	Illustrations string `mapstructure:"illustrations"` // directory of diagram overrides
}

// Store configures the attempt journal.
type Store struct {
	DB string `mapstructure:"db"` // sqlite path; empty disables the journal
}

// Log configures the file logger.
type Log struct {
	File  string `mapstructure:"file"`  // empty = no logging
	Level string `mapstructure:"level"` // debug | info | warn | error
}

// ParsedTheme returns the configured theme.
func (q Quiz) ParsedTheme() (quiz.Theme, error) {
	return quiz.ParseTheme(q.Theme)
}

// ParsedMode returns the configured mode.
func (q Quiz) ParsedMode() (quiz.Mode, error) {
	return quiz.ParseMode(q.Mode)
}

// Options controls where Load looks.
type Options struct {
	// File is an explicit config file. When empty, chemiz.yaml is searched
	// in the working directory and $XDG_CONFIG_HOME/chemiz.
	File string

	// EnvFile is loaded into the process environment before reading
	// variables. A missing file is ignored. Empty means ".env".
	EnvFile string
}

// Load reads configuration from the .env file, the config file and
// environment variables, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("chemiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configHome(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "chemiz"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.Quiz.ParsedTheme(); err != nil {
		return fmt.Errorf("quiz.theme: %w", err)
	}
	if _, err := c.Quiz.ParsedMode(); err != nil {
		return fmt.Errorf("quiz.mode: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("quiz.theme", "basic")
	v.SetDefault("quiz.mode", "short")
	v.SetDefault("quiz.advance_concept", true)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("data.dataset", "")
	v.SetDefault("data.illustrations", "")
	v.SetDefault("store.db", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}
