// Package config loads process settings and exposes the read-only
// configuration source greeting handlers query on each request.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	PortEnv            = "PORT"
	GreetingVariantEnv = "GREETING_VARIANT"
	EnvFileEnv         = "ENV_FILE"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort    = "8080"
	DefaultEnvFile = ".env"
)

// Variant selects which greeting the root route serves.
type Variant string

const (
	// VariantStatic serves the fixed greeting.
	VariantStatic Variant = "static"
	// VariantEnv serves the greeting interpolated with test_env.
	VariantEnv Variant = "env"
)

// Config holds process-level settings.
type Config struct {
	Port     string   `validate:"required,numeric,max=5"`
	Variant  Variant  `validate:"oneof=static env"`
	EnvFiles []string `validate:"dive,required"`
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads .env files into the process environment and builds a validated Config.
//
// With no files given, ENV_FILE (comma-separated) is consulted, falling back to
// ".env". Missing files are skipped. Variables already present in the
// environment are never overridden by file contents.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = envFiles()
	}
	loaded, err := loadEnvFiles(files)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:     DefaultPort,
		Variant:  VariantStatic,
		EnvFiles: loaded,
	}
	if v := strings.TrimSpace(os.Getenv(PortEnv)); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv(GreetingVariantEnv)); v != "" {
		cfg.Variant = Variant(strings.ToLower(v))
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envFiles() []string {
	raw := os.Getenv(EnvFileEnv)
	if strings.TrimSpace(raw) == "" {
		return []string{DefaultEnvFile}
	}
	var files []string
	for part := range strings.SplitSeq(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			files = append(files, p)
		}
	}
	return files
}

// loadEnvFiles loads each existing file and returns the ones that were read.
func loadEnvFiles(files []string) ([]string, error) {
	var loaded []string
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
