// Package config loads fpgroup settings with koanf.
//
// Precedence, highest first: explicitly set flags, FPGROUP_* environment
// variables, the YAML config file, built-in defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fpgroup/coset"
)

// Defaults.
const (
	DefaultMaxDefinitions    = 1_000_000
	DefaultTimeout           = 10 * time.Second
	DefaultOutput            = "table"
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultMaxBodyBytes      = 64 << 10
	DefaultMaxCosetsCap      = 20000
	DefaultMaxTableOrder     = 500
	envPrefix                = "FPGROUP_"
)

// configFiles are searched in the working directory when no file is given.
var configFiles = []string{"fpgroup.yaml", "fpgroup.yml"}

// Outputs lists the accepted output formats.
var Outputs = []string{"table", "markdown", "json", "yaml"}

// Config holds every setting of the CLI and the HTTP server.
type Config struct {
	MaxCosets      int           `koanf:"max_cosets"`
	MaxDefinitions int           `koanf:"max_definitions"`
	Timeout        time.Duration `koanf:"timeout"`
	Output         string        `koanf:"output"`
	Verbose        bool          `koanf:"verbose"`
	Server         ServerConfig  `koanf:"server"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr              string        `koanf:"addr"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes"`
	// MaxCosetsCap bounds the max_cosets a request may ask for.
	MaxCosetsCap int `koanf:"max_cosets_cap"`
	// MaxTableOrder is the largest group order answered with a full
	// multiplication table; larger groups get elements, inverses and orders.
	MaxTableOrder int `koanf:"max_table_order"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxCosets:      coset.DefaultMaxCosets,
		MaxDefinitions: DefaultMaxDefinitions,
		Timeout:        DefaultTimeout,
		Output:         DefaultOutput,
		Server: ServerConfig{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
			MaxBodyBytes:      DefaultMaxBodyBytes,
			MaxCosetsCap:      DefaultMaxCosetsCap,
			MaxTableOrder:     DefaultMaxTableOrder,
		},
	}
}

// flagKeys maps flag names whose config key is not the snake_case flag name.
var flagKeys = map[string]string{
	"addr": "server.addr",
}

// Load builds a Config from defaults, cfgFile (or fpgroup.yaml in the working
// directory), FPGROUP_* environment variables and explicitly set flags.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := Default()

	// 1. defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"max_cosets":                 def.MaxCosets,
		"max_definitions":            def.MaxDefinitions,
		"timeout":                    def.Timeout.String(),
		"output":                     def.Output,
		"verbose":                    false,
		"server.addr":                def.Server.Addr,
		"server.read_header_timeout": def.Server.ReadHeaderTimeout.String(),
		"server.shutdown_timeout":    def.Server.ShutdownTimeout.String(),
		"server.max_body_bytes":      def.Server.MaxBodyBytes,
		"server.max_cosets_cap":      def.Server.MaxCosetsCap,
		"server.max_table_order":     def.Server.MaxTableOrder,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. environment: FPGROUP_MAX_COSETS -> max_cosets, FPGROUP_SERVER_ADDR -> server.addr
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags, only those explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey turns FPGROUP_SERVER_MAX_BODY_BYTES into server.max_body_bytes.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "server_"); ok {
		return "server." + rest
	}

	return key
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Validate checks value ranges and the output format.
func (c *Config) Validate() error {
	if c.MaxCosets <= 0 {
		return fmt.Errorf("config: max_cosets must be positive, got %d", c.MaxCosets)
	}
	if c.MaxDefinitions < 0 {
		return fmt.Errorf("config: max_definitions cannot be negative, got %d", c.MaxDefinitions)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout cannot be negative, got %s", c.Timeout)
	}
	valid := false
	for _, o := range Outputs {
		if c.Output == o {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("config: unknown output %q (want one of %s)", c.Output, strings.Join(Outputs, ", "))
	}
	if c.Server.MaxCosetsCap < c.MaxCosets {
		return fmt.Errorf("config: server.max_cosets_cap (%d) is below max_cosets (%d)", c.Server.MaxCosetsCap, c.MaxCosets)
	}
	if c.Server.MaxTableOrder <= 0 {
		return fmt.Errorf("config: server.max_table_order must be positive, got %d", c.Server.MaxTableOrder)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}

	return nil
}

// CosetOptions returns the enumeration limits as coset options.
func (c *Config) CosetOptions() []coset.Option {
	return []coset.Option{
		coset.WithMaxCosets(c.MaxCosets),
		coset.WithMaxDefinitions(c.MaxDefinitions),
	}
}

// NewLogger returns a text logger on stderr; verbose enables debug records.
func (c *Config) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
