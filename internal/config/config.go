package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/panel-control/internal/app"
	"github.com/atomicstack/panel-control/internal/panel"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Presets Presets
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envLogFile     = "PANEL_CONTROL_LOG_FILE"
	envTrace       = "PANEL_CONTROL_TRACE"
	envFiles       = "PANEL_CONTROL_FILES"
	envFileFilter  = "PANEL_CONTROL_FILE_FILTER"
	envQueueSize   = "PANEL_CONTROL_QUEUE_SIZE"
	envIdleTimeout = "PANEL_CONTROL_IDLE_TIMEOUT"
	envStrictLinks = "PANEL_CONTROL_STRICT_LINKS"
	envPresets     = "PANEL_CONTROL_PRESETS"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	def := panel.DefaultConfig()

	fs := flag.NewFlagSet("panel-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	files := fs.String("files", envOrDefault(env, envFiles, "."), "directory listed by the print menu")
	filter := fs.String("file-filter", envOrDefault(env, envFileFilter, ""), "only list files fuzzily matching this pattern")
	queueSize := fs.Int("queue-size", envOrInt(env, envQueueSize, def.QueueSize), "command queue capacity (rounded up to a power of two)")
	idle := fs.Int("idle-timeout", envOrInt(env, envIdleTimeout, def.IdleTimeout), "seconds without input before returning to the status page (0 disables)")
	strict := fs.Bool("strict-links", envOrBool(env, envStrictLinks, false), "refuse to start when the menu graph has unwired links")
	presetsFile := fs.String("presets", envOrDefault(env, envPresets, ""), "TOML file with preheat presets and button timing")
	dump := fs.Bool("dump", false, "print the menu graph and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *queueSize < 1 {
		return Config{}, fmt.Errorf("queue-size must be >= 1 (got %d)", *queueSize)
	}
	if *idle < 0 {
		return Config{}, fmt.Errorf("idle-timeout must be >= 0 (got %d)", *idle)
	}
	presets, err := LoadPresets(*presetsFile)
	if err != nil {
		return Config{}, err
	}

	pcfg := def
	pcfg.FileFilter = *filter
	pcfg.QueueSize = *queueSize
	pcfg.IdleTimeout = *idle
	pcfg.StrictLinks = *strict
	presets.Apply(&pcfg)

	cfg := Config{
		App: app.Config{
			Panel:     pcfg,
			FilesRoot: *files,
			Dump:      *dump,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Presets: presets,
		Flags: map[string]string{
			"files":       *files,
			"fileFilter":  *filter,
			"queueSize":   strconv.Itoa(*queueSize),
			"idleTimeout": strconv.Itoa(*idle),
			"strictLinks": strconv.FormatBool(*strict),
			"presets":     *presetsFile,
			"dump":        strconv.FormatBool(*dump),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks settings that only make sense together.
func Validate(cfg Config) error {
	if cfg.App.Dump {
		return nil
	}
	info, err := os.Stat(cfg.App.FilesRoot)
	if err != nil {
		return fmt.Errorf("files: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("files: %s is not a directory", cfg.App.FilesRoot)
	}
	return nil
}
