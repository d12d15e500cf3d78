package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/R167/reconmcp/internal/health"
	"github.com/R167/reconmcp/internal/logging"
	"github.com/R167/reconmcp/internal/mcp"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DefaultEnvFile = ".env"
	defaultHost    = "0.0.0.0"
	defaultPort    = "8000"
)

type Config struct {
	Transport        string            `yaml:"transport"`
	Addr             string            `yaml:"addr"`
	BasePath         string            `yaml:"base_path"`
	VerboseLogs      bool              `yaml:"verbose_logs"`
	MaxDuration      time.Duration     `yaml:"max_duration"`
	DisableStreaming bool              `yaml:"disable_streaming"`
	HealthAddr       string            `yaml:"health_addr"`
	HealthInterval   time.Duration     `yaml:"health_interval"`
	Advertise        bool              `yaml:"advertise"`
	LogFormat        string            `yaml:"log_format"`
	Binaries         map[string]string `yaml:"binaries"`

	ConfigPath string `yaml:"-"`
	EnvFile    string `yaml:"-"`
}

// Defaults returns the configuration used when nothing is set. The HTTP
// address honours the HOST and PORT environment variables.
func Defaults() *Config {
	host := os.Getenv("HOST")
	if host == "" {
		host = defaultHost
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	return &Config{
		Transport:      TransportStdio,
		Addr:           net.JoinHostPort(host, port),
		HealthInterval: health.DefaultInterval,
		LogFormat:      logging.FormatConsole,
		Binaries:       map[string]string{},
		EnvFile:        DefaultEnvFile,
	}
}

// ParseFlags builds the configuration from args (without the program name).
// Values are layered: defaults, then the YAML file, then flags that were
// explicitly set on the command line.
func ParseFlags(args []string) (*Config, error) {
	// First pass only locates the env and config files.
	bootstrap := Defaults()
	fs := newFlagSet(bootstrap, io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := loadEnvFile(bootstrap.EnvFile, explicitlySet(fs, "env-file")); err != nil {
		return nil, err
	}

	cfg := Defaults()
	if bootstrap.ConfigPath != "" {
		if err := LoadFile(bootstrap.ConfigPath, cfg); err != nil {
			return nil, err
		}
	}

	fs = newFlagSet(cfg, os.Stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet(cfg *Config, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("reconmcp", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(fs) }

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport: stdio or http")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for the http transport (defaults to $HOST:$PORT)")
	fs.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "Route prefix for the http transport; the endpoint is <base-path>/mcp")
	fs.BoolVar(&cfg.VerboseLogs, "verbose", cfg.VerboseLogs, "Enable debug logging of every tool call")
	fs.DurationVar(&cfg.MaxDuration, "max-duration", cfg.MaxDuration, "Soft deadline for each tool call (e.g. 60s, 5m); 0 disables it")
	fs.BoolVar(&cfg.DisableStreaming, "disable-streaming", cfg.DisableStreaming, "Answer http calls with plain JSON instead of event streams")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "Listen address for the gRPC health service (disabled when empty)")
	fs.DurationVar(&cfg.HealthInterval, "health-interval", cfg.HealthInterval, "How often tool binaries are looked up again for health reporting")
	fs.BoolVar(&cfg.Advertise, "advertise", cfg.Advertise, "Advertise the http endpoint over mDNS")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or json")
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Path to a YAML configuration file")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Path to a .env file loaded before configuration")
	fs.Func("binary", "Override a tool's executable as tool=name (repeatable)", func(v string) error {
		name, bin, ok := strings.Cut(v, "=")
		if !ok || name == "" || bin == "" {
			return fmt.Errorf("expected tool=name, got %q", v)
		}
		if cfg.Binaries == nil {
			cfg.Binaries = map[string]string{}
		}
		cfg.Binaries[name] = bin
		return nil
	})

	return fs
}

func explicitlySet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadEnvFile loads path into the process environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load env file %s: %w", path, err)
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// LoadFile merges the YAML file at path into cfg. ${VAR} references are
// expanded from the environment before parsing.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("invalid transport %q: must be %s or %s", c.Transport, TransportStdio, TransportHTTP)
	}

	switch c.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be %s or %s", c.LogFormat, logging.FormatConsole, logging.FormatJSON)
	}

	if c.MaxDuration < 0 {
		return fmt.Errorf("max duration cannot be negative: %v", c.MaxDuration)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("base path must start with '/': %s", c.BasePath)
	}

	if c.Transport == TransportHTTP {
		if _, _, err := net.SplitHostPort(c.Addr); err != nil {
			return fmt.Errorf("invalid listen address %q: %w", c.Addr, err)
		}
	}
	if c.Advertise && c.Transport != TransportHTTP {
		return errors.New("advertise requires the http transport")
	}
	if c.HealthAddr != "" {
		if _, _, err := net.SplitHostPort(c.HealthAddr); err != nil {
			return fmt.Errorf("invalid health address %q: %w", c.HealthAddr, err)
		}
	}
	if c.HealthInterval <= 0 {
		return fmt.Errorf("health interval must be positive: %v", c.HealthInterval)
	}

	for tool, bin := range c.Binaries {
		if strings.ContainsAny(bin, `/\`) || strings.TrimSpace(bin) == "" {
			return fmt.Errorf("binary for %s must be a plain executable name found on PATH: %q", tool, bin)
		}
	}
	return nil
}

// Options converts the configuration into MCP server options.
func (c *Config) Options() mcp.Options {
	return mcp.Options{
		BasePath:         c.BasePath,
		VerboseLogs:      c.VerboseLogs,
		MaxDuration:      c.MaxDuration,
		DisableStreaming: c.DisableStreaming,
	}
}

func ShowUsage() {
	usage(newFlagSet(Defaults(), os.Stderr))
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: reconmcp [options]\n\n")
	fmt.Fprintf(fs.Output(), "Serves reconnaissance tools (amass, subfinder, nuclei, httpx and more) over the Model Context Protocol.\n\n")
	fmt.Fprintf(fs.Output(), "Options:\n")
	fs.PrintDefaults()
}
