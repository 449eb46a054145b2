package appconf

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name, for example
// CARRIERDASH_PORT.
const EnvPrefix = "CARRIERDASH"

// Config holds all the configuration settings of the dashboard.
// Values are resolved from defaults, then an optional YAML file, then the
// environment and finally command-line flags.
type Config struct {
	Port         int           `yaml:"port" envconfig:"PORT"`
	Env          Environment   `yaml:"env" envconfig:"ENV"`
	DataPath     string        `yaml:"data_path" envconfig:"DATA_PATH"`
	RateLimit    float64       `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	RateBurst    int           `yaml:"rate_burst" envconfig:"RATE_BURST"`
	Verbose      bool          `yaml:"verbose" envconfig:"VERBOSE"`
	TrustProxy   bool          `yaml:"trust_proxy" envconfig:"TRUST_PROXY"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Port:         8050,
		Env:          Development,
		DataPath:     ".",
		RateLimit:    100,
		RateBurst:    50,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}
}

// Load builds a Config from the defaults, the YAML file at configFile (skipped
// when empty) and the CARRIERDASH_* environment variables.
func Load(configFile string) (Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration can start a server
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.DataPath == "" {
		errs = append(errs, errors.New("data path must not be empty"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("rate limit must be positive, got %v", c.RateLimit))
	}
	if c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("rate burst must be positive, got %d", c.RateBurst))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.IdleTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) IsDevelopment() bool {
	return c.Env == Development
}

// ParseFlags parses the dashboard command line. The -config flag names an
// optional YAML file; every other flag that is set overrides the value loaded
// from the file and the environment.
func ParseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	var (
		configFile string
		port       int
		env        string
		dataPath   string
		rateLimit  float64
		verbose    bool
		trustProxy bool
	)

	defaults := Default()
	fs.StringVar(&configFile, "config", "", "Path to a YAML config file")
	fs.IntVar(&port, "port", defaults.Port, "Dashboard server port")
	fs.StringVar(&env, "env", defaults.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&dataPath, "data", defaults.DataPath, "Directory of carrier files, or a single carrier file")
	fs.Float64Var(&rateLimit, "rate-limit", defaults.RateLimit, "Requests per second allowed per client")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug logging and list loader warnings")
	fs.BoolVar(&trustProxy, "trust-proxy", false, "Identify clients by X-Forwarded-For/X-Real-IP (only behind a trusted proxy)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(configFile)
	if err != nil {
		return Config{}, err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = port
		case "env":
			parsed, err := ParseEnvironment(env)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Env = parsed
		case "data":
			cfg.DataPath = dataPath
		case "rate-limit":
			cfg.RateLimit = rateLimit
		case "verbose":
			cfg.Verbose = verbose
		case "trust-proxy":
			cfg.TrustProxy = trustProxy
		}
	})
	if flagErr != nil {
		return Config{}, flagErr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
