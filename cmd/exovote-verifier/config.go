package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultNode      = "http://localhost:20000"
	defaultAPIHost   = "0.0.0.0"
	defaultAPIPort   = 8100
	defaultLogLevel  = "info"
	defaultLogOutput = "stdout"
	defaultSecretKey = "secret_key.bin"
	defaultPublicKey = "public_key.bin"
	defaultVKey      = "verification_key.json"
)

// Version is the build version, set at build time with -ldflags
var Version = "dev"

// Config holds the application configuration
type Config struct {
	Node string
	API  APIConfig
	Keys KeysConfig
	Log  LogConfig
}

// APIConfig holds the API-specific configuration
type APIConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// KeysConfig holds the key material file locations
type KeysConfig struct {
	Secret string `mapstructure:"secret"`
	Public string `mapstructure:"public"`
	VKey   string `mapstructure:"vkey"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig() (*Config, error) {
	v := viper.New()

	// Set up default values
	v.SetDefault("node", defaultNode)
	v.SetDefault("api.host", defaultAPIHost)
	v.SetDefault("api.port", defaultAPIPort)
	v.SetDefault("keys.secret", defaultSecretKey)
	v.SetDefault("keys.public", defaultPublicKey)
	v.SetDefault("keys.vkey", defaultVKey)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	// Configure flags
	flag.StringP("node", "n", defaultNode, "HTTP interface of the node")
	flag.StringP("api.host", "a", defaultAPIHost, "API host")
	flag.IntP("api.port", "p", defaultAPIPort, "API port")
	flag.String("keys.secret", defaultSecretKey, "location of the signing secret key in binary format")
	flag.String("keys.public", defaultPublicKey, "location of the signing public key in binary format")
	flag.String("keys.vkey", defaultVKey, "location of the circuit verification key in JSON format")
	flag.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flag.StringP("log.output", "o", defaultLogOutput, "log output (stdout, stderr or filepath)")

	// Configure usage information
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "exovote-verifier v%s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: exovote-verifier [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dashes (-) and dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, EXOVOTE_NODE or EXOVOTE_API_PORT\n")
	}

	// Parse flags
	flag.CommandLine.SortFlags = false
	flag.Parse()

	// Configure Viper to use environment variables
	v.SetEnvPrefix("EXOVOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind flags to Viper
	if err := v.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	// Unmarshal configuration into struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if cfg.Node == "" {
		return fmt.Errorf("node endpoint is required (use --node flag or EXOVOTE_NODE environment variable)")
	}
	if cfg.Keys.Secret == "" {
		return fmt.Errorf("signing secret key location is required")
	}
	if cfg.Keys.VKey == "" {
		return fmt.Errorf("circuit verification key location is required")
	}
	if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
		return fmt.Errorf("invalid API port %d", cfg.API.Port)
	}
	return nil
}
