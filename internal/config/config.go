// Package config loads the settings of the echo binaries. Every setting is a
// command-line flag that can also come from a GRPCECHO_* environment
// variable or from a config file.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables holding settings. The
// flag "log-level" is read from GRPCECHO_LOG_LEVEL, for example.
const EnvPrefix = "GRPCECHO"

// Logging holds the settings shared by all binaries.
type Logging struct {
	Level  string `mapstructure:"log-level"`
	Format string `mapstructure:"log-format"`
}

// Server holds the settings of the echo server.
type Server struct {
	Logging      `mapstructure:",squash"`
	ListenAddr   string `mapstructure:"listen"`
	ErrorDetails bool   `mapstructure:"error-details"`
	MetricsAddr  string `mapstructure:"metrics-addr"`
}

// Client holds the settings of the echo client.
type Client struct {
	Logging     `mapstructure:",squash"`
	Target      string        `mapstructure:"target"`
	Codec       string        `mapstructure:"codec"`
	DialTimeout time.Duration `mapstructure:"dial-timeout"`
	Input       string        `mapstructure:"input"`
	Messages    int           `mapstructure:"messages"`
	Delay       time.Duration `mapstructure:"delay"`
	Workers     int           `mapstructure:"workers"`
	Duration    time.Duration `mapstructure:"duration"`
}

// AddLoggingFlags defines the logging flags.
func AddLoggingFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "minimum level of log messages: debug, info, warn or error")
	fs.String("log-format", "console", "log output format: console or json")
	fs.String("config", "", "optional config file (yaml, json or toml) with flag values")
}

// AddServerFlags defines the flags of the echo server.
func AddServerFlags(fs *pflag.FlagSet) {
	AddLoggingFlags(fs)
	fs.String("listen", "[::1]:8001", "address on which the server listens")
	fs.Bool("error-details", false, "fail every call with an error carrying two details")
	fs.String("metrics-addr", "", "if set, address on which Prometheus metrics are served")
}

// AddClientFlags defines the flags of the echo client.
func AddClientFlags(fs *pflag.FlagSet) {
	AddLoggingFlags(fs)
	fs.String("target", "localhost:8001", "address of the echo server")
	fs.String("codec", "proto", "codec used for messages: proto or json")
	fs.Duration("dial-timeout", 5*time.Second, "how long to wait for the connection to be ready")
	fs.String("input", "Hello, world!", "input of the unary call")
	fs.Int("messages", 3, "number of requests sent per stream")
	fs.Duration("delay", time.Second, "pause between requests of a stream")
	fs.Int("workers", 4, "goroutines per call kind when generating load")
	fs.Duration("duration", 5*time.Second, "how long load is generated")
}

// Load fills out from the flags in fs, GRPCECHO_* environment variables and
// the file named by the "config" flag, in decreasing order of precedence.
func Load(fs *pflag.FlagSet, out interface{}) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return errors.Wrap(err, "failed to bind flags")
	}
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	if err := v.Unmarshal(out); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}
	return nil
}
