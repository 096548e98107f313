// SPDX-FileCopyrightText: Copyright The mcp-file-server Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the process configuration.
//
// Every option can be set by a command line flag or an environment variable.
// A flag that was set explicitly wins over the environment variable, which wins
// over the default.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/mcp-file-server/mcp-file-server/pkg/logrusutil"
)

const (
	TransportStreamableHTTP = "streamable-http"
	TransportStdio          = "stdio"
)

const (
	DefaultTransport = TransportStreamableHTTP
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 3000
	DefaultLogLevel  = "INFO"
	DefaultLogFormat = "text"
	DefaultBasePath  = "/data"
)

// Flag names and the environment variables that back them.
const (
	FlagTransport = "transport"
	FlagHost      = "host"
	FlagPort      = "port"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagPath      = "path"

	EnvTransport = "TRANSPORT"
	EnvHost      = "HOST"
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvBasePath  = "BASE_PATH"
)

var envByFlag = map[string]string{
	FlagTransport: EnvTransport,
	FlagHost:      EnvHost,
	FlagPort:      EnvPort,
	FlagLogLevel:  EnvLogLevel,
	FlagLogFormat: EnvLogFormat,
	FlagPath:      EnvBasePath,
}

type Config struct {
	Transport string
	Host      string
	Port      int
	LogLevel  string
	LogFormat string
	BasePath  string
}

func Default() Config {
	return Config{
		Transport: DefaultTransport,
		Host:      DefaultHost,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		BasePath:  DefaultBasePath,
	}
}

// AddFlags registers the flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagTransport, DefaultTransport, fmt.Sprintf("Transport protocol to use [%s, %s] ($%s)", TransportStreamableHTTP, TransportStdio, EnvTransport))
	fs.String(FlagHost, DefaultHost, fmt.Sprintf("Host to listen on for HTTP ($%s)", EnvHost))
	fs.Int(FlagPort, DefaultPort, fmt.Sprintf("Port to listen on for HTTP ($%s)", EnvPort))
	fs.String(FlagLogLevel, DefaultLogLevel, fmt.Sprintf("Logging level [DEBUG, INFO, WARNING, ERROR, CRITICAL] ($%s)", EnvLogLevel))
	fs.String(FlagLogFormat, DefaultLogFormat, fmt.Sprintf("Logging format [text, json] ($%s)", EnvLogFormat))
	fs.String(FlagPath, DefaultBasePath, fmt.Sprintf("Base path for the file server ($%s)", EnvBasePath))
}

// Load builds the configuration from fs and the environment.
// lookupEnv is usually [os.LookupEnv].
func Load(fs *pflag.FlagSet, lookupEnv func(string) (string, bool)) (*Config, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	get := func(name string) (string, error) {
		f := fs.Lookup(name)
		if f == nil {
			return "", fmt.Errorf("flag %q is not registered", name)
		}
		if !f.Changed {
			if v, ok := lookupEnv(envByFlag[name]); ok && v != "" {
				return v, nil
			}
		}
		return f.Value.String(), nil
	}

	var (
		cfg  Config
		errs []error
		err  error
	)
	if cfg.Transport, err = get(FlagTransport); err != nil {
		errs = append(errs, err)
	}
	if cfg.Host, err = get(FlagHost); err != nil {
		errs = append(errs, err)
	}
	port, err := get(FlagPort)
	if err != nil {
		errs = append(errs, err)
	} else if cfg.Port, err = strconv.Atoi(port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port %q: %w", port, err))
	}
	if cfg.LogLevel, err = get(FlagLogLevel); err != nil {
		errs = append(errs, err)
	}
	if cfg.LogFormat, err = get(FlagLogFormat); err != nil {
		errs = append(errs, err)
	}
	if cfg.BasePath, err = get(FlagPath); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values, but not the existence of BasePath.
func (c *Config) Validate() error {
	var errs []error
	switch c.Transport {
	case TransportStreamableHTTP, TransportStdio:
	default:
		errs = append(errs, fmt.Errorf("unsupported transport %q, expected %q or %q", c.Transport, TransportStreamableHTTP, TransportStdio))
	}
	if net.ParseIP(c.Host) == nil {
		errs = append(errs, fmt.Errorf("host %q is not an IP address", c.Host))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}
	if _, err := logrusutil.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unsupported log-format: %q", c.LogFormat))
	}
	if c.BasePath == "" {
		errs = append(errs, errors.New("base path must not be empty"))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
