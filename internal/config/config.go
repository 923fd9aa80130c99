// Package config reads the command line flags of the chessquito program.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	EnvironmentVariableHTTPAddr    = "CHESSQUITO_HTTP_ADDR"
	EnvironmentVariableLogLevel    = "CHESSQUITO_LOG_LEVEL"
	EnvironmentVariableCORSOrigins = "CHESSQUITO_CORS_ORIGINS"
)

// Config holds the settings of one run.
type Config struct {
	// HTTPAddr is where the spectator server listens, empty to disable it.
	HTTPAddr    string
	LogLevel    string
	CORSOrigins string
}

// ErrHelp is returned by Parse when -h or -help was given.
var ErrHelp = flag.ErrHelp

func flagUsage(fs *flag.FlagSet) {
	envVars := []string{
		EnvironmentVariableHTTPAddr,
		EnvironmentVariableLogLevel,
		EnvironmentVariableCORSOrigins,
	}
	fmt.Fprintf(fs.Output(), "Usage: %s\n", fs.Name())
	fmt.Fprintln(fs.Output(), "   my first Chessquito game")
	fmt.Fprintln(fs.Output(), "Reads environment variables when possible:", fmt.Sprintf("[%s]", strings.Join(envVars, ",")))
	fs.PrintDefaults()
}

func initFlags(programName string, lookupEnv func(string) (string, bool)) (*flag.FlagSet, *Config) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	cfg := new(Config)
	env := func(key, defaultValue string) string {
		if v, ok := lookupEnv(key); ok {
			return v
		}
		return defaultValue
	}
	fs.StringVar(&cfg.HTTPAddr, "http", env(EnvironmentVariableHTTPAddr, ""), "The address of the read-only spectator server, such as :3000. Disabled when empty.")
	fs.StringVar(&cfg.LogLevel, "log-level", env(EnvironmentVariableLogLevel, "warn"), "The minimum level of log messages written to stderr.")
	fs.StringVar(&cfg.CORSOrigins, "cors-origins", env(EnvironmentVariableCORSOrigins, "http://localhost:5173"), "Comma separated origins allowed to call the spectator server.")
	return fs, cfg
}

// Parse reads args (without the program name) on top of the environment.
// Usage is written to stdout on -h and to stderr after a bad argument.
func Parse(programName string, args []string, stdout, stderr io.Writer) (*Config, error) {
	return parse(programName, args, stdout, stderr, os.LookupEnv)
}

func parse(programName string, args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) (*Config, error) {
	fs, cfg := initFlags(programName, lookupEnv)
	fs.SetOutput(stderr)
	// usage is printed below, to stdout or stderr depending on the error
	fs.Usage = func() {}
	err := fs.Parse(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(stdout)
		flagUsage(fs)
		return nil, err
	case err != nil:
		flagUsage(fs)
		return nil, err
	case fs.NArg() != 0:
		err = fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(stderr, err)
		flagUsage(fs)
		return nil, err
	}
	return cfg, nil
}
