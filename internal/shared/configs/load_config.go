package configs

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"log-report/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "LOGREPORT"

const (
	defaultOnInvalidTimestamp = "fail"
	defaultLogLevel           = "warn"
)

// ErrHelp is returned by LoadConfig when --help was requested.
var ErrHelp = pflag.ErrHelp

// NewFlagSet declares the command-line flags. reportTypes is only used for
// the --report usage text.
func NewFlagSet(name string, reportTypes []string, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringSlice("file", nil, "path to log file(s); further paths may follow the flag")
	fs.String("report", "", fmt.Sprintf("type of report to generate (%s)", strings.Join(reportTypes, ", ")))
	fs.String("date", "", "keep only records whose @timestamp falls on this date (YYYY-MM-DD)")
	fs.String("on-invalid-timestamp", defaultOnInvalidTimestamp, "what to do with a record lacking a usable @timestamp when --date is set (fail, skip)")
	fs.String("log-level", defaultLogLevel, "diagnostics log level, written to stderr")
	fs.Bool("progress", false, "show a progress bar per file on stderr")
	fs.Bool("metrics", false, "print run counters to stderr after the report")

	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: %s --file <path> [<path> ...] --report <name> [--date YYYY-MM-DD]\n\n", name)
		fmt.Fprintf(output, "Process log files and generate reports.\n\n")
		fs.PrintDefaults()
	}
	return fs
}

// LoadConfig parses args with fs, overlays LOGREPORT_* environment variables
// for flags that were not given, and validates the result.
//
// Like `--file a.log b.log`, positional arguments are taken as further files.
var LoadConfig = func(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, ErrHelp) {
			return nil, err
		}
		return nil, errInvalidFlags(err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Files = append(cfg.Files, fs.Args()...)

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, errInvalidConfig(validators.Describe(err), err)
	}

	return &cfg, nil
}
