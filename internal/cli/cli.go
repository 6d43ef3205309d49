package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/psetforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList collects a repeatable flag. Each value may also hold a
// comma-separated list.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

// Parse processes command-line arguments against the process environment.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return parse(args, output, nil)
}

// ParseEnv is Parse with the environment given as a map.
func ParseEnv(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return parse(args, output, environ)
}

func parse(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("psetforge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
psetforge - Builds and inspects typed configuration records.

Usage:
  psetforge [options] [CATALOG_PATH...]

Arguments:
  CATALOG_PATH
    Path to a single .hcl file or a directory containing .hcl files.
    Catalogs are loaded after the built-in records and may derive from them.

Environment:
  Every option may also be set as %[1]sFORMAT, %[1]sRECORDS, %[1]sDIFF,
  %[1]sNO_BUILTIN, %[1]sLOG_LEVEL, %[1]sLOG_FORMAT and %[1]sPATHS.
  Options given on the command line win.

Options:
`, app.EnvPrefix)
		flagSet.PrintDefaults()
	}

	var records stringList
	flagSet.Var(&records, "record", "Name of a record to print. Repeatable. Default: all records.")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'hcl', 'json' or 'yaml'. Default: 'hcl'.")
	diffFlag := flagSet.Bool("diff", false, "Print the changes against the base record instead of the record.")
	noBuiltinFlag := flagSet.Bool("no-builtin", false, "Do not register the built-in b-tag records.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Default: 'text'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Default: 'info'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := app.Config{
		Paths:     flagSet.Args(),
		Records:   records,
		Format:    *formatFlag,
		Diff:      *diffFlag,
		NoBuiltin: *noBuiltinFlag,
		LogLevel:  *logLevelFlag,
		LogFormat: *logFormatFlag,
	}

	var (
		config *app.Config
		err    error
	)
	if environ == nil {
		config, err = app.NewConfig(explicit)
	} else {
		config, err = app.NewConfigFromEnv(explicit, environ)
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
