package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/glyphgen/internal/app"
	"github.com/specialistvlad/glyphgen/internal/config"
	"github.com/specialistvlad/glyphgen/internal/emit"
)

// directTableName names the single table built in direct mode.
const directTableName = "glyphs"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("glyphgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
glyphgen - Compiles bitmap glyph definitions into Go lookup tables.

Usage:
  glyphgen [options] INPUT...
  glyphgen -manifest glyphgen.hcl [options]

Arguments:
  INPUT
    Definition file, or directory of *.txt definition files. Inputs are
    loaded in the order given; a character defined twice is an error.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to an HCL manifest describing the tables to build.")
	mFlag := flagSet.String("m", "", "Path to an HCL manifest (shorthand).")
	kindFlag := flagSet.String("kind", emit.KindDense, "Table kind in direct mode. Options: 'dense' or 'sparse'.")
	outFlag := flagSet.String("o", "", "Output Go file in direct mode.")
	packageFlag := flagSet.String("package", "", "Package name of the generated file. Defaults to the output directory name.")
	symbolFlag := flagSet.String("symbol", "", "Exported name of the generated table. Defaults to 'Chars' (dense) or 'CharsExtra' (sparse).")
	rangeFlag := flagSet.Int("range", 0, fmt.Sprintf("Number of code points in a dense table. 0 selects %d.", emit.DefaultRange))
	dumpFlag := flagSet.Bool("dump", false, "Print the loaded glyphs in definition format instead of writing tables.")
	envFileFlag := flagSet.String("env-file", "", "Dotenv file whose values are visible to the manifest as env.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	manifest := *manifestFlag
	if manifest == "" {
		manifest = *mFlag
	}
	inputs := flagSet.Args()

	if manifest == "" && len(inputs) == 0 {
		slog.Debug("No manifest or inputs provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg := app.Config{
		ManifestPath: manifest,
		EnvFile:      *envFileFlag,
		Dump:         *dumpFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}

	if manifest != "" {
		if len(inputs) > 0 {
			return nil, false, usageError("positional inputs cannot be combined with -manifest")
		}
		set := setFlags(flagSet)
		for _, name := range []string{"kind", "o", "package", "symbol", "range"} {
			if set[name] {
				return nil, false, usageError("-%s only applies to direct mode, set it in the manifest instead", name)
			}
		}
	} else {
		table, err := directTable(inputs, *kindFlag, *outFlag, *packageFlag, *symbolFlag, *rangeFlag, *dumpFlag)
		if err != nil {
			return nil, false, err
		}
		cfg.Table = table
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

func directTable(inputs []string, kind, out, pkg, symbol string, rng int, dump bool) (*config.Table, error) {
	kind = strings.ToLower(kind)
	if kind != emit.KindDense && kind != emit.KindSparse {
		return nil, usageError("invalid kind: must be '%s' or '%s'", emit.KindDense, emit.KindSparse)
	}
	if rng != 0 && kind != emit.KindDense {
		return nil, usageError("-range only applies to dense tables")
	}
	if rng < 0 || rng > emit.MaxRange {
		return nil, usageError("invalid range %d: must be between 1 and %d", rng, emit.MaxRange)
	}
	if out == "" {
		if !dump {
			return nil, usageError("-o is required unless -manifest or -dump is given")
		}
		// Dump mode never writes the output.
		out = "-"
	}

	return &config.Table{
		Name:    directTableName,
		Kind:    kind,
		Inputs:  inputs,
		Output:  out,
		Package: pkg,
		Symbol:  symbol,
		Range:   rng,
	}, nil
}

// setFlags reports which flags were given explicitly on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
