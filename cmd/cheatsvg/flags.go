package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	cheatsvg "github.com/alnah/go-cheatsvg"
)

// ErrHelpRequested signals that usage was printed and no work remains.
var ErrHelpRequested = errors.New("help requested")

// cliFlags holds the parsed command line.
type cliFlags struct {
	input   string
	output  string
	png     bool
	force   bool
	width   int
	scale   float64
	timeout time.Duration
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses the command line. It returns ErrHelpRequested when
// -h/--help was given (usage already printed to stdout).
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("cheatsvg", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs.Output()) }

	fs.StringVarP(&flags.input, "input", "i", "doc", "directory of cheatsheet YAML files")
	fs.StringVarP(&flags.output, "output", "o", "svg", "directory for SVG (and PNG) artifacts")
	fs.BoolVar(&flags.png, "png", false, "also rasterize each artifact to PNG")
	fs.BoolVar(&flags.force, "force", false, "ignore the fingerprint ledger and recompile everything")
	fs.IntVar(&flags.width, "width", cheatsvg.DefaultConsoleWidth, "virtual console width in columns")
	fs.Float64Var(&flags.scale, "scale", cheatsvg.DefaultRasterScale, "PNG raster scale factor")
	fs.DurationVar(&flags.timeout, "timeout", 30*time.Second, "browser page-load timeout")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress per-document output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelpRequested
		}
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %q", fs.Arg(0))
	}
	if flags.quiet && flags.verbose {
		return nil, errors.New("--quiet and --verbose are mutually exclusive")
	}

	return flags, nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cheatsvg [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile cheatsheet YAML files into terminal-styled SVG images.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --input <dir>      Directory of cheatsheet YAML files (default \"doc\")")
	fmt.Fprintln(w, "  -o, --output <dir>     Directory for artifacts (default \"svg\")")
	fmt.Fprintln(w, "      --png              Also rasterize each artifact to PNG (needs Chrome)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compilation:")
	fmt.Fprintln(w, "      --force            Ignore the fingerprint ledger, recompile everything")
	fmt.Fprintln(w, "      --width <n>        Virtual console width in columns (default 100)")
	fmt.Fprintln(w, "      --scale <f>        PNG raster scale factor (default 2.0)")
	fmt.Fprintln(w, "      --timeout <d>      Browser page-load timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet            Suppress per-document output")
	fmt.Fprintln(w, "  -v, --verbose          Verbose output")
	fmt.Fprintln(w, "      --version          Print version and exit")
	fmt.Fprintln(w, "  -h, --help             Show this help")
}
