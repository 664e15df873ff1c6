package cheatsvg

import (
	"time"
)

// Document is the validated in-memory form of one cheatsheet source file.
type Document struct {
	Filename      string    `yaml:"filename"`       // Output basename (required)
	TerminalTitle string    `yaml:"terminal_title"` // Window chrome title (optional)
	Sections      []Section `yaml:"sections"`       // Rendered top to bottom (required, non-empty)
}

// Section is one titled command group. Commands render in source order.
type Section struct {
	Title    string         `yaml:"title"`
	Commands []CommandEntry `yaml:"commands"`
}

// CommandEntry is a single command/description row.
type CommandEntry struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

// Summary reports the outcome of one batch run.
// Total always equals Processed + Skipped + Failed.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	Total     int

	// LedgerErr carries a ledger write failure. The run itself still
	// succeeds; the next run simply recompiles what the ledger would
	// have skipped.
	LedgerErr error
}

// Rendering and post-processing defaults. The pixel-level values are
// empirical constants tuned against the SVG capture format (see
// postprocess.go); recalibrate them together if the capture changes.
const (
	DefaultConsoleWidth  = 100  // Console columns the session renders into
	DefaultColumnWidth   = 40   // Display columns per table column
	DefaultLineWidth     = 1060 // Replacement rule length in px
	DefaultLineMargin    = 25   // Rule left offset in px
	DefaultCanvasWidth   = 1238 // Fallback viewBox width in px
	DefaultRasterScale   = 2.0  // PNG pixels per SVG unit
	DefaultLedgerName    = ".cheatsvg-ledger.yaml"
	defaultBrowserWindow = 30 * time.Second
)

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	consoleWidth int
	lineWidth    float64
	margin       float64
	canvasWidth  float64
	scale        float64
	timeout      time.Duration
	ledgerName   string
	force        bool
	logf         func(format string, args ...any)
}

// defaultCompilerConfig returns the configuration New starts from.
func defaultCompilerConfig() compilerConfig {
	return compilerConfig{
		consoleWidth: DefaultConsoleWidth,
		lineWidth:    DefaultLineWidth,
		margin:       DefaultLineMargin,
		canvasWidth:  DefaultCanvasWidth,
		scale:        DefaultRasterScale,
		timeout:      defaultBrowserWindow,
		ledgerName:   DefaultLedgerName,
		logf:         func(string, ...any) {},
	}
}

// WithConsoleWidth sets the virtual console width in columns.
// Panics if cols is too narrow to hold a table (programmer error).
func WithConsoleWidth(cols int) Option {
	if cols < 2*DefaultColumnWidth+tablePaddingTotal {
		panic("cheatsvg: WithConsoleWidth narrower than one table")
	}
	return func(c *Compiler) {
		c.cfg.consoleWidth = cols
	}
}

// WithTimeout sets the browser page-load timeout used during rasterization.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cheatsvg: WithTimeout duration must be positive")
	}
	return func(c *Compiler) {
		c.cfg.timeout = d
	}
}

// WithScale sets the PNG raster scale factor.
func WithScale(scale float64) Option {
	if scale <= 0 {
		panic("cheatsvg: WithScale factor must be positive")
	}
	return func(c *Compiler) {
		c.cfg.scale = scale
	}
}

// WithForce makes Run ignore the fingerprint ledger and recompile
// every document.
func WithForce() Option {
	return func(c *Compiler) {
		c.cfg.force = true
	}
}

// WithLedgerName overrides the ledger filename resolved under the
// input directory.
func WithLedgerName(name string) Option {
	if name == "" {
		panic("cheatsvg: WithLedgerName requires a filename")
	}
	return func(c *Compiler) {
		c.cfg.ledgerName = name
	}
}

// WithRasterizer injects a rasterization collaborator. The compiler
// takes ownership and closes it in Close.
func WithRasterizer(r Rasterizer) Option {
	if r == nil {
		panic("cheatsvg: WithRasterizer requires a non-nil Rasterizer")
	}
	return func(c *Compiler) {
		c.raster = r
	}
}

// WithLogf sets the per-document status logger. The default discards.
func WithLogf(logf func(format string, args ...any)) Option {
	if logf == nil {
		panic("cheatsvg: WithLogf requires a non-nil func")
	}
	return func(c *Compiler) {
		c.cfg.logf = logf
	}
}
