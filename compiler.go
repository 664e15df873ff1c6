package cheatsvg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-cheatsvg/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Compiler orchestrates the cheatsheet batch pipeline: discovery,
// change detection, rendering, post-processing, and optional
// rasterization.
type Compiler struct {
	cfg      compilerConfig
	renderer documentRenderer
	post     postProcessor
	raster   Rasterizer
}

// New creates a Compiler with default configuration.
// Use options to customize behavior (e.g., WithConsoleWidth).
func New(opts ...Option) *Compiler {
	c := &Compiler{cfg: defaultCompilerConfig()}

	for _, opt := range opts {
		opt(c)
	}

	c.renderer = newTerminalRenderer(c.cfg.consoleWidth)
	c.post = newMarkupPostProcessor(c.cfg.lineWidth, c.cfg.margin, c.cfg.canvasWidth)

	// Create rasterizer if not injected (e.g., by tests). The browser
	// launches lazily, so this costs nothing unless Run rasterizes.
	if c.raster == nil {
		c.raster = newRodRasterizer(c.cfg.timeout, c.cfg.scale)
	}

	return c
}

// Run compiles every cheatsheet document in inputDir into outputDir,
// optionally rasterizing each artifact to a PNG twin. Documents are
// processed one at a time in name order; a failing document never
// aborts the batch. The only fatal errors are an unreadable input
// directory, an uncreatable output directory, and context cancellation
// (checked between documents, never mid-document).
func (c *Compiler) Run(ctx context.Context, inputDir, outputDir string, rasterize bool) (Summary, error) {
	files, err := discoverDocuments(inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("scanning %s: %w", inputDir, err)
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	ledgerPath := filepath.Join(inputDir, c.cfg.ledgerName)
	ledger := LoadLedger(ledgerPath)
	updated := Ledger{}

	var sum Summary
	var runErr error

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		sum.Total++
		switch status := c.compileOne(ctx, path, outputDir, rasterize, ledger, updated); status {
		case docProcessed:
			sum.Processed++
		case docSkipped:
			sum.Skipped++
		case docFailed:
			sum.Failed++
		}
	}

	// Failed documents are absent from the rebuilt ledger, so the next
	// run retries them instead of caching the failure.
	if err := SaveLedger(ledgerPath, updated); err != nil {
		sum.LedgerErr = err
		c.cfg.logf("ledger: %v", err)
	}

	return sum, runErr
}

// Close releases resources held by the rasterization collaborator
// (the headless browser, if one was launched).
func (c *Compiler) Close() error {
	if c.raster != nil {
		return c.raster.Close()
	}
	return nil
}

// docStatus is the per-document outcome inside one batch run.
type docStatus int

const (
	docProcessed docStatus = iota
	docSkipped
	docFailed
)

// compileOne runs the full pipeline for a single source file. Every
// failure is caught here, logged with the offending path, and reported
// as docFailed; only successful and skipped documents earn an entry in
// the updated ledger.
func (c *Compiler) compileOne(ctx context.Context, path, outputDir string, rasterize bool, ledger, updated Ledger) docStatus {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		c.cfg.logf("failed %s: %v", path, err)
		return docFailed
	}

	doc, err := LoadDocument(data)
	if err != nil {
		c.cfg.logf("failed %s: %v", path, err)
		return docFailed
	}

	digest := Fingerprint(data)
	svgPath := filepath.Join(outputDir, doc.Filename+".svg")
	pngPath := filepath.Join(outputDir, doc.Filename+".png")

	if !c.cfg.force && c.upToDate(doc.Filename, digest, svgPath, pngPath, rasterize, ledger) {
		updated[doc.Filename] = digest
		c.cfg.logf("skipped %s (unchanged)", doc.Filename)
		return docSkipped
	}

	svg, _, err := c.renderer.Render(doc)
	if err != nil {
		c.cfg.logf("failed %s: %v", path, err)
		return docFailed
	}

	svg, err = c.post.Process(svg)
	if err != nil {
		c.cfg.logf("failed %s: %v", path, err)
		return docFailed
	}

	if err := os.WriteFile(svgPath, []byte(svg), filePermissions); err != nil {
		c.cfg.logf("failed %s: writing artifact: %v", path, err)
		return docFailed
	}

	if rasterize {
		if err := c.raster.Rasterize(ctx, svgPath, pngPath); err != nil {
			c.cfg.logf("failed %s: %v", path, err)
			return docFailed
		}
	}

	updated[doc.Filename] = digest
	c.cfg.logf("compiled %s -> %s", path, svgPath)
	return docProcessed
}

// upToDate implements the skip rule: the recorded fingerprint matches
// the current source AND the expected artifacts still exist on disk.
func (c *Compiler) upToDate(filename, digest, svgPath, pngPath string, rasterize bool, ledger Ledger) bool {
	if ledger[filename] != digest {
		return false
	}
	if !fileutil.FileExists(svgPath) {
		return false
	}
	if rasterize && !fileutil.FileExists(pngPath) {
		return false
	}
	return true
}

// discoverDocuments lists the cheatsheet sources (*.yaml, *.yml) in
// dir, sorted by name for deterministic processing order. It does not
// recurse; cheatsheet collections are flat.
func discoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Dotfiles are never documents; the fingerprint ledger itself
		// lives in dir as one.
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
