// Package cheatsvg compiles YAML cheatsheet documents into terminal-styled
// SVG images.
//
// # Quick Start
//
// Create a compiler, run it against a directory of cheatsheet files, and
// close it when done:
//
//	comp := cheatsvg.New()
//	defer comp.Close()
//
//	summary, err := comp.Run(ctx, "doc", "svg", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d processed, %d skipped, %d failed\n",
//	    summary.Processed, summary.Skipped, summary.Failed)
//
// # Compilation Pipeline
//
// Each document flows through these stages:
//
//  1. YAML loading and schema validation (filename, sections)
//  2. Virtual terminal rendering: one two-column table per section,
//     centered in a fixed-width console session
//  3. SVG capture of the session, including terminal window chrome
//  4. Markup post-processing: decorative rules become <line> primitives,
//     section titles are re-centered, the window title is enlarged
//  5. Optional rasterization to PNG via headless Chrome (go-rod)
//
// # Change Detection
//
// A fingerprint ledger (SHA-256 of the source bytes, persisted as YAML
// next to the inputs) lets Run skip documents whose source is unchanged
// and whose artifacts still exist. Failed documents are dropped from the
// ledger and retried on the next run.
//
// # Configuration
//
// Use functional options to customize the compiler:
//
//	comp := cheatsvg.New(
//	    cheatsvg.WithConsoleWidth(120),
//	    cheatsvg.WithTimeout(time.Minute),
//	    cheatsvg.WithScale(3.0),
//	)
//
// # Browser Requirements
//
// Rasterization requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary in containers.
// SVG output needs no browser at all.
package cheatsvg
