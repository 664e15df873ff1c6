package cheatsvg

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cheatsvg/internal/fileutil"
)

// Rasterizer converts a vector artifact on disk into a bitmap twin.
// Implementations may keep expensive state (a warm browser) between
// calls; callers own the lifecycle and must Close when done.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath, pngPath string) error
	Close() error
}

// Compile-time interface check.
var _ Rasterizer = (*rodRasterizer)(nil)

// viewBoxSizePattern reads the artifact's declared dimensions.
var viewBoxSizePattern = regexp.MustCompile(`viewBox="0 0 ([\d.]+) ([\d.]+)"`)

// Fallback raster dimensions when the viewBox is unreadable.
const (
	fallbackRasterWidth  = 1600
	fallbackRasterHeight = 1200
)

// rodRasterizer implements Rasterizer using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found. The
// browser launches lazily on first use and is reused across calls.
type rodRasterizer struct {
	browser *rod.Browser
	timeout time.Duration
	scale   float64
}

// newRodRasterizer creates a rodRasterizer with the given page-load
// timeout and raster scale factor.
func newRodRasterizer(timeout time.Duration, scale float64) *rodRasterizer {
	return &rodRasterizer{timeout: timeout, scale: scale}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRasterizer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRasterizer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// Rasterize renders the SVG at svgPath into a PNG at pngPath. Pixel
// dimensions derive from the artifact's viewBox multiplied by the scale
// factor. The SVG is embedded in a margin-less HTML page because Chrome
// screenshots pages, not documents.
func (r *rodRasterizer) Rasterize(ctx context.Context, svgPath, pngPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	svgContent, err := os.ReadFile(svgPath) // #nosec G304 -- path derived from the output dir
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArtifactRead, err)
	}

	width, height := rasterSize(string(svgContent), r.scale)

	page, cleanup, err := r.openPage(string(svgContent), width, height)
	if err != nil {
		return err
	}
	defer cleanup()

	// Wait for load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	pngBuf, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScreenshot, err)
	}

	// #nosec G306 -- PNG output files are intended to be readable
	if err := os.WriteFile(pngPath, pngBuf, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrScreenshot, pngPath, err)
	}

	return nil
}

// openPage wraps the SVG in an HTML shell, writes it to a temp file,
// and opens it at the requested viewport size. The returned cleanup
// closes the page and removes the temp file.
func (r *rodRasterizer) openPage(svgContent string, width, height int) (*rod.Page, func(), error) {
	htmlContent := `<!DOCTYPE html><html><body style="margin:0">` + svgContent + `</body></html>`

	tmpPath, removeTmp, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		removeTmp()
		return nil, nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		removeTmp()
		return nil, nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = page.Close()
		removeTmp()
		return nil, nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	cleanup := func() {
		_ = page.Close()
		removeTmp()
	}
	return page, cleanup, nil
}

// rasterSize derives pixel dimensions from the declared viewBox, scaled.
func rasterSize(svgContent string, scale float64) (int, int) {
	m := viewBoxSizePattern.FindStringSubmatch(svgContent)
	if m == nil {
		return fallbackRasterWidth, fallbackRasterHeight
	}
	w, errW := strconv.ParseFloat(m[1], 64)
	h, errH := strconv.ParseFloat(m[2], 64)
	if errW != nil || errH != nil {
		return fallbackRasterWidth, fallbackRasterHeight
	}
	return int(w * scale), int(h * scale)
}
