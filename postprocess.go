package cheatsvg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// postProcessor rewrites cosmetic defects in a rendered SVG artifact.
type postProcessor interface {
	Process(svg string) (string, error)
}

// Compile-time interface check.
var _ postProcessor = (*markupPostProcessor)(nil)

// Precompiled rewrite patterns. These key on the capture format emitted
// by exportSVG; change them together with the exporter.
var (
	// viewBox width read-back, used for centering math.
	viewBoxPattern = regexp.MustCompile(`viewBox="0 0 (\d+(?:\.\d+)?)`)

	// Terminal window title: the 18px CSS declaration and the title
	// text element.
	titleFontPattern = regexp.MustCompile(`(\.terminal-\d+-title\s*\{[^}]*font-size:\s*)18px`)
	titleTextPattern = regexp.MustCompile(`(<text class="terminal-\d+-title"[^>]*)>`)

	// Content group anchored at the 9px chrome inset.
	contentGroupPattern = regexp.MustCompile(`(<g transform="translate\(9,\s*)(\d+)(\)"\s+clip-path)`)

	// Decorative horizontal rules: a run of box-drawing dashes flanked
	// by single non-breaking spaces.
	rulePattern = regexp.MustCompile(`<text class="([^"]*)" x="([^"]+)" y="([^"]+)"[^>]*>&#160;(─+)&#160;</text>`)

	// Section titles: italic-styled (-r2) text padded with
	// non-breaking spaces.
	sectionTitlePattern = regexp.MustCompile(`<text class="([^"]*-r2)" x="([^"]+)" y="([^"]+)"[^>]*>&#160;([^<]+?)&#160;</text>`)
)

// Post-processing constants. The stroke matches the terminal foreground;
// the glyph width is the monospace advance at 20px (not measured font
// metrics — see avgGlyphWidth). The title shift clears the enlarged
// window title.
const (
	ruleStroke      = colorForeground
	ruleStrokeWidth = "1.5"
	ruleRise        = 5  // px above the text baseline
	titleShift      = 15 // px added to the content group offset

	// avgGlyphWidth approximates rendered title width as runes × width.
	// It matches svgCharWidth by construction, and the emitted
	// textLength forces renderers to honor the approximation.
	avgGlyphWidth = svgCharWidth
)

// markupPostProcessor applies the four cosmetic rewrites:
// title font bump (CSS plus an inline attribute some SVG renderers
// need), vertical breathing room under the enlarged title, decorative
// rules redrawn as line primitives, and section titles re-centered with
// glyph metrics.
//
// Processing is NOT idempotent: the inline font-size attribute and the
// content-group shift accumulate when reapplied. Run renders every
// artifact fresh before processing, so no artifact is processed twice.
type markupPostProcessor struct {
	lineWidth   float64
	margin      float64
	canvasWidth float64 // fallback when the viewBox is unreadable; <= 0 disables
}

func newMarkupPostProcessor(lineWidth, margin, canvasWidth float64) *markupPostProcessor {
	return &markupPostProcessor{
		lineWidth:   lineWidth,
		margin:      margin,
		canvasWidth: canvasWidth,
	}
}

// Process rewrites the artifact and returns the result. It fails only
// when the canvas width cannot be determined and no fallback is
// configured; miscentering silently is worse than failing the document.
func (p *markupPostProcessor) Process(svg string) (string, error) {
	canvasWidth, err := p.resolveCanvasWidth(svg)
	if err != nil {
		return "", err
	}

	svg = titleFontPattern.ReplaceAllString(svg, "${1}20px")
	svg = titleTextPattern.ReplaceAllString(svg, `${1} font-size="20">`)
	svg = shiftContentGroup(svg)
	svg = p.redrawRules(svg)
	svg = p.centerSectionTitles(svg, canvasWidth)

	return svg, nil
}

// resolveCanvasWidth reads the declared viewBox width, falling back to
// the configured constant.
func (p *markupPostProcessor) resolveCanvasWidth(svg string) (float64, error) {
	if m := viewBoxPattern.FindStringSubmatch(svg); m != nil {
		w, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return w, nil
		}
	}
	if p.canvasWidth > 0 {
		return p.canvasWidth, nil
	}
	return 0, fmt.Errorf("%w: cannot determine canvas width (no viewBox, no fallback)", ErrPostProcess)
}

// shiftContentGroup pushes the content group down so rendered text does
// not collide with the enlarged window title.
func shiftContentGroup(svg string) string {
	return contentGroupPattern.ReplaceAllStringFunc(svg, func(match string) string {
		m := contentGroupPattern.FindStringSubmatch(match)
		y, err := strconv.Atoi(m[2])
		if err != nil {
			return match
		}
		return fmt.Sprintf("%s%d%s", m[1], y+titleShift, m[3])
	})
}

// redrawRules replaces dash-glyph rules with straight line primitives.
// Repeated dash glyphs render unevenly at high resolution; an explicit
// line is resolution-independent.
func (p *markupPostProcessor) redrawRules(svg string) string {
	return rulePattern.ReplaceAllStringFunc(svg, func(match string) string {
		m := rulePattern.FindStringSubmatch(match)
		x, errX := strconv.ParseFloat(m[2], 64)
		y, errY := strconv.ParseFloat(m[3], 64)
		if errX != nil || errY != nil {
			return match
		}
		return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
			px(x+p.margin), px(y-ruleRise), px(x+p.lineWidth+p.margin), px(y-ruleRise), ruleStroke, ruleStrokeWidth)
	})
}

// centerSectionTitles strips the padding from title rows and reissues
// them centered on the canvas. The width is a monospace approximation;
// the explicit textLength keeps renderers consistent with it.
func (p *markupPostProcessor) centerSectionTitles(svg string, canvasWidth float64) string {
	return sectionTitlePattern.ReplaceAllStringFunc(svg, func(match string) string {
		m := sectionTitlePattern.FindStringSubmatch(match)
		cssClass, y := m[1], m[3]

		title := strings.TrimSpace(strings.ReplaceAll(m[4], "&#160;", " "))
		titleWidth := float64(utf8.RuneCountInString(title)) * avgGlyphWidth
		centeredX := (canvasWidth - titleWidth) / 2

		return fmt.Sprintf(`<text class="%s" x="%.1f" y="%s" textLength="%s">%s</text>`,
			cssClass, centeredX, y, px(titleWidth), title)
	})
}
