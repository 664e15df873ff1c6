package cheatsvg

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal palette (Tomorrow Night). The foreground doubles as the frame
// color and as the stroke color of post-processed rules.
const (
	colorForeground  = "#c5c8c6"
	colorBackground  = "#1d1f21"
	colorCyan        = "#8abeb7"
	colorGreen       = "#b5bd68"
	colorYellow      = "#f0c674"
	colorChromeRed   = "#ff5f57"
	colorChromeAmber = "#febc2e"
	colorChromeGreen = "#28c840"
)

// style is a terminal text style: fill color plus weight and slant.
type style struct {
	color  string
	bold   bool
	italic bool
}

// Styles used by the table renderer. The SVG exporter assigns CSS
// classes in this fixed order (r1..r5), so the section-title class is
// stable across documents regardless of which styles a session uses.
var (
	styleDefault     = style{color: colorForeground}
	styleTitle       = style{color: colorForeground, italic: true}
	styleHeader      = style{color: colorCyan, bold: true}
	styleCommand     = style{color: colorGreen}
	styleDescription = style{color: colorYellow}
)

// classOrder fixes the CSS class index of each style (r1 first).
var classOrder = []style{styleDefault, styleTitle, styleHeader, styleCommand, styleDescription}

// segment is a run of identically styled characters within one line.
type segment struct {
	text  string
	style style
}

// width returns the display-cell width of the segment.
func (s segment) width() int {
	return runewidth.StringWidth(s.text)
}

// blank reports whether the segment contains only spaces.
func (s segment) blank() bool {
	return strings.TrimSpace(s.text) == ""
}

// line is one console row of styled segments, left to right.
type line []segment

// console records the lines of a fixed-width virtual terminal session.
type console struct {
	width int
	lines []line
}

func newConsole(width int) *console {
	return &console{width: width}
}

// printCentered appends a line horizontally centered in the console.
// The centering pad is an unstyled segment; the SVG exporter positions
// segments by column offset and drops blank ones, so the pad only
// shifts what follows.
func (c *console) printCentered(segs ...segment) {
	total := 0
	for _, s := range segs {
		total += s.width()
	}
	pad := (c.width - total) / 2
	if pad > 0 {
		segs = append(line{{text: strings.Repeat(" ", pad), style: styleDefault}}, segs...)
	}
	c.lines = append(c.lines, line(segs))
}

// printBlank appends an empty line.
func (c *console) printBlank() {
	c.lines = append(c.lines, line{})
}

// text returns the session as plain text, one row per line. Used to
// derive the deterministic terminal id.
func (c *console) text() string {
	var b strings.Builder
	for _, ln := range c.lines {
		for _, seg := range ln {
			b.WriteString(seg.text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
