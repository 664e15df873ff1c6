package cheatsvg

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// SVG capture geometry in px. The glyph box derives from the 20px
// monospace face (0.61em advance, 1.22em line height); the paddings and
// margins place the session inside the terminal window chrome. These
// values pair with the post-processor's metrics, so recalibrate them
// together.
const (
	svgFontSize    = 20
	svgCharWidth   = 12.2
	svgLineHeight  = 24.4
	svgPaddingTop  = 40
	svgPaddingSide = 8
	svgPaddingBot  = 8
	svgMargin      = 1
	svgTitleSize   = 18

	svgFontFamily = "Fira Code, monospace"
)

// exportSVG captures a recorded console session as an SVG terminal
// window. Output is a pure function of the session and title: the
// element id prefix derives from an FNV-1a hash of the session text, so
// identical input renders byte-identical markup.
func exportSVG(c *console, title string) string {
	prefix := terminalID(c, title)

	contentWidth := float64(c.width) * svgCharWidth
	contentHeight := float64(len(c.lines)) * svgLineHeight
	terminalWidth := contentWidth + 2*svgPaddingSide
	terminalHeight := contentHeight + svgPaddingTop + svgPaddingBot
	viewWidth := terminalWidth + 2*svgMargin
	viewHeight := terminalHeight + 2*svgMargin

	var b strings.Builder

	fmt.Fprintf(&b, "<svg class=\"rich-terminal\" viewBox=\"0 0 %s %s\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		px(viewWidth), px(viewHeight))

	writeStyles(&b, prefix)
	writeClipPaths(&b, prefix, contentWidth, contentHeight, len(c.lines))

	fmt.Fprintf(&b, "<rect fill=\"%s\" stroke=\"rgba(255,255,255,0.35)\" stroke-width=\"1\" x=\"%d\" y=\"%d\" width=\"%s\" height=\"%s\" rx=\"8\"/>",
		colorBackground, svgMargin, svgMargin, px(terminalWidth), px(terminalHeight))

	if title != "" {
		fmt.Fprintf(&b, "<text class=\"%s-title\" fill=\"%s\" text-anchor=\"middle\" x=\"%s\" y=\"27\">%s</text>",
			prefix, colorForeground, px(viewWidth/2), escapeXML(title))
	}

	b.WriteString("<g transform=\"translate(26,22)\">\n")
	fmt.Fprintf(&b, "<circle cx=\"0\" cy=\"0\" r=\"7\" fill=\"%s\"/>\n", colorChromeRed)
	fmt.Fprintf(&b, "<circle cx=\"22\" cy=\"0\" r=\"7\" fill=\"%s\"/>\n", colorChromeAmber)
	fmt.Fprintf(&b, "<circle cx=\"44\" cy=\"0\" r=\"7\" fill=\"%s\"/>\n", colorChromeGreen)
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, "<g transform=\"translate(%d, %d)\" clip-path=\"url(#%s-clip-terminal)\">\n",
		svgMargin+svgPaddingSide, svgMargin+svgPaddingTop, prefix)
	fmt.Fprintf(&b, "<g class=\"%s-matrix\">\n", prefix)

	for i, ln := range c.lines {
		col := 0
		for _, seg := range ln {
			w := seg.width()
			if !seg.blank() {
				fmt.Fprintf(&b, "<text class=\"%s-%s\" x=\"%s\" y=\"%s\" textLength=\"%s\" clip-path=\"url(#%s-line-%d)\">%s</text>\n",
					prefix, classFor(seg.style),
					px(float64(col)*svgCharWidth),
					px(float64(i)*svgLineHeight+svgFontSize),
					px(float64(w)*svgCharWidth),
					prefix, i,
					escapeText(seg.text))
			}
			col += w
		}
	}

	b.WriteString("</g>\n</g>\n</svg>\n")
	return b.String()
}

// terminalID derives the deterministic id prefix shared by every CSS
// class and clip path in one artifact.
func terminalID(c *console, title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	_, _ = h.Write([]byte(c.text()))
	return fmt.Sprintf("terminal-%d", h.Sum32())
}

// writeStyles emits the CSS block. The style classes r1..rN follow the
// fixed classOrder so class names are stable across documents. The
// title rule states its 18px size first; the post-processor rewrites
// exactly that declaration.
func writeStyles(b *strings.Builder, prefix string) {
	b.WriteString("<style>\n")
	fmt.Fprintf(b, ".%s-matrix {\n    font-family: %s;\n    font-size: %dpx;\n    line-height: %spx;\n    font-variant-east-asian: full-width;\n}\n",
		prefix, svgFontFamily, svgFontSize, px(svgLineHeight))
	fmt.Fprintf(b, ".%s-title {\n    font-size: %dpx;\n    font-weight: bold;\n    font-family: arial;\n}\n",
		prefix, svgTitleSize)
	for i, st := range classOrder {
		fmt.Fprintf(b, ".%s-r%d { %s }\n", prefix, i+1, cssDeclarations(st))
	}
	b.WriteString("</style>\n")
}

// writeClipPaths emits the terminal clip plus one clip per line.
func writeClipPaths(b *strings.Builder, prefix string, contentWidth, contentHeight float64, lines int) {
	b.WriteString("<defs>\n")
	fmt.Fprintf(b, "<clipPath id=\"%s-clip-terminal\">\n<rect x=\"0\" y=\"0\" width=\"%s\" height=\"%s\"/>\n</clipPath>\n",
		prefix, px(contentWidth), px(contentHeight))
	for i := 0; i < lines; i++ {
		fmt.Fprintf(b, "<clipPath id=\"%s-line-%d\">\n<rect x=\"0\" y=\"%s\" width=\"%s\" height=\"%s\"/>\n</clipPath>\n",
			prefix, i, px(float64(i)*svgLineHeight+1.5), px(contentWidth), px(svgLineHeight+0.25))
	}
	b.WriteString("</defs>\n")
}

// classFor maps a style to its fixed CSS class suffix. Unknown styles
// fall back to the default class.
func classFor(st style) string {
	for i, known := range classOrder {
		if st == known {
			return fmt.Sprintf("r%d", i+1)
		}
	}
	return "r1"
}

// cssDeclarations renders the declaration list of one style class.
func cssDeclarations(st style) string {
	decls := []string{"fill: " + st.color}
	if st.bold {
		decls = append(decls, "font-weight: bold")
	}
	if st.italic {
		decls = append(decls, "font-style: italic")
	}
	return strings.Join(decls, "; ")
}

// px formats a pixel value with at most one decimal, trimming ".0" so
// whole values print bare (1238, not 1238.0).
func px(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

// escapeXML escapes XML-special characters in text content.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeText escapes text content for the character matrix, encoding
// spaces as non-breaking so renderers preserve runs of them.
func escapeText(s string) string {
	return strings.ReplaceAll(escapeXML(s), " ", "&#160;")
}
