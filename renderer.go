package cheatsvg

// documentRenderer converts one validated Document into SVG markup.
// The production implementation is terminalRenderer; tests inject
// counting stubs through the Compiler.
type documentRenderer interface {
	Render(doc *Document) (svg string, title string, err error)
}

// Compile-time interface check.
var _ documentRenderer = (*terminalRenderer)(nil)

// terminalRenderer renders documents through a virtual terminal session:
// one table per section, centered in a fixed-width console, captured as
// an SVG terminal window.
type terminalRenderer struct {
	consoleWidth int
}

func newTerminalRenderer(consoleWidth int) *terminalRenderer {
	return &terminalRenderer{consoleWidth: consoleWidth}
}

// Render builds the session and captures it. Sections render in order,
// each followed by one blank line. Rendering the same document twice
// produces byte-identical markup; the Run skip rule depends on that.
func (r *terminalRenderer) Render(doc *Document) (string, string, error) {
	c := newConsole(r.consoleWidth)

	for i, sec := range doc.Sections {
		if err := sectionTable(c, sec, i); err != nil {
			return "", "", err
		}
		c.printBlank()
	}

	return exportSVG(c, doc.TerminalTitle), doc.TerminalTitle, nil
}
