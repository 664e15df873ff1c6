package cheatsvg

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table geometry in display cells. Two fixed columns wide enough for
// typical shell commands, padded left and right, no vertical rules.
const (
	tableCellPadding = 2
	tableCellWidth   = DefaultColumnWidth + 2*tableCellPadding
	tableInnerWidth  = 2 * tableCellWidth
	tableTotalWidth  = tableInnerWidth + 2 // one space of frame each side

	// tablePaddingTotal is everything a console row holds besides the
	// two column contents.
	tablePaddingTotal = 4*tableCellPadding + 2
)

const ellipsis = "…"

// sectionTable lays out one Section as console lines: an optional
// centered italic title row, a bold header row, a horizontal rule under
// the header, one row per command, and a closing rule. Rules carry a
// single frame space on each side; the post-processor keys on that
// shape when swapping them for line primitives.
func sectionTable(c *console, sec Section, index int) error {
	if sec.Title != "" {
		c.printCentered(titleRow(sec.Title))
	}

	c.printCentered(
		headerCell("Command"),
		headerCell("Description"),
	)
	c.printCentered(ruleRow())

	for i, cmd := range sec.Commands {
		if cmd.Command == "" {
			return fmt.Errorf("%w: section %q, row %d: missing command", ErrMalformedSection, sectionLabel(sec, index), i)
		}
		c.printCentered(
			cell(cmd.Command, styleCommand),
			cell(cmd.Description, styleDescription),
		)
	}

	c.printCentered(ruleRow())
	return nil
}

// sectionLabel identifies a section in errors, falling back to its
// position when the title is empty.
func sectionLabel(sec Section, index int) string {
	if sec.Title != "" {
		return sec.Title
	}
	return fmt.Sprintf("#%d", index+1)
}

// titleRow pads the section title to the full inner width so the title
// segment itself carries the centering spaces. The post-processor strips
// them again when it re-centers with glyph metrics.
func titleRow(title string) segment {
	title = fit(title, tableInnerWidth)
	pad := tableInnerWidth - runewidth.StringWidth(title)
	left := pad / 2
	right := pad - left
	return segment{
		text:  strings.Repeat(" ", left+1) + title + strings.Repeat(" ", right+1),
		style: styleTitle,
	}
}

// headerCell builds one padded header cell.
func headerCell(name string) segment {
	return cell(name, styleHeader)
}

// cell builds one padded, left-justified table cell. Content wider than
// the column is truncated with an ellipsis; command rows stay one line
// tall by construction.
func cell(content string, st style) segment {
	content = fit(content, DefaultColumnWidth)
	padding := strings.Repeat(" ", tableCellPadding)
	return segment{
		text:  padding + runewidth.FillRight(content, DefaultColumnWidth) + padding,
		style: st,
	}
}

// ruleRow builds a full-width horizontal rule with one frame space on
// each side.
func ruleRow() segment {
	return segment{
		text:  " " + strings.Repeat("─", tableInnerWidth) + " ",
		style: styleDefault,
	}
}

// fit truncates s to at most w display cells, appending an ellipsis
// when anything was cut.
func fit(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, ellipsis)
}
