package table2md

import (
	"io"
	"strings"
	"unicode/utf8"
)

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
)

// String renders the table as markdown. It does not validate: call
// [Table.Validate] first, or use [Table.Print]. An empty table renders as "".
//
//	|  foo  |  bar  |
//	|-------|-------|
//	| spam  | eggs  |
//	| hello | world |
func (t *Table) String() string {
	if len(t.Data) == 0 {
		return ""
	}
	header := t.Data[0]
	widths := columnWidths(t.Data)

	var sb strings.Builder

	cells := make([]string, len(header))
	for i, cell := range header {
		cells[i] = alignCell(cell, widths[i]+2, alignCenter)
	}
	writeLine(&sb, "|", cells, "|", "|")

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width+2)
	}
	writeLine(&sb, "|", sep, "|", "|")

	for _, row := range t.Data[1:] {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = alignCell(cell, widthAt(widths, i), alignLeft)
		}
		writeLine(&sb, "| ", cells, " | ", " |")
	}
	return sb.String()
}

// WriteTo writes the rendered table to w. Like [Table.String] it does not
// validate.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}

func writeLine(sb *strings.Builder, start string, cells []string, sep, end string) {
	sb.WriteString(start)
	sb.WriteString(strings.Join(cells, sep))
	sb.WriteString(end)
	sb.WriteByte('\n')
}

// columnWidths returns the widest cell of each header column. Cells of ragged
// rows beyond the header are ignored.
func columnWidths(data [][]string) []int {
	numCols := len(data[0])
	widths := make([]int, numCols)
	for _, row := range data {
		for i, cell := range row {
			if w := cellWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func widthAt(widths []int, col int) int {
	if col < len(widths) {
		return widths[col]
	}
	return 0
}

func cellWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// alignCell pads s with spaces to width. Centering puts the odd space on the
// right.
func alignCell(s string, width int, align alignment) string {
	pad := width - cellWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
