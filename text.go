package tabular

import (
	"strings"
	"unicode/utf8"
)

// Text renders a plain text table: cells left-aligned and space-padded to
// their column width, joined by a separator. The last column carries no
// trailing padding unless a minimum width is configured for it.
type Text struct {
	table
	widths    columnWidths
	separator string
}

// NewText returns an empty Text renderer with a single space separator.
func NewText() *Text {
	return &Text{separator: " "}
}

// Kind returns [KindText].
func (t *Text) Kind() Kind { return KindText }

// Add appends a row and returns t. It panics with an [*ArityError] where
// Append would return one.
func (t *Text) Add(cells ...Cell) *Text {
	t.mustAppend(cells)
	return t
}

// SetColumnWidth sets the minimum width of column index (0-based). Wider
// content still widens the column.
func (t *Text) SetColumnWidth(index, width int) *Text {
	t.widths = t.widths.set(index, width)
	return t
}

// SetSeparator sets the text placed between cells in a row.
func (t *Text) SetSeparator(sep string) *Text {
	t.separator = sep
	return t
}

// Build renders the table. An empty table renders as "".
func (t *Text) Build() (string, error) {
	if len(t.rows) == 0 {
		return "", nil
	}
	widths := computeWidths(t.rows, t.columnCount(), t.widths)
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		parts := make([]string, len(row))
		for j, cell := range row {
			if j == len(row)-1 {
				// The last cell is padded only up to a configured minimum,
				// never to the width of longer content above or below it.
				parts[j] = padRight(cell.String(), t.widths[j])
				continue
			}
			parts[j] = padRight(cell.String(), widths[j])
		}
		lines[i] = strings.Join(parts, t.separator)
	}
	return strings.Join(lines, "\n"), nil
}

// columnWidths maps a column index to its configured minimum width.
type columnWidths map[int]int

func (m columnWidths) set(index, width int) columnWidths {
	if m == nil {
		m = make(columnWidths)
	}
	m[index] = max(width, 0)
	return m
}

// computeWidths returns the effective width of each column: the longest cell
// text in the column, raised to the configured minimum if one is set.
func computeWidths(rows []Row, numCols int, minimums columnWidths) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, cell := range row {
			if w := textWidth(cell.String()); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if m, ok := minimums[i]; ok && m > widths[i] {
			widths[i] = m
		}
	}
	return widths
}

// textWidth counts characters, not display columns.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func padRight(s string, width int) string {
	pad := width - textWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
