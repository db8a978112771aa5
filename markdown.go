package tabular

import "strings"

// Markdown renders a GitHub-flavored Markdown table. The first row is the
// header; a lone row renders without a delimiter line.
type Markdown struct {
	table
	widths columnWidths
}

// NewMarkdown returns an empty Markdown renderer.
func NewMarkdown() *Markdown { return &Markdown{} }

// Kind returns [KindMarkdown].
func (m *Markdown) Kind() Kind { return KindMarkdown }

// Add appends a row and returns m. It panics with an [*ArityError] where
// Append would return one.
func (m *Markdown) Add(cells ...Cell) *Markdown {
	m.mustAppend(cells)
	return m
}

// SetColumnWidth sets the minimum width of column index (0-based).
func (m *Markdown) SetColumnWidth(index, width int) *Markdown {
	m.widths = m.widths.set(index, width)
	return m
}

// Build renders the table. An empty table renders as "".
func (m *Markdown) Build() (string, error) {
	if len(m.rows) == 0 {
		return "", nil
	}
	widths := computeWidths(m.rows, m.columnCount(), m.widths)

	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, markdownRow(m.rows[0], widths))
	if len(m.rows) == 1 {
		return lines[0], nil
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	lines = append(lines, "| "+strings.Join(sep, " | ")+" |")

	for _, row := range m.rows[1:] {
		lines = append(lines, markdownRow(row, widths))
	}
	return strings.Join(lines, "\n"), nil
}

func markdownRow(row Row, widths []int) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i].String()
		}
		padded[i] = padRight(cell, width)
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
