package tabular

import "strings"

// CSV renders comma-separated values with every cell quoted.
//
// encoding/csv is not used because it quotes only when needed and ends every
// record with a newline.
type CSV struct {
	table
}

// NewCSV returns an empty CSV renderer.
func NewCSV() *CSV { return &CSV{} }

// Kind returns [KindCSV].
func (c *CSV) Kind() Kind { return KindCSV }

// Add appends a row and returns c. It panics with an [*ArityError] where
// Append would return one.
func (c *CSV) Add(cells ...Cell) *CSV {
	c.mustAppend(cells)
	return c
}

// Build renders the table with rows separated by "\n" and no trailing
// newline.
func (c *CSV) Build() (string, error) {
	lines := make([]string, len(c.rows))
	for i, row := range c.rows {
		fields := make([]string, len(row))
		for j, cell := range row {
			fields[j] = quoteCSV(cell.String())
		}
		lines[i] = strings.Join(fields, ",")
	}
	return strings.Join(lines, "\n"), nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
