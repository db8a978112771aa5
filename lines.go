package tabular

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TSV is a [Formatter] that joins cells with tabs and rows with newlines.
// Cells are written verbatim; tabs or newlines inside a cell are not escaped.
func TSV(rows []Row) (string, error) {
	lines := make([]string, len(rows))
	for i, row := range rows {
		fields := make([]string, len(row))
		for j, cell := range row {
			fields[j] = cell.String()
		}
		lines[i] = strings.Join(fields, "\t")
	}
	return strings.Join(lines, "\n"), nil
}

// JSONLines is a [Formatter] that writes each row as a compact JSON array on
// its own line, each line ending in a newline.
func JSONLines(rows []Row) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, row := range rows {
		if row == nil {
			row = Row{}
		}
		if err := enc.Encode(row); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
