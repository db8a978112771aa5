package tabular

import (
	"bytes"
	"encoding/json"
)

// JSON renders the rows as a compact JSON array of arrays.
type JSON struct {
	table
}

// NewJSON returns an empty JSON renderer.
func NewJSON() *JSON { return &JSON{} }

// Kind returns [KindJSON].
func (j *JSON) Kind() Kind { return KindJSON }

// Add appends a row and returns j. It panics with an [*ArityError] where
// Append would return one.
func (j *JSON) Add(cells ...Cell) *JSON {
	j.mustAppend(cells)
	return j
}

// Build renders the table. An empty table renders as "[]".
func (j *JSON) Build() (string, error) {
	rows := j.rows
	if rows == nil {
		rows = []Row{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
