package tabular

// Row is an ordered sequence of cells. Every row in a table has the length of
// the first row appended to it.
type Row []Cell

// table is the row store shared by every renderer. Its zero value is an empty
// table whose arity is fixed by the first Append.
type table struct {
	rows []Row
}

// Append adds a row. It fails with an [*ArityError] when the table already
// holds rows of a different length; the row is not stored in that case.
func (t *table) Append(cells ...Cell) error {
	if len(t.rows) > 0 && len(cells) != len(t.rows[0]) {
		return &ArityError{Expected: len(t.rows[0]), Actual: len(cells)}
	}
	row := make(Row, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// AppendValues converts each value with [Value] and appends the result as
// one row.
func (t *table) AppendValues(values ...any) error {
	cells := make([]Cell, len(values))
	for i, v := range values {
		c, err := Value(v)
		if err != nil {
			return err
		}
		cells[i] = c
	}
	return t.Append(cells...)
}

// Len returns the number of stored rows.
func (t *table) Len() int { return len(t.rows) }

// Arity returns the row length fixed by the first Append, or -1 while the
// table is empty.
func (t *table) Arity() int {
	if len(t.rows) == 0 {
		return -1
	}
	return len(t.rows[0])
}

// Rows returns a copy of the stored rows.
func (t *table) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, row := range t.rows {
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}

func (t *table) mustAppend(cells []Cell) {
	if err := t.Append(cells...); err != nil {
		panic(err)
	}
}

// columnCount is the longest row length. Rows are uniform while Append is
// the only way in, but renderers do not rely on it.
func (t *table) columnCount() int {
	n := 0
	for _, row := range t.rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Builder is the default accumulator. Its output is the rows themselves.
type Builder struct {
	table
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Kind returns [KindBuilder].
func (b *Builder) Kind() Kind { return KindBuilder }

// Add appends a row and returns b. It panics with an [*ArityError] where
// Append would return one.
func (b *Builder) Add(cells ...Cell) *Builder {
	b.mustAppend(cells)
	return b
}

// Build returns a copy of the rows in insertion order.
func (b *Builder) Build() ([]Row, error) {
	return b.Rows(), nil
}
