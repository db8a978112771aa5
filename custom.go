package tabular

const defaultCustomLabel = "custom"

// Formatter turns the rows of a table into an output value. Errors it returns
// are passed through [Custom.Build] unchanged.
type Formatter[T any] func(rows []Row) (T, error)

// Custom renders rows through a caller-supplied [Formatter].
type Custom[T any] struct {
	table
	label  string
	format Formatter[T]
}

// NewCustom returns an empty Custom renderer. An empty label defaults to
// "custom"; the label names the format and never affects the output.
func NewCustom[T any](label string, format Formatter[T]) *Custom[T] {
	if label == "" {
		label = defaultCustomLabel
	}
	return &Custom[T]{label: label, format: format}
}

// Kind returns [KindCustom].
func (c *Custom[T]) Kind() Kind { return KindCustom }

// Label returns the human-readable name of the format.
func (c *Custom[T]) Label() string { return c.label }

// Add appends a row and returns c. It panics with an [*ArityError] where
// Append would return one.
func (c *Custom[T]) Add(cells ...Cell) *Custom[T] {
	c.mustAppend(cells)
	return c
}

// Build calls the formatter with a copy of the rows and returns its result
// verbatim.
func (c *Custom[T]) Build() (T, error) {
	if c.format == nil {
		var zero T
		return zero, ErrNilFormatter
	}
	return c.format(c.Rows())
}
