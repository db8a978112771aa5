package tabular

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrUnsupportedKind  = errors.New("unsupported kind")
	ErrUnsupportedValue = errors.New("unsupported cell value")
	ErrNilFormatter     = errors.New("nil formatter")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// ArityError reports a row whose length differs from the first row appended
// to the same table. It unwraps to [ErrArityMismatch].
type ArityError struct {
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("row length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// Kind identifies the output representation of a renderer.
type Kind string

const (
	KindText     Kind = "text"
	KindHTML     Kind = "html"
	KindJSON     Kind = "json"
	KindCSV      Kind = "csv"
	KindMarkdown Kind = "markdown"
	KindCustom   Kind = "custom"
	KindBuilder  Kind = "builder"
)

var kinds = []Kind{KindText, KindHTML, KindJSON, KindCSV, KindMarkdown, KindCustom, KindBuilder}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns every kind identifier.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Renderer accumulates rows and produces an output value of type T.
//
// Build recomputes the output from the stored rows on every call and never
// changes them. Only [Custom] renderers can return a non-nil error, and only
// when their formatter does.
type Renderer[T any] interface {
	Kind() Kind
	Append(cells ...Cell) error
	Len() int
	Build() (T, error)
}

var (
	_ Renderer[[]Row]  = (*Builder)(nil)
	_ Renderer[string] = (*Text)(nil)
	_ Renderer[string] = (*Markdown)(nil)
	_ Renderer[string] = (*HTML)(nil)
	_ Renderer[string] = (*CSV)(nil)
	_ Renderer[string] = (*JSON)(nil)
	_ Renderer[any]    = (*Custom[any])(nil)
)

// New returns an empty string renderer for kind k with default
// configuration. KindBuilder and KindCustom are rejected: the former does not
// produce a string and the latter needs a formatter, see [NewCustom].
func New(k Kind) (Renderer[string], error) {
	switch k {
	case KindText:
		return NewText(), nil
	case KindHTML:
		return NewHTML(), nil
	case KindJSON:
		return NewJSON(), nil
	case KindCSV:
		return NewCSV(), nil
	case KindMarkdown:
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("%w: %q has no default string renderer", ErrUnsupportedKind, k)
	}
}
