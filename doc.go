// Package tabular renders rows of cells as plain text, HTML, JSON, CSV,
// Markdown or a caller-defined format.
//
// Every renderer accumulates rows and produces its output on demand. Output
// is returned as a value; the package never writes anywhere.
//
//	out, _ := tabular.NewText().
//		Add(tabular.Str("Name"), tabular.Str("Age")).
//		Add(tabular.Str("Ana"), tabular.Num(25)).
//		Build()
//	// Name Age
//	// Ana  25
//
// # Cells and rows
//
// A [Cell] is text ([Str]) or a number ([Num]). [Value] converts dynamic
// values such as decoded JSON. The first row appended to a renderer fixes the
// row length; a row of any other length is rejected with an [*ArityError]
// and not stored. Append returns that error, Add panics with it and returns
// the renderer for chaining.
//
// # Renderers
//
//   - [Builder] — the rows themselves
//   - [Text] — space-padded columns; [Text.SetColumnWidth], [Text.SetSeparator]
//   - [Markdown] — GitHub-flavored pipe table; [Markdown.SetColumnWidth]
//   - [HTML] — compact <table> markup, cells escaped
//   - [CSV] — every cell quoted
//   - [JSON] — compact array of arrays
//   - [Custom] — any [Formatter]; see [Template] and [YAML]
//
// Column widths are minimums: content wider than the configured width still
// widens the column. Widths count characters, not terminal display columns.
//
// Build recomputes output from the current rows on each call. Renderers are
// not safe for concurrent use.
//
// # Errors
//
//   - [ErrArityMismatch] — row length differs from the first row
//   - [ErrUnsupportedKind] — unknown kind name
//   - [ErrUnsupportedValue] — value is neither text nor a number
//   - [ErrNilFormatter] — Custom renderer without a formatter
//   - [ErrInvalidTemplate] — invalid template syntax
package tabular
