package logging

// Field name constants for structured logging.
const (
	FieldError = "error"
	FieldKind  = "kind"
	FieldRows  = "rows"
	FieldBytes = "bytes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
