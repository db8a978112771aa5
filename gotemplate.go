package tabular

import (
	"fmt"
	"strings"
	"text/template"
)

// Template returns a [Formatter] that executes a Go [text/template] with the
// rows as its data. Parse failures wrap [ErrInvalidTemplate]:
//
//	f, err := tabular.Template(`{{range .}}{{index . 0}};{{end}}`)
//	out, err := tabular.NewCustom("names", f).Add(tabular.Str("Ana")).Build()
func Template(text string) (Formatter[string], error) {
	tmpl, err := template.New("").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return func(rows []Row) (string, error) {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, rows); err != nil {
			return "", err
		}
		return sb.String(), nil
	}, nil
}
