package tabular

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML is a [Formatter] that renders the rows as a YAML sequence of
// sequences, numbers unquoted. An empty table renders as "[]\n".
func YAML(rows []Row) (string, error) {
	if rows == nil {
		rows = []Row{}
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
