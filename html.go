package tabular

import "strings"

// htmlEscaper replaces in a single pass, so the entities it emits are never
// escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// HTML renders a compact <table> element with one <td> per cell.
type HTML struct {
	table
}

// NewHTML returns an empty HTML renderer.
func NewHTML() *HTML { return &HTML{} }

// Kind returns [KindHTML].
func (h *HTML) Kind() Kind { return KindHTML }

// Add appends a row and returns h. It panics with an [*ArityError] where
// Append would return one.
func (h *HTML) Add(cells ...Cell) *HTML {
	h.mustAppend(cells)
	return h
}

// Build renders the table. An empty table renders as "<table></table>".
func (h *HTML) Build() (string, error) {
	var sb strings.Builder
	sb.WriteString("<table>")
	for _, row := range h.rows {
		sb.WriteString("<tr>")
		for _, cell := range row {
			sb.WriteString("<td>")
			sb.WriteString(htmlEscaper.Replace(cell.String()))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String(), nil
}
