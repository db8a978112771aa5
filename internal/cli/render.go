package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tabular"
	"github.com/bjaus/tabular/internal/logging"
)

// ErrInteractiveInput is returned when stdin is a terminal instead of a pipe
// or file.
var ErrInteractiveInput = errors.New("refusing to read table from a terminal; pipe JSON or YAML into stdin")

// RenderOptions configures a single render.
type RenderOptions struct {
	Kind      tabular.Kind
	Separator string
	Widths    map[string]int
	Template  string
	Formatter string
}

// formatters are the stock formatters selectable for custom output.
var formatters = map[string]tabular.Formatter[string]{
	"yaml":  tabular.YAML,
	"tsv":   tabular.TSV,
	"jsonl": tabular.JSONLines,
}

// renderer is the part of every string-producing renderer the command needs.
type renderer interface {
	Kind() tabular.Kind
	AppendSeq(seq iter.Seq[tabular.Row]) error
	Len() int
	Build() (string, error)
}

func newRenderCommand() *cobra.Command {
	var (
		opts RenderOptions
		kind string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a table read from stdin",
		Long: `Render reads a JSON or YAML sequence of rows from stdin and prints the
table in the selected kind.

  echo '[["Name","Age"],["Ana",25]]' | tabular render --kind markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := tabular.ParseKind(kind)
			if err != nil {
				return err
			}
			opts.Kind = k

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				return ErrInteractiveInput
			}

			out, err := Render(cmd.Context(), in, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(out, "\n"))
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&kind, "kind", "k", string(tabular.KindText), "output kind: text, markdown, html, csv, json, custom")
	flags.StringVar(&opts.Separator, "sep", " ", "cell separator for text output")
	flags.StringToIntVar(&opts.Widths, "width", nil, "minimum column widths as INDEX=WIDTH for text and markdown output")
	flags.StringVar(&opts.Template, "template", "", "Go template for custom output; data is the row list")
	flags.StringVar(&opts.Formatter, "formatter", "", "stock formatter for custom output: yaml, tsv, jsonl")

	return cmd
}

// Render decodes the rows in r and renders them as configured.
func Render(ctx context.Context, r io.Reader, opts RenderOptions) (string, error) {
	logger := logging.FromContext(ctx)

	rows, err := decodeRows(r)
	if err != nil {
		return "", err
	}

	rnd, err := newRenderer(opts)
	if err != nil {
		return "", err
	}
	if err := rnd.AppendSeq(slices.Values(rows)); err != nil {
		return "", fmt.Errorf("row %d: %w", rnd.Len()+1, err)
	}

	logger.Debug("rendering", logging.FieldKind, rnd.Kind(), logging.FieldRows, rnd.Len())
	out, err := rnd.Build()
	if err != nil {
		return "", err
	}
	logger.Debug("rendered", logging.FieldBytes, len(out))
	return out, nil
}

func decodeRows(r io.Reader) ([]tabular.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if doc.Kind == 0 {
		// Empty input.
		return nil, nil
	}
	if err := rejectNulls(&doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	var rows []tabular.Row
	if err := doc.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return rows, nil
}

// rejectNulls fails on null cells, which yaml.v3 would otherwise decode as
// empty text without consulting the cell decoder.
func rejectNulls(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return fmt.Errorf("%w: null at line %d", tabular.ErrUnsupportedValue, node.Line)
	}
	for _, child := range node.Content {
		if err := rejectNulls(child); err != nil {
			return err
		}
	}
	return nil
}

func newRenderer(opts RenderOptions) (renderer, error) {
	widths, err := parseWidths(opts.Widths)
	if err != nil {
		return nil, err
	}

	switch opts.Kind {
	case tabular.KindText:
		t := tabular.NewText().SetSeparator(opts.Separator)
		for i, w := range widths {
			t.SetColumnWidth(i, w)
		}
		return t, nil
	case tabular.KindMarkdown:
		m := tabular.NewMarkdown()
		for i, w := range widths {
			m.SetColumnWidth(i, w)
		}
		return m, nil
	case tabular.KindCustom:
		switch {
		case opts.Formatter != "" && opts.Template != "":
			return nil, errors.New("--formatter and --template are mutually exclusive")
		case opts.Formatter != "":
			f, ok := formatters[opts.Formatter]
			if !ok {
				return nil, fmt.Errorf("unknown formatter %q", opts.Formatter)
			}
			return tabular.NewCustom(opts.Formatter, f), nil
		case opts.Template != "":
			f, err := tabular.Template(opts.Template)
			if err != nil {
				return nil, err
			}
			return tabular.NewCustom("template", f), nil
		default:
			return nil, errors.New("custom output needs --template or --formatter")
		}
	}

	r, err := tabular.New(opts.Kind)
	if err != nil {
		return nil, err
	}
	return r.(renderer), nil
}

func parseWidths(raw map[string]int) (map[int]int, error) {
	widths := make(map[int]int, len(raw))
	for k, w := range raw {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid column index %q in --width", k)
		}
		widths[i] = w
	}
	return widths, nil
}
