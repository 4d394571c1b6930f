package commands

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var formats = []string{FormatTable, FormatJSON, FormatYAML}

func checkFormat(f string) error {
	if !slices.Contains(formats, f) {
		return fmt.Errorf("unknown output format %q (want one of %v)", f, formats)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// render writes v as json or yaml, or calls tbl for the table format
func render(w io.Writer, format string, v any, tbl func(table.Writer)) error {
	switch format {
	case FormatJSON:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		t := newTable(w)
		tbl(t)
		t.Render()
		return nil
	}
}
