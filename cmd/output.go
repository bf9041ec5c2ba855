package cmd

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/jsonx"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func validateOutput(format string) error {
	switch strings.ToLower(format) {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return errors.NewError(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported output format %q, expected text, json or yaml", format))
	}
}

// writeOutput renders v as json or yaml, or calls text for the human format.
func writeOutput(w io.Writer, format string, v interface{}, text func(io.Writer)) error {
	switch strings.ToLower(format) {
	case OutputJSON:
		out, err := jsonx.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.WrapError(errors.ErrCodeInternal, "failed to encode json", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WrapError(errors.ErrCodeInternal, "failed to encode yaml", err)
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// printResponse writes a horizon response as indented json. Responses carry
// their own MarshalJSON, so the compact form is re-indented.
func printResponse(w io.Writer, v interface{}) {
	raw, err := jsonx.Marshal(v)
	if err != nil {
		fmt.Fprintf(w, "%+v\n", v)
		return
	}
	if pretty, ok := jsonx.Pretty(raw); ok {
		fmt.Fprintln(w, pretty)
		return
	}
	fmt.Fprintln(w, string(raw))
}
