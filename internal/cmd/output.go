package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// addFormatFlags registers --format and its --json shorthand.
func addFormatFlags(c *cobra.Command, format *string) {
	c.Flags().StringVarP(format, "format", "f", formatTable, "output format (table|json|yaml)")
	c.Flags().BoolVar(&outputJSON, "json", false, "output as JSON (same as --format json)")
}

// resolveFormat validates format, letting --json win.
func resolveFormat(format string) (string, error) {
	if outputJSON {
		return formatJSON, nil
	}
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	case "":
		return formatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %q is not structured", format)
}
