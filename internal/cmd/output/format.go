// Package output renders catalog data for the libris commands.
package output

import (
	"strings"

	"github.com/agentstation/libris/pkg/errors"
)

// Format selects how command results are rendered.
type Format string

const (
	// Table prints the core item columns.
	Table Format = "table"
	// Wide adds the book and magazine columns to Table.
	Wide Format = "wide"
	// JSON prints tagged catalog records as indented JSON.
	JSON Format = "json"
	// YAML prints tagged catalog records as YAML.
	YAML Format = "yaml"
)

// ParseFormat validates an --output value. The empty string selects Table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return Table, nil
	case Table, Wide, JSON, YAML:
		return f, nil
	}
	return "", errors.NewValidationError("output", s, "must be one of table, wide, json, yaml")
}

// Structured reports whether f encodes records instead of drawing a table.
func (f Format) Structured() bool {
	return f == JSON || f == YAML
}
