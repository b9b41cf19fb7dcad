// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AngouNin/Hotwings-MeMe/pkg/ux"
	"gopkg.in/yaml.v3"
)

// Format selects how a Report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json, yaml (and yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText), "table":
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", s)
}

// StatusFormatter handles formatting of status output
type StatusFormatter struct {
	writer io.Writer
}

// NewStatusFormatter creates a new formatter
func NewStatusFormatter(writer io.Writer) *StatusFormatter {
	return &StatusFormatter{
		writer: writer,
	}
}

// FormatTotals prints the aggregate lock position against the treasury.
func (f *StatusFormatter) FormatTotals(report *Report) error {
	table := ux.NewTable(f.writer, "Totals", "Amount")
	rows := [][]string{
		{"Locked", ux.FormatAmount(report.Totals.Locked)},
		{"Unlocked", ux.FormatAmount(report.Totals.Unlocked)},
		{"Treasury balance", ux.FormatAmount(report.Totals.TreasuryBalance)},
	}
	if report.Totals.Shortfall > 0 {
		rows = append(rows, []string{"Shortfall", ux.FormatAmount(report.Totals.Shortfall)})
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// FormatLastActions prints one line per recorded command.
func (f *StatusFormatter) FormatLastActions(report *Report) {
	if len(report.LastActions) == 0 {
		return
	}
	fmt.Fprintln(f.writer, "Last actions:")
	for _, a := range report.LastActions {
		fmt.Fprintf(f.writer, "  %-10s %s %s\n", a.Command, a.At.Format(time.RFC3339), a.Detail)
	}
}

// FormatJSON outputs the status as JSON
func (f *StatusFormatter) FormatJSON(report *Report) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// FormatYAML outputs the status as YAML
func (f *StatusFormatter) FormatYAML(report *Report) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
