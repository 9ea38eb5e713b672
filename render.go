package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/vuvietnguyenit/cudevprop/cuda"
)

func render(w io.Writer, prop *cuda.DeviceProperties, format string) error {
	switch format {
	case OutputCompact:
		_, err := fmt.Fprintln(w, prop.CompactDescription())
		return err
	case OutputFormatted:
		_, err := fmt.Fprintln(w, prop.FormattedDescription())
		return err
	case OutputTable:
		return printTable(w, prop)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(prop)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printTable(w io.Writer, prop *cuda.DeviceProperties) error {
	table := tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
		Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On}},
	})))
	table.Header([]string{"Field", "Value"})

	for _, f := range prop.Fields() {
		if err := table.Append([]string{f.Name, f.Value}); err != nil {
			return fmt.Errorf("append %s: %w", f.Name, err)
		}
	}
	return table.Render()
}
