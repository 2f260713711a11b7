package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/saturnid/disc"
	"github.com/bodgit/saturnid/saturn"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var errUnknownFormat = errors.New("unknown output format")

type result struct {
	path   string
	image  *disc.Image
	report *saturn.Report
	err    error
}

type document struct {
	Path   string         `json:"path" yaml:"path"`
	Entry  string         `json:"entry,omitempty" yaml:"entry,omitempty"`
	Field  string         `json:"field,omitempty" yaml:"field,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
	Report *saturn.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

func newDocument(r result) document {
	d := document{
		Path:   r.path,
		Report: r.report,
	}

	if r.image != nil {
		d.Entry = r.image.Entry
	}

	if r.err != nil {
		d.Error = r.err.Error()

		var fe *saturn.FieldError
		if errors.As(r.err, &fe) {
			d.Field = fe.Field.String()
		}
	}

	return d
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	return table
}

func renderText(w io.Writer, r result, verbose bool) {
	table := newTable(w)

	table.Append([]string{"Hardware identifier:", r.report.HardwareIdentifier})
	table.Append([]string{"Maker ID:", r.report.MakerID})
	table.Append([]string{"Version:", r.report.Version})
	table.Append([]string{"Release date:", r.report.ReleaseDate.String()})
	table.Append([]string{"CD:", r.report.Disc.String()})
	table.Append([]string{"Regions:", r.report.RegionList()})
	table.Append([]string{"Compatible peripherals:", r.report.PeripheralList()})

	if r.report.IPSize != nil {
		table.Append([]string{"IP size:", fmt.Sprintf("%d (%x)", *r.report.IPSize, uint32(*r.report.IPSize))})
	}

	if verbose {
		table.Append([]string{"Product number:", r.report.ProductNumber})
		table.Append([]string{"Title:", r.report.Title})
		if r.image != nil && r.image.Entry != "" {
			table.Append([]string{"Archive entry:", r.image.Entry})
		}
	}

	table.Render()
}

func render(w, ew io.Writer, format string, results []result, verbose bool) error {
	switch format {
	case formatText:
		first := true
		for _, r := range results {
			if r.err != nil {
				fmt.Fprintf(ew, "%s: %s\n", r.path, r.err)
				continue
			}

			if len(results) > 1 {
				if !first {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", r.path)
			}
			first = false

			renderText(w, r, verbose)
		}
		return nil
	case formatYAML, formatJSON:
		documents := make([]document, 0, len(results))
		for _, r := range results {
			documents = append(documents, newDocument(r))
		}

		if format == formatYAML {
			e := yaml.NewEncoder(w)
			e.SetIndent(2)
			if err := e.Encode(documents); err != nil {
				return err
			}
			return e.Close()
		}

		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(documents)
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}
