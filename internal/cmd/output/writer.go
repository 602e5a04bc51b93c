package output

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agentstation/libris/internal/cmd/table"
	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/items"
)

// Writer renders command results on an io.Writer in one Format.
type Writer struct {
	w      io.Writer
	format Format
}

// NewWriter returns a Writer printing to w.
func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

// Items prints a list of items, as records in structured formats.
func (o *Writer) Items(list []items.Item) error {
	if o.format.Structured() {
		return o.Encode(catalog.Records(list))
	}
	return o.table(table.ItemsToTableData(list, o.format == Wide))
}

// Item prints a single item.
func (o *Writer) Item(it items.Item) error {
	if o.format.Structured() {
		return o.Encode(catalog.NewRecord(it))
	}
	return o.table(table.ItemDetails(it))
}

// StatsView is the structured form of catalog statistics.
type StatsView struct {
	Total        int             `json:"total" yaml:"total"`
	Books        int             `json:"books" yaml:"books"`
	Magazines    int             `json:"magazines" yaml:"magazines"`
	AveragePages float64         `json:"averagePages" yaml:"averagePages"`
	HighestPages *catalog.Record `json:"highestPages,omitempty" yaml:"highestPages,omitempty"`
}

// Stats prints catalog statistics.
func (o *Writer) Stats(stats catalog.Stats) error {
	if !o.format.Structured() {
		return o.table(table.StatsToTableData(stats))
	}

	view := StatsView{
		Total:        stats.Total,
		Books:        stats.Books,
		Magazines:    stats.Magazines,
		AveragePages: stats.AveragePages,
	}
	if stats.HighestPages != nil {
		rec := catalog.NewRecord(stats.HighestPages)
		view.HighestPages = &rec
	}
	return o.Encode(view)
}

// Encode writes v as JSON or YAML. Table formats have no encoding for
// arbitrary values.
func (o *Writer) Encode(v any) error {
	switch o.format {
	case JSON:
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		data, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return err
		}
		_, err = o.w.Write(data)
		return err
	}
	return fmt.Errorf("output format %q cannot encode %T", o.format, v)
}

func (o *Writer) table(data table.Data) error {
	var cfg tablewriter.Config
	if len(data.Align) > 0 {
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: data.Align}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: data.Align}
	}

	tbl := tablewriter.NewTable(o.w, tablewriter.WithConfig(cfg))
	tbl.Header(data.Headers)
	if err := tbl.Bulk(data.Rows); err != nil {
		return err
	}
	return tbl.Render()
}
