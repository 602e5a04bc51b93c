// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/items"
)

// Data is a rendered table: headers, rows and an optional alignment per column.
type Data struct {
	Headers []string
	Rows    [][]string
	Align   []tw.Align
}

// ItemsToTableData converts items to table format. The wide form adds the
// variant specific columns.
func ItemsToTableData(list []items.Item, wide bool) Data {
	headers := []string{"ISBN", "Type", "Title", "Year", "Pages"}
	align := []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight}
	if wide {
		headers = append(headers, "Author", "Genre", "Periodicity")
		align = append(align, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft)
	}

	rows := make([][]string, 0, len(list))
	for _, it := range list {
		base := it.Info()
		row := []string{
			base.ISBN,
			string(it.Kind()),
			base.Title,
			strconv.Itoa(base.YearOfPublication),
			strconv.Itoa(base.NumberOfPages),
		}

		if wide {
			author, genre, periodicity := "-", "-", "-"
			switch v := it.(type) {
			case items.Book:
				author = orDash(v.Author)
				genre = orDash(v.Genre)
			case items.Magazine:
				periodicity = orDash(v.Periodicity.String())
			}
			row = append(row, author, genre, periodicity)
		}

		rows = append(rows, row)
	}

	return Data{
		Headers: headers,
		Rows:    rows,
		Align:   align,
	}
}

// ItemDetails renders a single item as a property/value table.
func ItemDetails(it items.Item) Data {
	base := it.Info()
	rows := [][]string{
		{"Type", string(it.Kind())},
		{"ISBN", base.ISBN},
		{"Title", base.Title},
		{"Year", strconv.Itoa(base.YearOfPublication)},
		{"Pages", strconv.Itoa(base.NumberOfPages)},
	}

	switch v := it.(type) {
	case items.Book:
		rows = append(rows,
			[]string{"Author", orDash(v.Author)},
			[]string{"Genre", orDash(v.Genre)},
		)
	case items.Magazine:
		rows = append(rows, []string{"Periodicity", orDash(v.Periodicity.String())})
	}

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// StatsToTableData converts catalog statistics to a property/value table.
func StatsToTableData(stats catalog.Stats) Data {
	highest := "-"
	if stats.HighestPages != nil {
		base := stats.HighestPages.Info()
		highest = fmt.Sprintf("%s (%s, %d pages)", base.Title, base.ISBN, base.NumberOfPages)
	}

	return Data{
		Headers: []string{"Statistic", "Value"},
		Rows: [][]string{
			{label("total items"), strconv.Itoa(stats.Total)},
			{label("books"), strconv.Itoa(stats.Books)},
			{label("magazines"), strconv.Itoa(stats.Magazines)},
			{label("average pages"), fmt.Sprintf("%.2f", stats.AveragePages)},
			{label("most pages"), highest},
		},
		Align: []tw.Align{tw.AlignLeft, tw.AlignRight},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// label turns a lower-case key such as "average_pages" into a row label.
func label(key string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(key, "_", " "))
}
