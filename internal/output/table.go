package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders Tabular values; anything else is printed with %v.
type TableFormatter struct{}

func (f *TableFormatter) Write(w io.Writer, data interface{}) error {
	t, ok := data.(Tabular)
	if !ok {
		_, err := fmt.Fprintln(w, data)
		return err
	}

	rows := t.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(w, "No items found")
		return nil
	}

	table := tablewriter.NewWriter(w)
	if header := t.Header(); len(header) > 0 {
		table.SetHeader(header)
	}
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// KeyValues is a two column table of labelled values.
type KeyValues [][2]string

func (kv KeyValues) Header() []string {
	return []string{"Field", "Value"}
}

func (kv KeyValues) Rows() [][]string {
	rows := make([][]string, 0, len(kv))
	for _, pair := range kv {
		rows = append(rows, []string{pair[0], pair[1]})
	}
	return rows
}
