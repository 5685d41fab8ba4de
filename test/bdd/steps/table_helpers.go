package steps

import (
	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// getCellValueFromTable finds a cell value by column name; the first row of
// the table is the header
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// tableColumn collects the named column of every data row
func tableColumn(table *godog.Table, columnName string) []string {
	if len(table.Rows) < 2 {
		return nil
	}

	values := make([]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values = append(values, getCellValueFromTable(table, row, columnName))
	}
	return values
}
