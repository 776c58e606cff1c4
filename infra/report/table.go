package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/csvio"
)

// WriteTable renders accounts as an ASCII table with the CSV column layout.
func WriteTable(w io.Writer, accounts []entity.ClientAccount) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(csvio.AccountHeader())
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, acc := range accounts {
		table.Append(csvio.AccountRow(acc))
	}
	table.Render()
}
