package tally

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mibar/dictextra/pkg/dictextra"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

// WriteCounts renders counts as a KEY/COUNT table.
func WriteCounts(w io.Writer, counts *dictextra.Dict[string, int]) {
	table := newTable(w, "KEY", "COUNT")
	for k, n := range dictextra.Entries(counts) {
		table.Append([]string{k, strconv.Itoa(n)})
	}
	table.Render()
}

// WriteGroups renders groups as a KEY/COUNT/MEMBERS table. Repeated members
// are listed once, in first-seen order.
func WriteGroups(w io.Writer, groups *dictextra.Dict[string, []string]) {
	table := newTable(w, "KEY", "COUNT", "MEMBERS")
	for k, members := range dictextra.Entries(groups) {
		distinct := dictextra.NewSet(members...).Values()
		table.Append([]string{k, strconv.Itoa(len(members)), strings.Join(distinct, ", ")})
	}
	table.Render()
}
