package cmd

import (
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
)

var reportHeader = []string{"file", "format", "compressed", "decompressed", "ratio", "codes", "resets", "width"}

func (res *result) row() []string {
	row := []string{
		res.name,
		res.kind.String(),
		bytefmt.ByteSize(uint64(res.bytesIn)),
		bytefmt.ByteSize(uint64(res.bytesOut)),
		ratio(res.bytesIn, res.bytesOut),
	}

	if !res.hasStats {
		return append(row, "-", "-", "-")
	}

	return append(row,
		strconv.FormatInt(res.stats.Codes, 10),
		strconv.Itoa(res.stats.Resets),
		strconv.FormatUint(uint64(res.stats.CodeWidth), 10),
	)
}

func ratio(in, out int64) string {
	if out == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(in)/float64(out))
}

func report(w io.Writer, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(reportHeader)
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
