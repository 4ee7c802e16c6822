package layout

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// WriteReport 以表格形式输出每一行文字的字号、尺寸与位置。
func WriteReport(w io.Writer, p *Plan) error {
	if p == nil {
		return nil
	}
	table := tablewriter.NewTable(w)
	table.Header([]string{"role", "text", "font", "index", "width", "height", "offset", "x", "y"})

	rows := make([][]string, 0, len(p.Lines))
	for _, ln := range p.Lines {
		rows = append(rows, []string{
			string(ln.Role),
			ln.Text,
			ln.Font.String(),
			strconv.Itoa(ln.FontIndex),
			formatPx(ln.Width),
			formatPx(ln.Height),
			formatPx(ln.Offset),
			formatPx(ln.X),
			formatPx(ln.Y),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return errors.Wrap(err, "写入报告行失败")
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "渲染报告失败")
	}
	return nil
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
