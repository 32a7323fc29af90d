package report

import (
	"encoding/csv"
	"io"
)

var tableHeaders = []string{"Day", "Start", "End", "Break", "Working time"}

// separatorRecord sits between blocks. csv.Reader skips blank lines, so it
// carries two empty fields and encodes as ",".
var separatorRecord = []string{"", ""}

type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

func (r *CSVRenderer) Extension() string { return string(FormatCSV) }

// Render writes the header block, the day table and the summary lines.
func (r *CSVRenderer) Render(w io.Writer, doc Document) error {
	data := make([][]string, 0, len(doc.Rows)+10)
	data = append(data,
		[]string{"Employee", doc.EmployeeName},
		[]string{"Calendar week", doc.CalendarWeek},
		[]string{"Cost center", doc.CostCenter},
		[]string{"Created", doc.GeneratedAt.Format(dateLayout)},
		separatorRecord,
		tableHeaders,
	)
	for _, row := range doc.Rows {
		data = append(data, []string{row.Day, row.Start, row.End, row.Break, row.Hours})
	}
	data = append(data,
		separatorRecord,
		[]string{"Total hours", doc.TotalHours},
		[]string{"Target hours", doc.ThresholdHours},
		[]string{"Overtime", doc.OvertimeHours},
	)

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(data); err != nil {
		return err
	}
	return writer.Error()
}
