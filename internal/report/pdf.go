package report

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const dateLayout = "2006-01-02"

// Page geometry in millimetres on A4 portrait.
const (
	marginLeft   = 20.0
	headerRowH   = 8.0
	dataRowH     = 6.0
	signatureGap = 90.0
	signatureLen = 60.0
)

var columnWidths = []float64{30, 25, 25, 25, 25}

type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Extension() string { return string(FormatPDF) }

// Render lays out a single A4 page: title, employee block, the day table,
// the weekly summary and two signature lines.
func (r *PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Timesheet "+doc.CalendarWeek, true)
	pdf.SetAuthor(doc.EmployeeName, true)
	pdf.SetCreator("timesheet", true)
	pdf.SetSubject(doc.ID, true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.AddPage()

	// Core fonts are cp1252; translate so names with umlauts survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(0, 12)
	pdf.CellFormat(210, 10, "TIMESHEET", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(marginLeft, 35, "Created: "+doc.GeneratedAt.Format(dateLayout))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginLeft, 50, "Employee information:")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(marginLeft, 60, tr("Name: "+doc.EmployeeName))
	pdf.Text(marginLeft, 70, tr("Calendar week: "+doc.CalendarWeek))
	pdf.Text(marginLeft, 80, tr("Cost center: "+doc.CostCenter))

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(marginLeft, 100, "Working time:")

	y := 110.0
	pdf.SetFont("Helvetica", "B", 10)
	drawRow(pdf, y, headerRowH, tableHeaders, tr)
	y += headerRowH

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Rows {
		drawRow(pdf, y, dataRowH, []string{row.Day, row.Start, row.End, row.Break, row.Hours}, tr)
		y += dataRowH
	}

	y += 15
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(marginLeft, y, "Summary:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, y+10, "Total hours: "+doc.TotalHours)
	pdf.Text(marginLeft, y+20, "Target hours: "+doc.ThresholdHours)
	pdf.Text(marginLeft, y+30, "Overtime: "+doc.OvertimeHours)

	y += 50
	pdf.Text(marginLeft, y, "Signature employee:")
	pdf.Text(marginLeft+signatureGap, y, "Signature supervisor:")
	pdf.Line(marginLeft, y+10, marginLeft+signatureLen, y+10)
	pdf.Line(marginLeft+signatureGap, y+10, marginLeft+signatureGap+signatureLen, y+10)

	return pdf.Output(w)
}

func drawRow(pdf *fpdf.Fpdf, y, h float64, cells []string, tr func(string) string) {
	x := marginLeft
	for i, cell := range cells {
		pdf.Rect(x, y, columnWidths[i], h, "D")
		pdf.Text(x+2, y+h-2, tr(cell))
		x += columnWidths[i]
	}
}
