package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/chronotec/timeclock-backend-go/internal/domain/report"
)

// ExportAttendanceReportPDF implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceReportPDF(ctx context.Context, req report.AttendanceReportRequest) ([]byte, error) {
	result, err := s.GenerateAttendanceReport(ctx, req)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Attendance report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s (%s buckets)", result.From, result.To, result.Granularity))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Summary per employee")
	pdf.Ln(8)
	summaryWidths := []float64{90, 35, 35, 35}
	writePDFRow(pdf, summaryWidths, []string{"Email", "Worked", "Theoretical", "Diff"}, true)
	for _, sum := range result.Summary {
		writePDFRow(pdf, summaryWidths, []string{
			sum.Email,
			fmt.Sprintf("%.2f", sum.HoursWorked),
			fmt.Sprintf("%.2f", sum.TheoHours),
			fmt.Sprintf("%+.2f", sum.DiffHours),
		}, false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, "Daily detail")
	pdf.Ln(8)
	detailWidths := []float64{60, 24, 20, 20, 20, 20, 40, 20, 24, 20}
	writePDFRow(pdf, detailWidths, []string{
		"Email", "Day", "In", "Break", "Resume", "Out", "Scheduled", "Worked", "Theoretical", "Diff",
	}, true)
	for _, row := range result.Rows {
		writePDFRow(pdf, detailWidths, []string{
			row.Email,
			row.Day,
			formatInstant(row.StartDay, s.loc),
			formatInstant(row.StartBreak, s.loc),
			formatInstant(row.EndBreak, s.loc),
			formatInstant(row.EndDay, s.loc),
			formatWindow(row.Schedule),
			fmt.Sprintf("%.2f", row.HoursWorked),
			fmt.Sprintf("%.2f", row.TheoHours),
			fmt.Sprintf("%+.2f", row.DiffHours),
		}, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFRow(pdf *gofpdf.Fpdf, widths []float64, cells []string, header bool) {
	if header {
		pdf.SetFont("Helvetica", "B", 9)
	} else {
		pdf.SetFont("Helvetica", "", 9)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func formatInstant(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("15:04")
}

func formatWindow(w *report.Window) string {
	if w == nil || w.StartTime == nil || w.EndTime == nil {
		return "-"
	}
	base := clipTime(*w.StartTime) + "-" + clipTime(*w.EndTime)
	if w.BreakStart != nil && w.BreakEnd != nil {
		return base + " (break " + clipTime(*w.BreakStart) + "-" + clipTime(*w.BreakEnd) + ")"
	}
	return base
}

func clipTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
