package report

import "context"

// ReportService turns raw attendance facts into hours reports.
type ReportService interface {
	// GenerateAttendanceReport produces per-day rows, per-employee summary
	// and per-period totals for the requested range
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)

	// ExportAttendanceReportPDF renders the same report as a PDF document
	ExportAttendanceReportPDF(ctx context.Context, req AttendanceReportRequest) ([]byte, error)
}
