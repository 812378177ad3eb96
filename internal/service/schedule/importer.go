package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/validator"
)

// Import files carry one row per (employee, weekday):
//
//	email,weekday,start_time,break_start,break_end,end_time[,timezone]
//
// A header row is detected by a non-numeric weekday column and skipped.
// Time cells may be empty (nullable bounds) and accept HH:MM or HH:MM:SS.

func parseImportFile(filename string, file io.Reader) ([]schedule.ImportRow, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return parseXLSX(file)
	default:
		return nil, schedule.ErrUnsupportedFileType
	}
}

func parseCSV(file io.Reader) ([]schedule.ImportRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []schedule.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if row, ok := parseRecord(record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseXLSX(file io.Reader) ([]schedule.ImportRow, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, schedule.ErrNoValidRows
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read xlsx rows: %w", err)
	}

	var rows []schedule.ImportRow
	for _, record := range records {
		if row, ok := parseRecord(record); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// parseRecord turns one raw record into an ImportRow. Header lines, short
// lines and rows with a bad email or weekday are dropped.
func parseRecord(record []string) (schedule.ImportRow, bool) {
	if len(record) < 6 {
		return schedule.ImportRow{}, false
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	email := record[0]
	if !validator.IsValidEmail(email) {
		return schedule.ImportRow{}, false
	}

	weekday, err := strconv.Atoi(record[1])
	if err != nil || weekday < 0 || weekday > 6 {
		return schedule.ImportRow{}, false
	}

	row := schedule.ImportRow{
		Email:      email,
		Weekday:    weekday,
		StartTime:  timeCell(record[2]),
		BreakStart: timeCell(record[3]),
		BreakEnd:   timeCell(record[4]),
		EndTime:    timeCell(record[5]),
		Timezone:   schedule.DefaultTimezone,
	}
	if len(record) >= 7 && record[6] != "" {
		row.Timezone = record[6]
	}
	return row, true
}

// timeCell returns nil for an empty or malformed time-of-day cell.
func timeCell(s string) *string {
	if s == "" || !validator.IsValidTimeOfDay(s) {
		return nil
	}
	return &s
}
