package schedule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/chronotec/timeclock-backend-go/internal/domain/schedule"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"email,weekday,start_time,break_start,break_end,end_time,timezone",
		"ana@example.com,1,09:00,14:00,15:00,18:00,America/Mexico_City",
		"ana@example.com,2,09:00,,,18:00",
		"bob@example.com,0,,,,",
		"not-an-email,1,09:00,,,18:00",
		"carl@example.com,7,09:00,,,18:00",
		"dora@example.com,3,25:00,,,18:00",
	}, "\n")

	rows, err := parseImportFile("horarios.csv", strings.NewReader(input))
	require.NoError(t, err)

	// Header, bad email and out-of-range weekday rows are dropped
	require.Len(t, rows, 4)

	assert.Equal(t, "ana@example.com", rows[0].Email)
	assert.Equal(t, 1, rows[0].Weekday)
	require.NotNil(t, rows[0].StartTime)
	assert.Equal(t, "09:00", *rows[0].StartTime)
	assert.Equal(t, "America/Mexico_City", rows[0].Timezone)

	// Empty break cells stay nil, default timezone applies
	assert.Nil(t, rows[1].BreakStart)
	assert.Nil(t, rows[1].BreakEnd)
	assert.Equal(t, schedule.DefaultTimezone, rows[1].Timezone)

	// A rest-day row with all bounds empty is still a valid upsert
	assert.Nil(t, rows[2].StartTime)
	assert.Nil(t, rows[2].EndTime)

	// Malformed time cell becomes nil rather than killing the row
	assert.Nil(t, rows[3].StartTime)
	require.NotNil(t, rows[3].EndTime)
}

func TestParseXLSX(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	data := [][]string{
		{"email", "weekday", "start_time", "break_start", "break_end", "end_time"},
		{"ana@example.com", "1", "09:00", "14:00", "15:00", "18:00"},
		{"bob@example.com", "5", "10:00", "", "", "19:30"},
	}
	for i, record := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &record))
	}
	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	rows, err := parseImportFile("horarios.xlsx", &buf)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "ana@example.com", rows[0].Email)
	assert.Equal(t, 5, rows[1].Weekday)
	require.NotNil(t, rows[1].EndTime)
	assert.Equal(t, "19:30", *rows[1].EndTime)
	assert.Nil(t, rows[1].BreakStart)
}

func TestParseImportFileUnsupportedType(t *testing.T) {
	_, err := parseImportFile("horarios.ods", strings.NewReader(""))
	assert.ErrorIs(t, err, schedule.ErrUnsupportedFileType)
}
