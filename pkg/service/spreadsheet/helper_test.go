package spreadsheet_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"
)

type sheetData struct {
	name string
	rows [][]any
}

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger)
}

// buildWorkbook creates an xlsx in memory. active is the index of the sheet
// selected when the file is opened.
func buildWorkbook(t *testing.T, active int, sheets ...sheetData) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			gt.NoError(t, f.SetSheetName("Sheet1", s.name)).Required()
		} else {
			_, err := f.NewSheet(s.name)
			gt.NoError(t, err).Required()
		}

		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			gt.NoError(t, err).Required()
			values := row
			gt.NoError(t, f.SetSheetRow(s.name, cell, &values)).Required()
		}
	}
	f.SetActiveSheet(active)

	var buf bytes.Buffer
	gt.NoError(t, f.Write(&buf)).Required()
	return &buf
}
