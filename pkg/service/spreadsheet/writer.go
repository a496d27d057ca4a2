package spreadsheet

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// EmphasisColor is the font color of flagged name and hours cells
const EmphasisColor = "FF0000"

var columnWidths = []struct {
	col   string
	width float64
}{
	{"A", 15},
	{"B", 10},
	{"C", 10},
	{"D", 15},
}

// WriteReport writes rows as a single-sheet workbook to w. Row 1 is the bold
// header and data starts at row 2.
func WriteReport(w io.Writer, rows []model.ReportRow, layout model.Layout) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := layout.OutputSheet
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return goerr.Wrap(err, "failed to name report sheet", goerr.V("sheet", sheet))
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return goerr.Wrap(err, "failed to create header style")
	}
	emphasisStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: EmphasisColor}})
	if err != nil {
		return goerr.Wrap(err, "failed to create emphasis style")
	}

	header := layout.Output.Labels()
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return goerr.Wrap(err, "failed to write header row")
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", boldStyle); err != nil {
		return goerr.Wrap(err, "failed to style header row")
	}

	for i, row := range rows {
		rowNum := i + 2
		start, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return goerr.Wrap(err, "invalid report row", goerr.V("row", rowNum))
		}

		values := []any{row.Name, row.Hours, row.ItemCount, row.Department}
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return goerr.Wrap(err, "failed to write report row", goerr.V("row", rowNum))
		}

		if row.Flagged {
			end, err := excelize.CoordinatesToCellName(2, rowNum)
			if err != nil {
				return goerr.Wrap(err, "invalid report row", goerr.V("row", rowNum))
			}
			if err := f.SetCellStyle(sheet, start, end, emphasisStyle); err != nil {
				return goerr.Wrap(err, "failed to emphasize report row", goerr.V("row", rowNum))
			}
		}
	}

	for _, cw := range columnWidths {
		if err := f.SetColWidth(sheet, cw.col, cw.col, cw.width); err != nil {
			return goerr.Wrap(err, "failed to set column width", goerr.V("col", cw.col))
		}
	}

	if err := f.Write(w); err != nil {
		return goerr.Wrap(err, "failed to write report")
	}
	return nil
}
