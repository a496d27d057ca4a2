package spreadsheet

import (
	"io"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only view of an uploaded spreadsheet
type Workbook struct {
	file *excelize.File
}

// Open parses a workbook from r. The caller must Close it.
func Open(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook")
	}
	return &Workbook{file: f}, nil
}

// Close releases the workbook
func (w *Workbook) Close() error {
	if err := w.file.Close(); err != nil {
		return goerr.Wrap(err, "failed to close workbook")
	}
	return nil
}

// SheetNames returns the sheet names in tab order
func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ActiveSheet returns the name of the sheet selected when the file was saved
func (w *Workbook) ActiveSheet() string {
	name := w.file.GetSheetName(w.file.GetActiveSheetIndex())
	if name == "" {
		if sheets := w.file.GetSheetList(); len(sheets) > 0 {
			return sheets[0]
		}
	}
	return name
}

// PickSheet returns preferred when the workbook has a sheet of that name,
// otherwise the active sheet.
func (w *Workbook) PickSheet(preferred string) string {
	if preferred != "" && slices.Contains(w.file.GetSheetList(), preferred) {
		return preferred
	}
	return w.ActiveSheet()
}

// Rows reads every row of sheet as cells. Numeric cells are read without
// number formatting so "8.00" style display formats do not leak into values.
// The cell kind follows the type stored in the sheet, so a text "007" stays text.
func (w *Workbook) Rows(sheet string) ([][]model.Cell, error) {
	raw, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rows", goerr.V("sheet", sheet))
	}

	rows := make([][]model.Cell, len(raw))
	for i, r := range raw {
		cells := make([]model.Cell, len(r))
		for j, v := range r {
			cell, err := w.cell(sheet, j+1, i+1, v)
			if err != nil {
				return nil, err
			}
			cells[j] = cell
		}
		rows[i] = cells
	}
	return rows, nil
}

func (w *Workbook) cell(sheet string, col, row int, value string) (model.Cell, error) {
	if strings.TrimSpace(value) == "" {
		return model.EmptyCell(), nil
	}

	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Cell{}, goerr.Wrap(err, "invalid cell coordinates", goerr.V("sheet", sheet), goerr.V("col", col), goerr.V("row", row))
	}
	typ, err := w.file.GetCellType(sheet, name)
	if err != nil {
		return model.Cell{}, goerr.Wrap(err, "failed to get cell type", goerr.V("sheet", sheet), goerr.V("cell", name))
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeError:
		return model.ParseTextCell(value), nil
	default:
		return model.ParseCell(value), nil
	}
}
