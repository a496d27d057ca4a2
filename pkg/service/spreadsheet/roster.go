package spreadsheet

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

// LoadRoster reads the ordered employee list from the active sheet of a roster
// workbook. Rows with an empty name are skipped wherever they appear.
func LoadRoster(ctx context.Context, r io.Reader, cols model.RosterColumns) ([]model.RosterEntry, error) {
	wb, err := Open(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := wb.ActiveSheet()
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, err
	}

	var optional []string
	if cols.Supervisor != "" {
		optional = append(optional, cols.Supervisor)
	}

	header, err := model.LocateHeader(rows, []string{cols.Name, cols.Department}, optional, model.HeaderScanRows)
	if err != nil {
		return nil, goerr.Wrap(err, "roster header not found",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagHeaderNotFound))
	}

	nameIdx := header.Columns[cols.Name]
	deptIdx := header.Columns[cols.Department]
	supervisorIdx, hasSupervisor := header.Index(cols.Supervisor)

	var entries []model.RosterEntry
	for _, row := range rows[header.Row:] {
		name := model.CellAt(row, nameIdx).Text()
		if name == "" {
			continue
		}

		entry := model.RosterEntry{
			Name:       name,
			Department: model.CellAt(row, deptIdx).Text(),
		}
		if hasSupervisor {
			entry.Supervisor = model.CellAt(row, supervisorIdx).Text()
		}
		entries = append(entries, entry)
	}

	ctxlog.From(ctx).Debug("roster loaded",
		"sheet", sheet,
		"header_row", header.Row,
		"entries", len(entries),
	)

	return entries, nil
}
