package spreadsheet

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

// LoadRawHours reads logged hours and item counts keyed by trimmed employee
// name. The sheet named preferredSheet is used when present, otherwise the
// active sheet. Cells that are not numbers count as zero; a repeated name
// overwrites the earlier record.
func LoadRawHours(ctx context.Context, r io.Reader, cols model.RawColumns, preferredSheet string) (model.RawHours, error) {
	logger := ctxlog.From(ctx)

	wb, err := Open(r)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheet := wb.PickSheet(preferredSheet)
	rows, err := wb.Rows(sheet)
	if err != nil {
		return nil, err
	}

	header, err := model.LocateHeader(rows, cols.Labels(), nil, model.HeaderScanRows)
	if err != nil {
		return nil, goerr.Wrap(err, "raw hours header not found",
			goerr.V("sheet", sheet),
			goerr.T(model.ErrTagHeaderNotFound))
	}

	nameIdx := header.Columns[cols.Name]
	hoursIdx := header.Columns[cols.Hours]
	itemsIdx := header.Columns[cols.Items]

	records := make(model.RawHours)
	var duplicates []string
	for _, row := range rows[header.Row:] {
		name := model.CellAt(row, nameIdx).Text()
		if name == "" {
			continue
		}
		if _, exists := records[name]; exists {
			duplicates = append(duplicates, name)
		}

		records[name] = model.RawRecord{
			Name:      name,
			Hours:     model.CellAt(row, hoursIdx).Float(),
			ItemCount: model.CellAt(row, itemsIdx).Int(),
		}
	}

	if len(duplicates) > 0 {
		logger.Warn("duplicate names in raw hours, last row wins",
			"sheet", sheet,
			"names", duplicates,
		)
	}

	logger.Debug("raw hours loaded",
		"sheet", sheet,
		"header_row", header.Row,
		"records", len(records),
	)

	return records, nil
}
