package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

func grid(rows ...[]string) [][]model.Cell {
	result := make([][]model.Cell, len(rows))
	for i, row := range rows {
		result[i] = model.ParseRow(row)
	}
	return result
}

func TestLocateHeader(t *testing.T) {
	t.Run("Header in first row", func(t *testing.T) {
		rows := grid(
			[]string{"Name", "Dept"},
			[]string{"Alice", "Eng"},
		)
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, nil, model.HeaderScanRows)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, header.Row)
		gt.Equal(t, 0, header.Columns["Name"])
		gt.Equal(t, 1, header.Columns["Dept"])
	})

	t.Run("Header below title rows and shifted right", func(t *testing.T) {
		rows := grid(
			[]string{"Weekly export"},
			[]string{},
			[]string{"", " Dept ", "x", "Name "},
			[]string{"", "Eng", "", "Alice"},
		)
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, nil, model.HeaderScanRows)
		gt.NoError(t, err).Required()
		gt.Equal(t, 3, header.Row)
		gt.Equal(t, 3, header.Columns["Name"])
		gt.Equal(t, 1, header.Columns["Dept"])
	})

	t.Run("Duplicate labels resolve to leftmost column", func(t *testing.T) {
		rows := grid([]string{"Name", "Dept", "Name"})
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, nil, model.HeaderScanRows)
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, header.Columns["Name"])
	})

	t.Run("Optional label resolved when present", func(t *testing.T) {
		rows := grid([]string{"Name", "Dept", "Boss"})
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, []string{"Boss", "Missing"}, model.HeaderScanRows)
		gt.NoError(t, err).Required()

		idx, ok := header.Index("Boss")
		gt.True(t, ok)
		gt.Equal(t, 2, idx)

		_, ok = header.Index("Missing")
		gt.False(t, ok)
	})

	t.Run("Partial match is not a header", func(t *testing.T) {
		rows := grid(
			[]string{"Name"},
			[]string{"Name", "Dept"},
		)
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, nil, model.HeaderScanRows)
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, header.Row)
	})

	t.Run("Header outside scan window", func(t *testing.T) {
		rows := grid(
			[]string{"a"}, []string{"b"}, []string{"c"}, []string{"d"}, []string{"e"},
			[]string{"Name", "Dept"},
		)
		header, err := model.LocateHeader(rows, []string{"Name", "Dept"}, nil, model.HeaderScanRows)
		gt.Nil(t, header)
		gt.Error(t, err)

		var notFound *model.HeaderNotFoundError
		gt.True(t, errors.As(err, &notFound))
		gt.Equal(t, []string{"Name", "Dept"}, notFound.Required)
		gt.Equal(t, 5, notFound.Window)
		gt.S(t, err.Error()).Contains("Name, Dept")
	})

	t.Run("Empty sheet", func(t *testing.T) {
		_, err := model.LocateHeader(nil, []string{"Name"}, nil, 0)
		gt.Error(t, err)
	})
}
