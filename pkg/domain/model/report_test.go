package model_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

func TestBuildReport(t *testing.T) {
	t.Run("Alice logged, Bob missing", func(t *testing.T) {
		roster := []model.RosterEntry{
			{Name: "Alice", Department: "Eng"},
			{Name: "Bob", Department: "Sales"},
		}
		raw := model.RawHours{
			"Alice": {Name: "Alice", Hours: 8.0, ItemCount: 5},
		}

		rows := model.BuildReport(roster, raw, model.DefaultFlagThreshold)

		gt.Equal(t, []model.ReportRow{
			{Name: "Alice", Hours: 8.0, ItemCount: 5, Department: "Eng", Flagged: false},
			{Name: "Bob", Hours: 0, ItemCount: 0, Department: "Sales", Flagged: true},
		}, rows)
	})

	t.Run("Roster names are trimmed for lookup", func(t *testing.T) {
		roster := []model.RosterEntry{{Name: " Carol ", Department: "Ops"}}
		raw := model.RawHours{"Carol": {Name: "Carol", Hours: 7, ItemCount: 1}}

		rows := model.BuildReport(roster, raw, model.DefaultFlagThreshold)
		gt.Equal(t, 7.0, rows[0].Hours)
		gt.False(t, rows[0].Flagged)
	})

	t.Run("Lookup is case sensitive", func(t *testing.T) {
		roster := []model.RosterEntry{{Name: "dave"}}
		raw := model.RawHours{"Dave": {Name: "Dave", Hours: 9}}

		rows := model.BuildReport(roster, raw, model.DefaultFlagThreshold)
		gt.Equal(t, 0.0, rows[0].Hours)
		gt.True(t, rows[0].Flagged)
	})

	t.Run("Duplicate roster entries are kept", func(t *testing.T) {
		roster := []model.RosterEntry{{Name: "Eve"}, {Name: "Eve"}}
		raw := model.RawHours{"Eve": {Name: "Eve", Hours: 3}}

		rows := model.BuildReport(roster, raw, model.DefaultFlagThreshold)
		gt.Equal(t, 2, len(rows))
	})

	t.Run("Empty roster", func(t *testing.T) {
		rows := model.BuildReport(nil, model.RawHours{"X": {Hours: 1}}, model.DefaultFlagThreshold)
		gt.Equal(t, 0, len(rows))
	})
}

func TestBuildReportLaws(t *testing.T) {
	thresholds := []float64{0, 6.5, model.DefaultFlagThreshold, 8}

	for n := 0; n < 30; n++ {
		roster := make([]model.RosterEntry, n)
		raw := model.RawHours{}
		for i := range roster {
			name := fmt.Sprintf("emp-%02d", (i*7)%n)
			roster[i] = model.RosterEntry{Name: name, Department: fmt.Sprintf("dept-%d", i%3)}
			if i%4 != 0 {
				raw[name] = model.RawRecord{Name: name, Hours: float64(i%10) + 0.5, ItemCount: i}
			}
		}

		for _, threshold := range thresholds {
			rows := model.BuildReport(roster, raw, threshold)

			gt.Equal(t, len(roster), len(rows))
			for i, row := range rows {
				gt.Equal(t, roster[i].Name, row.Name)
				gt.Equal(t, roster[i].Department, row.Department)
				gt.Equal(t, row.Hours < threshold, row.Flagged)
			}
		}
	}
}

func TestCollectShortfalls(t *testing.T) {
	roster := []model.RosterEntry{
		{Name: "Alice", Supervisor: "Zed"},
		{Name: "Bob", Supervisor: ""},
		{Name: "Carol", Supervisor: "Zed"},
	}
	raw := model.RawHours{
		"Alice": {Hours: 7.5},
		"Carol": {Hours: 9},
	}
	rows := model.BuildReport(roster, raw, model.DefaultFlagThreshold)

	shortfalls := model.CollectShortfalls(roster, rows, model.DefaultNotifyThreshold)

	// Alice is not flagged at 7.0 but still under the notification threshold
	gt.False(t, rows[0].Flagged)
	gt.Equal(t, []model.Shortfall{
		{Name: "Alice", Hours: 7.5, Supervisor: "Zed"},
		{Name: "Bob", Hours: 0, Supervisor: ""},
	}, shortfalls)
}

func TestReportFlaggedCount(t *testing.T) {
	report := &model.Report{Rows: []model.ReportRow{
		{Name: "a", Flagged: true},
		{Name: "b"},
		{Name: "c", Flagged: true},
	}}
	gt.Equal(t, 2, report.FlaggedCount())
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2025, 9, 3, 9, 52, 31, 0, time.UTC)
	gt.Equal(t, "工时统计-20250903095231.xlsx", model.ReportFileName("工时统计", now))
	gt.Equal(t, "report-20250903095231.xlsx", model.ReportFileName("report", now))
}
