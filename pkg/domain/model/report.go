package model

import (
	"fmt"
	"strings"
	"time"
)

// RosterEntry is one employee of the roster. Roster order decides report order.
type RosterEntry struct {
	Name       string
	Department string
	Supervisor string
}

// RawRecord is the logged hours of one employee in the raw export
type RawRecord struct {
	Name      string
	Hours     float64
	ItemCount int
}

// RawHours maps a trimmed employee name to its raw record
type RawHours map[string]RawRecord

// ReportRow is one line of the generated report
type ReportRow struct {
	Name       string
	Hours      float64
	ItemCount  int
	Department string
	Flagged    bool
}

// Shortfall is an employee under the notification threshold
type Shortfall struct {
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Supervisor string  `json:"supervisor"`
}

// Report is the result of one reconciliation run
type Report struct {
	FileName   string
	Rows       []ReportRow
	Shortfalls []Shortfall
}

// FlaggedCount returns the number of flagged rows
func (r *Report) FlaggedCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Flagged {
			n++
		}
	}
	return n
}

// BuildReport joins the roster with the raw hours by name. The result has
// exactly one row per roster entry in roster order. Employees missing from
// raw get zero hours and items, and are flagged like anyone under threshold.
func BuildReport(roster []RosterEntry, raw RawHours, threshold float64) []ReportRow {
	rows := make([]ReportRow, 0, len(roster))
	for _, entry := range roster {
		rec := raw[strings.TrimSpace(entry.Name)]
		rows = append(rows, ReportRow{
			Name:       entry.Name,
			Hours:      rec.Hours,
			ItemCount:  rec.ItemCount,
			Department: entry.Department,
			Flagged:    rec.Hours < threshold,
		})
	}
	return rows
}

// CollectShortfalls returns the employees whose hours are under threshold, in
// roster order. roster and rows must come from the same BuildReport call.
func CollectShortfalls(roster []RosterEntry, rows []ReportRow, threshold float64) []Shortfall {
	var result []Shortfall
	for i, row := range rows {
		if row.Hours >= threshold {
			continue
		}
		var supervisor string
		if i < len(roster) {
			supervisor = roster[i].Supervisor
		}
		result = append(result, Shortfall{
			Name:       row.Name,
			Hours:      row.Hours,
			Supervisor: supervisor,
		})
	}
	return result
}

// ReportFileName returns "<name>-<YYYYMMDDHHMMSS>.xlsx"
func ReportFileName(name string, now time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", name, now.Format("20060102150405"))
}
