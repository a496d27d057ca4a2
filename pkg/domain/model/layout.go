package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Default thresholds
const (
	DefaultFlagThreshold   = 7.0
	DefaultNotifyThreshold = 8.0
)

// RosterColumns holds the header labels of the roster file
type RosterColumns struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
	// Supervisor is optional in the roster file
	Supervisor string `yaml:"supervisor"`
}

// RawColumns holds the header labels of the raw hours export
type RawColumns struct {
	Name  string `yaml:"name"`
	Hours string `yaml:"hours"`
	Items string `yaml:"items"`
}

// Labels returns the required labels in column order
func (c RawColumns) Labels() []string {
	return []string{c.Name, c.Hours, c.Items}
}

// OutputColumns holds the header labels written to the report
type OutputColumns struct {
	Name       string `yaml:"name"`
	Hours      string `yaml:"hours"`
	Items      string `yaml:"items"`
	Department string `yaml:"department"`
}

// Labels returns the header row in column order
func (c OutputColumns) Labels() []string {
	return []string{c.Name, c.Hours, c.Items, c.Department}
}

// Layout describes the labels and thresholds of one reconciliation run
type Layout struct {
	Roster RosterColumns `yaml:"roster"`
	Raw    RawColumns    `yaml:"raw"`
	Output OutputColumns `yaml:"output"`

	// RawSheet is the preferred tab of the raw hours export
	RawSheet string `yaml:"raw_sheet"`
	// OutputSheet is the name of the single sheet in the report
	OutputSheet string `yaml:"output_sheet"`
	// ReportName is the file name prefix of the report
	ReportName string `yaml:"report_name"`

	FlagThreshold   float64 `yaml:"flag_threshold"`
	NotifyThreshold float64 `yaml:"notify_threshold"`
}

// DefaultLayout returns the layout of the company time-tracking export
func DefaultLayout() Layout {
	return Layout{
		Roster: RosterColumns{
			Name:       "人员名称",
			Department: "部门",
			Supervisor: "主管",
		},
		Raw: RawColumns{
			Name:  "人员名称",
			Hours: "登记工时(小时)",
			Items: "工作项数",
		},
		Output: OutputColumns{
			Name:       "人员名称",
			Hours:      "工时",
			Items:      "项数",
			Department: "部门",
		},
		RawSheet:        "工时投入排名",
		OutputSheet:     "工时投入排名",
		ReportName:      "工时统计",
		FlagThreshold:   DefaultFlagThreshold,
		NotifyThreshold: DefaultNotifyThreshold,
	}
}

// Validate validates the layout
func (l *Layout) Validate() error {
	required := map[string]string{
		"roster.name":       l.Roster.Name,
		"roster.department": l.Roster.Department,
		"raw.name":          l.Raw.Name,
		"raw.hours":         l.Raw.Hours,
		"raw.items":         l.Raw.Items,
		"output.name":       l.Output.Name,
		"output.hours":      l.Output.Hours,
		"output.items":      l.Output.Items,
		"output.department": l.Output.Department,
		"output_sheet":      l.OutputSheet,
		"report_name":       l.ReportName,
	}
	for field, value := range required {
		if value == "" {
			return goerr.New("layout label is required", goerr.V("field", field))
		}
	}

	if l.FlagThreshold < 0 {
		return goerr.New("flag threshold must not be negative",
			goerr.V("flag_threshold", l.FlagThreshold))
	}
	if l.NotifyThreshold < 0 {
		return goerr.New("notify threshold must not be negative",
			goerr.V("notify_threshold", l.NotifyThreshold))
	}

	return nil
}
