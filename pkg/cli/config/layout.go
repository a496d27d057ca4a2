package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Layout holds report layout configuration
type Layout struct {
	Path            string
	RawSheet        string
	FlagThreshold   float64
	NotifyThreshold float64
}

// Flags returns CLI flags for Layout configuration
func (l *Layout) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "YAML file overriding column labels, sheet names and thresholds",
			Category:    "Layout",
			Sources:     cli.EnvVars("TALLY_LAYOUT"),
			Destination: &l.Path,
		},
		&cli.StringFlag{
			Name:        "raw-sheet",
			Usage:       "Preferred sheet of the raw hours export",
			Category:    "Layout",
			Sources:     cli.EnvVars("TALLY_RAW_SHEET"),
			Destination: &l.RawSheet,
		},
		&cli.FloatFlag{
			Name:        "flag-threshold",
			Usage:       "Rows with fewer hours are highlighted in the report",
			Category:    "Layout",
			Value:       model.DefaultFlagThreshold,
			Sources:     cli.EnvVars("TALLY_FLAG_THRESHOLD"),
			Destination: &l.FlagThreshold,
		},
		&cli.FloatFlag{
			Name:        "notify-threshold",
			Usage:       "Employees with fewer hours are notified",
			Category:    "Layout",
			Value:       model.DefaultNotifyThreshold,
			Sources:     cli.EnvVars("TALLY_NOTIFY_THRESHOLD"),
			Destination: &l.NotifyThreshold,
		},
	}
}

// Configure builds the layout. Defaults are overridden by the YAML file,
// which is overridden by flags set explicitly on the command line.
func (l *Layout) Configure(c *cli.Command) (model.Layout, error) {
	layout := model.DefaultLayout()
	if l.Path != "" {
		loaded, err := LoadLayoutFromFile(l.Path)
		if err != nil {
			return model.Layout{}, err
		}
		layout = *loaded
	}

	if l.RawSheet != "" {
		layout.RawSheet = l.RawSheet
	}
	if l.Path == "" || c.IsSet("flag-threshold") {
		layout.FlagThreshold = l.FlagThreshold
	}
	if l.Path == "" || c.IsSet("notify-threshold") {
		layout.NotifyThreshold = l.NotifyThreshold
	}

	if err := layout.Validate(); err != nil {
		return model.Layout{}, goerr.Wrap(err, "invalid layout")
	}
	return layout, nil
}

// LoadLayoutFromFile loads a layout from YAML. Omitted keys keep their default.
func LoadLayoutFromFile(path string) (*model.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "layout file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read layout file",
			goerr.V("path", path))
	}

	layout := model.DefaultLayout()
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML layout",
			goerr.V("path", path))
	}

	if err := layout.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid layout",
			goerr.V("path", path))
	}

	return &layout, nil
}

// LogValue returns structured log value
func (l Layout) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", l.Path),
		slog.String("raw_sheet", l.RawSheet),
		slog.Float64("flag_threshold", l.FlagThreshold),
		slog.Float64("notify_threshold", l.NotifyThreshold),
	)
}
