package usecase

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
	"github.com/secmon-lab/tally/pkg/service/spreadsheet"
	"github.com/secmon-lab/tally/pkg/utils/async"
)

// Timesheet reconciles a roster with a raw hours export. It holds only
// configuration, so one instance can serve concurrent calls.
type Timesheet struct {
	layout   model.Layout
	notifier interfaces.Notifier
	dispatch func(ctx context.Context, handler func(ctx context.Context) error)
	now      func() time.Time
}

// TimesheetOption is a functional option for configuring Timesheet
type TimesheetOption func(*Timesheet)

// WithNotifier sets the notifier for employees under the notification threshold
func WithNotifier(n interfaces.Notifier) TimesheetOption {
	return func(t *Timesheet) {
		t.notifier = n
	}
}

// WithDispatcher replaces how the notification is run in background
func WithDispatcher(d func(ctx context.Context, handler func(ctx context.Context) error)) TimesheetOption {
	return func(t *Timesheet) {
		t.dispatch = d
	}
}

// WithClock replaces the clock used for report file names
func WithClock(now func() time.Time) TimesheetOption {
	return func(t *Timesheet) {
		t.now = now
	}
}

// NewTimesheet creates a new Timesheet use case
func NewTimesheet(layout model.Layout, opts ...TimesheetOption) *Timesheet {
	t := &Timesheet{
		layout:   layout,
		dispatch: async.Dispatch,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Layout returns the configured layout
func (t *Timesheet) Layout() model.Layout {
	return t.layout
}

// Generate loads both inputs, writes the report workbook to out and returns
// the report. Nothing is written to out when loading fails.
func (t *Timesheet) Generate(ctx context.Context, roster, raw io.Reader, out io.Writer) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	entries, err := spreadsheet.LoadRoster(ctx, roster, t.layout.Roster)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load roster file",
			goerr.V("input", types.InputRoster),
			goerr.T(model.ErrTagInvalidInput))
	}

	records, err := spreadsheet.LoadRawHours(ctx, raw, t.layout.Raw, t.layout.RawSheet)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load raw hours file",
			goerr.V("input", types.InputRawHours),
			goerr.T(model.ErrTagInvalidInput))
	}

	rows := model.BuildReport(entries, records, t.layout.FlagThreshold)

	var buf bytes.Buffer
	if err := spreadsheet.WriteReport(&buf, rows, t.layout); err != nil {
		return nil, goerr.Wrap(err, "failed to write report")
	}
	if _, err := io.Copy(out, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to emit report")
	}

	report := &model.Report{
		FileName:   model.ReportFileName(t.layout.ReportName, t.now()),
		Rows:       rows,
		Shortfalls: model.CollectShortfalls(entries, rows, t.layout.NotifyThreshold),
	}

	logger.Info("timesheet report generated",
		"file", report.FileName,
		"employees", len(rows),
		"flagged", report.FlaggedCount(),
		"shortfalls", len(report.Shortfalls),
	)

	t.notify(ctx, report.Shortfalls)
	return report, nil
}

// GenerateFile runs Generate on two files and writes the report into outDir.
// It returns the report and the written path.
func (t *Timesheet) GenerateFile(ctx context.Context, rosterPath, rawPath, outDir string) (*model.Report, string, error) {
	rosterFile, err := os.Open(rosterPath)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open roster file",
			goerr.V("path", rosterPath),
			goerr.V("input", types.InputRoster))
	}
	defer rosterFile.Close()

	rawFile, err := os.Open(rawPath)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open raw hours file",
			goerr.V("path", rawPath),
			goerr.V("input", types.InputRawHours))
	}
	defer rawFile.Close()

	var buf bytes.Buffer
	report, err := t.Generate(ctx, rosterFile, rawFile, &buf)
	if err != nil {
		return nil, "", err
	}

	path := filepath.Join(outDir, report.FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, "", goerr.Wrap(err, "failed to save report", goerr.V("path", path))
	}

	return report, path, nil
}

func (t *Timesheet) notify(ctx context.Context, shortfalls []model.Shortfall) {
	if t.notifier == nil || len(shortfalls) == 0 {
		return
	}

	notifier := t.notifier
	t.dispatch(ctx, func(ctx context.Context) error {
		if err := notifier.Notify(ctx, shortfalls); err != nil {
			return goerr.Wrap(err, "failed to send shortfall notification",
				goerr.V("shortfalls", len(shortfalls)))
		}
		return nil
	})
}
