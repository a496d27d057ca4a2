package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/service/dingtalk"
	"github.com/urfave/cli/v3"
)

// DingTalk holds DingTalk robot configuration
type DingTalk struct {
	Webhook string
	Secret  string
	// PhoneMap is a JSON object of employee or supervisor name to mobile number
	PhoneMap string
}

// Flags returns CLI flags for DingTalk configuration
func (d *DingTalk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dingtalk-webhook",
			Usage:       "DingTalk robot webhook URL",
			Category:    "DingTalk",
			Sources:     cli.EnvVars("TALLY_DINGTALK_WEBHOOK"),
			Destination: &d.Webhook,
		},
		&cli.StringFlag{
			Name:        "dingtalk-secret",
			Usage:       "DingTalk robot signing secret",
			Category:    "DingTalk",
			Sources:     cli.EnvVars("TALLY_DINGTALK_SECRET"),
			Destination: &d.Secret,
		},
		&cli.StringFlag{
			Name:        "dingtalk-phone-map",
			Usage:       `JSON map of name to mobile number for mentions, e.g. {"Alice":"13800000000"}`,
			Category:    "DingTalk",
			Sources:     cli.EnvVars("TALLY_DINGTALK_PHONE_MAP"),
			Destination: &d.PhoneMap,
		},
	}
}

// Configure creates the DingTalk notifier. It returns nil when no webhook is set.
func (d *DingTalk) Configure(ctx context.Context, threshold float64) (interfaces.Notifier, error) {
	if !d.IsConfigured() {
		ctxlog.From(ctx).Debug("DingTalk notification is disabled")
		return nil, nil
	}

	phones, err := parseNameMap(d.PhoneMap)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid dingtalk phone map")
	}

	return dingtalk.New(d.Webhook, threshold,
		dingtalk.WithSecret(d.Secret),
		dingtalk.WithPhones(phones),
	), nil
}

// IsConfigured checks if DingTalk is configured
func (d *DingTalk) IsConfigured() bool {
	return d.Webhook != ""
}

// LogValue returns structured log value
func (d DingTalk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_webhook", d.Webhook != ""),
		slog.Bool("has_secret", d.Secret != ""),
		slog.Bool("has_phone_map", d.PhoneMap != ""),
	)
}
