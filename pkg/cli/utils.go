package cli

import (
	"context"

	"github.com/secmon-lab/tally/pkg/cli/config"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// configureNotifier combines every configured notifier. It returns nil when none is configured.
func configureNotifier(ctx context.Context, threshold float64, dingtalkCfg *config.DingTalk, slackCfg *config.Slack) (interfaces.Notifier, error) {
	var notifiers notify.Multi

	ding, err := dingtalkCfg.Configure(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if ding != nil {
		notifiers = append(notifiers, ding)
	}

	slackNotifier, err := slackCfg.Configure(ctx, threshold)
	if err != nil {
		return nil, err
	}
	if slackNotifier != nil {
		notifiers = append(notifiers, slackNotifier)
	}

	if len(notifiers) == 0 {
		return nil, nil
	}
	return notifiers, nil
}
