package config

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/tally/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
	// Members is a JSON object of employee or supervisor name to Slack user ID
	Members string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("TALLY_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for shortfall notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("TALLY_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
		&cli.StringFlag{
			Name:        "slack-members",
			Usage:       `JSON map of name to Slack user ID for mentions, e.g. {"Alice":"U012345"}`,
			Category:    "Slack",
			Sources:     cli.EnvVars("TALLY_SLACK_MEMBERS"),
			Destination: &s.Members,
		},
	}
}

// Configure creates the Slack notifier. It returns nil when Slack is not configured.
func (s *Slack) Configure(ctx context.Context, threshold float64) (interfaces.Notifier, error) {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Debug("Slack notification is disabled")
		return nil, nil
	}

	members, err := parseNameMap(s.Members)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid slack members")
	}

	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID, threshold, members), nil
}

// IsConfigured checks if Slack is configured for posting
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
		slog.Bool("has_members", s.Members != ""),
	)
}

// parseNameMap decodes a JSON object of name to string. Empty input is an empty map.
func parseNameMap(raw string) (map[string]string, error) {
	result := map[string]string{}
	if raw == "" {
		return result, nil
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, goerr.Wrap(err, "failed to parse name map JSON")
	}
	return result, nil
}
