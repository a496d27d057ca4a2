package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier SlackClient

import (
	"context"

	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier delivers the list of employees under the notification threshold
type Notifier interface {
	Notify(ctx context.Context, shortfalls []model.Shortfall) error
}

// SlackClient is the subset of the Slack API used for notifications
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
