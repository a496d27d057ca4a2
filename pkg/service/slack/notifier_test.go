package slack_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tally/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/tally/pkg/domain/model"
	slackSvc "github.com/secmon-lab/tally/pkg/service/slack"
	"github.com/slack-go/slack"
)

func TestNotifierBuildText(t *testing.T) {
	n := slackSvc.NewNotifier(&mocks.SlackClientMock{}, "C123", 8, map[string]string{
		"冯诚":  "U_LEAD",
		"Carol": "U_CAROL",
	})

	text := n.BuildText([]model.Shortfall{
		{Name: "胡旭冉", Hours: 6.5, Supervisor: "冯诚"},
		{Name: "Bob", Hours: 0},
		{Name: "Carol", Hours: 7.5, Supervisor: "Unknown"},
	})

	gt.S(t, text).Contains("不足 8h")
	gt.S(t, text).Contains("• 胡旭冉 (6.5h)  主管：冯诚 <@U_LEAD>")
	gt.S(t, text).Contains("• Bob (0h)  主管：无\n")
	gt.S(t, text).Contains("• Carol (7.5h)  主管：Unknown <@U_CAROL>")
}

func sectionTexts(t *testing.T, blocks []slack.Block) []string {
	t.Helper()
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		section, ok := b.(*slack.SectionBlock)
		gt.True(t, ok).Required()
		texts[i] = section.Text.Text
	}
	return texts
}

func manyShortfalls(count, nameLen int) []model.Shortfall {
	shortfalls := make([]model.Shortfall, count)
	for i := range shortfalls {
		shortfalls[i] = model.Shortfall{
			Name:  fmt.Sprintf("%04d-%s", i, strings.Repeat("员", nameLen)),
			Hours: 1,
		}
	}
	return shortfalls
}

func TestNotifierBuildBlocks(t *testing.T) {
	n := slackSvc.NewNotifier(&mocks.SlackClientMock{}, "C123", 8, nil)

	t.Run("Short message is one section", func(t *testing.T) {
		blocks := n.BuildBlocks([]model.Shortfall{{Name: "Bob", Hours: 2}})
		texts := sectionTexts(t, blocks)
		gt.Equal(t, 1, len(texts))
		gt.S(t, texts[0]).Contains("• Bob (2h)")
	})

	t.Run("Long message splits without losing lines", func(t *testing.T) {
		shortfalls := manyShortfalls(300, 40)
		texts := sectionTexts(t, n.BuildBlocks(shortfalls))
		gt.N(t, len(texts)).Greater(1)

		for _, text := range texts {
			gt.N(t, utf8.RuneCountInString(text)).LessOrEqual(3000)
		}
		joined := strings.Join(texts, "\n")
		for _, s := range shortfalls {
			gt.S(t, joined).Contains(s.Name)
		}
	})

	t.Run("Oversized line is truncated", func(t *testing.T) {
		texts := sectionTexts(t, n.BuildBlocks(manyShortfalls(1, 5000)))
		for _, text := range texts {
			gt.N(t, utf8.RuneCountInString(text)).LessOrEqual(3000)
		}
	})

	t.Run("Too many sections fall back to text", func(t *testing.T) {
		gt.Nil(t, n.BuildBlocks(manyShortfalls(3000, 100)))
	})
}

func TestNotifierNotify(t *testing.T) {
	shortfalls := []model.Shortfall{{Name: "Bob", Hours: 2}}

	t.Run("Posts to the configured channel", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1234567890.000001", nil
			},
		}

		n := slackSvc.NewNotifier(client, "C_TIMESHEET", 8, nil)
		gt.NoError(t, n.Notify(context.Background(), shortfalls))

		calls := client.PostMessageContextCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, "C_TIMESHEET", calls[0].ChannelID)
		gt.Equal(t, 2, len(calls[0].Options))
	})

	t.Run("Large notification posts text only", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return channelID, "1234567890.000002", nil
			},
		}

		n := slackSvc.NewNotifier(client, "C_TIMESHEET", 8, nil)
		gt.NoError(t, n.Notify(context.Background(), manyShortfalls(3000, 100)))

		calls := client.PostMessageContextCalls()
		gt.Equal(t, 1, len(calls))
		gt.Equal(t, 1, len(calls[0].Options))
	})

	t.Run("Wraps Slack errors", func(t *testing.T) {
		client := &mocks.SlackClientMock{
			PostMessageContextFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				return "", "", goerr.New("channel_not_found")
			},
		}

		err := slackSvc.NewNotifier(client, "C_GONE", 8, nil).Notify(context.Background(), shortfalls)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("channel_not_found")
	})

	t.Run("No shortfalls, no message", func(t *testing.T) {
		client := &mocks.SlackClientMock{}
		gt.NoError(t, slackSvc.NewNotifier(client, "C1", 8, nil).Notify(context.Background(), nil))
		gt.Equal(t, 0, len(client.PostMessageContextCalls()))
	})
}
