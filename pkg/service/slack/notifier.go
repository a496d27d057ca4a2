package slack

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/service/notify"
	"github.com/slack-go/slack"
)

const (
	// Slack rejects section text longer than this
	maxSectionText = 3000
	// Slack rejects messages with more blocks than this
	maxBlocks = 50
)

// Notifier posts shortfall warnings to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
	threshold float64
	// members maps employee or supervisor names to Slack user IDs
	members map[string]string
}

var _ interfaces.Notifier = &Notifier{}

// NewNotifier creates a Slack notifier
func NewNotifier(client interfaces.SlackClient, channelID string, threshold float64, members map[string]string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
		threshold: threshold,
		members:   members,
	}
}

// BuildText renders the message in Slack mrkdwn. Supervisors with a known
// Slack user ID are mentioned, falling back to the employee.
func (n *Notifier) BuildText(shortfalls []model.Shortfall) string {
	return strings.Join(n.lines(shortfalls), "\n")
}

// BuildBlocks splits the message into section blocks that each fit Slack's
// text limit. It returns nil when one message cannot hold them all; Notify
// then posts the plain text only.
func (n *Notifier) BuildBlocks(shortfalls []model.Shortfall) []slack.Block {
	var (
		blocks []slack.Block
		chunk  []string
		size   int
	)
	flush := func() {
		text := strings.Join(chunk, "\n")
		if strings.TrimSpace(text) != "" {
			blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil))
		}
		chunk, size = nil, 0
	}

	for _, line := range n.lines(shortfalls) {
		line = truncate(line, maxSectionText)
		length := utf8.RuneCountInString(line)
		if len(chunk) > 0 && size+1+length > maxSectionText {
			flush()
		}
		if len(chunk) > 0 {
			size++
		}
		chunk = append(chunk, line)
		size += length
	}
	flush()

	if len(blocks) > maxBlocks {
		return nil
	}
	return blocks
}

func (n *Notifier) lines(shortfalls []model.Shortfall) []string {
	lines := []string{notify.Headline(n.threshold), ""}
	for _, s := range shortfalls {
		line := "• " + notify.Line(s)
		if mention := n.mention(s); mention != "" {
			line += " " + mention
		}
		lines = append(lines, line)
	}
	return lines
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func (n *Notifier) mention(s model.Shortfall) string {
	if id := n.members[s.Supervisor]; s.Supervisor != "" && id != "" {
		return "<@" + id + ">"
	}
	if id := n.members[s.Name]; id != "" {
		return "<@" + id + ">"
	}
	return ""
}

// Notify implements interfaces.Notifier
func (n *Notifier) Notify(ctx context.Context, shortfalls []model.Shortfall) error {
	if len(shortfalls) == 0 {
		return nil
	}

	options := []slack.MsgOption{slack.MsgOptionText(n.BuildText(shortfalls), false)}
	if blocks := n.BuildBlocks(shortfalls); len(blocks) > 0 {
		options = append(options, slack.MsgOptionBlocks(blocks...))
	}

	_, ts, err := n.client.PostMessageContext(ctx, n.channelID, options...)
	if err != nil {
		return goerr.Wrap(err, "failed to post shortfall notification", goerr.V("channel", n.channelID))
	}

	ctxlog.From(ctx).Info("Slack notification sent",
		"channel", n.channelID,
		"ts", ts,
		"shortfalls", len(shortfalls),
	)
	return nil
}
