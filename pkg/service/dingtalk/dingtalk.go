package dingtalk

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/service/notify"
)

const defaultTimeout = 5 * time.Second

// Client posts shortfall warnings to a DingTalk robot webhook
type Client struct {
	webhook    string
	secret     string
	phones     map[string]string
	threshold  float64
	httpClient *http.Client
	now        func() time.Time
}

var _ interfaces.Notifier = &Client{}

// Option configures Client
type Option func(*Client)

// WithSecret enables request signing
func WithSecret(secret string) Option {
	return func(c *Client) {
		c.secret = secret
	}
}

// WithPhones sets the name to mobile number map used for @ mentions.
// Supervisors are looked up first, then the employee.
func WithPhones(phones map[string]string) Option {
	return func(c *Client) {
		c.phones = phones
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithClock replaces the clock used for signing
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a DingTalk client. threshold is only used in the message text.
func New(webhook string, threshold float64, opts ...Option) *Client {
	c := &Client{
		webhook:    webhook,
		threshold:  threshold,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type textContent struct {
	Content string `json:"content"`
}

type atTarget struct {
	AtMobiles []string `json:"atMobiles"`
	IsAtAll   bool     `json:"isAtAll"`
}

// Message is the robot text message payload
type Message struct {
	MsgType string      `json:"msgtype"`
	Text    textContent `json:"text"`
	At      atTarget    `json:"at"`
}

type response struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// Sign returns the signature of timestamp (unix milliseconds) for secret
func Sign(secret string, timestamp int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d\n%s", timestamp, secret)))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// BuildMessage builds the text message, mentioning everyone whose supervisor
// or own name has a mobile number
func (c *Client) BuildMessage(shortfalls []model.Shortfall) *Message {
	mobiles := []string{}
	for _, s := range shortfalls {
		if phone, ok := c.lookupPhone(s); ok {
			mobiles = append(mobiles, phone)
		}
	}

	return &Message{
		MsgType: "text",
		Text:    textContent{Content: notify.Text(c.threshold, shortfalls)},
		At:      atTarget{AtMobiles: mobiles, IsAtAll: false},
	}
}

func (c *Client) lookupPhone(s model.Shortfall) (string, bool) {
	if s.Supervisor != "" {
		if phone := c.phones[s.Supervisor]; phone != "" {
			return phone, true
		}
	}
	if phone := c.phones[s.Name]; phone != "" {
		return phone, true
	}
	return "", false
}

func (c *Client) endpoint() (string, error) {
	u, err := url.Parse(c.webhook)
	if err != nil {
		return "", goerr.Wrap(err, "invalid DingTalk webhook")
	}
	if c.secret == "" {
		return u.String(), nil
	}

	ts := c.now().UnixMilli()
	q := u.Query()
	q.Set("timestamp", strconv.FormatInt(ts, 10))
	q.Set("sign", Sign(c.secret, ts))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Notify implements interfaces.Notifier
func (c *Client) Notify(ctx context.Context, shortfalls []model.Shortfall) error {
	if c.webhook == "" || len(shortfalls) == 0 {
		return nil
	}

	endpoint, err := c.endpoint()
	if err != nil {
		return err
	}

	msg := c.BuildMessage(shortfalls)
	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal DingTalk message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create DingTalk request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to post DingTalk message")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return goerr.Wrap(err, "failed to read DingTalk response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("DingTalk webhook returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)))
	}

	var result response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return goerr.Wrap(err, "failed to decode DingTalk response", goerr.V("body", string(respBody)))
	}
	if result.ErrCode != 0 {
		return goerr.New("DingTalk rejected message",
			goerr.V("errcode", result.ErrCode),
			goerr.V("errmsg", result.ErrMsg))
	}

	ctxlog.From(ctx).Info("DingTalk notification sent",
		"shortfalls", len(shortfalls),
		"mentions", len(msg.At.AtMobiles),
	)
	return nil
}
