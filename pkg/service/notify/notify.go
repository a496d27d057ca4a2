package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

// Multi fans a notification out to every notifier. All notifiers are called
// even when one fails.
type Multi []interfaces.Notifier

// Notify implements interfaces.Notifier
func (m Multi) Notify(ctx context.Context, shortfalls []model.Shortfall) error {
	var errs []error
	for i, n := range m {
		if err := n.Notify(ctx, shortfalls); err != nil {
			errs = append(errs, goerr.Wrap(err, "notifier failed", goerr.V("index", i)))
		}
	}
	return errors.Join(errs...)
}

// FormatHours renders hours without trailing zeros, e.g. 6.5 and 8
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Headline is the first line of a shortfall notification
func Headline(threshold float64) string {
	return fmt.Sprintf("🔔 以下同学昨日工时不足 %sh，请及时关注：", FormatHours(threshold))
}

// Line renders one shortfall entry
func Line(s model.Shortfall) string {
	supervisor := s.Supervisor
	if supervisor == "" {
		supervisor = "无"
	}
	return fmt.Sprintf("%s (%sh)  主管：%s", s.Name, FormatHours(s.Hours), supervisor)
}

// Text renders the plain text body of a shortfall notification
func Text(threshold float64, shortfalls []model.Shortfall) string {
	lines := []string{Headline(threshold), ""}
	for _, s := range shortfalls {
		lines = append(lines, Line(s))
	}
	return strings.Join(lines, "\n")
}
