package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
)

// Handle logs an error that could not be recovered from. goerr values are
// attached as attributes.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if id, ok := model.RequestIDFrom(ctx); ok {
		logger = logger.With("request_id", id)
	}

	attrs := []any{"error", err}
	for k, v := range goerr.Values(err) {
		attrs = append(attrs, k, v)
	}
	logger.Error("application error", attrs...)
}
