package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/medsignup/pkg/logger"
)

// LogExtractor adds the request id to every record logged with a request context.
// Pass it to logger.WithContextExtractors.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
