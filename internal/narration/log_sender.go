package narration

import (
	"context"

	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// LogSender writes every message to the structured log. Used when no chat
// transport is configured.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(ctx context.Context, to Destination, text string) error {
	logger.FromContext(ctx).Info(LogMsgNarrationSent,
		"kind", to.Kind,
		"name", to.Name,
		"text", text)
	return nil
}
