package infra

import (
	"context"

	"tfxlab/internal/notify"
)

// ClipNotifier publishes the copy confirmation toast.
type ClipNotifier interface {
	Publish(message string, kind notify.Kind)
}

// LogClipboard is the server-side stand-in for the browser clipboard: entry
// lines are logged and the confirmation toast is published. Delivery is
// fire-and-forget and success is assumed.
type LogClipboard struct {
	logger   Logger
	notifier ClipNotifier
}

// NewLogClipboard builds the default clipboard sink.
func NewLogClipboard(logger Logger, notifier ClipNotifier) *LogClipboard {
	return &LogClipboard{logger: logger, notifier: notifier}
}

// Write delivers one formatted entry line.
func (c *LogClipboard) Write(ctx context.Context, text string) {
	c.logger.Info().Str("entry", text).Msg("synced to trading terminal")
	if c.notifier != nil {
		c.notifier.Publish("Entry parameters copied.", notify.KindSuccess)
	}
}
