package reminder

import (
	"context"
	"log/slog"
)

// Notifier delivers a reapplication alert when a timer expires. Delivery
// channels (push, email) plug in behind this interface.
type Notifier interface {
	Notify(ctx context.Context, title, body string)
}

// LogNotifier writes alerts to the structured log. It is the default sink
// when no push channel is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier builds a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "reminder.notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, title, body string) {
	n.logger.Info("reapplication alert", "title", title, "body", body)
}
