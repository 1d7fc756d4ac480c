// internal/domain/notify/port.go
package notify

import (
	"context"
	"time"
)

// Severity classifies a transient notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is transient user feedback. It is never consulted for control
// decisions; delivery is best-effort.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
	Duration time.Duration
}

// Notifier delivers notifications. Implementations must not block the caller
// beyond their own timeout and must swallow nothing silently (log on failure).
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
