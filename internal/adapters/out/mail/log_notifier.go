// internal/adapters/out/mail/log_notifier.go
package mail

import (
	"context"
	"log"

	"agendalog/internal/domain/notify"
)

// LogNotifier is the fallback notifier used when no SendGrid key is
// configured. It only writes the notification to the service log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) Notify(_ context.Context, n notify.Notification) error {
	log.Printf("[notify] %s title=%q message=%q duration=%s", n.Severity, n.Title, n.Message, n.Duration)
	return nil
}
