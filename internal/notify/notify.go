// Package notify defines the outbound notification contract. The core emits
// "saved" / "score updated" events; an external surface decides how to render
// them.
package notify

import (
	"context"
	"sync"

	"github.com/okian/hireboard/pkg/logger"
)

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	Success Severity = "success"
	Info    Severity = "info"
	Error   Severity = "error"
)

// Notification is one message for the notification surface.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier receives notifications emitted by the core.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier renders notifications as log lines. It is the default surface
// for headless runs.
type LogNotifier struct {
	log logger.Logger
}

// NewLogNotifier creates a notifier writing to a named logger.
func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the notification at a level matching its severity.
func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	switch n.Severity {
	case Error:
		l.log.Error(ctx, n.Message, logger.String("severity", string(n.Severity)))
	default:
		l.log.Info(ctx, n.Message, logger.String("severity", string(n.Severity)))
	}
}

// MemoryNotifier records notifications for inspection in tests and demos.
type MemoryNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

// NewMemoryNotifier creates an empty recording notifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// Notify appends the notification to the record.
func (m *MemoryNotifier) Notify(_ context.Context, n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
}

// Sent returns a copy of all recorded notifications in order.
func (m *MemoryNotifier) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

// Reset clears the record.
func (m *MemoryNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
