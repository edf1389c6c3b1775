// Package notify raises desktop notifications for action failures.
package notify

import (
	"fmt"

	"github.com/atomicstack/single-mode-shortcuts/internal/logging"
	"github.com/gen2brain/beeep"
)

const title = "single-mode-shortcuts"

var sendNotification = beeep.Notify

// Notifier reports failures to the user outside the terminal.
type Notifier interface {
	Failure(label string, err error)
}

// Desktop sends failures through the platform notification service.
type Desktop struct{}

// Failure sends a notification naming the action that failed. Delivery errors
// are logged and otherwise ignored.
func (Desktop) Failure(label string, err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if label != "" {
		msg = fmt.Sprintf("%s: %v", label, err)
	}
	if sendErr := sendNotification(title, msg, ""); sendErr != nil {
		logging.Error(fmt.Errorf("notify: %w", sendErr))
	}
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Failure(string, error) {}

// New returns a Desktop notifier when enabled and Discard otherwise.
func New(enabled bool) Notifier {
	if enabled {
		return Desktop{}
	}
	return Discard{}
}
