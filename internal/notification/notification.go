// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	perrors "github.com/oashamkll/Myapp-02/internal/errors"
	"github.com/oashamkll/Myapp-02/internal/logger"
)

// AppName is the title used for chatmock notifications
const AppName = "chatmock"

// maxPreview bounds the reply text shown in a notification body
const maxPreview = 80

// Notifier matches beeep.Notify so tests can swap it out.
type Notifier func(title, message string, icon any) error

var notify Notifier = beeep.Notify

// SetNotifier replaces the notification backend.
func SetNotifier(n Notifier) {
	notify = n
}

// ResetNotifier restores the beeep backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending", "title", title, "message", message)
	// Empty icon lets beeep use the platform default
	if err := notify(title, message, ""); err != nil {
		log.Warn("send failed", "error", err)
		return perrors.NotifyFailed(title, err)
	}
	return nil
}

// BotReplied announces a bot reply, prefixed with the bot's display name.
func BotReplied(botName, reply string) error {
	runes := []rune(reply)
	if len(runes) > maxPreview {
		reply = string(runes[:maxPreview-1]) + "…"
	}
	return Send(AppName, botName+": "+reply)
}
