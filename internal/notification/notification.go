// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/openlab-tools/labsync/internal/logger"
)

// NotifyFunc delivers a notification. It matches the beeep.Notify signature.
type NotifyFunc func(title, message string, icon any) error

var notifier NotifyFunc = beeep.Notify

// SetNotifier replaces the delivery function. Used by tests to capture
// notifications without touching the desktop.
func SetNotifier(fn NotifyFunc) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed delivery.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: title=%q, message=%q", title, message)
	// Empty icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// CommitCompleted notifies that a project's changes were committed.
func CommitCompleted(projectName string, fileCount int) error {
	return Send("labsync", fmt.Sprintf("%s: committed %d file(s)", projectName, fileCount))
}

// LoggedIn notifies that the hub login completed.
func LoggedIn(username string) error {
	return Send("labsync", "Logged in as "+username)
}
