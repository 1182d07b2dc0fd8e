// Package platform delivers desktop notifications on the host OS.
package platform

import "time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification daemon.
	AppName string
	// IconPath, when non-empty, points to an image file shown with the
	// notification if the platform supports it.
	IconPath string
	// Timeout is how long the notification stays visible; zero lets the
	// server decide.
	Timeout time.Duration
}

func (o Options) expireMillis() int32 {
	if o.Timeout <= 0 {
		return -1
	}
	return int32(o.Timeout / time.Millisecond)
}
