// Package notify raises desktop notifications after exports, clipboard
// copies and image loads.
package notify

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/cropview/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventExport fires when an export is written to disk.
	EventExport Event = "export"
	// EventCopy fires when an export is copied to the clipboard.
	EventCopy Event = "copy"
	// EventLoad fires when a new image becomes current.
	EventLoad Event = "load"
)

// EventPreference describes formatting for a notification event.
type EventPreference struct {
	Template string
}

// Preferences describes notification behaviour loaded from the environment.
type Preferences struct {
	Title   string
	Timeout time.Duration
	Events  map[Event]EventPreference
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title:   "cropview",
		Timeout: 5 * time.Second,
		Events: map[Event]EventPreference{
			EventExport: {Template: "Exported %s"},
			EventCopy:   {Template: "Copied %s to clipboard"},
			EventLoad:   {Template: "Loaded %s"},
		},
	}
}

// LoadPreferences applies CROPVIEW_NOTIFY_* environment overrides to the
// defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("CROPVIEW_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	apply := func(key string, event Event) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			p := prefs.Events[event]
			p.Template = v
			prefs.Events[event] = p
		}
	}
	apply("CROPVIEW_NOTIFY_EXPORT_TEXT", EventExport)
	apply("CROPVIEW_NOTIFY_COPY_TEXT", EventCopy)
	apply("CROPVIEW_NOTIFY_LOAD_TEXT", EventLoad)
	return prefs
}

// Sender delivers one notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications based on the configured preferences.
// A nil Notifier is valid and sends nothing.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
	log     *slog.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithSender replaces the platform notification call.
func WithSender(s Sender) Option { return func(n *Notifier) { n.send = s } }

// WithLogger sets where delivery failures are reported.
func WithLogger(l *slog.Logger) Option { return func(n *Notifier) { n.log = l } }

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences, opts ...Option) *Notifier {
	cloned := Preferences{Title: prefs.Title, Timeout: prefs.Timeout, Events: make(map[Event]EventPreference, len(prefs.Events))}
	for k, v := range prefs.Events {
		cloned.Events[k] = v
	}
	n := &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify, log: slog.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Export reports a written export file, using the file itself as the icon.
func (n *Notifier) Export(path string) {
	if !n.enabledFor(EventExport) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := n.options()
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventExport, detail, opts)
}

// Copy reports an export placed on the clipboard.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "selection"
	}
	n.dispatch(EventCopy, detail, n.options())
}

// Load reports a newly loaded image with a preview icon.
func (n *Notifier) Load(name string, img image.Image) {
	if !n.enabledFor(EventLoad) {
		return
	}
	opts := n.options()
	if img != nil {
		path, cleanup, err := createPreview(img)
		if err != nil {
			n.log.Warn("notification preview", "error", err)
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventLoad, name, opts)
}

func (n *Notifier) options() platform.Options {
	return platform.Options{AppName: n.prefs.Title, Timeout: n.prefs.Timeout}
}

func (n *Notifier) enabledFor(event Event) bool {
	if n == nil {
		return false
	}
	return n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Events[event].Template)
	if template == "" || n.send == nil {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		n.log.Warn("notification failed", "event", string(event), "error", err)
	}
}

func createPreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "cropview-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		_ = os.Remove(path)
	}
	return path, cleanup, nil
}
