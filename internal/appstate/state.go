// Package appstate runs the interactive cropview window.
package appstate

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/cropview/internal/clipboard"
	"github.com/example/cropview/internal/export"
	"github.com/example/cropview/internal/framerate"
	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/notify"
	"github.com/example/cropview/internal/render"
	"github.com/example/cropview/internal/selection"
	"github.com/example/cropview/internal/session"
	"github.com/example/cropview/internal/source"
	"github.com/example/cropview/internal/theme"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768
	messageTime   = 2 * time.Second
	checkerSize   = 8
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// AppState holds application configuration for the UI.
type AppState struct {
	Session   *session.Session
	Theme     *theme.Theme
	ExportDir string
	Paths     []string
	Decode    session.Decoder
	FrameRate int

	notifier  *notify.Notifier
	log       *slog.Logger
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the session driven by the window.
func WithSession(s *session.Session) Option { return func(a *AppState) { a.Session = s } }

// WithTheme sets the colours used to paint the window.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithExportDir sets the directory exports are written to.
func WithExportDir(dir string) Option { return func(a *AppState) { a.ExportDir = dir } }

// WithPaths sets the image files loaded once the window is open.
func WithPaths(paths ...string) Option { return func(a *AppState) { a.Paths = paths } }

// WithDecoder replaces the image file decoder.
func WithDecoder(d session.Decoder) Option { return func(a *AppState) { a.Decode = d } }

// WithFrameRate sets how many frames per second are requested.
func WithFrameRate(fps int) Option { return func(a *AppState) { a.FrameRate = fps } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(a *AppState) { a.log = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		ExportDir: ".",
		Decode:    source.DecodeFile,
		FrameRate: 60,
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Session == nil {
		a.Session = session.New(session.WithLogger(a.log))
	}
	if a.FrameRate < 1 {
		a.FrameRate = 1
	}
	return a
}

// loadedEvent carries a decoded image back to the event loop.
type loadedEvent struct {
	name string
	img  image.Image
	err  error
}

// exportedEvent reports the outcome of a background export write.
type exportedEvent struct {
	path string
	err  error
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	width, height := defaultWidth, defaultHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "cropview"})
	if err != nil {
		a.log.Error("new window", "error", err)
		return
	}
	defer w.Release()
	defer a.notifyClose()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := a.Session
	sess.Resize(float64(width), float64(height))
	fps := framerate.New(60)
	keys := defaultKeymap()
	backdrop := &render.Backdrop{Size: checkerSize, Light: a.Theme.CheckerLight, Dark: a.Theme.CheckerDark}

	var message string
	var messageUntil time.Time
	say := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
		messageUntil = time.Now().Add(messageTime)
		a.log.Info(message)
	}

	go func() {
		t := time.NewTicker(time.Second / time.Duration(a.FrameRate))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				w.Send(paint.Event{})
			}
		}
	}()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			pctx, pcancel := context.WithCancel(ctx)
			paintMu.Lock()
			paintCancel = pcancel
			paintMu.Unlock()
			drawFrame(pctx, s, w, backdrop, st, a.log)
			paintMu.Lock()
			paintCancel = nil
			if pctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			pcancel()
		}
	}()

	// Each file decodes on its own; whichever finishes last is shown.
	for _, path := range a.Paths {
		go func() {
			img, err := a.Decode(path)
			if ctx.Err() != nil {
				return
			}
			w.Send(loadedEvent{name: filepath.Base(path), img: img, err: err})
		}()
	}

	exportTo := func(mode export.Mode) {
		res, err := sess.Export(mode)
		if err != nil {
			say("export failed: %v", err)
			return
		}
		dir := a.ExportDir
		go func() {
			path, err := export.WriteFile(dir, res.Name, res.Image)
			w.Send(exportedEvent{path: path, err: err})
		}()
	}

	actions := map[string]func(){
		actionToolNormal: func() { sess.SetTool(session.ToolNormal) },
		actionToolSelect: func() { sess.SetTool(session.ToolSelect) },
		actionToolModify: func() { sess.SetTool(session.ToolModify) },
		actionCopy: func() {
			res, err := sess.Export(export.ModeSelection)
			if err != nil {
				say("copy failed: %v", err)
				return
			}
			if err := clipboard.WriteImage(res.Image); err != nil {
				say("copy failed: %v", err)
				return
			}
			say("copied %s", res.Name)
			a.notifier.Copy(res.Name)
		},
		actionPaste: func() {
			go func() {
				img, err := source.Clipboard()
				w.Send(loadedEvent{name: "clipboard", img: img, err: err})
			}()
		},
		actionCopyGeometry: func() {
			g := sess.Selection().Geometry()
			if err := clipboard.WriteText(g); err != nil {
				say("copy failed: %v", err)
				return
			}
			say("copied %s", g)
		},
		actionPasteGeometry: func() {
			text, err := clipboard.ReadText()
			if err != nil {
				say("paste failed: %v", err)
				return
			}
			r, err := selection.ParseRect(text)
			if err != nil {
				say("paste failed: %v", err)
				return
			}
			sess.SetSelection(r)
		},
		actionGrab: func() {
			go func() {
				img, err := source.Screen(ctx)
				w.Send(loadedEvent{name: "screen", img: img, err: err})
			}()
		},
		actionAspect: func() {
			sess.SetAspect(nextAspect(sess.Aspect()))
			say("aspect %s", aspectLabel(sess.Aspect()))
		},
		actionRefit: sess.Refit,
		actionZoomIn: func() {
			sess.Wheel(geom.Pt(float64(width)/2, float64(height)/2), keyZoomIn)
		},
		actionZoomOut: func() {
			sess.Wheel(geom.Pt(float64(width)/2, float64(height)/2), keyZoomOut)
		},
		actionClear: func() { sess.SetSelection(selection.Rect{}) },
	}
	for _, mode := range export.Modes {
		actions[exportAction(mode)] = func() { exportTo(mode) }
	}
	for _, ar := range arrows {
		d := ar.d
		actions[nudgeAction(d, false)] = func() { sess.Nudge(d, false) }
		actions[nudgeAction(d, true)] = func() { sess.Nudge(d, true) }
	}

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			sess.Resize(float64(width), float64(height))
		case loadedEvent:
			if e.err != nil {
				a.log.Error("cannot read image", "name", e.name, "error", e.err)
				say("cannot read %s", e.name)
				continue
			}
			sess.SetImage(e.name, e.img)
			a.notifier.Load(e.name, e.img)
		case exportedEvent:
			if e.err != nil {
				say("export failed: %v", e.err)
				continue
			}
			say("exported %s", filepath.Base(e.path))
			a.notifier.Export(e.path)
		case paint.Event:
			fps.Update(time.Now())
			paintMu.Lock()
			if paintCancel != nil {
				if dropCount < frameDropThreshold {
					paintCancel()
					dropCount++
				}
			}
			paintMu.Unlock()
			st := paintState{
				width:     width,
				height:    height,
				image:     sess.Image(),
				transform: sess.Transform(),
				selection: sess.Selection(),
				handles:   sess.Tool() == session.ToolModify,
				theme:     a.Theme,
				panel: panelLines(panelInfo{
					tool:      sess.Tool(),
					mode:      sess.Mode(),
					name:      sess.Name(),
					size:      sess.ImageSize(),
					selection: sess.Selection(),
					aspect:    sess.Aspect(),
					scale:     sess.Transform().M11,
					cursor:    sess.Cursor(),
					fps:       fps,
				}),
				message:      message,
				messageUntil: messageUntil,
			}
			select {
			case paintCh <- st:
			default:
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			p := geom.Pt(float64(e.X), float64(e.Y))
			if delta, ok := wheelDelta(e.Button); ok {
				if e.Direction == mouse.DirStep || e.Direction == mouse.DirPress {
					sess.Wheel(p, delta)
				}
				continue
			}
			switch e.Direction {
			case mouse.DirPress:
				if e.Button == mouse.ButtonLeft {
					sess.PointerDown(p)
				}
			case mouse.DirRelease:
				if e.Button == mouse.ButtonLeft {
					sess.PointerUp(p)
				}
			case mouse.DirNone:
				sess.PointerMove(p)
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			name, ok := keys.Lookup(e)
			if !ok {
				continue
			}
			if name == actionQuit {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
			if fn, ok := actions[name]; ok {
				fn()
			}
		case error:
			a.log.Error("window event", "error", e)
		}
	}
}
