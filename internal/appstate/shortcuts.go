package appstate

import (
	"fmt"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/cropview/internal/export"
	"github.com/example/cropview/internal/geom"
)

// KeyShortcut describes a keyboard combination that triggers an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// KeyboardShortcuts returns the shortcuts associated with an action.
type KeyboardShortcuts interface {
	KeyboardShortcuts() []KeyShortcut
}

// shortcutList is a helper to easily satisfy the KeyboardShortcuts interface.
type shortcutList []KeyShortcut

func (s shortcutList) KeyboardShortcuts() []KeyShortcut { return []KeyShortcut(s) }

// Keymap resolves key presses to named actions.
type Keymap struct {
	actions map[KeyShortcut]string
}

func newKeymap() *Keymap {
	return &Keymap{actions: map[KeyShortcut]string{}}
}

// Bind maps every shortcut in keys to the action name.
func (m *Keymap) Bind(name string, keys KeyboardShortcuts) {
	for _, sc := range keys.KeyboardShortcuts() {
		m.actions[normalize(sc)] = name
	}
}

// Lookup returns the action bound to e. Letter shortcuts without a Shift
// binding also match when Shift is held.
func (m *Keymap) Lookup(e key.Event) (string, bool) {
	sc := normalize(KeyShortcut{Rune: e.Rune, Code: e.Code, Modifiers: e.Modifiers})
	if name, ok := m.actions[sc]; ok {
		return name, true
	}
	if sc.Rune > 0 && sc.Modifiers&key.ModShift != 0 {
		sc.Modifiers &^= key.ModShift
		name, ok := m.actions[sc]
		return name, ok
	}
	return "", false
}

func normalize(sc KeyShortcut) KeyShortcut {
	mods := sc.Modifiers & (key.ModControl | key.ModShift)
	if sc.Rune > 0 {
		return KeyShortcut{Rune: unicode.ToLower(sc.Rune), Modifiers: mods}
	}
	return KeyShortcut{Code: sc.Code, Modifiers: mods}
}

// Action names understood by the window.
const (
	actionToolNormal    = "tool-normal"
	actionToolSelect    = "tool-select"
	actionToolModify    = "tool-modify"
	actionCopy          = "copy"
	actionPaste         = "paste"
	actionCopyGeometry  = "copy-geometry"
	actionPasteGeometry = "paste-geometry"
	actionGrab          = "grab"
	actionAspect        = "aspect"
	actionRefit         = "refit"
	actionZoomIn        = "zoom-in"
	actionZoomOut       = "zoom-out"
	actionClear         = "clear"
	actionQuit          = "quit"
)

func exportAction(m export.Mode) string { return "export-" + m.String() }

// nudgeAction names the arrow key action; resize grows the selection
// instead of moving it.
func nudgeAction(d geom.Vector, resize bool) string {
	if resize {
		return fmt.Sprintf("resize%+g%+g", d.X, d.Y)
	}
	return fmt.Sprintf("nudge%+g%+g", d.X, d.Y)
}

var arrows = []struct {
	code key.Code
	d    geom.Vector
}{
	{key.CodeLeftArrow, geom.Vec(-1, 0)},
	{key.CodeRightArrow, geom.Vec(1, 0)},
	{key.CodeUpArrow, geom.Vec(0, -1)},
	{key.CodeDownArrow, geom.Vec(0, 1)},
}

// defaultKeymap returns the stock bindings.
func defaultKeymap() *Keymap {
	m := newKeymap()
	m.Bind(actionToolNormal, shortcutList{{Rune: 'n'}})
	m.Bind(actionToolSelect, shortcutList{{Rune: 's'}})
	m.Bind(actionToolModify, shortcutList{{Rune: 'm'}})
	for i, mode := range export.Modes {
		m.Bind(exportAction(mode), shortcutList{{Rune: rune('1' + i)}})
	}
	m.Bind(actionCopy, shortcutList{{Rune: 'c', Modifiers: key.ModControl}})
	m.Bind(actionPaste, shortcutList{{Rune: 'v', Modifiers: key.ModControl}})
	m.Bind(actionCopyGeometry, shortcutList{{Rune: 'c', Modifiers: key.ModControl | key.ModShift}})
	m.Bind(actionPasteGeometry, shortcutList{{Rune: 'v', Modifiers: key.ModControl | key.ModShift}})
	m.Bind(actionGrab, shortcutList{{Rune: 'g', Modifiers: key.ModControl}})
	m.Bind(actionAspect, shortcutList{{Rune: 'a'}})
	m.Bind(actionRefit, shortcutList{{Rune: '0'}})
	m.Bind(actionZoomIn, shortcutList{{Rune: '+'}, {Rune: '='}})
	m.Bind(actionZoomOut, shortcutList{{Rune: '-'}})
	m.Bind(actionClear, shortcutList{{Code: key.CodeEscape}})
	m.Bind(actionQuit, shortcutList{{Rune: 'q'}})
	for _, a := range arrows {
		m.Bind(nudgeAction(a.d, false), shortcutList{{Code: a.code}})
		m.Bind(nudgeAction(a.d, true), shortcutList{{Code: a.code, Modifiers: key.ModShift}})
	}
	return m
}

// aspectPresets are cycled by the aspect shortcut; zero is unconstrained.
var aspectPresets = []float64{0, 1, 4.0 / 3, 3.0 / 2, 16.0 / 9}

var aspectLabels = map[float64]string{
	0:        "free",
	1:        "1:1",
	4.0 / 3:  "4:3",
	3.0 / 2:  "3:2",
	16.0 / 9: "16:9",
}

func nextAspect(cur float64) float64 {
	for i, a := range aspectPresets {
		if a == cur {
			return aspectPresets[(i+1)%len(aspectPresets)]
		}
	}
	return aspectPresets[0]
}

func aspectLabel(a float64) string {
	if l, ok := aspectLabels[a]; ok {
		return l
	}
	return fmt.Sprintf("%.3g", a)
}

// wheelNotch is the zoom delta of one wheel click. Positive deltas zoom
// out.
const wheelNotch = 10

// keyZoomIn and keyZoomOut scale by 1.25 and 0.8 per key press.
const (
	keyZoomIn  = -25
	keyZoomOut = 20
)

func wheelDelta(b mouse.Button) (float64, bool) {
	switch b {
	case mouse.ButtonWheelUp:
		return -wheelNotch, true
	case mouse.ButtonWheelDown:
		return wheelNotch, true
	}
	return 0, false
}
