package appstate

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/cropview/internal/framerate"
	"github.com/example/cropview/internal/geom"
	"github.com/example/cropview/internal/render"
	"github.com/example/cropview/internal/selection"
	"github.com/example/cropview/internal/session"
	"github.com/example/cropview/internal/theme"
)

const (
	panelPadding    = 6
	panelLineHeight = 16
	messageSize     = 32
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("parse font: %v", err))
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: messageSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		panic(fmt.Sprintf("font face: %v", err))
	}
}

// paintState is an immutable snapshot of everything a frame needs, so
// drawing can run off the event loop.
type paintState struct {
	width, height int
	image         image.Image
	transform     geom.Transform
	selection     selection.Rect
	handles       bool
	theme         *theme.Theme
	panel         []string
	message       string
	messageUntil  time.Time
}

type panelInfo struct {
	tool      session.Tool
	mode      session.Mode
	name      string
	size      geom.Vector
	selection selection.Rect
	aspect    float64
	scale     float64
	cursor    string
	fps       *framerate.Estimator
}

func panelLines(p panelInfo) []string {
	lines := []string{
		fmt.Sprintf("tool: %s (%s)", p.tool, p.mode),
	}
	if p.fps != nil && p.fps.Samples() > 0 {
		lines = append(lines, fmt.Sprintf("fps: %.0f (min %.0f, max %.0f)", p.fps.FPS(), p.fps.Min(), p.fps.Max()))
	} else {
		lines = append(lines, "fps: -")
	}
	if p.name == "" {
		lines = append(lines, "image: none")
	} else {
		lines = append(lines, fmt.Sprintf("image: %s %gx%g", p.name, p.size.X, p.size.Y))
	}
	sel := "none"
	if !p.selection.Empty() {
		sel = p.selection.String()
	}
	lines = append(lines,
		"selection: "+sel,
		"aspect: "+aspectLabel(p.aspect),
		fmt.Sprintf("zoom: %.0f%%", p.scale*100),
	)
	if p.cursor != "" && p.cursor != selection.HandleNone.Cursor() {
		lines = append(lines, "cursor: "+p.cursor)
	}
	return lines
}

// panelRect returns the box that holds lines in the top-left corner.
func panelRect(lines []string) image.Rectangle {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := 0
	for _, l := range lines {
		if lw := d.MeasureString(l).Ceil(); lw > w {
			w = lw
		}
	}
	return image.Rect(0, 0, w+2*panelPadding, len(lines)*panelLineHeight+2*panelPadding)
}

func drawPanel(dst *image.RGBA, lines []string, th *theme.Theme) {
	if len(lines) == 0 {
		return
	}
	r := panelRect(lines).Add(image.Pt(panelPadding, panelPadding))
	draw.Draw(dst, r, image.NewUniform(th.PanelBackground), image.Point{}, draw.Over)
	render.Rect(dst, r, th.PanelBorder, 1)
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.PanelText), Face: basicfont.Face7x13}
	for i, l := range lines {
		d.Dot = fixed.P(r.Min.X+panelPadding, r.Min.Y+panelPadding+(i+1)*panelLineHeight-4)
		d.DrawString(l)
	}
}

func drawMessage(dst *image.RGBA, msg string, width, height int, th *theme.Theme) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.MessageText), Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	px := (width - wmsg) / 2
	py := (height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(th.MessageBackground), image.Point{}, draw.Over)
	render.Rect(dst, rect, th.PanelBorder, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

// composeFrame paints one frame into dst: backdrop, image, selection
// overlay, property panel and any live message. It stops early when ctx
// is cancelled.
func composeFrame(ctx context.Context, dst *image.RGBA, backdrop *render.Backdrop, st paintState) bool {
	backdrop.Draw(dst)
	if ctx.Err() != nil {
		return false
	}
	render.View(dst, st.image, st.transform, st.theme.ImageFill)
	if ctx.Err() != nil {
		return false
	}
	style := render.DefaultStyle()
	style.Stroke = st.theme.Selection
	style.HandleFill = st.theme.HandleFill
	style.HandleBorder = st.theme.HandleBorder
	render.Selection(dst, st.selection, st.transform, style, st.handles)
	if ctx.Err() != nil {
		return false
	}
	drawPanel(dst, st.panel, st.theme)
	if st.message != "" && time.Now().Before(st.messageUntil) {
		drawMessage(dst, st.message, st.width, st.height, st.theme)
	}
	return ctx.Err() == nil
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, backdrop *render.Backdrop, st paintState, log *slog.Logger) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Error("new buffer", "error", err)
		return
	}
	defer b.Release()

	if !composeFrame(ctx, b.RGBA(), backdrop, st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}
