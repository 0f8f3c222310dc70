package ghelper

import (
	"image/color"
	"math"

	"flipfit/src/ui/gui/gbase"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	// animation state
	Hover   bool // mouse over
	Pressed bool // mouse currently pressed on this button
	// animation variables
	Scale         float64 // current scale (1.0 default)
	TargetScale   float64
	OffsetY       float64 // current vertical offset for pressed effect
	TargetOffsetY float64
	AnimSpeed     float64 // how fast to approach target (per second)
}

func NewButton(label string, x, y, w, h int, img *ebiten.Image) *Button {
	return &Button{Label: label, X: x, Y: y, W: w, H: h, Image: img, Scale: 1, TargetScale: 1}
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	// pressed start only if mouse went down while cursor inside the button
	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
		b.TargetOffsetY = 3.0 // push down 3px
	}
	// release inside after a press inside => click
	if justReleased {
		if b.Pressed && inside {
			b.Pressed = false
			b.TargetScale = 1.03 // small click bounce out
			b.TargetOffsetY = 0
			return true
		}
		// released outside: cancel press
		b.Pressed = false
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	// hover enter/leave subtle effect
	if inside && !b.Pressed {
		b.TargetScale = 1.02
		b.TargetOffsetY = 0
	} else if !b.Pressed {
		b.TargetScale = 1.0
		b.TargetOffsetY = 0
	}
	return false
}

// Call every Update with dt seconds to approach the target values
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	approach := func(cur *float64, target float64, speed float64) {
		t := 1.0 - math.Exp(-speed*dt)
		*cur = *cur*(1.0-t) + target*t
	}

	approach(&b.Scale, b.TargetScale, b.AnimSpeed)
	approach(&b.OffsetY, b.TargetOffsetY, b.AnimSpeed)

	if !b.Pressed && math.Abs(b.Scale-1.03) < 0.005 {
		b.TargetScale = 1.0
	}
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.OffsetY

	// draw button image scaled around center
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	DrawCenteredText(screen, b.Label, face, int(cx), int(cy), theme.ButtonText)
}

// DrawCenteredText centers s around (cx, cy) using font metrics
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, cy+bounds.Dy()/2, clr)
}

// ---- Toast ----

const (
	toastFadeIn  float32 = 0.25
	toastHold    float32 = 2.6
	toastFadeOut float32 = 0.4
	toastMax             = 3
)

type toastPhase uint8

const (
	toastIn toastPhase = iota
	toastShow
	toastOut
	toastDone
)

// Toast is a transient message, it never blocks input
type Toast struct {
	Title       string
	Description string

	phase toastPhase
	tween *gween.Tween
	hold  float32
	Alpha float64
}

func NewToast(title, desc string) *Toast {
	return &Toast{
		Title:       title,
		Description: desc,
		phase:       toastIn,
		tween:       gween.New(0, 1, toastFadeIn, ease.OutQuad),
	}
}

func (t *Toast) Update(dt float32) {
	switch t.phase {
	case toastIn:
		v, done := t.tween.Update(dt)
		t.Alpha = float64(v)
		if done {
			t.phase = toastShow
		}
	case toastShow:
		t.hold += dt
		if t.hold >= toastHold {
			t.Dismiss()
		}
	case toastOut:
		v, done := t.tween.Update(dt)
		t.Alpha = float64(v)
		if done {
			t.phase = toastDone
		}
	}
}

// Dismiss starts the fade out from the current alpha
func (t *Toast) Dismiss() {
	if t.phase == toastOut || t.phase == toastDone {
		return
	}
	t.phase = toastOut
	t.tween = gween.New(float32(t.Alpha), 0, toastFadeOut, ease.InQuad)
}

func (t *Toast) Done() bool {
	return t.phase == toastDone
}

// ToastStack keeps the newest toasts, oldest first
type ToastStack struct {
	toasts []*Toast
	bg     *ebiten.Image
	bgFor  gbase.Palette
}

func (ts *ToastStack) Push(title, desc string) {
	ts.toasts = append(ts.toasts, NewToast(title, desc))
	if over := len(ts.toasts) - toastMax; over > 0 {
		for _, t := range ts.toasts[:over] {
			t.Dismiss()
		}
	}
}

func (ts *ToastStack) Update(dt float32) {
	alive := ts.toasts[:0]
	for _, t := range ts.toasts {
		t.Update(dt)
		if !t.Done() {
			alive = append(alive, t)
		}
	}
	ts.toasts = alive
}

func (ts *ToastStack) Len() int {
	return len(ts.toasts)
}

func (ts *ToastStack) Toasts() []*Toast {
	return ts.toasts
}

// Draw stacks toasts upward from the bottom-right corner
func (ts *ToastStack) Draw(screen *ebiten.Image, titleFace, face font.Face, theme gbase.Palette) {
	const w, h, gap = 300, 58, 10
	if ts.bg == nil || ts.bgFor != theme {
		ts.bg = RenderRoundedRect(w, h, 10, theme.ToastBg, theme.Accent, 1.5)
		ts.bgFor = theme
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	y := sh - gap - h
	for i := len(ts.toasts) - 1; i >= 0; i-- {
		t := ts.toasts[i]
		x := sw - gap - w
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleAlpha(float32(t.Alpha))
		screen.DrawImage(ts.bg, op)

		text.Draw(screen, t.Title, titleFace, x+14, y+24, fade(theme.MenuText, t.Alpha))
		text.Draw(screen, t.Description, face, x+14, y+44, fade(theme.MutedText, t.Alpha))
		y -= h + gap
	}
}

func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
