package ghelper

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// create a context with alpha and draw rounded rectangle using gg (anti-aliased)
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

// RenderDottedBoard draws the board background with a dot grid every step px
func RenderDottedBoard(w, h, step int, bg, dot, border color.RGBA) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(bg.R), int(bg.G), int(bg.B), int(bg.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), 16)
	dc.Fill()
	dc.SetRGBA255(int(dot.R), int(dot.G), int(dot.B), int(dot.A))
	for y := step / 2; y < h; y += step {
		for x := step / 2; x < w; x += step {
			dc.DrawCircle(float64(x), float64(y), 1.5)
		}
	}
	dc.Fill()
	dc.SetRGBA255(int(border.R), int(border.G), int(border.B), int(border.A))
	dc.SetDash(8, 6)
	dc.SetLineWidth(3)
	dc.DrawRoundedRectangle(1.5, 1.5, float64(w)-3, float64(h)-3, 16)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func EbitenutilDrawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	px := ebiten.NewImage(1, 1)
	px.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	screen.DrawImage(px, op)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func EbitenutilDrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	thickness = math.Min(thickness, math.Min(w, h)/2.0)

	EbitenutilDrawRect(screen, x, y, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+h-thickness, w, thickness, col)
	EbitenutilDrawRect(screen, x, y+thickness, thickness, h-thickness*2, col)
	EbitenutilDrawRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col)
}
