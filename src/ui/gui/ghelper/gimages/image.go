package gimages

import (
	"image"
	"image/color"
	"math"

	"flipfit/src/puzzlelib/themes"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

type motif func(dc *gg.Context, w, h float64)

type art struct {
	top, bottom color.RGBA
	draw        motif
}

// refs known to the renderer, anything else gets the placeholder
var arts = map[string]art{
	themes.AnimalsPiece: {color.RGBA{0x86, 0xef, 0xac, 0xff}, color.RGBA{0x16, 0xa3, 0x4a, 0xff}, paw},
	themes.AnimalsBack:  {color.RGBA{0x3f, 0x62, 0x12, 0xff}, color.RGBA{0x1a, 0x2e, 0x05, 0xff}, leaves},
	themes.OceanPiece:   {color.RGBA{0x7d, 0xd3, 0xfc, 0xff}, color.RGBA{0x02, 0x84, 0xc7, 0xff}, fish},
	themes.OceanBack:    {color.RGBA{0x0c, 0x4a, 0x6e, 0xff}, color.RGBA{0x08, 0x2f, 0x49, 0xff}, waves},
	themes.SpacePiece:   {color.RGBA{0x4c, 0x1d, 0x95, 0xff}, color.RGBA{0x1e, 0x1b, 0x4b, 0xff}, planet},
	themes.SpaceBack:    {color.RGBA{0x0f, 0x17, 0x2a, 0xff}, color.RGBA{0x02, 0x06, 0x17, 0xff}, stars},
}

func Known(ref string) bool {
	_, ok := arts[ref]
	return ok
}

// Render paints ref into a w x h image
func Render(ref string, w, h int) image.Image {
	dc := gg.NewContext(w, h)
	a, ok := arts[ref]
	if !ok {
		a = art{color.RGBA{0xe5, 0xe7, 0xeb, 0xff}, color.RGBA{0x9c, 0xa3, 0xaf, 0xff}, question}
	}
	grad := gg.NewLinearGradient(0, 0, 0, float64(h))
	grad.AddColorStop(0, a.top)
	grad.AddColorStop(1, a.bottom)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	a.draw(dc, float64(w), float64(h))
	return dc.Image()
}

// LoadImages renders every ref once as an ebiten image of the given size
func LoadImages(refs []string, w, h int) map[string]*ebiten.Image {
	images := make(map[string]*ebiten.Image, len(refs))
	for _, ref := range refs {
		if _, ok := images[ref]; ok {
			continue
		}
		images[ref] = ebiten.NewImageFromImage(Render(ref, w, h))
	}
	return images
}

// ---- motifs ----

func paw(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0x5b, 0x3a, 0x1a, 0xe0)
	dc.DrawEllipse(w/2, h*0.62, w*0.2, h*0.16)
	dc.Fill()
	for i, dx := range []float64{-0.24, -0.08, 0.08, 0.24} {
		dy := 0.36
		if i == 1 || i == 2 {
			dy = 0.28
		}
		dc.DrawCircle(w/2+dx*w, h*dy, w*0.075)
		dc.Fill()
	}
}

func leaves(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0x84, 0xcc, 0x16, 0x90)
	for i := 0; i < 4; i++ {
		dc.Push()
		dc.RotateAbout(gg.Radians(float64(i)*90+45), w/2, h/2)
		dc.DrawEllipse(w/2, h*0.3, w*0.1, h*0.2)
		dc.Fill()
		dc.Pop()
	}
}

func fish(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0xf9, 0x73, 0x16, 0xff)
	dc.DrawEllipse(w*0.45, h/2, w*0.24, h*0.15)
	dc.Fill()
	dc.MoveTo(w*0.66, h/2)
	dc.LineTo(w*0.84, h*0.34)
	dc.LineTo(w*0.84, h*0.66)
	dc.ClosePath()
	dc.Fill()
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(w*0.33, h*0.46, w*0.04)
	dc.Fill()
}

func waves(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0x38, 0xbd, 0xf8, 0x90)
	dc.SetLineWidth(3)
	for row := 1; row <= 3; row++ {
		y := h * float64(row) / 4
		dc.MoveTo(0, y)
		for x := 0.0; x <= w; x += 2 {
			dc.LineTo(x, y+math.Sin(x/w*2*math.Pi*2)*h*0.05)
		}
		dc.Stroke()
	}
}

func planet(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0xfb, 0xbf, 0x24, 0xff)
	dc.DrawCircle(w/2, h/2, w*0.22)
	dc.Fill()
	dc.SetRGBA255(0xfd, 0xe6, 0x8a, 0xd0)
	dc.SetLineWidth(3)
	dc.DrawEllipse(w/2, h/2, w*0.38, h*0.09)
	dc.Stroke()
}

func stars(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0xff, 0xff, 0xff, 0xc0)
	// fixed pattern, renders identically every time
	for i := 0; i < 14; i++ {
		x := math.Mod(float64(i)*37.0, w)
		y := math.Mod(float64(i)*53.0+11, h)
		dc.DrawCircle(x, y, 1+float64(i%3)*0.6)
		dc.Fill()
	}
}

func question(dc *gg.Context, w, h float64) {
	dc.SetRGBA255(0x4b, 0x55, 0x63, 0xff)
	dc.SetLineWidth(w * 0.06)
	dc.DrawArc(w/2, h*0.38, w*0.14, gg.Radians(180), gg.Radians(400))
	dc.Stroke()
	dc.DrawCircle(w/2, h*0.74, w*0.04)
	dc.Fill()
}
