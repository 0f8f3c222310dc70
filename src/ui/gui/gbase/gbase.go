package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1100
	WindowH int = 860
	BoardW  int = 800
	BoardH  int = 600

	HeaderH   = 96
	ControlsH = 92
	Margin    = 24
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	MutedText    color.RGBA
	Accent       color.RGBA
	Danger       color.RGBA
	BoardBg      color.RGBA
	BoardDot     color.RGBA
	BadgeBg      color.RGBA
	ToastBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf4, 0xf1, 0xfb, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x5b, 0x2c, 0xa8, 0xff},
	MutedText:    color.RGBA{0x6b, 0x6b, 0x7b, 0xff},
	Accent:       color.RGBA{0x8b, 0x5c, 0xf6, 0xff},
	Danger:       color.RGBA{0xdc, 0x26, 0x26, 0xff},
	BoardBg:      color.RGBA{0xfb, 0xfa, 0xff, 0xff},
	BoardDot:     color.RGBA{0x8b, 0x5c, 0xf6, 0x30},
	BadgeBg:      color.RGBA{0x8b, 0x5c, 0xf6, 0xcc},
	ToastBg:      color.RGBA{0xff, 0xff, 0xff, 0xf0},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x18, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x28, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xc4, 0xb5, 0xfd, 0xff},
	MutedText:    color.RGBA{0xa0, 0xa0, 0xb0, 0xff},
	Accent:       color.RGBA{0xa7, 0x8b, 0xfa, 0xff},
	Danger:       color.RGBA{0xf8, 0x71, 0x71, 0xff},
	BoardBg:      color.RGBA{0x1a, 0x1a, 0x24, 0xff},
	BoardDot:     color.RGBA{0xa7, 0x8b, 0xfa, 0x30},
	BadgeBg:      color.RGBA{0xa7, 0x8b, 0xfa, 0xcc},
	ToastBg:      color.RGBA{0x26, 0x26, 0x30, 0xf0},
}
