package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
	Title  font.Face
	Badge  font.Face
}

func face(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadFonts builds faces from the Go fonts bundled with x/image
func LoadFonts() (*Fonts, error) {
	var err error
	fonts := &Fonts{Badge: basicfont.Face7x13}

	if fonts.Small, err = face(goregular.TTF, 12); err != nil {
		return nil, err
	}
	if fonts.Normal, err = face(goregular.TTF, 15); err != nil {
		return nil, err
	}
	if fonts.Bold, err = face(gobold.TTF, 16); err != nil {
		return nil, err
	}
	// for titles
	if fonts.Title, err = face(gobold.TTF, 28); err != nil {
		return nil, err
	}
	return fonts, nil
}
