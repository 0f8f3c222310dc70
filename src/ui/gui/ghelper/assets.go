package ghelper

import (
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/themes"
	"flipfit/src/ui/gui/gbase/gconf"
	"flipfit/src/ui/gui/ghelper/gfont"
	"flipfit/src/ui/gui/ghelper/gimages"
	"flipfit/src/ui/gui/ghelper/glang"

	"github.com/hajimehoshi/ebiten/v2"
)

const previewSize = 160

type GUIAssetsWorker struct {
	fonts    *gfont.Fonts
	tiles    map[string]*ebiten.Image
	previews map[string]*ebiten.Image
	lang     *glang.GUILangWorker
}

func NewGUIAssetsWorker(cfg *gconf.Config) (*GUIAssetsWorker, error) {
	var refs, previews []string
	for _, t := range themes.All() {
		refs = append(refs, t.Pieces...)
		refs = append(refs, t.BackImage)
		previews = append(previews, t.Preview)
	}
	l, err := glang.NewGUILangWorker(cfg.Lang)
	if err != nil {
		return nil, err
	}
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{
		fonts:    f,
		tiles:    gimages.LoadImages(refs, base.TileSize, base.TileSize),
		previews: gimages.LoadImages(previews, previewSize, previewSize),
		lang:     l,
	}, nil
}

// Tile resolves an image ref, unknown refs are rendered once on demand
func (aw *GUIAssetsWorker) Tile(ref string) *ebiten.Image {
	img, ok := aw.tiles[ref]
	if !ok {
		img = ebiten.NewImageFromImage(gimages.Render(ref, base.TileSize, base.TileSize))
		aw.tiles[ref] = img
	}
	return img
}

func (aw *GUIAssetsWorker) Preview(ref string) *ebiten.Image {
	img, ok := aw.previews[ref]
	if !ok {
		img = ebiten.NewImageFromImage(gimages.Render(ref, previewSize, previewSize))
		aw.previews[ref] = img
	}
	return img
}

func (aw *GUIAssetsWorker) ThemeName(t base.Theme) string {
	if name := aw.lang.T("theme." + t.ID); name != "theme."+t.ID {
		return name
	}
	return t.Name
}

func (aw *GUIAssetsWorker) Lang() *glang.GUILangWorker {
	return aw.lang
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
