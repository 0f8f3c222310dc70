package gui

import (
	"image"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/themes"
	"flipfit/src/ui/gui/gbase/gconf"
	"flipfit/src/ui/gui/gdraw"
	"flipfit/src/ui/gui/ghelper"
	"flipfit/src/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	mgr *gdraw.SceneManager
	ctx *ghelper.GUIGameContext
}

func NewGUI(b *puzzlelib.PuzzleBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	as, err := ghelper.NewGUIAssetsWorker(cfg)
	if err != nil {
		return nil, err
	}
	ctx := ghelper.NewGUIGameContext(b, as, cfg, logx)
	mgr := gdraw.NewSceneManager(ctx)
	return &GUIProcessing{mgr: mgr, ctx: ctx}, nil
}

func (gp *GUIProcessing) Run() error {
	defer gp.mgr.Close()
	var icons []image.Image
	for _, s := range []int{16, 32, 48} {
		icons = append(icons, gimages.Render(themes.SpacePiece, s, s))
	}
	ebiten.SetWindowIcon(icons)
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Flip & Fit")
	return ebiten.RunGame(gp)
}

func (gp *GUIProcessing) Update() error {
	return gp.mgr.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.mgr.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
