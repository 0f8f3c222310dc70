package gdraw

import (
	"fmt"
	"math"
	"time"

	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/themes"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type themeCard struct {
	theme      base.Theme
	X, Y, W, H int
	image      *ebiten.Image
	play       *ghelper.Button
	hover      bool
}

// GUISelectDrawer shows the catalog; picking a card starts a game
type GUISelectDrawer struct {
	cards []*themeCard

	// language box bottom-left, exit box top-right
	langBoxX, langBoxY, langBoxS int
	exitBoxX, exitBoxY, exitBoxS int
	boxImg, exitImg              *ebiten.Image

	elapsed  float64
	prevTime time.Time
}

func NewGUISelectDrawer(ctx *ghelper.GUIGameContext) *GUISelectDrawer {
	sd := &GUISelectDrawer{prevTime: time.Now()}
	sd.makeLayout(ctx)
	return sd
}

func (sd *GUISelectDrawer) makeLayout(ctx *ghelper.GUIGameContext) {
	all := themes.All()
	cardW, cardH, gap := 260, 330, 28
	totalW := len(all)*cardW + (len(all)-1)*gap
	startX := (ctx.Config.WindowW - totalW) / 2
	y := gbase.HeaderH + 80

	sd.cards = sd.cards[:0]
	for i, t := range all {
		x := startX + i*(cardW+gap)
		btnW, btnH := cardW-60, 44
		sd.cards = append(sd.cards, &themeCard{
			theme: t,
			X:     x, Y: y, W: cardW, H: cardH,
			image: ghelper.RenderRoundedRect(cardW, cardH, 18, ctx.Theme.ButtonFill, ctx.Theme.Accent, 2),
			play: ghelper.NewButton(ctx.AssetsWorker.Lang().T("selector.play"),
				x+30, y+cardH-btnH-18, btnW, btnH,
				ghelper.RenderRoundedRect(btnW, btnH, 12, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 2)),
		})
	}

	sd.langBoxS = 56
	sd.langBoxX = 20
	sd.langBoxY = ctx.Config.WindowH - sd.langBoxS - 20

	sd.exitBoxS = 44
	sd.exitBoxX = ctx.Config.WindowW - sd.exitBoxS - 20
	sd.exitBoxY = 20
	sd.boxImg = ghelper.RenderRoundedRect(sd.langBoxS, sd.langBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	sd.exitImg = ghelper.RenderRoundedRect(sd.exitBoxS, sd.exitBoxS, 8, ctx.Theme.ButtonFill, ctx.Theme.Danger, 2)
}

func (sd *GUISelectDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	// keyboard: toggle palette
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ctx.TogglePalette()
		sd.makeLayout(ctx)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}

	now := time.Now()
	dt := now.Sub(sd.prevTime).Seconds()
	sd.prevTime = now
	sd.elapsed += dt

	mx, my := ebiten.CursorPosition()
	justClicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// a tap on a card counts as a click on its play button
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		if c := sd.cardAt(tx, ty); c != nil {
			return sd.choose(ctx, c)
		}
	}

	for _, c := range sd.cards {
		c.hover = ghelper.PointInRect(mx, my, c.X, c.Y, c.W, c.H)
		clicked := c.play.HandleInput(mx, my, justClicked, justReleased)
		c.play.UpdateAnim(dt)
		if clicked {
			return sd.choose(ctx, c)
		}
	}

	if justReleased {
		if ghelper.PointInRect(mx, my, sd.langBoxX, sd.langBoxY, sd.langBoxS, sd.langBoxS) {
			if err := ctx.AssetsWorker.Lang().Toggle(); err != nil {
				ctx.Logx.Errorf("error switch language: %v", err)
				return SceneNotChanged, nil
			}
			ctx.SavePrefs()
			sd.makeLayout(ctx)
			return SceneNotChanged, nil
		}
		if ghelper.PointInRect(mx, my, sd.exitBoxX, sd.exitBoxY, sd.exitBoxS, sd.exitBoxS) {
			return SceneNotChanged, gbase.ErrExit
		}
		// the whole card is clickable, not just its button
		if c := sd.cardAt(mx, my); c != nil && !c.play.Contains(mx, my) {
			return sd.choose(ctx, c)
		}
	}
	return SceneNotChanged, nil
}

func (sd *GUISelectDrawer) cardAt(x, y int) *themeCard {
	for _, c := range sd.cards {
		if ghelper.PointInRect(x, y, c.X, c.Y, c.W, c.H) {
			return c
		}
	}
	return nil
}

func (sd *GUISelectDrawer) choose(ctx *ghelper.GUIGameContext, c *themeCard) (SceneType, error) {
	ctx.Logx.Infof("theme card %q clicked", c.theme.ID)
	ctx.Builder.SelectTheme(c.theme)
	return ScenePlay, nil
}


func (sd *GUISelectDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	lang := ctx.AssetsWorker.Lang()
	fonts := ctx.AssetsWorker.Fonts()
	cx := ctx.Config.WindowW / 2

	ghelper.DrawCenteredText(screen, lang.T("selector.title"), fonts.Title, cx, gbase.HeaderH/2+10, ctx.Theme.MenuText)
	ghelper.DrawCenteredText(screen, lang.T("selector.subtitle"), fonts.Normal, cx, gbase.HeaderH+20, ctx.Theme.MutedText)

	for i, c := range sd.cards {
		sd.drawCard(ctx, screen, c, i)
	}

	ghelper.DrawCenteredText(screen, lang.T("selector.tip"), fonts.Small, cx, ctx.Config.WindowH-40, ctx.Theme.MutedText)
	sd.drawBoxes(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (sd *GUISelectDrawer) drawCard(ctx *ghelper.GUIGameContext, screen *ebiten.Image, c *themeCard, i int) {
	fonts := ctx.AssetsWorker.Fonts()
	op := &ebiten.DrawImageOptions{}
	lift := 0.0
	if c.hover {
		lift = -4
	}
	op.GeoM.Translate(float64(c.X), float64(c.Y)+lift)
	screen.DrawImage(c.image, op)

	// preview bobs gently, phase shifted per card
	preview := ctx.AssetsWorker.Preview(c.theme.Preview)
	pw := preview.Bounds().Dx()
	dy := math.Sin(2*math.Pi*0.5*sd.elapsed+float64(i)) * 4
	pop := &ebiten.DrawImageOptions{}
	pop.GeoM.Translate(float64(c.X+(c.W-pw)/2), float64(c.Y+18)+dy+lift)
	pop.Filter = ebiten.FilterLinear
	screen.DrawImage(preview, pop)

	ghelper.DrawCenteredText(screen, ctx.AssetsWorker.ThemeName(c.theme), fonts.Bold, c.X+c.W/2, c.Y+205+int(lift), ctx.Theme.ButtonText)
	ghelper.DrawCenteredText(screen, ctx.AssetsWorker.Lang().T("selector.pieces"), fonts.Small, c.X+c.W/2, c.Y+230+int(lift), ctx.Theme.MutedText)
	c.play.DrawAnimated(screen, fonts.Bold, ctx.Theme)
}

func (sd *GUISelectDrawer) drawBoxes(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	fonts := ctx.AssetsWorker.Fonts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sd.langBoxX), float64(sd.langBoxY))
	screen.DrawImage(sd.boxImg, op)
	ghelper.DrawCenteredText(screen, ctx.AssetsWorker.Lang().T("lang.type"), fonts.Normal,
		sd.langBoxX+sd.langBoxS/2, sd.langBoxY+sd.langBoxS/2, ctx.Theme.ButtonText)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sd.exitBoxX), float64(sd.exitBoxY))
	screen.DrawImage(sd.exitImg, op)
	ghelper.DrawCenteredText(screen, ctx.AssetsWorker.Lang().T("exit.title"), fonts.Bold,
		sd.exitBoxX+sd.exitBoxS/2, sd.exitBoxY+sd.exitBoxS/2, ctx.Theme.Danger)

	ver := ctx.AssetsWorker.Lang().T("version")
	text.Draw(screen, ver, fonts.Small, ctx.Config.WindowW-140, ctx.Config.WindowH-24, ctx.Theme.MutedText)
}
