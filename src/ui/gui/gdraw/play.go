package gdraw

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/drag"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const flipDuration float32 = 0.25

// flipAnim squashes a tile horizontally while its face changes
type flipAnim struct {
	tween    *gween.Tween
	progress float64
	from     bool // face shown before the flip
}

// GUIPlayDrawer is the board scene: header, controls row and the pieces
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int
	boardW, boardH int
	boardImg       *ebiten.Image
	badgeImg       *ebiten.Image

	// buttons
	buttons    []*ghelper.Button
	idxShuffle int
	idxFlipAll int
	idxSolve   int
	idxReset   int

	layer     *pieceLayer
	lastMouse drag.Point
	touches   map[ebiten.TouchID]drag.Point

	flipped map[int]bool
	flips   map[int]*flipAnim

	lastTick time.Time
}

func NewGUIPlayDrawer(ctx *ghelper.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		touches:  make(map[ebiten.TouchID]drag.Point),
		flipped:  make(map[int]bool),
		flips:    make(map[int]*flipAnim),
		lastTick: time.Now(),
	}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)

	frame := drag.Rect{X: float64(pd.boardX), Y: float64(pd.boardY), W: float64(pd.boardW), H: float64(pd.boardH)}
	window := time.Duration(ctx.Config.DoubleClickMs) * time.Millisecond
	pd.layer = newPieceLayer(ctx.Builder.Board(), frame, window)

	pieces := ctx.Builder.Pieces()
	pd.layer.sync(pieces)
	for _, p := range pieces {
		pd.flipped[p.ID] = p.IsFlipped
	}
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *ghelper.GUIGameContext) {
	pd.boardW = ctx.Config.BoardW
	pd.boardH = ctx.Config.BoardH
	pd.boardX = (ctx.Config.WindowW - pd.boardW) / 2
	pd.boardY = gbase.HeaderH + gbase.ControlsH + gbase.Margin
	pd.boardImg = ghelper.RenderDottedBoard(pd.boardW, pd.boardH, 20, ctx.Theme.BoardBg, ctx.Theme.BoardDot, ctx.Theme.Accent)
	pd.badgeImg = ghelper.RenderRoundedRect(22, 16, 5, ctx.Theme.BadgeBg, ctx.Theme.BadgeBg, 0)
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *ghelper.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}
	lang := ctx.AssetsWorker.Lang()

	w, h, gap := 150, 48, 16
	total := 4*w + 3*gap
	x := (ctx.Config.WindowW - total) / 2
	y := gbase.HeaderH + (gbase.ControlsH-h)/2

	addBtn := func(label string, danger bool) int {
		clr := ctx.Theme.ButtonStroke
		if danger {
			clr = ctx.Theme.Danger
		}
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, clr, 3)
		b := ghelper.NewButton(label, x, y, w, h, img)
		b.AnimSpeed = 10.0
		x += w + gap
		pd.buttons = append(pd.buttons, b)
		return len(pd.buttons) - 1
	}
	pd.idxShuffle = addBtn(lang.T("play.shuffle"), false)
	pd.idxFlipAll = addBtn(lang.T("play.flipall"), false)
	pd.idxSolve = addBtn(lang.T("play.solve"), false)
	pd.idxReset = addBtn(lang.T("play.reset"), true)
}

func (pd *GUIPlayDrawer) Update(ctx *ghelper.GUIGameContext) (SceneType, error) {
	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		ctx.TogglePalette()
		pd.recalcLayout(ctx)
		pd.makeLayoutButtons(ctx)
	}

	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// controls first, a press on a button never reaches the board
	onButton := false
	for i, b := range pd.buttons {
		if b.Contains(mx, my) {
			onButton = true
		}
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			return pd.control(ctx, i)
		}
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		for i, b := range pd.buttons {
			// a finger that dragged a piece onto a button is not a tap
			if b.Contains(tx, ty) && !pd.layer.swallowed(drag.Touch(int(id))) {
				return pd.control(ctx, i)
			}
		}
	}

	pd.handlePointers(ctx, drag.Point{X: float64(mx), Y: float64(my)}, justPressed && !onButton, justReleased, now)
	pd.updateFlips(ctx, float32(dt))
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) control(ctx *ghelper.GUIGameContext, idx int) (SceneType, error) {
	ctx.Logx.Infof("%s (%d) clicked", pd.buttons[idx].Label, idx)
	// any gesture in flight belongs to the old list
	pd.layer.close()
	pd.touches = make(map[ebiten.TouchID]drag.Point)

	switch idx {
	case pd.idxShuffle:
		ctx.Builder.Shuffle()
	case pd.idxFlipAll:
		ctx.Builder.FlipAll()
	case pd.idxSolve:
		ctx.Builder.Solve()
	case pd.idxReset:
		ctx.Builder.Reset()
		return SceneSelect, nil
	}
	pd.layer.sync(ctx.Builder.Pieces())
	return SceneNotChanged, nil
}

// handlePointers feeds mouse and touch input into the piece layer
func (pd *GUIPlayDrawer) handlePointers(ctx *ghelper.GUIGameContext, mouse drag.Point, pressed, released bool, now time.Time) {
	pieces := ctx.Builder.Pieces()
	pd.layer.sync(pieces)

	if pressed {
		pd.layer.mouseDown(pieces, mouse, now)
	}
	if mouse != pd.lastMouse {
		// the mouse has no default gesture to suppress
		_ = pd.layer.move(drag.Mouse, mouse)
		pd.lastMouse = mouse
	}
	if released {
		pd.layer.up(drag.Mouse)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		at := drag.Point{X: float64(x), Y: float64(y)}
		if pd.layer.touchStart(ctx.Builder.Pieces(), int(id), at) {
			pd.touches[id] = at
		}
	}
	for id, last := range pd.touches {
		if inpututil.IsTouchJustReleased(id) {
			pd.layer.up(drag.Touch(int(id)))
			delete(pd.touches, id)
			continue
		}
		x, y := ebiten.TouchPosition(id)
		at := drag.Point{X: float64(x), Y: float64(y)}
		if at != last {
			pd.layer.move(drag.Touch(int(id)), at)
			pd.touches[id] = at
		}
	}
}

// updateFlips starts a tween for every piece whose face changed since the last tick
func (pd *GUIPlayDrawer) updateFlips(ctx *ghelper.GUIGameContext, dt float32) {
	for _, p := range ctx.Builder.Pieces() {
		prev, seen := pd.flipped[p.ID]
		if seen && prev != p.IsFlipped {
			pd.flips[p.ID] = &flipAnim{tween: gween.New(0, 1, flipDuration, ease.InOutQuad), from: prev}
		}
		pd.flipped[p.ID] = p.IsFlipped
	}
	for id, f := range pd.flips {
		v, done := f.tween.Update(dt)
		f.progress = float64(v)
		if done {
			delete(pd.flips, id)
		}
	}
}

// Close detaches all drag controllers
func (pd *GUIPlayDrawer) Close() {
	pd.layer.close()
}

func (pd *GUIPlayDrawer) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	pd.drawHeader(ctx, screen)
	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Bold, ctx.Theme)
	}
	pd.drawBoard(ctx, screen)

	if ctx.Config.Debug {
		id, dragging := pd.layer.dragging()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nsession: %s\ndrag: %v (%d)",
			ebiten.ActualTPS(), ctx.Builder.Session(), dragging, id))
	}
}

func (pd *GUIPlayDrawer) drawHeader(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	lang := ctx.AssetsWorker.Lang()
	fonts := ctx.AssetsWorker.Fonts()
	cx := ctx.Config.WindowW / 2

	ghelper.DrawCenteredText(screen, lang.T("play.title"), fonts.Title, cx, 36, ctx.Theme.MenuText)
	if t, ok := ctx.Builder.Theme(); ok {
		playing := lang.Tf("play.playing", ctx.AssetsWorker.ThemeName(t))
		ghelper.DrawCenteredText(screen, playing, fonts.Normal, cx, 72, ctx.Theme.MutedText)
	}
	tipY := pd.boardY + pd.boardH + gbase.Margin
	ghelper.DrawCenteredText(screen, lang.T("play.tip"), fonts.Small, cx, tipY, ctx.Theme.MutedText)
}

func (pd *GUIPlayDrawer) drawBoard(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX), float64(pd.boardY))
	screen.DrawImage(pd.boardImg, op)

	if ctx.Builder.Board().Empty() {
		lang := ctx.AssetsWorker.Lang()
		fonts := ctx.AssetsWorker.Fonts()
		cx, cy := pd.boardX+pd.boardW/2, pd.boardY+pd.boardH/2
		ghelper.DrawCenteredText(screen, lang.T("board.empty"), fonts.Bold, cx, cy-12, ctx.Theme.MenuText)
		ghelper.DrawCenteredText(screen, lang.T("board.empty.hint"), fonts.Small, cx, cy+14, ctx.Theme.MutedText)
		return
	}

	th, _ := ctx.Builder.Theme()
	for _, p := range pd.layer.order(ctx.Builder.Pieces()) {
		pd.drawPiece(ctx, screen, th, p)
	}
}

func (pd *GUIPlayDrawer) drawPiece(ctx *ghelper.GUIGameContext, screen *ebiten.Image, th base.Theme, p base.Piece) {
	flipped := p.IsFlipped
	scaleX := 1.0
	if f, ok := pd.flips[p.ID]; ok {
		// first half shows the old face shrinking, second half the new one growing
		scaleX = math.Abs(1 - 2*f.progress)
		if f.progress < 0.5 {
			flipped = f.from
		}
	}
	ref := p.FrontImage
	if flipped {
		ref = p.BackImage
		if ref == "" {
			ref = th.BackImage
		}
	}
	img := ctx.AssetsWorker.Tile(ref)

	half := float64(base.TileSize) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(scaleX, 1)
	op.GeoM.Translate(float64(pd.boardX)+p.X+half, float64(pd.boardY)+p.Y+half)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	if id, ok := pd.layer.dragging(); ok && id == p.ID {
		ghelper.EbitenutilDrawRectStroke(screen, float64(pd.boardX)+p.X, float64(pd.boardY)+p.Y,
			base.TileSize, base.TileSize, 2, ctx.Theme.Accent)
	}

	if _, animating := pd.flips[p.ID]; flipped || animating {
		return
	}
	// 1-based badge in the top-left corner of the front face
	bx, by := pd.boardX+int(p.X)+3, pd.boardY+int(p.Y)+3
	bop := &ebiten.DrawImageOptions{}
	bop.GeoM.Translate(float64(bx), float64(by))
	screen.DrawImage(pd.badgeImg, bop)
	text.Draw(screen, strconv.Itoa(p.ID+1), ctx.AssetsWorker.Fonts().Badge, bx+3, by+12, ctx.Theme.ButtonFill)
}
