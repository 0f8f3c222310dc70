package gdraw

import (
	"time"

	"flipfit/src/puzzlelib/base"
	"flipfit/src/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *ghelper.GUIGameContext) (SceneType, error)
	Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image)
}

// Closer is implemented by scenes holding resources that must be released
// when the scene is swapped out
type Closer interface {
	Close()
}

type SceneType int

const (
	SceneSelect SceneType = iota
	ScenePlay
	SceneNotChanged
)

func (t SceneType) String() string {
	switch t {
	case SceneSelect:
		return "select"
	case ScenePlay:
		return "play"
	case SceneNotChanged:
		return "not-changed"
	default:
	}
	return "unknown"
}

// SceneFor maps the builder's derived view to a scene type
func SceneFor(v base.ViewType) SceneType {
	if v == base.ViewBoard {
		return ScenePlay
	}
	return SceneSelect
}

func (t SceneType) ToScene(s Scene, ctx *ghelper.GUIGameContext) Scene {
	switch t {
	case SceneSelect:
		s = NewGUISelectDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// SceneManager follows the builder: whatever the view says is what is shown
type SceneManager struct {
	current     Scene
	currentType SceneType
	lastTick    time.Time
}

func NewSceneManager(ctx *ghelper.GUIGameContext) *SceneManager {
	t := SceneFor(ctx.Builder.View())
	return &SceneManager{current: t.ToScene(nil, ctx), currentType: t, lastTick: time.Now()}
}

func (sm *SceneManager) Update(ctx *ghelper.GUIGameContext) error {
	now := time.Now()
	dt := now.Sub(sm.lastTick).Seconds()
	sm.lastTick = now
	ctx.Toasts.Update(float32(dt))

	next, err := sm.current.Update(ctx)
	if err != nil {
		return err
	}
	// scenes only talk to the builder, the view decides the scene
	want := SceneFor(ctx.Builder.View())
	if next != SceneNotChanged && next != want {
		ctx.Logx.Warnf("scene %s requested while view is %s", next, want)
	}
	if want != sm.currentType {
		sm.switchTo(want, ctx)
	}
	return nil
}

func (sm *SceneManager) switchTo(t SceneType, ctx *ghelper.GUIGameContext) {
	ctx.Logx.Debugf("scene %s -> %s", sm.currentType, t)
	if c, ok := sm.current.(Closer); ok {
		c.Close()
	}
	sm.current = t.ToScene(sm.current, ctx)
	sm.currentType = t
}

func (sm *SceneManager) Draw(ctx *ghelper.GUIGameContext, screen *ebiten.Image) {
	sm.current.Draw(ctx, screen)
	f := ctx.AssetsWorker.Fonts()
	ctx.Toasts.Draw(screen, f.Bold, f.Small, ctx.Theme)
}

// Close releases the current scene
func (sm *SceneManager) Close() {
	if c, ok := sm.current.(Closer); ok {
		c.Close()
	}
}
