package ghelper

import (
	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/themes"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/gbase/gconf"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder      *puzzlelib.PuzzleBuilder
	AssetsWorker *GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
	Toasts       *ToastStack
}

func NewGUIGameContext(b *puzzlelib.PuzzleBuilder, a *GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	ctx := &GUIGameContext{
		Builder:      b,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
		Toasts:       &ToastStack{},
	}
	b.SetNotifier(ctx.Notify)
	return ctx
}

// Notify turns builder notifications into localized toasts
func (ctx *GUIGameContext) Notify(n base.Notification) {
	ctx.Logx.Debugf("notify %s: %s", n.Kind, n.Title)
	title, desc := n.Title, n.Description
	if ctx.AssetsWorker != nil && ctx.AssetsWorker.Lang() != nil {
		lang := ctx.AssetsWorker.Lang()
		key := "toast." + n.Kind.String()
		title = lang.T(key + ".title")
		if n.Kind == base.NotifyThemeSelected {
			desc = lang.Tf(key+".desc", ctx.ThemeName(n.Arg))
		} else {
			desc = lang.T(key + ".desc")
		}
	}
	ctx.Toasts.Push(title, desc)
}

// ThemeName localizes a catalog theme name, unknown names pass through
func (ctx *GUIGameContext) ThemeName(name string) string {
	t, ok := themes.ByName(name)
	if !ok || ctx.AssetsWorker == nil {
		return name
	}
	return ctx.AssetsWorker.ThemeName(t)
}

// TogglePalette switches between the light and dark palettes and keeps the choice
func (ctx *GUIGameContext) TogglePalette() {
	if ctx.Theme == gbase.LightPalette {
		ctx.Theme = gbase.DarkPalette
	} else {
		ctx.Theme = gbase.LightPalette
	}
	ctx.SavePrefs()
}

// SavePrefs writes the palette and language back to the config file
func (ctx *GUIGameContext) SavePrefs() {
	ctx.Config.Theme = ctx.Theme.String()
	if ctx.AssetsWorker != nil && ctx.AssetsWorker.Lang() != nil {
		ctx.Config.Lang = ctx.AssetsWorker.Lang().GetLang().String()
	}
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("error save config: %v", err)
	}
}
