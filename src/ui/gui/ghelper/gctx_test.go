package ghelper

import (
	"path/filepath"
	"testing"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/themes"
	"flipfit/src/ui/gui/gbase"
	"flipfit/src/ui/gui/gbase/gconf"
)

func TestNotificationsBecomeToasts(t *testing.T) {
	b := puzzlelib.NewPuzzleBuilder(logx.NewNop(), puzzlelib.WithSeed(3))
	ctx := NewGUIGameContext(b, nil, gconf.Default(), logx.NewNop())

	space, _ := themes.ByID("space")
	b.SelectTheme(space)
	b.Solve()

	toasts := ctx.Toasts.Toasts()
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].Title != "Theme Selected!" || toasts[0].Description != "Let's play with Space Explorer!" {
		t.Errorf("unexpected theme toast %+v", toasts[0])
	}
	if toasts[1].Title != "Puzzle Solved!" {
		t.Errorf("unexpected solve toast %+v", toasts[1])
	}
}

func TestThemeNameWithoutAssets(t *testing.T) {
	ctx := &GUIGameContext{}
	if got := ctx.ThemeName("Ocean Adventure"); got != "Ocean Adventure" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestTogglePaletteIsSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flipfit.json")
	cfg, err := gconf.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	b := puzzlelib.NewPuzzleBuilder(logx.NewNop(), puzzlelib.WithSeed(3))
	ctx := NewGUIGameContext(b, nil, cfg, logx.NewNop())

	ctx.TogglePalette()
	if ctx.Theme != gbase.DarkPalette {
		t.Fatal("expected the dark palette")
	}
	saved, err := gconf.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Theme != "dark" || saved.Lang != "en" {
		t.Errorf("unexpected saved config %+v", saved)
	}

	ctx.TogglePalette()
	saved, _ = gconf.Load(path)
	if saved.Theme != "light" {
		t.Errorf("expected light after second toggle, got %q", saved.Theme)
	}
}
