package gimages

import (
	"testing"

	"flipfit/src/puzzlelib/themes"
)

func TestEveryThemeRefIsKnown(t *testing.T) {
	for _, th := range themes.All() {
		for _, ref := range []string{th.FrontImage(0), th.BackImage, th.Preview} {
			if !Known(ref) {
				t.Errorf("theme %s: no art for %q", th.ID, ref)
			}
		}
	}
}

func TestRenderSize(t *testing.T) {
	img := Render(themes.OceanPiece, 80, 80)
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 80 {
		t.Errorf("unexpected bounds %v", b)
	}
	// placeholder for unknown refs
	img = Render("missing.png", 40, 30)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("unexpected placeholder bounds %v", b)
	}
}

func TestFrontAndBackDiffer(t *testing.T) {
	front := Render(themes.SpacePiece, 16, 16)
	back := Render(themes.SpaceBack, 16, 16)
	if front.At(0, 0) == back.At(0, 0) {
		t.Error("front and back art look the same")
	}
}
