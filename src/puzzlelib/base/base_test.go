package base

import (
	"math/rand"
	"testing"
)

func fullTheme() Theme {
	imgs := make([]string, PieceCount)
	for i := range imgs {
		imgs[i] = "front"
	}
	return Theme{ID: "t", Name: "Test", Pieces: imgs, BackImage: "back", Preview: "front"}
}

func TestNewPiecesGrid(t *testing.T) {
	pieces := NewPieces(fullTheme(), rand.New(rand.NewSource(1)))
	if len(pieces) != PieceCount {
		t.Fatalf("expected %d pieces, got %d", PieceCount, len(pieces))
	}
	seen := make(map[int]bool)
	for i, p := range pieces {
		if p.ID != i {
			t.Errorf("piece %d has id %d", i, p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
		if p.CorrectX != float64((i%8)*80) || p.CorrectY != float64((i/8)*80) {
			t.Errorf("piece %d correct = (%v, %v)", i, p.CorrectX, p.CorrectY)
		}
		if p.IsFlipped {
			t.Errorf("piece %d should not be flipped", i)
		}
		if p.BackImage != "back" || p.FrontImage != "front" {
			t.Errorf("piece %d images = %q/%q", i, p.FrontImage, p.BackImage)
		}
	}
}

func TestNewPiecesScatterRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for n := 0; n < 20; n++ {
		for _, p := range NewPieces(fullTheme(), rnd) {
			if p.X < 100 || p.X >= 700 || p.Y < 100 || p.Y >= 500 {
				t.Fatalf("piece out of scatter region: %v", p)
			}
		}
	}
}

func TestFrontImageFallback(t *testing.T) {
	th := Theme{Pieces: []string{"a", "b"}, BackImage: "back"}
	pieces := NewPieces(th, rand.New(rand.NewSource(3)))
	if pieces[0].FrontImage != "a" || pieces[1].FrontImage != "b" {
		t.Errorf("expected own images for first tiles, got %q %q", pieces[0].FrontImage, pieces[1].FrontImage)
	}
	for _, p := range pieces[2:] {
		if p.FrontImage != "a" {
			t.Fatalf("piece %d should fall back to first image, got %q", p.ID, p.FrontImage)
		}
	}
}

func TestFrontImageEmptyTheme(t *testing.T) {
	pieces := NewPieces(Theme{}, rand.New(rand.NewSource(3)))
	if len(pieces) != PieceCount {
		t.Fatalf("expected %d pieces, got %d", PieceCount, len(pieces))
	}
	if pieces[10].FrontImage != "" {
		t.Errorf("expected empty image ref, got %q", pieces[10].FrontImage)
	}
}

func TestCorrectPositionLastTile(t *testing.T) {
	x, y := CorrectPosition(47)
	if x != 560 || y != 400 {
		t.Errorf("tile 47 correct = (%v, %v), want (560, 400)", x, y)
	}
}

func TestNotificationText(t *testing.T) {
	n := NewNotification(NotifyThemeSelected, "Ocean Adventure")
	if n.Title != "Theme Selected!" || n.Description != "Let's play with Ocean Adventure!" {
		t.Errorf("unexpected notification %+v", n)
	}
	if NewNotification(NotifyReset, "").Title != "Puzzle Reset" {
		t.Error("unexpected reset title")
	}
}
