package puzzlelib

import (
	"reflect"
	"testing"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/drag"
	"flipfit/src/puzzlelib/themes"
)

func newTestBuilder(t *testing.T) (*PuzzleBuilder, *[]base.Notification) {
	t.Helper()
	var got []base.Notification
	pb := NewPuzzleBuilder(logx.NewNop(), WithSeed(1), WithNotifier(func(n base.Notification) {
		got = append(got, n)
	}))
	return pb, &got
}

func ocean(t *testing.T) base.Theme {
	t.Helper()
	th, ok := themes.ByName("Ocean Adventure")
	if !ok {
		t.Fatal("ocean theme missing")
	}
	return th
}

func TestSelectTheme(t *testing.T) {
	pb, notes := newTestBuilder(t)
	if pb.View() != base.ViewThemeSelect {
		t.Fatal("fresh builder should show theme selection")
	}
	pb.SelectTheme(ocean(t))

	if pb.Len() != 48 {
		t.Fatalf("expected 48 pieces, got %d", pb.Len())
	}
	if !pb.Started() || pb.View() != base.ViewBoard {
		t.Error("expected board view after selecting a theme")
	}
	th, ok := pb.Theme()
	if !ok || th.Name != "Ocean Adventure" {
		t.Errorf("unexpected theme %q", th.Name)
	}
	if pb.Session() == "" {
		t.Error("expected a session id")
	}
	if len(*notes) != 1 || (*notes)[0].Kind != base.NotifyThemeSelected {
		t.Errorf("unexpected notifications %v", *notes)
	}
}

func TestReselectReplacesPieces(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	pb.Board().OnFlip(0)
	first := pb.Session()

	space, _ := themes.ByID("space")
	pb.SelectTheme(space)
	p, _ := pb.Piece(0)
	if p.IsFlipped || p.FrontImage != themes.SpacePiece {
		t.Errorf("expected a fresh space piece, got %+v", p)
	}
	if pb.Session() == first {
		t.Error("expected a new session id")
	}
}

func TestShuffleKeepsIdentity(t *testing.T) {
	pb, notes := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	pb.FlipAll()
	before := pb.Pieces()

	pb.Shuffle()
	after := pb.Pieces()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		b, a := before[i], after[i]
		if a.ID != b.ID || a.FrontImage != b.FrontImage || a.BackImage != b.BackImage ||
			a.CorrectX != b.CorrectX || a.CorrectY != b.CorrectY {
			t.Fatalf("shuffle changed identity of piece %d: %+v -> %+v", i, b, a)
		}
		if a.IsFlipped {
			t.Fatalf("piece %d still flipped after shuffle", i)
		}
		if a.X < 100 || a.X >= 700 || a.Y < 100 || a.Y >= 500 {
			t.Fatalf("piece %d outside scatter region", i)
		}
	}
	if last := (*notes)[len(*notes)-1]; last.Kind != base.NotifyShuffled {
		t.Errorf("expected shuffle notification, got %v", last.Kind)
	}
}

func TestFlipAllTogglesOnly(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	pb.Board().OnFlip(4)
	before := pb.Pieces()

	pb.FlipAll()
	for i, p := range pb.Pieces() {
		if p.IsFlipped == before[i].IsFlipped {
			t.Fatalf("piece %d not toggled", i)
		}
		if p.X != before[i].X || p.Y != before[i].Y {
			t.Fatalf("piece %d moved", i)
		}
	}
	pb.FlipAll()
	if !reflect.DeepEqual(before, pb.Pieces()) {
		t.Error("flip all twice should restore the list")
	}
}

func TestSolveConverges(t *testing.T) {
	pb, notes := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	pb.FlipAll()
	pb.Board().OnMove(7, 3, 3)

	pb.Solve()
	for _, p := range pb.Pieces() {
		if p.X != p.CorrectX || p.Y != p.CorrectY || p.IsFlipped {
			t.Fatalf("piece not solved: %+v", p)
		}
	}
	if last := (*notes)[len(*notes)-1]; last.Title != "Puzzle Solved!" {
		t.Errorf("unexpected notification %+v", last)
	}
}

func TestResetIdempotent(t *testing.T) {
	pb, notes := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	pb.Reset()

	check := func() {
		t.Helper()
		if pb.Len() != 0 || pb.Started() || pb.View() != base.ViewThemeSelect {
			t.Fatalf("unexpected state after reset: len=%d started=%v", pb.Len(), pb.Started())
		}
		if _, ok := pb.Theme(); ok {
			t.Fatal("theme should be cleared")
		}
	}
	check()
	pb.Reset()
	check()
	if len(*notes) != 3 {
		t.Errorf("expected 3 notifications, got %d", len(*notes))
	}
}

func TestBulkOpsOnEmptyList(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.Shuffle()
	pb.FlipAll()
	pb.Solve()
	pb.Board().OnMove(1, 2, 3)
	pb.Board().OnFlip(1)
	if pb.Len() != 0 {
		t.Errorf("expected empty list, got %d", pb.Len())
	}
}

func TestPiecesReturnsCopy(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	list := pb.Pieces()
	list[0].X = -1
	if p, _ := pb.Piece(0); p.X == -1 {
		t.Error("accessor leaked the internal list")
	}
}

func TestThemeIsNotShared(t *testing.T) {
	pb, _ := newTestBuilder(t)
	th := ocean(t)
	pb.SelectTheme(th)
	th.Pieces[0] = "caller.jpg"
	got, _ := pb.Theme()
	if got.Pieces[0] == "caller.jpg" {
		t.Fatal("selected theme shares the caller's image list")
	}
	got.Pieces[1] = "reader.jpg"
	if again, _ := pb.Theme(); again.Pieces[1] == "reader.jpg" {
		t.Error("Theme leaked the stored image list")
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := NewPuzzleBuilder(nil, WithSeed(99))
	b := NewPuzzleBuilder(nil, WithSeed(99))
	a.SelectTheme(ocean(t))
	b.SelectTheme(ocean(t))
	if !reflect.DeepEqual(a.Pieces(), b.Pieces()) {
		t.Error("same seed should produce the same scatter")
	}
}

func TestDragThroughBoard(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	hub := drag.NewHub()
	frame := drag.FrameFunc(func() drag.Rect { return drag.Rect{X: 10, Y: 10, W: 800, H: 600} })
	c := drag.NewController(2, hub, frame, pb.Board())

	p, _ := pb.Piece(2)
	top := drag.Point{X: 10 + p.X, Y: 10 + p.Y}
	c.PointerDown(drag.Point{X: top.X + 40, Y: top.Y + 40}, top, 1)
	hub.Move(drag.Mouse, drag.Point{X: -500, Y: 2000})
	hub.Up(drag.Mouse)

	got, _ := pb.Piece(2)
	if got.X != 0 || got.Y != 520 {
		t.Errorf("expected clamp to (0, 520), got (%v, %v)", got.X, got.Y)
	}
	if got.IsFlipped {
		t.Error("drag must not flip")
	}
}

func TestEndToEndOcean(t *testing.T) {
	pb, _ := newTestBuilder(t)
	pb.SelectTheme(ocean(t))
	if pb.Len() != 48 || pb.View() != base.ViewBoard {
		t.Fatal("expected 48 pieces on the board view")
	}
	pb.Solve()
	want := map[int][2]float64{0: {0, 0}, 8: {0, 80}, 47: {560, 400}}
	for id, pos := range want {
		p, ok := pb.Piece(id)
		if !ok {
			t.Fatalf("piece %d missing", id)
		}
		if p.X != pos[0] || p.Y != pos[1] {
			t.Errorf("piece %d at (%v, %v), want (%v, %v)", id, p.X, p.Y, pos[0], pos[1])
		}
	}
}
