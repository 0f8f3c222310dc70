package gdraw

import (
	"testing"
	"time"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/drag"
	"flipfit/src/puzzlelib/themes"
)

func newTestLayer(t *testing.T) (*pieceLayer, *puzzlelib.PuzzleBuilder) {
	t.Helper()
	pb := puzzlelib.NewPuzzleBuilder(logx.NewNop(), puzzlelib.WithSeed(7))
	th, _ := themes.ByID("animals")
	pb.SelectTheme(th)
	pb.Solve() // known grid positions
	l := newPieceLayer(pb.Board(), drag.Rect{X: 100, Y: 200, W: 800, H: 600}, 400*time.Millisecond)
	l.sync(pb.Pieces())
	return l, pb
}

func TestLayerMountsOneControllerPerPiece(t *testing.T) {
	l, pb := newTestLayer(t)
	if len(l.controllers) != base.PieceCount {
		t.Fatalf("expected %d controllers, got %d", base.PieceCount, len(l.controllers))
	}
	pb.Reset()
	l.sync(pb.Pieces())
	if len(l.controllers) != 0 {
		t.Errorf("controllers left after reset: %d", len(l.controllers))
	}
}

func TestLayerHitUsesBoardOffset(t *testing.T) {
	l, pb := newTestLayer(t)
	// tile 9 solved at (80, 80) on the board
	p, ok := l.hit(pb.Pieces(), drag.Point{X: 100 + 85, Y: 200 + 85})
	if !ok || p.ID != 9 {
		t.Fatalf("expected piece 9, got %v (ok=%v)", p.ID, ok)
	}
	if _, ok := l.hit(pb.Pieces(), drag.Point{X: 5, Y: 5}); ok {
		t.Error("point outside the board should not hit")
	}
}

func TestLayerDragMovesPiece(t *testing.T) {
	l, pb := newTestLayer(t)
	now := time.Now()
	start := drag.Point{X: 100 + 10, Y: 200 + 10} // piece 0
	if !l.mouseDown(pb.Pieces(), start, now) {
		t.Fatal("press should land on piece 0")
	}
	if id, ok := l.dragging(); !ok || id != 0 {
		t.Fatalf("expected piece 0 dragging, got %d", id)
	}
	l.move(drag.Mouse, drag.Point{X: start.X + 300, Y: start.Y + 150})
	l.up(drag.Mouse)

	p, _ := pb.Piece(0)
	if p.X != 300 || p.Y != 150 || p.IsFlipped {
		t.Errorf("unexpected piece after drag %+v", p)
	}
	if l.hub.Len() != 0 {
		t.Error("hub should be empty after release")
	}
}

func TestLayerDraggedPieceOnTop(t *testing.T) {
	l, pb := newTestLayer(t)
	l.mouseDown(pb.Pieces(), drag.Point{X: 100 + 10, Y: 200 + 10}, time.Now())
	// drop piece 0 onto piece 1
	l.move(drag.Mouse, drag.Point{X: 100 + 90, Y: 200 + 10})
	l.up(drag.Mouse)

	order := l.order(pb.Pieces())
	if order[len(order)-1].ID != 0 {
		t.Fatalf("piece 0 should paint last, got %d", order[len(order)-1].ID)
	}
	p, _ := l.hit(pb.Pieces(), drag.Point{X: 100 + 85, Y: 200 + 5})
	if p.ID != 0 {
		t.Errorf("topmost piece should win the hit test, got %d", p.ID)
	}
}

func TestLayerDoubleClickFlipsOddTimes(t *testing.T) {
	l, pb := newTestLayer(t)
	at := drag.Point{X: 100 + 170, Y: 200 + 10} // piece 2
	now := time.Now()
	l.mouseDown(pb.Pieces(), at, now)
	l.up(drag.Mouse)
	l.mouseDown(pb.Pieces(), at, now.Add(120*time.Millisecond))
	l.up(drag.Mouse)

	p, _ := pb.Piece(2)
	if !p.IsFlipped {
		t.Error("double click should leave the piece flipped")
	}
}

func TestLayerTouchDrag(t *testing.T) {
	l, pb := newTestLayer(t)
	at := drag.Point{X: 100 + 10, Y: 200 + 90} // piece 8
	if !l.touchStart(pb.Pieces(), 3, at) {
		t.Fatal("touch should land on piece 8")
	}
	if !l.move(drag.Touch(3), drag.Point{X: at.X + 50, Y: at.Y}) {
		t.Error("touch drag should consume the move")
	}
	if l.move(drag.Touch(4), drag.Point{X: 0, Y: 0}) {
		t.Error("other touches are not tracked")
	}
	if !l.swallowed(drag.Touch(3)) || l.swallowed(drag.Touch(4)) {
		t.Error("only the dragging touch should be swallowed")
	}
	l.up(drag.Touch(3))
	if l.swallowed(drag.Touch(3)) {
		t.Error("release should clear the swallowed touch")
	}
	p, _ := pb.Piece(8)
	if p.X != 50 || p.Y != 80 {
		t.Errorf("unexpected position (%v, %v)", p.X, p.Y)
	}
}

func TestLayerCloseDetaches(t *testing.T) {
	l, pb := newTestLayer(t)
	l.mouseDown(pb.Pieces(), drag.Point{X: 110, Y: 210}, time.Now())
	l.close()
	if l.hub.Len() != 0 || len(l.controllers) != 0 || len(l.consumed) != 0 {
		t.Error("close should detach everything")
	}
	before := pb.Pieces()
	l.move(drag.Mouse, drag.Point{X: 600, Y: 600})
	l.up(drag.Mouse)
	after := pb.Pieces()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("events after close must not change pieces")
		}
	}
}
