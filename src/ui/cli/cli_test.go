package cli

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib"
	"flipfit/src/puzzlelib/base"
)

func runScript(t *testing.T, script string) (*puzzlelib.PuzzleBuilder, string) {
	t.Helper()
	pb := puzzlelib.NewPuzzleBuilder(logx.NewNop(), puzzlelib.WithSeed(5))
	var out bytes.Buffer
	c := NewCLIWithIO(pb, strings.NewReader(script), &out, 800, 600)
	if err := c.RunLineMode(); err != nil {
		t.Fatal(err)
	}
	return pb, out.String()
}

func TestSessionSelectAndSolve(t *testing.T) {
	pb, out := runScript(t, "select 2\nsolve\nq\n")
	if th, ok := pb.Theme(); !ok || th.ID != "ocean" {
		t.Fatalf("expected ocean theme, got %+v", th)
	}
	for _, want := range []string{"Theme Selected!", "Let's play with Ocean Adventure!", "Puzzle Solved!", "Playing: Ocean Adventure"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	p, _ := pb.Piece(47)
	if p.X != 560 || p.Y != 400 {
		t.Errorf("piece 48 not solved: %+v", p)
	}
}

func TestMoveIsClamped(t *testing.T) {
	pb, _ := runScript(t, "select space\nmove 1 -50 9999\nq\n")
	p, _ := pb.Piece(0)
	if p.X != 0 || p.Y != 520 {
		t.Errorf("expected (0, 520), got (%v, %v)", p.X, p.Y)
	}
}

func TestFlipAndReset(t *testing.T) {
	pb, out := runScript(t, "select Forest Animals\nflip 3\nreset\n")
	if pb.Len() != 0 || pb.Started() {
		t.Error("reset should clear the game")
	}
	if !strings.Contains(out, "Puzzle Reset") {
		t.Error("missing reset notification")
	}
}

func TestFlipCommandTogglesPiece(t *testing.T) {
	pb, _ := runScript(t, "select 1\nflip 3\n")
	p, _ := pb.Piece(2)
	if !p.IsFlipped {
		t.Error("piece 3 should be flipped")
	}
}

func TestBadCommands(t *testing.T) {
	_, out := runScript(t, "select 9\nflip 1\nmove 1 a b\ndance\n")
	for _, want := range []string{`unknown theme "9"`, "no piece 1", `unknown command "dance"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestRenderBoardMarksFlippedAndStacks(t *testing.T) {
	pieces := []base.Piece{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 5, IsFlipped: true},
		{ID: 11, X: 720, Y: 520},
	}
	s := RenderBoard(pieces, 800, 600)
	if !strings.Contains(s, "2+") {
		t.Error("stacked cell should show the top piece with a plus")
	}
	if !strings.Contains(s, "12") {
		t.Error("piece 12 missing from render")
	}
	if RenderBoard(nil, 0, 0) != "" {
		t.Error("empty board size should render nothing")
	}
}

func TestMoveRejectsNaN(t *testing.T) {
	pb, out := runScript(t, "select 1\nmove 1 NaN nan\nmove 1 10 NaN\nq\n")
	if !strings.Contains(out, "bad position NaN nan") {
		t.Error("NaN position should be reported")
	}
	p, _ := pb.Piece(0)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || p.X == 10 {
		t.Errorf("NaN move should leave the piece alone, got (%v, %v)", p.X, p.Y)
	}
}
