package gdraw

import (
	"time"

	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/board"
	"flipfit/src/puzzlelib/drag"
)

// pieceLayer owns one drag controller per rendered piece and routes pointer
// events to them. It never writes pieces itself, the board relay does.
type pieceLayer struct {
	hub         *drag.Hub
	board       *board.Board
	frame       drag.Rect
	controllers map[int]*drag.Controller
	clicks      *drag.ClickCounter
	top         int // id drawn above the others, -1 for none
	// pointers whose moves drove a drag; their release must not act as a tap
	consumed map[drag.Pointer]bool
}

func newPieceLayer(b *board.Board, frame drag.Rect, doubleClick time.Duration) *pieceLayer {
	return &pieceLayer{
		hub:         drag.NewHub(),
		board:       b,
		frame:       frame,
		controllers: make(map[int]*drag.Controller),
		clicks:      drag.NewClickCounter(doubleClick),
		top:         -1,
		consumed:    make(map[drag.Pointer]bool),
	}
}

func (l *pieceLayer) bounds() drag.Rect {
	return l.frame
}

// sync mounts controllers for new pieces and tears down the ones whose piece is gone
func (l *pieceLayer) sync(pieces []base.Piece) {
	alive := make(map[int]bool, len(pieces))
	for _, p := range pieces {
		alive[p.ID] = true
		if _, ok := l.controllers[p.ID]; !ok {
			l.controllers[p.ID] = drag.NewController(p.ID, l.hub, drag.FrameFunc(l.bounds), l.board)
		}
	}
	for id, c := range l.controllers {
		if !alive[id] {
			c.Close()
			delete(l.controllers, id)
		}
	}
	if !alive[l.top] {
		l.top = -1
	}
}

// order returns pieces in paint order, the top piece last
func (l *pieceLayer) order(pieces []base.Piece) []base.Piece {
	out := make([]base.Piece, 0, len(pieces))
	var top *base.Piece
	for i := range pieces {
		if pieces[i].ID == l.top {
			top = &pieces[i]
			continue
		}
		out = append(out, pieces[i])
	}
	if top != nil {
		out = append(out, *top)
	}
	return out
}

// hit finds the topmost piece under a screen point
func (l *pieceLayer) hit(pieces []base.Piece, at drag.Point) (base.Piece, bool) {
	painted := l.order(pieces)
	for i := len(painted) - 1; i >= 0; i-- {
		p := painted[i]
		x, y := l.frame.X+p.X, l.frame.Y+p.Y
		if at.X >= x && at.X < x+base.TileSize && at.Y >= y && at.Y < y+base.TileSize {
			return p, true
		}
	}
	return base.Piece{}, false
}

func (l *pieceLayer) topLeft(p base.Piece) drag.Point {
	return drag.Point{X: l.frame.X + p.X, Y: l.frame.Y + p.Y}
}

// mouseDown reports whether a piece took the press
func (l *pieceLayer) mouseDown(pieces []base.Piece, at drag.Point, now time.Time) bool {
	p, ok := l.hit(pieces, at)
	if !ok {
		l.clicks.Reset()
		return false
	}
	c := l.controllers[p.ID]
	if c == nil {
		return false
	}
	l.top = p.ID
	c.PointerDown(at, l.topLeft(p), l.clicks.Press(at, now))
	return true
}

func (l *pieceLayer) touchStart(pieces []base.Piece, id int, at drag.Point) bool {
	p, ok := l.hit(pieces, at)
	if !ok {
		return false
	}
	c := l.controllers[p.ID]
	if c == nil {
		return false
	}
	l.top = p.ID
	c.TouchStart(drag.Touch(id), at, l.topLeft(p))
	return true
}

func (l *pieceLayer) move(p drag.Pointer, at drag.Point) bool {
	consumed := l.hub.Move(p, at)
	if consumed {
		l.consumed[p] = true
	}
	return consumed
}

// swallowed reports whether p has driven a drag since it went down
func (l *pieceLayer) swallowed(p drag.Pointer) bool {
	return l.consumed[p]
}

func (l *pieceLayer) up(p drag.Pointer) {
	l.hub.Up(p)
	delete(l.consumed, p)
}

// dragging returns the id of the piece currently following a pointer
func (l *pieceLayer) dragging() (int, bool) {
	for id, c := range l.controllers {
		if c.Dragging() {
			return id, true
		}
	}
	return -1, false
}

// close detaches every controller, no intents are emitted
func (l *pieceLayer) close() {
	for id, c := range l.controllers {
		c.Close()
		delete(l.controllers, id)
	}
	l.top = -1
	l.consumed = make(map[drag.Pointer]bool)
}
