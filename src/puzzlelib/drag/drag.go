package drag

import (
	"math"
	"time"

	"flipfit/src/puzzlelib/base"
)

const (
	DefaultDeadZone     = 4.0 // pixels of travel that still count as a click
	DefaultDoubleWindow = 400 * time.Millisecond
)

type State uint8

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Callbacks receives the intents produced by a controller
type Callbacks interface {
	OnMove(id int, x, y float64)
	OnFlip(id int)
}

// Rect is the board area in screen coordinates
type Rect struct {
	X, Y, W, H float64
}

// Frame reports the current board rectangle, read on every move
type Frame interface {
	Bounds() Rect
}

type FrameFunc func() Rect

func (f FrameFunc) Bounds() Rect {
	return f()
}

// Clamp limits v to [0, hi]; a negative hi or a NaN v pins to 0
func Clamp(v, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(hi, v))
}

// ClampToBoard converts a pointer position into a clamped board-local tile position
func ClampToBoard(at, offset Point, board Rect) (float64, float64) {
	x := at.X - board.X - offset.X
	y := at.Y - board.Y - offset.Y
	return Clamp(x, board.W-base.TileSize), Clamp(y, board.H-base.TileSize)
}

// Controller is the per-piece drag state machine.
// While a gesture is active it is attached to the hub so that moves outside
// the piece are still tracked; it detaches on release or Close.
type Controller struct {
	id    int
	hub   *Hub
	frame Frame
	cb    Callbacks

	state    State
	pointer  Pointer
	offset   Point // pointer - piece top-left at drag start
	start    Point
	moved    bool
	deadZone float64

	tracking bool
	handle   Handle
}

func NewController(id int, hub *Hub, frame Frame, cb Callbacks) *Controller {
	return &Controller{id: id, hub: hub, frame: frame, cb: cb, deadZone: DefaultDeadZone}
}

func (c *Controller) ID() int {
	return c.id
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

// Attached reports whether the controller currently listens on the hub
func (c *Controller) Attached() bool {
	return c.tracking
}

// PointerDown handles a mouse press on the piece. pieceTopLeft is in screen
// coordinates, clicks is the consecutive press count.
func (c *Controller) PointerDown(at, pieceTopLeft Point, clicks int) {
	if c.tracking {
		return
	}
	if clicks == 2 {
		// double-click flips and never starts a drag; the release still
		// produces a click like a browser would
		c.cb.OnFlip(c.id)
		c.begin(Mouse, at, pieceTopLeft, Idle)
		return
	}
	c.begin(Mouse, at, pieceTopLeft, Dragging)
}

// TouchStart handles a touch landing on the piece
func (c *Controller) TouchStart(p Pointer, at, pieceTopLeft Point) {
	if c.tracking {
		return
	}
	c.begin(p, at, pieceTopLeft, Dragging)
}

func (c *Controller) begin(p Pointer, at, pieceTopLeft Point, st State) {
	c.state = st
	c.pointer = p
	c.start = at
	c.moved = false
	c.offset = Point{X: at.X - pieceTopLeft.X, Y: at.Y - pieceTopLeft.Y}
	c.handle = c.hub.Attach(c)
	c.tracking = true
}

func (c *Controller) PointerMove(p Pointer, at Point) bool {
	if !c.tracking || p != c.pointer {
		return false
	}
	if math.Hypot(at.X-c.start.X, at.Y-c.start.Y) > c.deadZone {
		c.moved = true
	}
	if c.state != Dragging {
		return false
	}
	x, y := ClampToBoard(at, c.offset, c.frame.Bounds())
	c.cb.OnMove(c.id, x, y)
	// touch drags suppress scrolling and other default gestures
	return p.Source == SourceTouch
}

func (c *Controller) PointerUp(p Pointer) {
	if !c.tracking || p != c.pointer {
		return
	}
	click := !c.moved
	c.end()
	if click {
		c.cb.OnFlip(c.id)
	}
}

// Close ends any gesture without emitting intents, used on teardown
func (c *Controller) Close() {
	c.end()
}

func (c *Controller) end() {
	if c.tracking {
		c.handle.Remove()
		c.handle = Handle{}
		c.tracking = false
	}
	c.state = Idle
	c.moved = false
}

// ClickCounter derives the consecutive-press count from timing and distance
type ClickCounter struct {
	Window time.Duration
	Slop   float64

	count int
	last  time.Time
	lastP Point
}

func NewClickCounter(window time.Duration) *ClickCounter {
	if window <= 0 {
		window = DefaultDoubleWindow
	}
	return &ClickCounter{Window: window, Slop: DefaultDeadZone}
}

func (cc *ClickCounter) Press(at Point, now time.Time) int {
	if cc.count > 0 && now.Sub(cc.last) <= cc.Window &&
		math.Hypot(at.X-cc.lastP.X, at.Y-cc.lastP.Y) <= cc.Slop {
		cc.count++
	} else {
		cc.count = 1
	}
	cc.last = now
	cc.lastP = at
	return cc.count
}

func (cc *ClickCounter) Reset() {
	cc.count = 0
}
