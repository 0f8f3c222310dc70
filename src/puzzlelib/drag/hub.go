package drag

// Source tells mouse and touch pointers apart
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceTouch:
		return "touch"
	default:
	}
	return "unknown"
}

// Pointer identifies one input pointer: the mouse (ID 0) or a touch id
type Pointer struct {
	Source Source
	ID     int
}

var Mouse = Pointer{Source: SourceMouse}

func Touch(id int) Pointer {
	return Pointer{Source: SourceTouch, ID: id}
}

type Point struct {
	X, Y float64
}

// Listener receives window-wide pointer events while attached to a Hub.
// PointerMove returns true when the event was consumed and the default
// handling for it should be skipped.
type Listener interface {
	PointerMove(p Pointer, at Point) bool
	PointerUp(p Pointer)
}

type hubEntry struct {
	id uint32
	l  Listener
}

// Hub is the window-wide pointer listener registry. The front-end feeds it
// every move and release; listeners attach for the lifetime of a gesture.
type Hub struct {
	entries []hubEntry
	nextID  uint32
}

func NewHub() *Hub {
	return &Hub{}
}

// Handle detaches a listener; Remove is safe to call more than once
type Handle struct {
	id  uint32
	hub *Hub
}

func (h Handle) Remove() {
	if h.hub == nil {
		return
	}
	h.hub.remove(h.id)
}

func (h *Hub) Attach(l Listener) Handle {
	h.nextID++
	id := h.nextID
	h.entries = append(h.entries, hubEntry{id: id, l: l})
	return Handle{id: id, hub: h}
}

func (h *Hub) remove(id uint32) {
	for i := range h.entries {
		if h.entries[i].id == id {
			copy(h.entries[i:], h.entries[i+1:])
			h.entries[len(h.entries)-1] = hubEntry{}
			h.entries = h.entries[:len(h.entries)-1]
			return
		}
	}
}

// Len is the number of attached listeners
func (h *Hub) Len() int {
	return len(h.entries)
}

// Move dispatches a pointer move, returns true if any listener consumed it
func (h *Hub) Move(p Pointer, at Point) bool {
	consumed := false
	for _, e := range h.snapshot() {
		if e.l.PointerMove(p, at) {
			consumed = true
		}
	}
	return consumed
}

// Up dispatches a pointer release
func (h *Hub) Up(p Pointer) {
	for _, e := range h.snapshot() {
		e.l.PointerUp(p)
	}
}

// listeners detach themselves from inside callbacks
func (h *Hub) snapshot() []hubEntry {
	if len(h.entries) == 0 {
		return nil
	}
	return append([]hubEntry(nil), h.entries...)
}
