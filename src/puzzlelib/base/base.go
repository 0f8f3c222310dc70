package base

import (
	"fmt"
	"math/rand"
)

// board geometry (8x6 grid of 80px tiles)
const (
	TileSize   = 80
	Cols       = 8
	Rows       = 6
	PieceCount = Cols * Rows
)

// initial scatter region: [100, 700) x [100, 500)
const (
	ScatterX float64 = 100
	ScatterW float64 = 600
	ScatterY float64 = 100
	ScatterH float64 = 400
)

type Piece struct {
	ID         int
	FrontImage string
	BackImage  string
	X          float64
	Y          float64
	IsFlipped  bool
	CorrectX   float64
	CorrectY   float64
}

func (p Piece) String() string {
	face := "front"
	if p.IsFlipped {
		face = "back"
	}
	return fmt.Sprintf("piece #%d at (%.0f, %.0f) %s", p.ID, p.X, p.Y, face)
}

type Theme struct {
	ID        string
	Name      string
	Pieces    []string // front image refs, one per tile
	BackImage string
	Preview   string
}

// Clone returns a copy that shares no image list with t
func (t Theme) Clone() Theme {
	t.Pieces = append([]string(nil), t.Pieces...)
	return t
}

// FrontImage returns the front image for tile i, falling back to the first one
func (t Theme) FrontImage(i int) string {
	if i >= 0 && i < len(t.Pieces) && t.Pieces[i] != "" {
		return t.Pieces[i]
	}
	if len(t.Pieces) == 0 {
		return ""
	}
	return t.Pieces[0]
}

// CorrectPosition is the solved top-left corner of tile i
func CorrectPosition(i int) (float64, float64) {
	return float64((i % Cols) * TileSize), float64((i / Cols) * TileSize)
}

// Scatter picks a uniform random position in the scatter region
func Scatter(rnd *rand.Rand) (float64, float64) {
	return rnd.Float64()*ScatterW + ScatterX, rnd.Float64()*ScatterH + ScatterY
}

func NewPieces(t Theme, rnd *rand.Rand) []Piece {
	pieces := make([]Piece, 0, PieceCount)
	for i := 0; i < PieceCount; i++ {
		cx, cy := CorrectPosition(i)
		x, y := Scatter(rnd)
		pieces = append(pieces, Piece{
			ID:         i,
			FrontImage: t.FrontImage(i),
			BackImage:  t.BackImage,
			X:          x,
			Y:          y,
			IsFlipped:  false,
			CorrectX:   cx,
			CorrectY:   cy,
		})
	}
	return pieces
}

// ---- Views ----

type ViewType uint8

const (
	ViewThemeSelect ViewType = iota
	ViewBoard
)

func (v ViewType) String() string {
	switch v {
	case ViewThemeSelect:
		return "theme-select"
	case ViewBoard:
		return "board"
	default:
	}
	return "unknown"
}

// ---- Notifications ----

type NotifyKind uint8

const (
	NotifyThemeSelected NotifyKind = iota
	NotifyShuffled
	NotifyFlippedAll
	NotifySolved
	NotifyReset
)

func (k NotifyKind) String() string {
	switch k {
	case NotifyThemeSelected:
		return "theme"
	case NotifyShuffled:
		return "shuffle"
	case NotifyFlippedAll:
		return "flipall"
	case NotifySolved:
		return "solved"
	case NotifyReset:
		return "reset"
	default:
	}
	return "unknown"
}

// Notification is advisory only, dropping it never affects game state
type Notification struct {
	Kind        NotifyKind
	Title       string
	Description string
	Arg         string // theme name for NotifyThemeSelected
}

func NewNotification(kind NotifyKind, arg string) Notification {
	n := Notification{Kind: kind, Arg: arg}
	switch kind {
	case NotifyThemeSelected:
		n.Title = "Theme Selected!"
		n.Description = fmt.Sprintf("Let's play with %s!", arg)
	case NotifyShuffled:
		n.Title = "Pieces Shuffled!"
		n.Description = "Ready for a new challenge!"
	case NotifyFlippedAll:
		n.Title = "All Pieces Flipped!"
		n.Description = "What do you see now?"
	case NotifySolved:
		n.Title = "Puzzle Solved!"
		n.Description = "Amazing work! Want to try again?"
	case NotifyReset:
		n.Title = "Puzzle Reset"
		n.Description = "Choose a new theme to start again!"
	}
	return n
}

type Notifier func(n Notification)
