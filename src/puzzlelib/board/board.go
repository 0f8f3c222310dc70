package board

import "flipfit/src/puzzlelib/base"

// Updater is the single write gate for the piece list.
// fn receives the current list and returns its replacement.
type Updater interface {
	UpdatePieces(fn func(prev []base.Piece) []base.Piece)
	Pieces() []base.Piece
}

// Board relays piece moves and flips into the shared list, it holds no state of its own
type Board struct {
	store Updater
}

func NewBoard(store Updater) *Board {
	return &Board{store: store}
}

func (b *Board) OnMove(id int, x, y float64) {
	b.store.UpdatePieces(func(prev []base.Piece) []base.Piece {
		return Move(prev, id, x, y)
	})
}

func (b *Board) OnFlip(id int) {
	b.store.UpdatePieces(func(prev []base.Piece) []base.Piece {
		return Flip(prev, id)
	})
}

func (b *Board) Pieces() []base.Piece {
	return b.store.Pieces()
}

// Empty reports whether the placeholder should be shown
func (b *Board) Empty() bool {
	return len(b.store.Pieces()) == 0
}

// Move returns a copy of pieces with id placed at (x, y)
func Move(pieces []base.Piece, id int, x, y float64) []base.Piece {
	return mapPieces(pieces, func(p base.Piece) base.Piece {
		if p.ID == id {
			p.X, p.Y = x, y
		}
		return p
	})
}

// Flip returns a copy of pieces with id turned over
func Flip(pieces []base.Piece, id int) []base.Piece {
	return mapPieces(pieces, func(p base.Piece) base.Piece {
		if p.ID == id {
			p.IsFlipped = !p.IsFlipped
		}
		return p
	})
}

func mapPieces(pieces []base.Piece, fn func(p base.Piece) base.Piece) []base.Piece {
	out := make([]base.Piece, len(pieces))
	for i, p := range pieces {
		out[i] = fn(p)
	}
	return out
}
