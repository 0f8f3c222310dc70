package puzzlelib

import (
	"math/rand"
	"time"

	"flipfit/src/logx"
	"flipfit/src/puzzlelib/base"
	"flipfit/src/puzzlelib/board"

	"github.com/google/uuid"
)

// PuzzleBuilder owns the game: the selected theme, the piece list and the
// started flag. Every mutation replaces the whole piece list.
type PuzzleBuilder struct {
	theme   *base.Theme
	pieces  []base.Piece
	started bool
	session string

	rnd    *rand.Rand
	notify base.Notifier
	logger logx.Logger
}

type Option func(pb *PuzzleBuilder)

func WithSeed(seed int64) Option {
	return func(pb *PuzzleBuilder) {
		pb.rnd = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rnd *rand.Rand) Option {
	return func(pb *PuzzleBuilder) {
		pb.rnd = rnd
	}
}

func WithNotifier(n base.Notifier) Option {
	return func(pb *PuzzleBuilder) {
		pb.notify = n
	}
}

func NewPuzzleBuilder(logger logx.Logger, opts ...Option) *PuzzleBuilder {
	if logger == nil {
		logger = logx.NewNop()
	}
	pb := &PuzzleBuilder{pieces: []base.Piece{}, logger: logger}
	for _, o := range opts {
		o(pb)
	}
	if pb.rnd == nil {
		pb.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return pb
}

// SetNotifier swaps the notification sink, nil drops notifications
func (pb *PuzzleBuilder) SetNotifier(n base.Notifier) {
	pb.notify = n
}

// ---- Bulk operations ----

func (pb *PuzzleBuilder) SelectTheme(t base.Theme) {
	pb.session = uuid.NewString()
	pb.logger.With("session", pb.session).Infof("select theme %q", t.ID)
	held := t.Clone()
	pb.theme = &held
	pb.pieces = base.NewPieces(t, pb.rnd)
	pb.started = true
	pb.emit(base.NotifyThemeSelected, t.Name)
}

func (pb *PuzzleBuilder) Shuffle() {
	pb.logger.With("session", pb.session).Debug("shuffle pieces")
	pb.transform(func(p base.Piece) base.Piece {
		p.X, p.Y = base.Scatter(pb.rnd)
		p.IsFlipped = false
		return p
	})
	pb.emit(base.NotifyShuffled, "")
}

func (pb *PuzzleBuilder) FlipAll() {
	pb.logger.With("session", pb.session).Debug("flip all pieces")
	pb.transform(func(p base.Piece) base.Piece {
		p.IsFlipped = !p.IsFlipped
		return p
	})
	pb.emit(base.NotifyFlippedAll, "")
}

func (pb *PuzzleBuilder) Solve() {
	pb.logger.With("session", pb.session).Infof("solve %d pieces", len(pb.pieces))
	pb.transform(func(p base.Piece) base.Piece {
		p.X, p.Y = p.CorrectX, p.CorrectY
		p.IsFlipped = false
		return p
	})
	pb.emit(base.NotifySolved, "")
}

func (pb *PuzzleBuilder) Reset() {
	pb.logger.With("session", pb.session).Info("reset puzzle")
	pb.theme = nil
	pb.pieces = []base.Piece{}
	pb.started = false
	pb.session = ""
	pb.emit(base.NotifyReset, "")
}

// UpdatePieces is the single write gate used by the board relay
func (pb *PuzzleBuilder) UpdatePieces(fn func(prev []base.Piece) []base.Piece) {
	next := fn(pb.Pieces())
	if next == nil {
		next = []base.Piece{}
	}
	pb.pieces = next
}

func (pb *PuzzleBuilder) transform(fn func(p base.Piece) base.Piece) {
	pb.UpdatePieces(func(prev []base.Piece) []base.Piece {
		for i := range prev {
			prev[i] = fn(prev[i])
		}
		return prev
	})
}

func (pb *PuzzleBuilder) emit(kind base.NotifyKind, arg string) {
	if pb.notify == nil {
		return
	}
	pb.notify(base.NewNotification(kind, arg))
}

// ---- Accessors ----

// Pieces returns a copy of the current list
func (pb *PuzzleBuilder) Pieces() []base.Piece {
	return append([]base.Piece{}, pb.pieces...)
}

func (pb *PuzzleBuilder) Piece(id int) (base.Piece, bool) {
	for _, p := range pb.pieces {
		if p.ID == id {
			return p, true
		}
	}
	return base.Piece{}, false
}

func (pb *PuzzleBuilder) Len() int {
	return len(pb.pieces)
}

func (pb *PuzzleBuilder) Theme() (base.Theme, bool) {
	if pb.theme == nil {
		return base.Theme{}, false
	}
	return pb.theme.Clone(), true
}

func (pb *PuzzleBuilder) Started() bool {
	return pb.started
}

func (pb *PuzzleBuilder) Session() string {
	return pb.session
}

func (pb *PuzzleBuilder) View() base.ViewType {
	if !pb.started || pb.theme == nil {
		return base.ViewThemeSelect
	}
	return base.ViewBoard
}

// Board returns a relay bound to this builder's piece list
func (pb *PuzzleBuilder) Board() *board.Board {
	return board.NewBoard(pb)
}
