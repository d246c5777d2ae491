// Package session runs a single-player game: it deals, applies discards and
// win declarations, and detects the end of the game.
//
// A Session is a value. Every transition returns a new Session and leaves its
// receiver untouched, so a caller holds the current game and replaces it
// wholesale after each action. Actions that are not legal in the current
// state return the receiver unchanged; CanDiscard and CanDeclareWin explain
// why.
package session

import (
	"github.com/pborman/uuid"
	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/odds"
	"github.com/vicquana/majian-game-1/internal/rules"
	"github.com/vicquana/majian-game-1/internal/tile"
)

// HandSize is the size of a complete hand, held tiles plus the drawn tile
const HandSize = rules.HandSize

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotDealt    = errors.New("game has not been dealt")
	ErrCannotWin   = errors.New("hand is not a winning hand")
	ErrBadSelector = errors.New("no such tile to discard")
)

// State is a step of the game
type State int

const (
	Dealing State = iota
	AwaitingDiscard
	Won
	Exhausted
)

func (s State) String() string {
	switch s {
	case Dealing:
		return "dealing"
	case AwaitingDiscard:
		return "awaiting-discard"
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Notice tells the player what just happened
type Notice int

const (
	NoticeNone Notice = iota
	NoticeStart
	NoticeStartCanWin
	NoticeDiscarded
	NoticeWinChance
	NoticeExhausted
	NoticeWon
)

// Selector picks the tile to discard: a hand index or Drawn
type Selector int

// Drawn selects the tile that was just drawn
const Drawn Selector = -1

// HandIndex selects the i-th tile of the sorted hand
func HandIndex(i int) Selector { return Selector(i) }

// Dealer hands out freshly shuffled decks
type Dealer interface {
	Deal() []tile.Tile
}

// Session is the whole state of one game
type Session struct {
	id     string
	dealer Dealer

	deck     []tile.Tile
	hand     []tile.Tile
	drawn    tile.Tile
	hasDrawn bool
	discards []tile.Tile

	state       State
	canWin      bool
	result      rules.Result
	notice      Notice
	lastDiscard tile.Tile
}

// New deals a new game from d
func New(d Dealer) Session {
	s := Session{id: uuid.New(), dealer: d, state: Dealing}
	return s.start(d.Deal())
}

// start draws the opening hand and the first drawn tile
func (s Session) start(tiles []tile.Tile) Session {
	if len(tiles) < HandSize {
		s.deck = tile.Clone(tiles)
		s.state = Exhausted
		s.notice = NoticeExhausted
		return s
	}

	s.hand = tile.Clone(tiles[:HandSize-1])
	tile.Sort(s.hand)
	s.drawn, s.hasDrawn = tiles[HandSize-1], true
	s.deck = tile.Clone(tiles[HandSize:])
	s.discards = nil
	s.result = rules.Result{}
	s.state = AwaitingDiscard

	s.canWin = rules.IsWin(s.full())
	if s.canWin {
		s.notice = NoticeStartCanWin
	} else {
		s.notice = NoticeStart
	}
	return s
}

// Reset deals a brand new game, whatever the current state
func (s Session) Reset() Session {
	if s.dealer == nil {
		return s
	}
	return New(s.dealer)
}

// CanDiscard reports why Discard(sel) would be ignored, or nil if it applies
func (s Session) CanDiscard(sel Selector) error {
	switch s.state {
	case Won, Exhausted:
		return ErrGameOver
	case Dealing:
		return ErrNotDealt
	}
	if sel == Drawn {
		if !s.hasDrawn {
			return ErrBadSelector
		}
		return nil
	}
	if int(sel) < 0 || int(sel) >= len(s.hand) {
		return errors.Wrapf(ErrBadSelector, "index %d", int(sel))
	}
	return nil
}

// Discard throws away the selected tile and draws the next one
func (s Session) Discard(sel Selector) Session {
	if s.CanDiscard(sel) != nil {
		return s
	}

	hand := tile.Clone(s.hand)
	var discarded tile.Tile
	if sel == Drawn {
		discarded = s.drawn
	} else {
		i := int(sel)
		discarded = hand[i]
		hand = append(hand[:i], hand[i+1:]...)
		hand = append(hand, s.drawn)
	}
	tile.Sort(hand)

	discards := make([]tile.Tile, len(s.discards), len(s.discards)+1)
	copy(discards, s.discards)

	s.hand = hand
	s.discards = append(discards, discarded)
	s.lastDiscard = discarded
	s.drawn, s.hasDrawn = tile.Tile{}, false

	if len(s.deck) == 0 {
		s.state = Exhausted
		s.canWin = false
		s.notice = NoticeExhausted
		return s
	}

	s.drawn, s.hasDrawn = s.deck[0], true
	s.deck = s.deck[1:]
	s.canWin = rules.IsWin(s.full())
	if s.canWin {
		s.notice = NoticeWinChance
	} else {
		s.notice = NoticeDiscarded
	}
	return s
}

// CanDeclareWin reports why DeclareWin would be ignored, or nil if it applies
func (s Session) CanDeclareWin() error {
	switch s.state {
	case Won, Exhausted:
		return ErrGameOver
	case Dealing:
		return ErrNotDealt
	}
	if !s.canWin {
		return ErrCannotWin
	}
	return nil
}

// DeclareWin ends the game with the current winning hand
func (s Session) DeclareWin() Session {
	if s.CanDeclareWin() != nil {
		return s
	}

	hand := s.full()
	tile.Sort(hand)

	s.hand = hand
	s.drawn, s.hasDrawn = tile.Tile{}, false
	s.result = rules.Evaluate(hand)
	s.canWin = false
	s.state = Won
	s.notice = NoticeWon
	return s
}

// Remaining counts the unseen copies of target, treating the drawn tile as
// part of the hand.
func (s Session) Remaining(target tile.Face) (int, error) {
	return odds.Remaining(s.discards, s.full(), target)
}

// full returns the held tiles plus the drawn tile, in a new slice
func (s Session) full() []tile.Tile {
	out := make([]tile.Tile, 0, len(s.hand)+1)
	out = append(out, s.hand...)
	if s.hasDrawn {
		out = append(out, s.drawn)
	}
	return out
}

func (s Session) ID() string { return s.id }
func (s Session) State() State { return s.state }
func (s Session) IsOver() bool { return s.state == Won || s.state == Exhausted }
func (s Session) CanWin() bool { return s.canWin }
func (s Session) Result() rules.Result { return s.result }
func (s Session) Notice() Notice { return s.notice }
func (s Session) DeckCount() int { return len(s.deck) }

// Hand returns a copy of the held tiles in canonical order
func (s Session) Hand() []tile.Tile { return tile.Clone(s.hand) }

// Visible returns the held tiles and the drawn tile
func (s Session) Visible() []tile.Tile { return s.full() }

// Discards returns a copy of the discard pile, oldest first
func (s Session) Discards() []tile.Tile { return tile.Clone(s.discards) }

// Drawn returns the tile waiting for a decision, if any
func (s Session) Drawn() (tile.Tile, bool) { return s.drawn, s.hasDrawn }

// LastDiscard returns the most recently discarded tile
func (s Session) LastDiscard() (tile.Tile, bool) {
	return s.lastDiscard, len(s.discards) > 0
}

// TileCount is the number of tiles across deck, hand, drawn tile and
// discard pile. It never changes during a game.
func (s Session) TileCount() int {
	n := len(s.deck) + len(s.hand) + len(s.discards)
	if s.hasDrawn {
		n++
	}
	return n
}
