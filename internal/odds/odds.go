// Package odds answers the questions of the probability panel: how many
// copies of a tile are still unseen, and how likely the next draw is to be
// one of them.
package odds

import (
	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/tile"
)

var (
	ErrInvalidTarget   = errors.New("invalid target tile")
	ErrCountOutOfRange = errors.New("visible tiles exceed deck copies")
)

// HintLevel grades a remaining count for the teaching message
type HintLevel int

const (
	Impossible HintLevel = iota // every copy has been seen
	Luck                        // a single copy left
	Good                        // several copies left
)

// Line is one row of the remaining-tiles board
type Line struct {
	Face      tile.Face
	Remaining int
	Total     int
}

// Total returns how many copies of target a full deck holds
func Total(target tile.Face) int {
	return deck.Copies(target)
}

// Visible counts tiles matching target across the given piles
func Visible(target tile.Face, piles ...[]tile.Tile) int {
	n := 0
	for _, pile := range piles {
		n += tile.Count(pile, target)
	}
	return n
}

// Remaining returns the copies of target that have not been seen in the
// discard pile or the hand. The drawn tile counts as part of the hand.
func Remaining(discards, hand []tile.Tile, target tile.Face) (int, error) {
	total := Total(target)
	if total == 0 {
		return 0, errors.Wrapf(ErrInvalidTarget, "%v", target)
	}

	remaining := total - Visible(target, discards, hand)
	if remaining < 0 || remaining > total {
		return 0, errors.Wrapf(ErrCountOutOfRange, "%v: %d of %d remaining", target, remaining, total)
	}
	return remaining, nil
}

// Chance returns the probability that the next draw is target, given that
// every tile outside discards and hand is equally likely to come next.
func Chance(discards, hand []tile.Tile, target tile.Face) (float64, error) {
	remaining, err := Remaining(discards, hand, target)
	if err != nil {
		return 0, err
	}
	unseen := deck.Size - len(discards) - len(hand)
	if unseen <= 0 {
		return 0, nil
	}
	return float64(remaining) / float64(unseen), nil
}

// Hint grades a remaining count
func Hint(remaining int) HintLevel {
	switch {
	case remaining <= 0:
		return Impossible
	case remaining == 1:
		return Luck
	default:
		return Good
	}
}

// DefaultTarget picks the face the panel shows when the player has not chosen
// one: the first tile of the hand, or circle 1 for an empty hand.
func DefaultTarget(hand []tile.Tile) tile.Face {
	if len(hand) == 0 {
		return tile.CircleFace(1)
	}
	return hand[0].Face()
}

// Board lists the remaining count of every face in canonical order
func Board(discards, hand []tile.Tile) ([]Line, error) {
	faces := tile.Faces()
	lines := make([]Line, 0, len(faces))
	for _, f := range faces {
		n, err := Remaining(discards, hand, f)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Face: f, Remaining: n, Total: Total(f)})
	}
	return lines, nil
}
