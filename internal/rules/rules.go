package rules

import (
	"sort"

	"github.com/vicquana/majian-game-1/internal/tile"
)

// HandSize is the number of tiles in a complete hand
const HandSize = 5

const (
	tripletSize = 3
	pairSize    = 2
)

// Pattern classifies a winning hand
type Pattern int

const (
	NoWin Pattern = iota
	TripletPair
	TripletWildPair
	WildTripletPair
	WildTripletWildPair
)

func (p Pattern) String() string {
	switch p {
	case TripletPair:
		return "triplet + pair"
	case TripletWildPair:
		return "triplet + wildcard pair"
	case WildTripletPair:
		return "wildcard triplet + pair"
	case WildTripletWildPair:
		return "wildcard triplet + wildcard pair"
	default:
		return ""
	}
}

// Result is the outcome of evaluating a hand
type Result struct {
	IsWin   bool
	Pattern Pattern
	Reason  string
}

type group struct {
	face  tile.Face
	count int
}

// Evaluate reports whether tiles form one triplet plus one pair. Wild tiles
// may complete either group. The result only depends on the multiset of
// faces, never on the order of tiles.
func Evaluate(tiles []tile.Tile) Result {
	if len(tiles) != HandSize {
		return Result{}
	}

	wilds := 0
	counts := make(map[tile.Face]int)
	for _, t := range tiles {
		f := t.Face()
		if f.IsWild() {
			wilds++
			continue
		}
		counts[f]++
	}

	groups := make([]group, 0, len(counts))
	for f, n := range counts {
		groups = append(groups, group{face: f, count: n})
	}
	// largest group first; it is the preferred triplet
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return tile.Less(tile.Tile{Kind: groups[i].face.Kind, Rank: groups[i].face.Rank},
			tile.Tile{Kind: groups[j].face.Kind, Rank: groups[j].face.Rank})
	})

	var triplet, pair int
	switch len(groups) {
	case 0:
		// only wilds
	case 1:
		triplet = groups[0].count
		if triplet > tripletSize {
			return Result{}
		}
	case 2:
		triplet, pair = groups[0].count, groups[1].count
		if triplet > tripletSize || pair > pairSize {
			return Result{}
		}
	default:
		return Result{}
	}

	if (tripletSize-triplet)+(pairSize-pair) != wilds {
		return Result{}
	}

	p := classify(triplet < tripletSize, pair < pairSize)
	return Result{IsWin: true, Pattern: p, Reason: p.String()}
}

// IsWin is a shorthand for Evaluate(tiles).IsWin
func IsWin(tiles []tile.Tile) bool {
	return Evaluate(tiles).IsWin
}

func classify(wildTriplet, wildPair bool) Pattern {
	switch {
	case wildTriplet && wildPair:
		return WildTripletWildPair
	case wildTriplet:
		return WildTripletPair
	case wildPair:
		return TripletWildPair
	default:
		return TripletPair
	}
}
