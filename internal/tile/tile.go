package tile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind is the family a tile belongs to
type Kind int

const (
	Circle Kind = iota + 1
	Dragon
	Universal
)

// Rank sentinels for the kinds that have no number
const (
	DragonRank    = 10
	UniversalRank = 0
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Dragon:
		return "dragon"
	case Universal:
		return "universal"
	default:
		return "unknown"
	}
}

// Face is the game-logic identity of a tile. Two tiles with the same Face are
// interchangeable for counting and matching. A Face is either wild (the
// universal tile) or concrete.
type Face struct {
	Kind Kind
	Rank int
}

// CircleFace returns the face of a numbered circle tile
func CircleFace(rank int) Face { return Face{Kind: Circle, Rank: rank} }

// DragonFace is the face shared by the four red dragons
var DragonFace = Face{Kind: Dragon, Rank: DragonRank}

// WildFace is the face of the universal tile
var WildFace = Face{Kind: Universal, Rank: UniversalRank}

// IsWild reports whether the face may stand in for any concrete face.
func (f Face) IsWild() bool {
	return f.Kind == Universal
}

// Valid reports whether the face can exist in a deck.
func (f Face) Valid() bool {
	switch f.Kind {
	case Circle:
		return f.Rank >= 1 && f.Rank <= 9
	case Dragon:
		return f.Rank == DragonRank
	case Universal:
		return f.Rank == UniversalRank
	}
	return false
}

func (f Face) String() string {
	if f.Kind == Circle {
		return strconv.Itoa(f.Rank)
	}
	return f.Kind.String()
}

// Faces lists every distinct face in canonical order.
func Faces() []Face {
	faces := make([]Face, 0, 11)
	for rank := 1; rank <= 9; rank++ {
		faces = append(faces, CircleFace(rank))
	}
	return append(faces, DragonFace, WildFace)
}

// ParseFace reads a face from user input: "1".."9", "dragon" or "中",
// "wild", "universal" or "白".
func ParseFace(s string) (Face, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "dragon", "d", "中", "紅中", "red":
		return DragonFace, nil
	case "wild", "w", "universal", "u", "白", "白板", "joker":
		return WildFace, nil
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "筒"), "c")
	rank, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || rank < 1 || rank > 9 {
		return Face{}, fmt.Errorf("unknown tile %q", s)
	}
	return CircleFace(rank), nil
}

// Tile represents a single physical mahjong tile
type Tile struct {
	ID   string // Unique per deck (e.g., circle-3-1, dragon-red-0, universal-white)
	Kind Kind
	Rank int    // 1-9 for circles, DragonRank or UniversalRank otherwise
	Name string // Localized display name
}

// Face returns the equality key of the tile
func (t Tile) Face() Face {
	return Face{Kind: t.Kind, Rank: t.Rank}
}

func (t Tile) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Face().String()
}

// Less orders tiles canonically: circles by rank, then dragons, then the
// universal tile. Ties fall back to the ID so the order is total.
func Less(a, b Tile) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.ID < b.ID
}

// Sort sorts tiles in place in canonical order
func Sort(tiles []Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		return Less(tiles[i], tiles[j])
	})
}

// Count returns how many tiles in the list share the given face
func Count(tiles []Tile, f Face) int {
	n := 0
	for _, t := range tiles {
		if t.Face() == f {
			n++
		}
	}
	return n
}

// Clone returns a copy of the slice that does not share storage with it
func Clone(tiles []Tile) []Tile {
	if tiles == nil {
		return nil
	}
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}
