package deck

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/tile"
)

const (
	// Size is the number of tiles in a full deck
	Size = 41

	circleCopies = 4
	dragonCopies = 4
	wildCopies   = 1
)

// Names holds the display names for every face
type Names struct {
	Circles   map[string]string `toml:"circles"`
	Dragon    string            `toml:"dragon"`
	Universal string            `toml:"universal"`
}

// Name returns the display name for a face
func (n *Names) Name(f tile.Face) string {
	if n == nil {
		n = DefaultNames("")
	}
	switch f.Kind {
	case tile.Circle:
		if name, ok := n.Circles[strconv.Itoa(f.Rank)]; ok && name != "" {
			return name
		}
	case tile.Dragon:
		if n.Dragon != "" {
			return n.Dragon
		}
	case tile.Universal:
		if n.Universal != "" {
			return n.Universal
		}
	}
	return f.String()
}

// DefaultNames returns the built-in name pack for a language ("zh" or "en").
// Unknown languages get the Chinese pack.
func DefaultNames(lang string) *Names {
	n := &Names{Circles: make(map[string]string, 9)}
	for rank := 1; rank <= 9; rank++ {
		n.Circles[strconv.Itoa(rank)] = getDefaultCircleName(lang, rank)
	}
	if lang == "en" {
		n.Dragon = "Red Dragon"
		n.Universal = "White Board"
	} else {
		n.Dragon = "紅中"
		n.Universal = "白板"
	}
	return n
}

// LoadNames loads a name pack from a TOML file. Faces the file does not name
// keep their default name in the given language.
func LoadNames(path, lang string) (*Names, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Errorf("name pack not found: %s", path)
	}

	var n Names
	if _, err := toml.DecodeFile(path, &n); err != nil {
		return nil, errors.Wrapf(err, "error parsing name pack %s", path)
	}

	defaults := DefaultNames(lang)
	if n.Circles == nil {
		n.Circles = make(map[string]string, 9)
	}
	for rank, name := range defaults.Circles {
		if n.Circles[rank] == "" {
			n.Circles[rank] = name
		}
	}
	if n.Dragon == "" {
		n.Dragon = defaults.Dragon
	}
	if n.Universal == "" {
		n.Universal = defaults.Universal
	}

	return &n, nil
}

// Build enumerates the 41 tiles of a deck in a fixed order: circles 1-9 with
// four copies each, four red dragons, one universal tile.
func Build(names *Names) []tile.Tile {
	tiles := make([]tile.Tile, 0, Size)

	for rank := 1; rank <= 9; rank++ {
		f := tile.CircleFace(rank)
		for i := 0; i < circleCopies; i++ {
			tiles = append(tiles, tile.Tile{
				ID:   fmt.Sprintf("circle-%d-%d", rank, i),
				Kind: f.Kind,
				Rank: f.Rank,
				Name: names.Name(f),
			})
		}
	}

	for i := 0; i < dragonCopies; i++ {
		tiles = append(tiles, tile.Tile{
			ID:   fmt.Sprintf("dragon-red-%d", i),
			Kind: tile.Dragon,
			Rank: tile.DragonRank,
			Name: names.Name(tile.DragonFace),
		})
	}

	tiles = append(tiles, tile.Tile{
		ID:   "universal-white",
		Kind: tile.Universal,
		Rank: tile.UniversalRank,
		Name: names.Name(tile.WildFace),
	})

	return tiles
}

// Shuffle returns a uniformly random permutation of tiles. The input slice is
// left untouched.
func Shuffle(tiles []tile.Tile, r *rand.Rand) []tile.Tile {
	out := tile.Clone(tiles)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// New builds and shuffles a fresh deck
func New(names *Names, r *rand.Rand) []tile.Tile {
	return Shuffle(Build(names), r)
}

// Copies returns how many tiles of a face a full deck holds
func Copies(f tile.Face) int {
	if !f.Valid() {
		return 0
	}
	switch f.Kind {
	case tile.Circle:
		return circleCopies
	case tile.Dragon:
		return dragonCopies
	default:
		return wildCopies
	}
}

// Source produces fresh shuffled decks
type Source struct {
	Names *Names
	Rand  *rand.Rand
}

// NewSource returns a deck source seeded with seed
func NewSource(names *Names, seed int64) *Source {
	return &Source{Names: names, Rand: rand.New(rand.NewSource(seed))}
}

// Deal returns a newly shuffled deck
func (s *Source) Deal() []tile.Tile {
	return New(s.Names, s.Rand)
}

// getDefaultCircleName returns the default name for a circle tile
func getDefaultCircleName(lang string, rank int) string {
	if lang == "en" {
		if rank == 1 {
			return "1 Circle"
		}
		return fmt.Sprintf("%d Circles", rank)
	}
	return fmt.Sprintf("%d 筒", rank)
}
