package cmd

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/tile"
)

// pool hands out physical tiles of one deck by face, so no tile is used twice
type pool struct {
	free map[tile.Face][]tile.Tile
}

func newPool(names *deck.Names) *pool {
	p := &pool{free: make(map[tile.Face][]tile.Tile)}
	for _, t := range deck.Build(names) {
		p.free[t.Face()] = append(p.free[t.Face()], t)
	}
	return p
}

// take returns a tile for every face, failing when the deck runs out of one
func (p *pool) take(faces []tile.Face) ([]tile.Tile, error) {
	tiles := make([]tile.Tile, 0, len(faces))
	for _, f := range faces {
		free := p.free[f]
		if len(free) == 0 {
			return nil, errors.Errorf("the deck holds only %d of %s", deck.Copies(f), f)
		}
		tiles = append(tiles, free[0])
		p.free[f] = free[1:]
	}
	return tiles, nil
}

// parseFaces reads faces given as separate arguments or comma separated lists
func parseFaces(args []string) ([]tile.Face, error) {
	var faces []tile.Face
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			if strings.TrimSpace(s) == "" {
				continue
			}
			f, err := tile.ParseFace(s)
			if err != nil {
				return nil, err
			}
			faces = append(faces, f)
		}
	}
	return faces, nil
}
