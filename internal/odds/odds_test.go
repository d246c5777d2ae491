package odds

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/tile"
)

func pick(tiles []tile.Tile, f tile.Face, n int) []tile.Tile {
	var out []tile.Tile
	for _, t := range tiles {
		if len(out) == n {
			break
		}
		if t.Face() == f {
			out = append(out, t)
		}
	}
	return out
}

func TestRemainingFreshGame(t *testing.T) {
	full := deck.Build(nil)
	hand := []tile.Tile{full[0], full[4], full[8], full[12]} // circles 1-4

	tests := []struct {
		target tile.Face
		want   int
	}{
		{tile.CircleFace(9), 4},
		{tile.DragonFace, 4},
		{tile.WildFace, 1},
		{tile.CircleFace(1), 3},
	}
	for _, tt := range tests {
		got, err := Remaining(nil, hand, tt.target)
		if err != nil {
			t.Fatalf("Remaining(%v): %v", tt.target, err)
		}
		if got != tt.want {
			t.Errorf("Remaining(%v) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestRemainingReachesZero(t *testing.T) {
	full := deck.Build(nil)
	fives := pick(full, tile.CircleFace(5), 4)

	for seen := 0; seen <= 4; seen++ {
		discards := fives[:seen/2]
		hand := fives[seen/2 : seen]
		got, err := Remaining(discards, hand, tile.CircleFace(5))
		if err != nil {
			t.Fatalf("seen %d: %v", seen, err)
		}
		if got != 4-seen {
			t.Errorf("seen %d: remaining %d, want %d", seen, got, 4-seen)
		}
	}
}

func TestRemainingContractViolations(t *testing.T) {
	full := deck.Build(nil)
	fives := pick(full, tile.CircleFace(5), 4)
	extra := append(fives, tile.Tile{ID: "bogus", Kind: tile.Circle, Rank: 5})

	if _, err := Remaining(extra, nil, tile.CircleFace(5)); errors.Cause(err) != ErrCountOutOfRange {
		t.Errorf("expected ErrCountOutOfRange, got %v", err)
	}
	if _, err := Remaining(nil, nil, tile.Face{Kind: tile.Circle, Rank: 12}); errors.Cause(err) != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestChance(t *testing.T) {
	full := deck.Build(nil)
	hand := pick(full, tile.CircleFace(2), 2)

	got, err := Chance(nil, hand, tile.CircleFace(2))
	if err != nil {
		t.Fatal(err)
	}
	want := 2.0 / 39.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Chance = %v, want %v", got, want)
	}

	got, err = Chance(nil, nil, tile.WildFace)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1.0/41.0) > 1e-9 {
		t.Errorf("Chance(wild) = %v", got)
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		remaining int
		want      HintLevel
	}{
		{0, Impossible},
		{1, Luck},
		{2, Good},
		{4, Good},
	}
	for _, tt := range tests {
		if got := Hint(tt.remaining); got != tt.want {
			t.Errorf("Hint(%d) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestDefaultTarget(t *testing.T) {
	if got := DefaultTarget(nil); got != tile.CircleFace(1) {
		t.Errorf("DefaultTarget(nil) = %v", got)
	}
	hand := []tile.Tile{{ID: "x", Kind: tile.Dragon, Rank: tile.DragonRank}}
	if got := DefaultTarget(hand); got != tile.DragonFace {
		t.Errorf("DefaultTarget = %v, want dragon", got)
	}
}

func TestBoard(t *testing.T) {
	full := deck.Build(nil)
	lines, err := Board(full[:4], full[40:])
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 11 {
		t.Fatalf("board has %d lines", len(lines))
	}
	if lines[0].Remaining != 0 || lines[0].Total != 4 {
		t.Errorf("circle 1 line = %+v", lines[0])
	}
	if lines[10].Remaining != 0 || lines[10].Total != 1 {
		t.Errorf("universal line = %+v", lines[10])
	}
	if lines[5].Remaining != 4 {
		t.Errorf("circle 6 line = %+v", lines[5])
	}
}
