package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/rules"
	"github.com/vicquana/majian-game-1/internal/session"
	"github.com/vicquana/majian-game-1/internal/tile"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fixed deals a prepared deck
type fixed []tile.Tile

func (f fixed) Deal() []tile.Tile { return tile.Clone(f) }

func winningDeck(names *deck.Names) fixed {
	all := deck.Build(names)
	// circle 1 x3, circle 2 x2, then the rest
	out := append([]tile.Tile{}, all[0], all[1], all[2], all[4], all[5])
	out = append(out, all[3])
	out = append(out, all[6:]...)
	return out
}

func TestSessionScreen(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "en")
	s := session.New(winningDeck(deck.DefaultNames("en")))

	r.Session(s)
	out := buf.String()

	for _, want := range []string{
		"Left 36",
		"Congratulations! You can win now",
		"No tiles on the table yet",
		"[1 Circle]",
		"[2 Circles]",
		"Win! Type h to declare",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestWonScreen(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "zh")
	s := session.New(winningDeck(nil)).DeclareWin()

	r.Session(s)
	r.Banner(s.Result())
	out := buf.String()

	for _, want := range []string{"胡牌勝利！恭喜達成目標！", "勝利：刻子 (3張一樣) + 對子 (2張一樣)", "輸入 r 再挑戰一次"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestMessageNamesTheDiscard(t *testing.T) {
	r := New(&bytes.Buffer{}, "en")
	s := session.New(winningDeck(deck.DefaultNames("en"))).Discard(session.Drawn)

	if got := r.Message(s); got != "Discarded 2 Circles. You drew a new tile!" {
		t.Errorf("Message = %q", got)
	}
}

func TestPanel(t *testing.T) {
	all := deck.Build(deck.DefaultNames("en"))
	tests := []struct {
		name     string
		discards []tile.Tile
		hand     []tile.Tile
		target   tile.Face
		want     []string
	}{
		{
			name:   "Fresh",
			target: tile.DragonFace,
			want:   []string{"Left: 4 / 4", "●●●●", "4/41 (9.8%)", "Several stones left"},
		},
		{
			name:     "One left",
			discards: all[0:2],
			hand:     all[2:3],
			target:   tile.CircleFace(1),
			want:     []string{"Left: 1 / 4", "●○○○", "only 1 stone left"},
		},
		{
			name:     "All seen",
			discards: all[0:4],
			target:   tile.CircleFace(1),
			want:     []string{"Left: 0 / 4", "○○○○", "Impossible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(&buf, "en").Panel(tt.discards, tt.hand, tt.target, "x"); err != nil {
				t.Fatal(err)
			}
			out := strings.ToLower(buf.String())
			for _, want := range tt.want {
				if !strings.Contains(out, strings.ToLower(want)) {
					t.Errorf("panel does not contain %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestBoard(t *testing.T) {
	var buf bytes.Buffer
	all := deck.Build(nil)
	err := New(&buf, "en").Board(all[:4], nil, func(f tile.Face) string { return f.String() })
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "○○○○ 0/4") || !strings.Contains(out, "● 1/1") {
		t.Errorf("unexpected board:\n%s", out)
	}
}

func TestResult(t *testing.T) {
	all := deck.Build(deck.DefaultNames("en"))
	hand := []tile.Tile{all[0], all[1], all[2], all[4], all[40]}

	var buf bytes.Buffer
	New(&buf, "en").Result(hand, rules.Evaluate(hand))
	if !strings.Contains(buf.String(), "Win: triplet + wildcard pair") {
		t.Errorf("unexpected result:\n%s", buf.String())
	}

	buf.Reset()
	hand[3] = all[8]
	hand[4] = all[12]
	New(&buf, "en").Result(hand, rules.Evaluate(hand))
	if !strings.Contains(buf.String(), "Not a winning hand.") {
		t.Errorf("unexpected result:\n%s", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "en")
	r.Error(errors.Wrap(session.ErrBadSelector, "index 9"))
	r.Error(session.ErrGameOver)
	out := buf.String()
	if !strings.Contains(out, "There is no such tile.") || !strings.Contains(out, "This game is over") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestLanguageFallback(t *testing.T) {
	if Language("fr") != "zh" || Language("en") != "en" {
		t.Error("unexpected language fallback")
	}
	if Text("fr", KeyTitle) != "小小麻將概率教室" {
		t.Errorf("Text fallback = %q", Text("fr", KeyTitle))
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for _, l := range lines {
		if visibleWidth(l) > 15 {
			t.Errorf("line %q is wider than 15", l)
		}
	}
	if strings.Join(lines, " ") != "the quick brown fox jumps over the lazy dog" {
		t.Errorf("wrapping lost words: %v", lines)
	}

	zh := wrapText("學會推測概率觀察桌面上的明牌", 12)
	if len(zh) < 2 {
		t.Errorf("wide text was not wrapped: %v", zh)
	}
	for _, l := range zh {
		if visibleWidth(l) > 12 {
			t.Errorf("line %q is wider than 12", l)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"abc", 3},
		{"\x1b[31mred\x1b[0m", 3},
		{"紅中", 4},
		{"1 筒", 4},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.in); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
