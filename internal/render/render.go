// Package render draws the game in a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/odds"
	"github.com/vicquana/majian-game-1/internal/rules"
	"github.com/vicquana/majian-game-1/internal/session"
	"github.com/vicquana/majian-game-1/internal/tile"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	circleColor = color.New(color.FgHiBlue, color.Bold)
	dragonColor = color.New(color.FgHiRed, color.Bold)
	wildColor   = color.New(color.FgHiCyan, color.Bold)
	drawnColor  = color.New(color.BgYellow, color.FgBlack, color.Bold)
	labelColor  = color.New(color.FgHiBlack)
	titleColor  = color.New(color.FgGreen, color.Bold)
	chanceColor = color.New(color.FgHiYellow, color.Bold)
	winColor    = color.New(color.FgYellow, color.Bold)
	overColor   = color.New(color.FgWhite)
	stoneColor  = color.New(color.FgHiMagenta)
)

// Renderer writes game screens to a terminal
type Renderer struct {
	w     io.Writer
	lang  string
	width int
}

// New returns a renderer writing to w in the given language. The width
// follows the terminal when w is one.
func New(w io.Writer, lang string) *Renderer {
	return &Renderer{w: w, lang: Language(lang), width: Width(w)}
}

// Width returns the terminal width of w, or a default for anything else
func Width(w io.Writer) int {
	width, _ := Size(w)
	return width
}

// Size returns the terminal size of w, or a default for anything else
func Size(w io.Writer) (width, height int) {
	if !IsTerminal(w) {
		return defaultWidth, defaultHeight
	}
	width, height, err := term.GetSize(int(w.(*os.File).Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}
	return width, height
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Lang returns the language the renderer writes in
func (r *Renderer) Lang() string { return r.lang }

// Text returns the catalog entry for key in the renderer's language
func (r *Renderer) Text(key Key) string { return Text(r.lang, key) }

// Println writes a catalog entry on its own line
func (r *Renderer) Println(key Key) {
	fmt.Fprintln(r.w, r.Text(key))
}

// Error writes a message explaining why an action was ignored
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.w, labelColor.Sprint(r.explain(err)))
}

func (r *Renderer) explain(err error) string {
	switch errors.Cause(err) {
	case session.ErrGameOver:
		return r.Text(KeyGameOver)
	case session.ErrCannotWin:
		return r.Text(KeyCannotWin)
	case session.ErrBadSelector:
		return r.Text(KeyBadTile)
	default:
		return err.Error()
	}
}

// Header writes the title bar
func (r *Renderer) Header() {
	fmt.Fprintln(r.w, titleColor.Sprintf("🀄 %s", r.Text(KeyTitle)))
	fmt.Fprintln(r.w, labelColor.Sprint(r.Text(KeySubtitle)))
	fmt.Fprintln(r.w)
}

// Message returns the localized notice of the session
func (r *Renderer) Message(s session.Session) string {
	format, ok := notices[r.lang][s.Notice()]
	if !ok {
		return r.Text(KeyWelcome)
	}
	if s.Notice() == session.NoticeDiscarded {
		last, _ := s.LastDiscard()
		return fmt.Sprintf(format, last.String())
	}
	return format
}

// Session writes the info panel, the table and the player's tiles
func (r *Renderer) Session(s session.Session) {
	r.info(s)
	r.table(s.Discards())
	r.hand(s)
}

func (r *Renderer) info(s session.Session) {
	msg := r.Message(s)
	switch {
	case s.State() == session.Won:
		msg = winColor.Sprint(msg)
	case s.IsOver():
		msg = overColor.Sprint(msg)
	case s.CanWin():
		msg = chanceColor.Sprint(msg)
	}

	fmt.Fprintf(r.w, "%s  %s %s\n",
		labelColor.Sprint(r.Text(KeyProgress)),
		labelColor.Sprint(r.Text(KeyDeckLeft)),
		titleColor.Sprintf("%d", s.DeckCount()))
	fmt.Fprintln(r.w, msg)

	if s.State() == session.Won {
		fmt.Fprintln(r.w, winColor.Sprintf("🏆 %s%s", r.Text(KeyWinLabel), Reason(r.lang, s.Result().Pattern)))
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) table(discards []tile.Tile) {
	fmt.Fprintln(r.w, labelColor.Sprint(r.Text(KeyTable)))
	if len(discards) == 0 {
		fmt.Fprintln(r.w, labelColor.Sprint("  "+r.Text(KeyTableEmpty)))
		fmt.Fprintln(r.w)
		return
	}

	line := "  "
	for _, t := range discards {
		cell := Tile(t) + " "
		if visibleWidth(line)+visibleWidth(cell) > r.width && line != "  " {
			fmt.Fprintln(r.w, line)
			line = "  "
		}
		line += cell
	}
	fmt.Fprintln(r.w, line)
	fmt.Fprintln(r.w)
}

func (r *Renderer) hand(s session.Session) {
	hand := s.Hand()
	cells := make([]string, 0, len(hand)+1)
	labels := make([]string, 0, len(hand)+1)
	for i, t := range hand {
		cells = append(cells, Tile(t))
		labels = append(labels, pad(fmt.Sprintf("%d", i+1), visibleWidth(Tile(t))))
	}

	if drawn, ok := s.Drawn(); ok {
		cell := drawnColor.Sprintf("[%s]", drawn.String())
		cells = append(cells, "   "+cell)
		labels = append(labels, "   "+pad("d "+r.Text(KeyDrawn), visibleWidth(cell)))
	}

	fmt.Fprintln(r.w, "  "+strings.Join(cells, " "))
	if !s.IsOver() {
		fmt.Fprintln(r.w, labelColor.Sprint("  "+strings.Join(labels, " ")))
	}

	if s.CanWin() {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, chanceColor.Sprintf("  ✨ %s", r.Text(KeyWinButton)))
	}
	if s.IsOver() {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, "  "+r.Text(KeyPlayAgain))
	}
	fmt.Fprintln(r.w)
}

// Banner writes the victory banner
func (r *Renderer) Banner(res rules.Result) {
	fmt.Fprintln(r.w, winColor.Sprintf("🎉 %s", r.Text(KeyWinBanner)))
	fmt.Fprintln(r.w, winColor.Sprint(Reason(r.lang, res.Pattern)))
	fmt.Fprintln(r.w)
}

// Result writes the outcome of evaluating a hand
func (r *Renderer) Result(hand []tile.Tile, res rules.Result) {
	cells := make([]string, 0, len(hand))
	for _, t := range hand {
		cells = append(cells, Tile(t))
	}
	fmt.Fprintln(r.w, strings.Join(cells, " "))
	if !res.IsWin {
		fmt.Fprintln(r.w, overColor.Sprint(r.Text(KeyNoWin)))
		return
	}
	fmt.Fprintln(r.w, winColor.Sprintf("%s%s", r.Text(KeyWinLabel), Reason(r.lang, res.Pattern)))
}

// Panel writes the probability helper for one target face
func (r *Renderer) Panel(discards, hand []tile.Tile, target tile.Face, name string) error {
	remaining, err := odds.Remaining(discards, hand, target)
	if err != nil {
		return err
	}
	chance, err := odds.Chance(discards, hand, target)
	if err != nil {
		return err
	}
	total := odds.Total(target)

	fmt.Fprintln(r.w, titleColor.Sprint(r.Text(KeyPanelTitle)))
	fmt.Fprintf(r.w, "  %s%s   %s%s\n",
		r.Text(KeyPanelTarget), name,
		r.Text(KeyPanelLeft), chanceColor.Sprintf("%d / %d", remaining, total))
	fmt.Fprintf(r.w, "  %s\n", Stones(remaining, total))
	fmt.Fprintf(r.w, "  %s%s\n", r.Text(KeyPanelChance), chanceColor.Sprintf("%d/%d (%.1f%%)",
		remaining, unseen(discards, hand), chance*100))
	fmt.Fprintf(r.w, "  %s\n\n", hints[r.lang][odds.Hint(remaining)])
	return nil
}

// Board writes the remaining count of every face
func (r *Renderer) Board(discards, hand []tile.Tile, name func(tile.Face) string) error {
	lines, err := odds.Board(discards, hand)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.w, titleColor.Sprint(r.Text(KeyBoardTitle)))
	for _, l := range lines {
		fmt.Fprintf(r.w, "  %s %s %d/%d\n", pad(name(l.Face), 12), Stones(l.Remaining, l.Total), l.Remaining, l.Total)
	}
	fmt.Fprintln(r.w)
	return nil
}

// Tips writes the rule tips panel
func (r *Renderer) Tips() {
	fmt.Fprintln(r.w, titleColor.Sprint(r.Text(KeyTipsTitle)))
	for _, k := range []Key{KeyTip1, KeyTip2, KeyTip3} {
		for _, l := range wrapText(r.Text(k), r.width-4) {
			fmt.Fprintln(r.w, "  "+l)
		}
	}
	fmt.Fprintln(r.w)
}

// Tutorial writes the how-to-win guide
func (r *Renderer) Tutorial() {
	lines := strings.Split(r.Text(KeyTutorial), "\n")
	fmt.Fprintln(r.w, titleColor.Sprint(lines[0]))
	for _, para := range lines[1:] {
		for _, l := range wrapText(para, r.width-4) {
			fmt.Fprintln(r.w, "  "+l)
		}
	}
	fmt.Fprintln(r.w)
}

// Tile returns a coloured label for a tile
func Tile(t tile.Tile) string {
	label := fmt.Sprintf("[%s]", t.String())
	switch t.Kind {
	case tile.Circle:
		return circleColor.Sprint(label)
	case tile.Dragon:
		return dragonColor.Sprint(label)
	case tile.Universal:
		return wildColor.Sprintf("[★%s]", t.String())
	default:
		return label
	}
}

// Stones draws remaining as filled stones out of total
func Stones(remaining, total int) string {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > total {
		remaining = total
	}
	return stoneColor.Sprint(strings.Repeat("●", remaining)) +
		labelColor.Sprint(strings.Repeat("○", total-remaining))
}

func unseen(discards, hand []tile.Tile) int {
	return deck.Size - len(discards) - len(hand)
}

// pad right-pads s with spaces to the visible width n
func pad(s string, n int) string {
	if w := visibleWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// visibleWidth approximates the terminal columns used by s: escape sequences
// take none and wide characters take two.
func visibleWidth(s string) int {
	width := 0
	for _, c := range stripAnsi(s) {
		if isWide(c) {
			width += 2
		} else {
			width++
		}
	}
	return width
}

func isWide(c rune) bool {
	return utf8.RuneLen(c) >= 3 && (c >= 0x1100 && c <= 0x115F ||
		c >= 0x2E80 && c <= 0xA4CF ||
		c >= 0xAC00 && c <= 0xD7A3 ||
		c >= 0xF900 && c <= 0xFAFF ||
		c >= 0xFE30 && c <= 0xFE4F ||
		c >= 0xFF00 && c <= 0xFF60 ||
		c >= 0xFFE0 && c <= 0xFFE6 ||
		c >= 0x1F300 && c <= 0x1FAFF)
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// wrapText wraps text to a specified width. Text without spaces, such as
// Chinese, is broken between characters.
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	for _, word := range splitWords(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case visibleWidth(currentLine)+1+visibleWidth(word) <= width:
			currentLine += joiner(currentLine, word) + word
		default:
			result = append(result, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		result = append(result, currentLine)
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}

// splitWords splits on spaces and keeps each wide character as its own word
func splitWords(text string) []string {
	var words []string
	for _, field := range strings.Fields(text) {
		var buf strings.Builder
		for _, c := range field {
			if isWide(c) {
				if buf.Len() > 0 {
					words = append(words, buf.String())
					buf.Reset()
				}
				words = append(words, string(c))
				continue
			}
			buf.WriteRune(c)
		}
		if buf.Len() > 0 {
			words = append(words, buf.String())
		}
	}
	return words
}

func joiner(line, word string) string {
	last, _ := utf8.DecodeLastRuneInString(line)
	first, _ := utf8.DecodeRuneInString(word)
	if isWide(last) || isWide(first) {
		return ""
	}
	return " "
}
