package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vicquana/majian-game-1/internal/celebrate"
	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/odds"
	"github.com/vicquana/majian-game-1/internal/render"
	"github.com/vicquana/majian-game-1/internal/session"
	"github.com/vicquana/majian-game-1/internal/tile"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals four tiles plus one drawn tile. Discard one tile each turn
until your five tiles make a triplet and a pair, then declare the win.

Commands at the prompt:
  1-4        discard a tile from your hand
  d          discard the tile you just drew
  h          declare a win
  p [tile]   probability helper for a tile (1-9, dragon, wild)
  b          remaining count of every tile
  r          start a new game
  ?          show or hide the tutorial
  q          quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := loadNames()
		if err != nil {
			return err
		}

		seed := viper.GetInt64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		out := cmd.OutOrStdout()
		g := newGame(out, language(), names, deck.NewSource(names, seed))
		g.tutorial = viper.GetBool("show_tutorial")
		if viper.GetBool("celebrate") && render.IsTerminal(out) {
			g.animate = func() celebrate.Options {
				return celebrate.DefaultOptions(render.Size(out))
			}
		}

		log.WithField("seed", seed).Info("game started")
		return g.run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	playCmd.Flags().Int64("seed", 0, "shuffle seed, 0 for a random game")
	playCmd.Flags().Bool("no-tutorial", false, "start without the tutorial")
	playCmd.Flags().Bool("no-celebrate", false, "skip the win animation")
	viper.BindPFlag("seed", playCmd.Flags().Lookup("seed"))

	playCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if off, _ := cmd.Flags().GetBool("no-tutorial"); off {
			viper.Set("show_tutorial", false)
		}
		if off, _ := cmd.Flags().GetBool("no-celebrate"); off {
			viper.Set("celebrate", false)
		}
	}

	RootCmd.AddCommand(playCmd)
}

// game drives one terminal session of play
type game struct {
	out      io.Writer
	r        *render.Renderer
	names    *deck.Names
	sess     session.Session
	tutorial bool

	// animate returns the options of the win animation; nil disables it
	animate func() celebrate.Options
	anim    *celebrate.Task
}

func newGame(out io.Writer, lang string, names *deck.Names, d session.Dealer) *game {
	return &game{
		out:   out,
		r:     render.New(out, lang),
		names: names,
		sess:  session.New(d),
	}
}

// run reads commands from in until quit, end of input or ctx is done
func (g *game) run(ctx context.Context, in io.Reader) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer g.stopAnimation()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	g.show()
	for {
		var animDone <-chan struct{}
		if g.anim != nil {
			animDone = g.anim.Done()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-animDone:
			g.stopAnimation()
			g.show()
		case line, ok := <-lines:
			g.stopAnimation()
			if !ok {
				return nil
			}
			if quit := g.handle(line); quit {
				g.r.Println(render.KeyBye)
				return nil
			}
		}
	}
}

// handle applies one command line and reports whether the player quit
func (g *game) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		g.show()
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "q", "quit", "exit":
		g.logAction("quit")
		return true
	case "d":
		g.discard(session.Drawn)
	case "1", "2", "3", "4":
		i, _ := strconv.Atoi(cmd)
		g.discard(session.HandIndex(i - 1))
	case "h", "hu", "胡":
		g.declareWin()
	case "r", "reset":
		g.sess = g.sess.Reset()
		g.logAction("reset")
		g.show()
	case "p":
		g.panel(fields[1:])
	case "b":
		if err := g.r.Board(g.sess.Discards(), g.sess.Visible(), g.names.Name); err != nil {
			g.r.Error(err)
		}
	case "?", "help":
		g.tutorial = !g.tutorial
		g.show()
	default:
		g.r.Println(render.KeyUnknownCmd)
		g.r.Println(render.KeyHelp)
	}
	return false
}

func (g *game) discard(sel session.Selector) {
	if err := g.sess.CanDiscard(sel); err != nil {
		g.r.Error(err)
		return
	}
	g.sess = g.sess.Discard(sel)
	g.logAction("discard")
	g.show()
}

func (g *game) declareWin() {
	if err := g.sess.CanDeclareWin(); err != nil {
		g.r.Error(err)
		return
	}
	g.sess = g.sess.DeclareWin()
	g.logAction("win")

	if g.animate != nil {
		g.anim = celebrate.Start(context.Background(), g.out, g.animate())
		return
	}
	g.show()
}

// panel shows the probability helper for the named face, or for the first
// tile in hand
func (g *game) panel(args []string) {
	target := odds.DefaultTarget(g.sess.Hand())
	if len(args) > 0 {
		f, err := tile.ParseFace(strings.Join(args, " "))
		if err != nil {
			g.r.Println(render.KeyBadTile)
			return
		}
		target = f
	}
	if err := g.r.Panel(g.sess.Discards(), g.sess.Visible(), target, g.names.Name(target)); err != nil {
		g.r.Error(err)
	}
}

// show redraws the whole screen
func (g *game) show() {
	g.r.Header()
	if g.tutorial {
		g.r.Tutorial()
		g.r.Tips()
	}
	g.r.Session(g.sess)
	if g.sess.State() == session.Won {
		g.r.Banner(g.sess.Result())
	}
	g.r.Println(render.KeyHelp)
	fmt.Fprint(g.out, g.r.Text(render.KeyPrompt))
}

// stopAnimation waits for a running animation to release the terminal
func (g *game) stopAnimation() {
	if g.anim == nil {
		return
	}
	if err := g.anim.Stop(); err != nil && err != context.Canceled {
		log.WithError(err).Warn("animation failed")
	}
	g.anim = nil
}

func (g *game) logAction(action string) {
	log.WithFields(log.Fields{
		"session": g.sess.ID(),
		"action":  action,
		"state":   g.sess.State().String(),
		"deck":    g.sess.DeckCount(),
	}).Info("player action")
}
