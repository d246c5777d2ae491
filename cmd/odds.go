package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vicquana/majian-game-1/internal/odds"
	"github.com/vicquana/majian-game-1/internal/render"
	"github.com/vicquana/majian-game-1/internal/tile"
)

var oddsCmd = &cobra.Command{
	Use:   "odds [tile]",
	Short: "Count how many copies of a tile are still hidden",
	Long: `Odds shows how many copies of a tile are left out of sight, given the
tiles on the table and in your hand, and the chance that the next draw is
one of them. Without --board it shows a single tile, by default the first
one in your hand.

Examples:
  majian odds 3 --hand 1,1,3,5 --discards 3,3,9
  majian odds --board --discards dragon,dragon`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handArgs, _ := cmd.Flags().GetStringSlice("hand")
		discardArgs, _ := cmd.Flags().GetStringSlice("discards")
		board, _ := cmd.Flags().GetBool("board")

		names, err := loadNames()
		if err != nil {
			return err
		}

		p := newPool(names)
		handFaces, err := parseFaces(handArgs)
		if err != nil {
			return err
		}
		hand, err := p.take(handFaces)
		if err != nil {
			return err
		}
		discardFaces, err := parseFaces(discardArgs)
		if err != nil {
			return err
		}
		discards, err := p.take(discardFaces)
		if err != nil {
			return err
		}

		r := render.New(cmd.OutOrStdout(), language())
		if board {
			return r.Board(discards, hand, names.Name)
		}

		target := odds.DefaultTarget(hand)
		if len(args) == 1 {
			if target, err = tile.ParseFace(args[0]); err != nil {
				return err
			}
		}
		return r.Panel(discards, hand, target, names.Name(target))
	},
}

func init() {
	oddsCmd.Flags().StringSlice("hand", nil, "tiles in your hand")
	oddsCmd.Flags().StringSlice("discards", nil, "tiles on the table")
	oddsCmd.Flags().Bool("board", false, "show every tile instead of one")
	RootCmd.AddCommand(oddsCmd)
}
