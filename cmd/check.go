package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vicquana/majian-game-1/internal/render"
	"github.com/vicquana/majian-game-1/internal/rules"
)

var checkCmd = &cobra.Command{
	Use:   "check [tile...]",
	Short: "Check whether five tiles make a winning hand",
	Long: `Check evaluates a hand of five tiles. Tiles are circle ranks 1-9,
"dragon" (or 中) and "wild" (or 白), given as arguments or comma separated.

Examples:
  majian check 1 1 1 2 2
  majian check 5,5,dragon,dragon,wild`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faces, err := parseFaces(args)
		if err != nil {
			return err
		}
		if len(faces) != rules.HandSize {
			return errors.Errorf("a hand has %d tiles, got %d", rules.HandSize, len(faces))
		}

		names, err := loadNames()
		if err != nil {
			return err
		}
		hand, err := newPool(names).take(faces)
		if err != nil {
			return err
		}

		render.New(cmd.OutOrStdout(), language()).Result(hand, rules.Evaluate(hand))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
