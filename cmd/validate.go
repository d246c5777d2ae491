package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vicquana/majian-game-1/internal/config"
	"github.com/vicquana/majian-game-1/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [name_or_path]",
	Short: "Validate a tile name pack",
	Long: `Validate checks that a name pack parses, names only known tiles and
gives every tile a distinct, non-empty name that fits on the table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetNamesPath(args[0])
		if err != nil {
			return err
		}

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return errors.Wrap(err, "validation error")
		}

		if !printResults(cmd.OutOrStdout(), path, results) {
			return errors.New("validation failed")
		}
		return nil
	},
}

// printResults writes the validation report and reports whether the pack is
// valid
func printResults(w io.Writer, path string, results validator.ValidationResults) bool {
	fmt.Fprintln(w, "Validation Results:")
	fmt.Fprintln(w, "-------------------")

	valid := len(results.Errors) == 0
	if valid {
		fmt.Fprintf(w, "✅ Name pack '%s' is valid.\n", path)
	} else {
		fmt.Fprintf(w, "❌ Name pack '%s' has %d validation errors:\n", path, len(results.Errors))
		for i, err := range results.Errors {
			fmt.Fprintf(w, "%d. %s\n", i+1, err)
		}
	}

	if len(results.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for i, warn := range results.Warnings {
			fmt.Fprintf(w, "%d. %s\n", i+1, warn)
		}
	}
	return valid
}
