package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vicquana/majian-game-1/internal/config"
	"github.com/vicquana/majian-game-1/internal/deck"
	"github.com/vicquana/majian-game-1/internal/render"
	"github.com/vicquana/majian-game-1/internal/tile"
	"github.com/vicquana/majian-game-1/internal/validator"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Show the deck and manage tile name packs",
	Long: `Commands for the 41-tile deck and the name packs that label its tiles.
Name packs are TOML files kept in $XDG_DATA_HOME/majian/names.`,
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tiles of the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := loadNames()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tiles := deck.Build(names)
		for _, f := range tile.Faces() {
			t := tiles[indexOf(tiles, f)]
			fmt.Fprintf(out, "  %-8s %s x%d\n", f, render.Tile(t), deck.Copies(f))
		}
		fmt.Fprintf(out, "%d tiles\n", len(tiles))
		return nil
	},
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the name packs in your library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetNamesLibraryPath()

		entries, err := os.ReadDir(libraryPath)
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "Name library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'majian deck init-names' to create it.")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "error reading name library")
		}

		current := viper.GetString("names_file")
		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}
			names, err := deck.LoadNames(filepath.Join(libraryPath, entry.Name()), language())
			if err != nil {
				// not a name pack, skip
				continue
			}
			found++

			name := strings.TrimSuffix(entry.Name(), ".toml")
			if name == current || entry.Name() == current {
				fmt.Fprintf(out, "* %s (%s, %s) [DEFAULT]\n", name, names.Dragon, names.Universal)
			} else {
				fmt.Fprintf(out, "  %s (%s, %s)\n", name, names.Dragon, names.Universal)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No name packs found in your library.")
			fmt.Fprintln(out, "You can add packs by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckInitNamesCmd represents the deck init-names command
var deckInitNamesCmd = &cobra.Command{
	Use:   "init-names [path]",
	Short: "Write a name pack template",
	Long: `Init-names writes the built-in names of the current language as a name
pack to edit. Without a path the pack goes to the library as custom.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(config.GetNamesLibraryPath(), "custom.toml")
		if len(args) == 1 {
			path = args[0]
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return errors.Errorf("%s already exists, use --force to overwrite it", path)
		}

		if err := writeNames(path, deck.DefaultNames(language())); err != nil {
			return err
		}
		log.WithField("path", path).Info("name pack template written")
		fmt.Fprintln(cmd.OutOrStdout(), "Name pack written to:", path)
		return nil
	},
}

// deckSetNamesCmd represents the deck set-names command
var deckSetNamesCmd = &cobra.Command{
	Use:   "set-names [name_or_path]",
	Short: "Validate a name pack and use it by default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetNamesPath(args[0])
		if err != nil {
			return err
		}

		results, err := validator.NewValidator(path).Validate()
		if err != nil {
			return err
		}
		if len(results.Errors) > 0 {
			printResults(cmd.OutOrStdout(), path, results)
			return errors.New("not a valid name pack")
		}

		stored := args[0]
		if !strings.HasPrefix(path, config.GetNamesLibraryPath()) {
			if stored, err = filepath.Abs(path); err != nil {
				return errors.Wrap(err, "error resolving name pack path")
			}
		}
		if err := config.SetNamesFile(stored); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default name pack set to: %s\n", stored)
		return nil
	},
}

func init() {
	deckInitNamesCmd.Flags().Bool("force", false, "overwrite an existing file")

	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitNamesCmd)
	deckCmd.AddCommand(deckSetNamesCmd)
}

// writeNames encodes a name pack as TOML
func writeNames(path string, names *deck.Names) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "error creating name pack directory")
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "error creating name pack")
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(names); err != nil {
		return errors.Wrap(err, "error encoding name pack")
	}
	return nil
}

func indexOf(tiles []tile.Tile, f tile.Face) int {
	for i, t := range tiles {
		if t.Face() == f {
			return i
		}
	}
	return -1
}
