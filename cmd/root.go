package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vicquana/majian-game-1/internal/config"
	"github.com/vicquana/majian-game-1/internal/deck"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "majian",
	Short: "A five-tile mahjong game that teaches probability",
	Long: `Majian is a small single-player mahjong played in the terminal.
Draw and discard from a 41-tile deck until your five tiles form a triplet
and a pair, and use the probability helper to count the tiles still hidden.

Settings come from $XDG_CONFIG_HOME/majian/config.toml, MAJIAN_* environment
variables and the flags below, the flags winning.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// logFile is the open log, closed after the command has run
var logFile *os.File

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("lang", "", "language of names and messages (zh or en)")
	flags.String("names", "", "tile name pack, by library name or path")
	flags.Bool("no-color", false, "disable coloured output")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("language", flags.Lookup("lang"))
	viper.BindPFlag("names_file", flags.Lookup("names"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the config file under viper and starts logging
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	viper.SetDefault("language", cfg.Language)
	viper.SetDefault("names_file", cfg.NamesFile)
	viper.SetDefault("color", cfg.Color)
	viper.SetDefault("celebrate", cfg.Celebrate)
	viper.SetDefault("show_tutorial", cfg.ShowTutorial)
	viper.SetDefault("seed", cfg.Seed)
	viper.SetDefault("log_level", cfg.LogLevel)

	viper.SetConfigType("toml")
	viper.SetConfigFile(config.GetConfigFilePath())
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "error reading config file")
	}

	viper.SetEnvPrefix("majian")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		viper.Set("color", false)
	}
	if !viper.GetBool("color") {
		color.NoColor = true
	}

	return setupLogging(viper.GetString("log_level"))
}

func teardown(cmd *cobra.Command, args []string) error {
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// setupLogging sends logs to the cache directory, or stderr if it cannot be
// written
func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{DisableColors: true})

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}

	path := config.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("cannot create log directory")
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("cannot open log file")
		return nil
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

// language returns the configured language
func language() string {
	if viper.GetString("language") == "en" {
		return "en"
	}
	return "zh"
}

// loadNames returns the configured name pack, or the built-in one
func loadNames() (*deck.Names, error) {
	lang := language()
	name := viper.GetString("names_file")
	if name == "" {
		return deck.DefaultNames(lang), nil
	}

	path, err := config.GetNamesPath(name)
	if err != nil {
		return nil, err
	}
	names, err := deck.LoadNames(path, lang)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("name pack loaded")
	return names, nil
}
