package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BlannyBlannyBlanc/BMEdit/pkg/level"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	root := &cobra.Command{
		Use:   "bmedit",
		Short: "Decode Glacier-style level assets into a typed scene graph",
	}

	root.PersistentFlags().StringVarP(&flagConfig, "config", "c", level.DefaultConfigName, "project file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override the configured log level (trace, debug, info, warn, error)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newTypesCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newSceneCmd())
	root.AddCommand(newPrimsCmd())
	root.AddCommand(newGeomsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("bmedit 0.1.0-dev")
		},
	}
}

// loadProject reads the project file behind --config.
func loadProject() (*level.Config, error) {
	return level.ReadConfig(flagConfig)
}

// newLogger builds the console logger; the --log-level flag overrides the
// configured level.
func newLogger(cfg *level.Config) zerolog.Logger {
	name := cfg.Log.Level
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "bmedit").Logger()
}
