package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	viper.SetEnvPrefix("momiji")
	viper.AutomaticEnv()

	root := &cobra.Command{
		Use:   "momiji [file...]",
		Short: "Run momiji scripts",
		Long:  "A minimal browser engine with an embedded scripting language.",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("no-color") || !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runRepl(cmd.Context())
			}
			return runFiles(cmd.Context(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("verbose", false, "Log script lifecycle events")
	flags.String("history-file", "", "REPL history file")
	viper.BindPFlag("no-color", flags.Lookup("no-color"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.BindPFlag("history-file", flags.Lookup("history-file"))

	root.AddCommand(newAstCommand())
	root.AddCommand(newReplCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %s", err))
		os.Exit(1)
	}
}

// newLogger returns the CLI logger: console output to stderr, quiet unless
// --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("momiji %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
