package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/momiji-web/momiji/browser"
	"github.com/momiji-web/momiji/dom"
	"github.com/momiji-web/momiji/object"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.Context())
		},
	}
}

// runRepl reads lines and evaluates them against one persistent page, so
// variables and functions carry over between inputs.
func runRepl(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      ">>> ",
		HistoryFile: viper.GetString("history-file"),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	page := browser.NewPage(dom.NewDocument(), browser.WithLogger(newLogger()))
	fmt.Println("momiji", version, "(ctrl-d to exit)")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		value, err := page.Eval(ctx, line)
		if err != nil {
			fmt.Println(color.RedString("error: %s", err))
			continue
		}
		if _, undefined := value.(*object.Undefined); undefined {
			continue
		}
		fmt.Println(color.GreenString("%s", value.Inspect()))
	}
}
