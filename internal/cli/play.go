package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mcoot/equatix/internal/factory"
	"github.com/mcoot/equatix/internal/model"
)

func newPlayCmd() *cobra.Command {
	var (
		withBot     bool
		botStrategy string
		names       []string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Start an interactive game. Two people share the terminal and take turns,
or use --bot to play against the computer. Type help at the prompt for
the list of commands.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if withBot && !model.IsValidBotStrategy(botStrategy) {
				return fmt.Errorf("invalid bot strategy %q: must be one of %s",
					botStrategy, strings.Join(model.ValidBotStrategies(), ", "))
			}

			app, out, err := newApp(cmd)
			if err != nil {
				return err
			}
			if _, err := app.NewGame(seatsFor(names, withBot, botStrategy)); err != nil {
				return err
			}
			return runShell(NewSession(app, out), out, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&withBot, "bot", false, "Play against a bot in the second seat")
	cmd.Flags().StringVar(&botStrategy, "bot-strategy", model.BotStrategyGreedy, "Bot strategy: greedy, random")
	cmd.Flags().StringSliceVar(&names, "name", nil, "Player names, in seat order (repeatable)")

	return cmd
}

// newApp wires the application from the global flags
func newApp(cmd *cobra.Command) (*factory.App, *Output, error) {
	logger := cfg.NewLogger(cmd.ErrOrStderr())
	app, err := factory.New(cfg.FactoryConfig(logger))
	if err != nil {
		return nil, nil, err
	}
	app.GameController.Subscribe(eventLogger(logger))
	return app, NewOutput(cfg.Output, cfg.Color, cmd.OutOrStdout(), cmd.ErrOrStderr()), nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func historyFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "equatix_history")
}

func newCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("place"),
		readline.PcItem("validate"),
		readline.PcItem("undo"),
		readline.PcItem("swap"),
		readline.PcItem("pass"),
		readline.PcItem("board"),
		readline.PcItem("rack"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// runShell reads commands until the game ends or the player quits
func runShell(session *Session, out *Output, in io.Reader, stdout io.Writer) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "equatix> ",
		HistoryFile:     historyFile(),
		AutoComplete:    newCompleter(),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,

		Stdin:  io.NopCloser(in),
		Stdout: stdout,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	out.Print(session.app.GameController.View())

	for !session.Finished() {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		err = session.Execute(strings.TrimSpace(line))
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			out.PrintError(err)
		}
	}
	return nil
}
