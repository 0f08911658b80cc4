package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/equatix/internal/model"
)

func newReplayCmd() *cobra.Command {
	var (
		names       []string
		withBot     bool
		botStrategy string
		keepGoing   bool
	)

	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Play a scripted game",
		Long: `Run the commands in a file, one per line, as if typed at the play prompt.
Blank lines and lines starting with # are skipped. Use - to read from
stdin. Combine with --seed to get the same tiles every time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if withBot && !model.IsValidBotStrategy(botStrategy) {
				return fmt.Errorf("invalid bot strategy %q", botStrategy)
			}

			var in io.Reader
			if args[0] == "-" {
				in = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			app, out, err := newApp(cmd)
			if err != nil {
				return err
			}
			if _, err := app.NewGame(seatsFor(names, withBot, botStrategy)); err != nil {
				return err
			}

			session := NewSession(app, out)
			if err := runScript(session, out, in, keepGoing); err != nil {
				return err
			}
			if !session.Finished() {
				out.Print(app.GameController.View())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "name", nil, "Player names, in seat order (repeatable)")
	cmd.Flags().BoolVar(&withBot, "bot", false, "A bot takes the second seat")
	cmd.Flags().StringVar(&botStrategy, "bot-strategy", model.BotStrategyGreedy, "Bot strategy: greedy, random")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Report failed commands and continue instead of stopping")

	return cmd
}

// runScript executes each line of in. A failed command stops the script
// unless keepGoing is set.
func runScript(session *Session, out *Output, in io.Reader, keepGoing bool) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := session.Execute(line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("line %d: %s: %w", lineNo, line, err)
			if !keepGoing {
				return err
			}
			out.PrintError(err)
		}
	}
	return scanner.Err()
}
