package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ericogr/guessdex/internal/config"
	"github.com/ericogr/guessdex/internal/engine"
	"github.com/ericogr/guessdex/internal/logging"
	"github.com/ericogr/guessdex/internal/prompt"
)

const showNamesLimit = 5

func newPlayCmd(cli *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cli)
		},
	}
}

func runPlay(cli *cliConfig) error {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return fmt.Errorf("load catalog config: %w", err)
	}

	sess := engine.NewSession(cfg.Entities)
	if cli.verbose {
		sess.SetTrace(func(event string, fields map[string]any) {
			logging.Debug(event, logging.Fields(fields))
		})
	}

	fmt.Println("Think of a creature and I will try to guess it.")
	fmt.Printf("I know %d creatures. Answer with y or n.\n\n", sess.RemainingCount())

	in := bufio.NewScanner(os.Stdin)
	out := sess.NextQuestion()
	for {
		fmt.Println(prompt.Outcome(out))

		switch out.Kind {
		case engine.OutcomeError:
			return nil
		case engine.OutcomeFinalGuess:
			yes, err := readYesNo(in)
			if err != nil {
				return err
			}
			if yes {
				fmt.Println("Got it!")
			} else {
				fmt.Println("You win this round.")
			}
			return nil
		}

		yes, err := readYesNo(in)
		if err != nil {
			return err
		}
		if err := sess.ApplyAnswer(out.Attribute, out.Value, yes); err != nil {
			return err
		}

		if names := sess.RemainingNames(); len(names) > 0 && len(names) <= showNamesLimit {
			fmt.Printf("Down to: %s\n\n", strings.Join(names, ", "))
		} else {
			fmt.Printf("%d creatures left.\n\n", sess.RemainingCount())
		}
		out = sess.NextQuestion()
	}
}

// readYesNo keeps prompting until the player types something that parses
// as yes or no. EOF ends the game.
func readYesNo(in *bufio.Scanner) (bool, error) {
	for {
		fmt.Print("(y/n) > ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return false, err
			}
			return false, fmt.Errorf("input closed")
		}
		switch strings.ToLower(strings.TrimSpace(in.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Println("Please answer y or n.")
	}
}
