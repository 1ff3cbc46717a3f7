package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/plume/style"
)

// AskCmd creates the ask command: one typed question, answer on stdout
func AskCmd() *cobra.Command {
	q := Question{Name: "answer"}
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a single typed question and print the answer",
		Long: `Ask prompts on the terminal, validates the response, and prints the
validated answer to stdout, so shell scripts can capture it:

  name=$(plume ask --prompt "Name: ")
  port=$(plume ask --kind int --prompt "Port: " --min 1 --max 65535)
  pet=$(plume ask --kind choice --choices dog,cat)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q.Timeout = timeout
			if f := cmd.Flags().Lookup("min"); f.Changed {
				v, _ := cmd.Flags().GetFloat64("min")
				q.Min = &v
			}
			if f := cmd.Flags().Lookup("max"); f.Changed {
				v, _ := cmd.Flags().GetFloat64("max")
				q.Max = &v
			}

			answer, err := q.Ask(LoadDefaults())
			if err != nil {
				fmt.Fprintln(os.Stderr, style.Problem(err.Error()))
				return err
			}

			// Answers go to stdout alone; prompts go to the terminal.
			fmt.Println(format(answer))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&q.Kind, "kind", "str", "Kind of input (str, int, number, choice, menu, select, yesno, bool, date, time, datetime, month, dayofweek, email, url, ip, zip, filename, filepath, state, password)")
	cmd.Flags().StringVar(&q.Prompt, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&q.Default, "default", "", "Default when the time or retry budget runs out")
	cmd.Flags().StringSliceVar(&q.Choices, "choices", nil, "Choices for choice, menu and select kinds")
	cmd.Flags().BoolVar(&q.Numbered, "numbered", false, "Number the menu choices")
	cmd.Flags().BoolVar(&q.Lettered, "lettered", false, "Letter the menu choices")
	cmd.Flags().BoolVar(&q.Blank, "blank", false, "Accept a blank response")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Time budget for the whole prompt (e.g. 30s)")
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "Maximum number of attempts")
	cmd.Flags().Float64("min", 0, "Minimum accepted value for numeric kinds")
	cmd.Flags().Float64("max", 0, "Maximum accepted value for numeric kinds")
	cmd.Flags().StringVar(&q.Mask, "mask", "", "Echo character for password input")
	cmd.Flags().BoolVar(&q.MustExist, "must-exist", false, "Require the filepath to exist")

	return cmd
}

// format renders a typed answer for stdout.
func format(answer any) string {
	if t, ok := answer.(time.Time); ok {
		return t.Format(time.RFC3339)
	}
	return fmt.Sprintf("%v", answer)
}
