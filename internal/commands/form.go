package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/plume/style"
)

// Form is a YAML questionnaire: a list of named questions asked in
// order.
type Form struct {
	Questions []Question `yaml:"questions"`
}

// FormCmd creates the form command: run a questionnaire, print answers
func FormCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "form <file>",
		Short: "Run a YAML questionnaire and print the collected answers",
		Long: `Form reads a questionnaire, asks each question in order, and prints
the answers as YAML keyed by question name.

Example questionnaire:

  questions:
    - name: email
      kind: email
      prompt: "Work email: "
    - name: seats
      kind: int
      prompt: "Seats: "
      min: 1
      limit: 3
      default: "1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := LoadForm(args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, style.Problem(err.Error()))
				return err
			}

			answers, err := form.Run(LoadDefaults())
			if err != nil {
				fmt.Fprintln(os.Stderr, style.Problem(err.Error()))
				return err
			}

			data, err := yaml.Marshal(answers)
			if err != nil {
				return fmt.Errorf("encoding answers: %w", err)
			}

			if output == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Println(style.Success("Wrote answers to " + output))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write answers to a file instead of stdout")

	return cmd
}

// LoadForm parses a questionnaire file and checks its shape.
func LoadForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading form: %w", err)
	}

	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	if len(form.Questions) == 0 {
		return nil, fmt.Errorf("form %s has no questions", path)
	}

	seen := make(map[string]bool, len(form.Questions))
	for i, q := range form.Questions {
		if q.Name == "" {
			return nil, fmt.Errorf("question %d has no name", i+1)
		}
		if seen[q.Name] {
			return nil, fmt.Errorf("duplicate question name %q", q.Name)
		}
		seen[q.Name] = true
	}
	return &form, nil
}

// Run asks every question in order and returns the answers keyed by
// question name. The first failed question aborts the form.
func (f *Form) Run(defaults Defaults) (map[string]any, error) {
	answers := make(map[string]any, len(f.Questions))
	for _, q := range f.Questions {
		answer, err := q.Ask(defaults)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Name, err)
		}
		answers[q.Name] = answer
	}
	return answers, nil
}
