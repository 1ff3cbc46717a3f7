package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/firebird-suite/plume"
	"github.com/simonhull/firebird-suite/plume/style"
)

// Defaults are the session budgets applied to questions that do not
// set their own, loaded from ~/.plume.yaml when present.
type Defaults struct {
	Timeout time.Duration
	Limit   int
}

// RootCmd creates and returns the root command for the Plume CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "plume",
		Short: "Validated console input for scripts and tools",
		Long: `Plume prompts for input on the console, validates the response, and
re-prompts with the reason when validation fails.

Use it to:
• Ask a single typed question from a shell script (plume ask)
• Run a whole YAML questionnaire and collect the answers (plume form)

Learn more: https://github.com/simonhull/firebird-suite`,
		Version: plume.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			style.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// LoadDefaults reads session defaults from .plume.yaml in the home or
// current directory. A missing file just yields zero defaults.
func LoadDefaults() Defaults {
	v := viper.New()
	v.SetConfigName(".plume")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		return Defaults{}
	}
	return Defaults{
		Timeout: v.GetDuration("timeout"),
		Limit:   v.GetInt("limit"),
	}
}
