package plume

import (
	"fmt"
	"strings"

	"github.com/simonhull/firebird-suite/plume/i18n"
	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/style"
	"github.com/simonhull/firebird-suite/plume/validate"
)

// ChoiceOptions configures Choice.
type ChoiceOptions struct {
	Base
	Default       *string
	CaseSensitive bool
	PostApply     func(string) (string, error)
}

// Choice prompts until the response is one of choices and returns the
// canonical choice string. An empty promptText builds a prompt that
// lists the choices.
func Choice(promptText string, choices []string, opts *ChoiceOptions) (string, error) {
	if len(choices) == 0 {
		return "", &prompt.ConfigError{Reason: "Choice requires at least one choice"}
	}
	if opts == nil {
		opts = &ChoiceOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	if promptText == "" {
		promptText = fmt.Sprintf(i18n.T("Please select one of: %s\n"), strings.Join(choices, ", "))
	}
	co := &validate.ChoiceOptions{Options: *vo, CaseSensitive: opts.CaseSensitive}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Choice(v, choices, co)
	})
}

// MenuOptions configures Menu.
type MenuOptions struct {
	Base
	Default       *string
	CaseSensitive bool

	// Numbered lists the choices as "1.", "2.", ... and accepts the
	// number; Lettered lists them as "A.", "B.", ... and accepts the
	// letter. At most one may be set.
	Numbered bool
	Lettered bool

	PostApply func(string) (string, error)
}

// Menu prompts with a listed menu of choices and returns the canonical
// choice string, whichever way the user selected it. An empty
// promptText uses the default header.
func Menu(promptText string, choices []string, opts *MenuOptions) (string, error) {
	if len(choices) == 0 {
		return "", &prompt.ConfigError{Reason: "Menu requires at least one choice"}
	}
	if opts == nil {
		opts = &MenuOptions{}
	}
	if opts.Numbered && opts.Lettered {
		return "", &prompt.ConfigError{Reason: "Numbered and Lettered are mutually exclusive"}
	}
	if opts.Lettered && len(choices) > 26 {
		return "", &prompt.ConfigError{Reason: "a lettered menu is limited to 26 choices"}
	}
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}

	if promptText == "" {
		promptText = i18n.T("Please select one of the following:\n")
	}
	var menu strings.Builder
	for i, choice := range choices {
		switch {
		case opts.Numbered:
			fmt.Fprintf(&menu, "%d. %s\n", i+1, choice)
		case opts.Lettered:
			fmt.Fprintf(&menu, "%c. %s\n", 'A'+i, choice)
		default:
			fmt.Fprintf(&menu, "* %s\n", choice)
		}
	}
	promptText += menu.String()

	co := &validate.ChoiceOptions{
		Options:       *vo,
		CaseSensitive: opts.CaseSensitive,
		Numbered:      opts.Numbered,
		Lettered:      opts.Lettered,
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Choice(v, choices, co)
	})
}

// YesNoOptions configures YesNo. Yes and No default to the translated
// "yes" and "no" words.
type YesNoOptions struct {
	Base
	Default       *string
	Yes           string
	No            string
	CaseSensitive bool
	PostApply     func(string) (string, error)
}

// YesNo prompts for an affirmative or negative response and returns
// the canonical yes or no word. The full word or its first letter is
// accepted in either case.
func YesNo(promptText string, opts *YesNoOptions) (string, error) {
	if opts == nil {
		opts = &YesNoOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	yes, no := opts.Yes, opts.No
	if yes == "" {
		yes = i18n.T("yes")
	}
	if no == "" {
		no = i18n.T("no")
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.YesNo(v, yes, no, opts.CaseSensitive, vo)
	})
}

// BoolOptions configures Bool. True and False default to the
// translated "True" and "False" words.
type BoolOptions struct {
	Base
	Default       *bool
	True          string
	False         string
	CaseSensitive bool
	PostApply     func(bool) (bool, error)
}

// Bool prompts for a true/false response and returns the boolean.
func Bool(promptText string, opts *BoolOptions) (bool, error) {
	if opts == nil {
		opts = &BoolOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return false, err
	}
	trueWord, falseWord := opts.True, opts.False
	if trueWord == "" {
		trueWord = i18n.T("True")
	}
	if falseWord == "" {
		falseWord = i18n.T("False")
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (bool, error) {
		return validate.Bool(v, trueWord, falseWord, opts.CaseSensitive, vo)
	})
}

// Confirm asks a yes/no question with a [Y/n] style hint. Pressing
// Enter gives defaultYes, as does any read failure, so Confirm is safe
// to call in scripts and CI.
func Confirm(message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	yes, no := i18n.T("yes"), i18n.T("no")

	result, err := prompt.Run(prompt.Options[bool]{
		Prompt: style.Prompt(message) + " " + style.Hint(hint) + ": ",
		Validate: func(raw string) (bool, error) {
			v := strings.TrimSpace(raw)
			if v == "" {
				return defaultYes, nil
			}
			word, err := validate.YesNo(v, yes, no, false, nil)
			if err != nil {
				return false, err
			}
			return word == yes, nil
		},
	})
	if err != nil {
		return defaultYes
	}
	return result
}
