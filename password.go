package plume

import (
	"unicode/utf8"

	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/style"
	"github.com/simonhull/firebird-suite/plume/validate"
)

// PasswordOptions configures Password.
type PasswordOptions struct {
	Base
	Default *string

	// Mask is the single character echoed per keystroke. It defaults
	// to "*". NoEcho hides the input entirely instead.
	Mask   string
	NoEcho bool

	PostApply func(string) (string, error)
}

// Password prompts for obscured input. Unlike the other input
// functions it performs no whitespace stripping, so passwords with
// leading or trailing spaces survive intact.
func Password(promptText string, opts *PasswordOptions) (string, error) {
	if opts == nil {
		opts = &PasswordOptions{}
	}
	if utf8.RuneCountInString(opts.Mask) > 1 {
		return "", &prompt.ConfigError{Reason: "Mask must be a single character"}
	}

	var mask rune
	if !opts.NoEcho {
		mask = '*'
		if opts.Mask != "" {
			mask, _ = utf8.DecodeRuneInString(opts.Mask)
		}
	}

	// Passwords keep whitespace unless the caller opts back in.
	base := opts.Base
	if !base.NoStrip && base.StripChars == "" {
		base.NoStrip = true
	}
	vo, err := base.compile()
	if err != nil {
		return "", err
	}

	return prompt.Run(prompt.Options[string]{
		Prompt:  style.Prompt(promptText),
		Default: opts.Default,
		Timeout: base.Timeout,
		Limit:   base.Limit,
		Apply:   base.Apply,
		Validate: func(v string) (string, error) {
			return validate.Str(v, vo)
		},
		PostApply: opts.PostApply,
		Secret:    true,
		Mask:      mask,
		In:        base.In,
		Out:       base.Out,
		Now:       base.Now,
	})
}
