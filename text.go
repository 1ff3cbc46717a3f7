package plume

import (
	"fmt"
	"regexp"

	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/validate"
)

// Str prompts for free-form text. Only the shared strip, blank, and
// allow/block rules apply.
func Str(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Str(v, vo)
	})
}

// Custom prompts with a caller-supplied validator. The validator
// receives the response after the shared pre-validation pass and
// returns the value to use, or an error whose message is shown to the
// user before re-prompting.
func Custom(promptText string, fn func(string) (string, error), opts *TextOptions) (string, error) {
	if fn == nil {
		return "", &prompt.ConfigError{Reason: "Custom requires a validation function"}
	}
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		v, err := validate.Str(v, vo)
		if err != nil {
			return "", err
		}
		return fn(v)
	})
}

// Regex prompts until the response matches pattern.
func Regex(promptText, pattern string, opts *TextOptions) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", &prompt.ConfigError{Reason: fmt.Sprintf("pattern %q: %v", pattern, err)}
	}
	opts = opts.orEmpty()
	vo, cerr := opts.compile()
	if cerr != nil {
		return "", cerr
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Regex(v, re, "", vo)
	})
}

// RegexStrOptions configures RegexStr.
type RegexStrOptions struct {
	Base
	Default   *regexp.Regexp
	PostApply func(*regexp.Regexp) (*regexp.Regexp, error)
}

// RegexStr prompts for a regular expression and returns it compiled.
func RegexStr(promptText string, opts *RegexStrOptions) (*regexp.Regexp, error) {
	if opts == nil {
		opts = &RegexStrOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return nil, err
	}
	var def **regexp.Regexp
	if opts.Default != nil {
		def = &opts.Default
	}
	return run(promptText, &opts.Base, def, opts.PostApply, func(v string) (*regexp.Regexp, error) {
		return validate.RegexStr(v, vo)
	})
}

// Zip prompts for a 3 to 5-digit US zip code.
func Zip(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Zip(v, vo)
	})
}
