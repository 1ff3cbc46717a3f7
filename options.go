package plume

import (
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/simonhull/firebird-suite/plume/prompt"
	"github.com/simonhull/firebird-suite/plume/style"
	"github.com/simonhull/firebird-suite/plume/validate"
)

// BlockRule rejects input matching Pattern, with an optional message
// shown instead of the generic one.
type BlockRule struct {
	Pattern string
	Message string
}

// Base holds the options shared by every input function. The zero
// value asks forever, strips whitespace, and rejects blank input.
type Base struct {
	// Timeout and Limit bound the whole prompting session. Zero means
	// unbounded. When the kind's Default is set, exhausting either
	// budget returns the default instead of an error.
	Timeout time.Duration
	Limit   int

	// Blank accepts an empty response as valid input.
	Blank bool

	// NoStrip keeps the response exactly as typed. Otherwise
	// StripChars (or whitespace, when empty) are trimmed from both
	// ends before validation.
	NoStrip    bool
	StripChars string

	// Allow patterns pass validation unconditionally; Block rules fail
	// it. Both are Go regular expressions.
	Allow []string
	Block []BlockRule

	// Apply transforms the raw line before validation. Errors from it
	// indicate a caller bug and propagate unchanged.
	Apply func(string) (string, error)

	// In, Out, and Now replace the console and the real clock, mainly
	// for tests.
	In  prompt.LineReader
	Out io.Writer
	Now func() time.Time
}

// compile translates Base into the validate package's options,
// reporting malformed patterns as configuration errors.
func (b *Base) compile() (*validate.Options, error) {
	vo := &validate.Options{
		Blank:      b.Blank,
		NoStrip:    b.NoStrip,
		StripChars: b.StripChars,
	}
	for _, pat := range b.Allow {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &prompt.ConfigError{Reason: fmt.Sprintf("allow pattern %q: %v", pat, err)}
		}
		vo.Allow = append(vo.Allow, re)
	}
	for _, rule := range b.Block {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, &prompt.ConfigError{Reason: fmt.Sprintf("block pattern %q: %v", rule.Pattern, err)}
		}
		vo.Block = append(vo.Block, validate.BlockRule{Pattern: re, Message: rule.Message})
	}
	return vo, nil
}

// run wires a per-kind validator into the shared loop.
func run[T any](promptText string, base *Base, def *T, post func(T) (T, error), validateFn func(string) (T, error)) (T, error) {
	return prompt.Run(prompt.Options[T]{
		Prompt:    style.Prompt(promptText),
		Default:   def,
		Timeout:   base.Timeout,
		Limit:     base.Limit,
		Apply:     base.Apply,
		Validate:  validateFn,
		PostApply: post,
		In:        base.In,
		Out:       base.Out,
		Now:       base.Now,
	})
}

// Bound returns a pointer to v, for the numeric bound fields.
func Bound(v float64) *float64 { return &v }

// TextOptions configures the string-valued input functions.
type TextOptions struct {
	Base
	Default   *string
	PostApply func(string) (string, error)
}

func (o *TextOptions) orEmpty() *TextOptions {
	if o == nil {
		return &TextOptions{}
	}
	return o
}
