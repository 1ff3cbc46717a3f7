// Package prompt implements the read-validate-retry loop behind every
// input function in Plume.
//
// # Overview
//
// A single call to Run owns one prompting session: it displays the
// prompt, reads a line, validates it, and either returns the validated
// value, re-prompts with the validation message, falls back to a
// configured default, or fails with a typed error once the time or
// attempt budget is spent.
//
// # Usage
//
// The typed input functions in the plume root package cover the common
// cases. Use this package directly when you need a custom value type:
//
//	port, err := prompt.Run(prompt.Options[int]{
//	    Prompt: "Port: ",
//	    Limit:  3,
//	    Validate: func(raw string) (int, error) {
//	        return strconv.Atoi(strings.TrimSpace(raw))
//	    },
//	})
//
// # Error Contract
//
// Run returns *ConfigError for malformed options, *TimeoutError or
// *RetryLimitError for exhausted budgets (unless a default suppresses
// them), and passes errors from Apply and PostApply through unchanged.
// Validation errors never escape Run; their messages are shown to the
// user before the next attempt.
//
// # Testing
//
// Options accepts an injected LineReader, output writer, and clock.
// ScriptReader replays canned input lines so prompting code can be
// exercised without a terminal.
package prompt
