package plume

import "github.com/simonhull/firebird-suite/plume/validate"

// Email prompts for an email address.
func Email(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Email(v, vo)
	})
}

// URL prompts for a URL. Bare hostnames and scheme URIs like
// "mailto:me@example.com" are accepted.
func URL(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.URL(v, vo)
	})
}

// IP prompts for an IPv4 or IPv6 address.
func IP(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.IP(v, vo)
	})
}
