package plume

import "github.com/simonhull/firebird-suite/plume/validate"

// Filename prompts for a bare filename: no path separators, no
// characters forbidden on common filesystems.
func Filename(promptText string, opts *TextOptions) (string, error) {
	opts = opts.orEmpty()
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Filename(v, vo)
	})
}

// FilepathOptions configures Filepath.
type FilepathOptions struct {
	Base
	Default *string

	// MustExist requires the path to resolve on the local filesystem.
	MustExist bool

	PostApply func(string) (string, error)
}

// Filepath prompts for a file path.
func Filepath(promptText string, opts *FilepathOptions) (string, error) {
	if opts == nil {
		opts = &FilepathOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.Filepath(v, opts.MustExist, vo)
	})
}

// USStateOptions configures USState.
type USStateOptions struct {
	Base
	Default *string

	// ReturnName returns the full state name instead of the
	// two-letter abbreviation.
	ReturnName bool

	PostApply func(string) (string, error)
}

// USState prompts for a United States state by name or abbreviation.
func USState(promptText string, opts *USStateOptions) (string, error) {
	if opts == nil {
		opts = &USStateOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return "", err
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (string, error) {
		return validate.USState(v, opts.ReturnName, vo)
	})
}
