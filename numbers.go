package plume

import "github.com/simonhull/firebird-suite/plume/validate"

// NumberOptions configures the numeric input functions. Min and Max
// are inclusive bounds, GreaterThan and LessThan exclusive ones; use
// the Bound helper to fill them.
type NumberOptions struct {
	Base
	Default     *float64
	Min         *float64
	Max         *float64
	GreaterThan *float64
	LessThan    *float64
	PostApply   func(float64) (float64, error)
}

func (o *NumberOptions) bounds() *validate.Bounds {
	return &validate.Bounds{
		Min:         o.Min,
		Max:         o.Max,
		GreaterThan: o.GreaterThan,
		LessThan:    o.LessThan,
	}
}

// Number prompts for a number, integer or floating point, and returns
// it as a float64.
func Number(promptText string, opts *NumberOptions) (float64, error) {
	if opts == nil {
		opts = &NumberOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return 0, err
	}
	b := opts.bounds()
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (float64, error) {
		return validate.Number(v, vo, b)
	})
}

// Float prompts for a floating point number.
func Float(promptText string, opts *NumberOptions) (float64, error) {
	if opts == nil {
		opts = &NumberOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return 0, err
	}
	b := opts.bounds()
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (float64, error) {
		return validate.Float(v, vo, b)
	})
}

// IntOptions configures Int.
type IntOptions struct {
	Base
	Default     *int
	Min         *float64
	Max         *float64
	GreaterThan *float64
	LessThan    *float64
	PostApply   func(int) (int, error)
}

// Int prompts for an integer. Whole-valued input like "42.0" is
// accepted and truncated to an int.
func Int(promptText string, opts *IntOptions) (int, error) {
	if opts == nil {
		opts = &IntOptions{}
	}
	vo, err := opts.compile()
	if err != nil {
		return 0, err
	}
	b := &validate.Bounds{
		Min:         opts.Min,
		Max:         opts.Max,
		GreaterThan: opts.GreaterThan,
		LessThan:    opts.LessThan,
	}
	return run(promptText, &opts.Base, opts.Default, opts.PostApply, func(v string) (int, error) {
		return validate.Int(v, vo, b)
	})
}
