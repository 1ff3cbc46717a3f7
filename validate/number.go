package validate

import (
	"math"
	"strconv"
)

// Bounds restricts accepted numeric values. Min and Max are inclusive,
// GreaterThan and LessThan exclusive. Nil fields are unrestricted.
type Bounds struct {
	Min         *float64
	Max         *float64
	GreaterThan *float64
	LessThan    *float64
}

func (b *Bounds) check(value string, n float64) error {
	if b == nil {
		return nil
	}
	if b.Min != nil && n < *b.Min {
		return fail(value, "Number must be at minimum %v.", *b.Min)
	}
	if b.Max != nil && n > *b.Max {
		return fail(value, "Number must be at maximum %v.", *b.Max)
	}
	if b.GreaterThan != nil && n <= *b.GreaterThan {
		return fail(value, "Number must be greater than %v.", *b.GreaterThan)
	}
	if b.LessThan != nil && n >= *b.LessThan {
		return fail(value, "Number must be less than %v.", *b.LessThan)
	}
	return nil
}

// Number validates a numeric value, integer or floating point.
func Number(value string, opts *Options, b *Bounds) (float64, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return 0, err
	}
	if done {
		n, _ := strconv.ParseFloat(v, 64)
		return n, nil
	}
	n, perr := strconv.ParseFloat(v, 64)
	if perr != nil {
		return 0, fail(v, "'%s' is not a number.", v)
	}
	if err := b.check(v, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Int validates an integer. Whole-valued floating point input such as
// "42.0" is accepted and truncated.
func Int(value string, opts *Options, b *Bounds) (int, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return 0, err
	}
	if done {
		n, _ := strconv.Atoi(v)
		return n, nil
	}
	n, perr := strconv.ParseFloat(v, 64)
	if perr != nil || n != math.Trunc(n) {
		return 0, fail(v, "'%s' is not an integer.", v)
	}
	if err := b.check(v, n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Float validates a floating point number.
func Float(value string, opts *Options, b *Bounds) (float64, error) {
	return Number(value, opts, b)
}
