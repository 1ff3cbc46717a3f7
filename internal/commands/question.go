package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/simonhull/firebird-suite/plume"
	"github.com/simonhull/firebird-suite/plume/prompt"
)

// Question describes one prompt, either built from ask flags or
// decoded from a form file.
type Question struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`
	Prompt    string        `yaml:"prompt"`
	Default   string        `yaml:"default"`
	Choices   []string      `yaml:"choices"`
	Numbered  bool          `yaml:"numbered"`
	Lettered  bool          `yaml:"lettered"`
	Blank     bool          `yaml:"blank"`
	Timeout   time.Duration `yaml:"timeout"`
	Limit     int           `yaml:"limit"`
	Min       *float64      `yaml:"min"`
	Max       *float64      `yaml:"max"`
	Mask      string        `yaml:"mask"`
	MustExist bool          `yaml:"must_exist"`

	// in and out replace the console in tests.
	in  prompt.LineReader
	out io.Writer
}

func (q Question) base(defaults Defaults) plume.Base {
	timeout := q.Timeout
	if timeout == 0 {
		timeout = defaults.Timeout
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaults.Limit
	}
	return plume.Base{Timeout: timeout, Limit: limit, Blank: q.Blank, In: q.in, Out: q.out}
}

func (q Question) textOptions(defaults Defaults) *plume.TextOptions {
	opts := &plume.TextOptions{Base: q.base(defaults)}
	if q.Default != "" {
		opts.Default = &q.Default
	}
	return opts
}

// Ask runs the question and returns the typed answer.
func (q Question) Ask(defaults Defaults) (any, error) {
	switch strings.ToLower(q.Kind) {
	case "", "str":
		return plume.Str(q.Prompt, q.textOptions(defaults))

	case "int":
		opts := &plume.IntOptions{Base: q.base(defaults), Min: q.Min, Max: q.Max}
		if q.Default != "" {
			var d int
			if _, err := fmt.Sscanf(q.Default, "%d", &d); err != nil {
				return nil, fmt.Errorf("question %q: default %q is not an int", q.Name, q.Default)
			}
			opts.Default = &d
		}
		return plume.Int(q.Prompt, opts)

	case "number", "float":
		opts := &plume.NumberOptions{Base: q.base(defaults), Min: q.Min, Max: q.Max}
		if q.Default != "" {
			var d float64
			if _, err := fmt.Sscanf(q.Default, "%g", &d); err != nil {
				return nil, fmt.Errorf("question %q: default %q is not a number", q.Name, q.Default)
			}
			opts.Default = &d
		}
		return plume.Number(q.Prompt, opts)

	case "choice":
		opts := &plume.ChoiceOptions{Base: q.base(defaults)}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.Choice(q.Prompt, q.Choices, opts)

	case "menu":
		opts := &plume.MenuOptions{
			Base:     q.base(defaults),
			Numbered: q.Numbered,
			Lettered: q.Lettered,
		}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.Menu(q.Prompt, q.Choices, opts)

	case "select":
		return plume.Select(q.Prompt, q.Choices, nil)

	case "yesno":
		opts := &plume.YesNoOptions{Base: q.base(defaults)}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.YesNo(q.Prompt, opts)

	case "bool":
		opts := &plume.BoolOptions{Base: q.base(defaults)}
		if q.Default != "" {
			d := strings.EqualFold(q.Default, "true")
			opts.Default = &d
		}
		return plume.Bool(q.Prompt, opts)

	case "date":
		return plume.Date(q.Prompt, &plume.TimeOptions{Base: q.base(defaults)})

	case "time":
		return plume.Time(q.Prompt, &plume.TimeOptions{Base: q.base(defaults)})

	case "datetime":
		return plume.Datetime(q.Prompt, &plume.TimeOptions{Base: q.base(defaults)})

	case "month":
		return plume.Month(q.Prompt, q.textOptions(defaults))

	case "dayofweek":
		return plume.DayOfWeek(q.Prompt, q.textOptions(defaults))

	case "email":
		return plume.Email(q.Prompt, q.textOptions(defaults))

	case "url":
		return plume.URL(q.Prompt, q.textOptions(defaults))

	case "ip":
		return plume.IP(q.Prompt, q.textOptions(defaults))

	case "zip":
		return plume.Zip(q.Prompt, q.textOptions(defaults))

	case "filename":
		return plume.Filename(q.Prompt, q.textOptions(defaults))

	case "filepath":
		opts := &plume.FilepathOptions{Base: q.base(defaults), MustExist: q.MustExist}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.Filepath(q.Prompt, opts)

	case "state":
		opts := &plume.USStateOptions{Base: q.base(defaults)}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.USState(q.Prompt, opts)

	case "password":
		opts := &plume.PasswordOptions{Base: q.base(defaults), Mask: q.Mask}
		if q.Default != "" {
			opts.Default = &q.Default
		}
		return plume.Password(q.Prompt, opts)
	}

	return nil, fmt.Errorf("question %q: unknown kind %q", q.Name, q.Kind)
}
