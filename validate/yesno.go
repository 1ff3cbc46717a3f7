package validate

import "strings"

func matchWord(value, word string, caseSensitive bool) bool {
	if value == "" {
		return false
	}
	if caseSensitive {
		return value == word || value == word[:1]
	}
	return strings.EqualFold(value, word) || strings.EqualFold(value, word[:1])
}

// YesNo validates an affirmative or negative response. The full word or
// its first letter is accepted; the canonical yes or no word is
// returned, never the raw input.
func YesNo(value, yes, no string, caseSensitive bool, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	switch {
	case matchWord(v, yes, caseSensitive):
		return yes, nil
	case matchWord(v, no, caseSensitive):
		return no, nil
	}
	return "", fail(v, "'%s' is not a valid %s/%s response.", v, yes, no)
}

// Bool validates a true/false response and returns the boolean.
func Bool(value, trueWord, falseWord string, caseSensitive bool, opts *Options) (bool, error) {
	word, err := YesNo(value, trueWord, falseWord, caseSensitive, opts)
	if err != nil {
		return false, err
	}
	return word == trueWord, nil
}
