package validate

import (
	"regexp"

	validator "github.com/go-playground/validator/v10"
)

// check is the go-playground validator instance behind the format
// validators. Var lookups are safe for concurrent use.
var check = validator.New()

// Email validates an email address.
func Email(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if check.Var(v, "email") != nil {
		return "", fail(v, "'%s' is not a valid email address.", v)
	}
	return v, nil
}

// URL validates a URL. Bare hostnames like "example.com" and scheme
// URIs like "mailto:me@example.com" are both accepted.
func URL(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if check.Var(v, "url") != nil && check.Var(v, "uri") != nil && check.Var(v, "fqdn") != nil {
		return "", fail(v, "'%s' is not a valid URL.", v)
	}
	return v, nil
}

// IP validates an IPv4 or IPv6 address.
func IP(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if check.Var(v, "ip") != nil {
		return "", fail(v, "'%s' is not a valid IP address.", v)
	}
	return v, nil
}

// Regex validates that the input matches re. An empty failMsg falls
// back to a generic message.
func Regex(value string, re *regexp.Regexp, failMsg string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if !re.MatchString(v) {
		if failMsg == "" {
			failMsg = "'" + v + "' does not match the required pattern."
		}
		return "", &ValidationError{Value: v, Message: failMsg}
	}
	return v, nil
}

// RegexStr validates that the input is itself a compilable regular
// expression and returns the compiled pattern.
func RegexStr(value string, opts *Options) (*regexp.Regexp, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return nil, err
	}
	if done && v == "" {
		return nil, nil
	}
	re, cerr := regexp.Compile(v)
	if cerr != nil {
		return nil, fail(v, "'%s' is not a valid regular expression.", v)
	}
	return re, nil
}

var zipRe = regexp.MustCompile(`^\d{3,5}(-\d{4})?$`)

// Zip validates a 3 to 5 digit US zip code, with an optional +4 part.
func Zip(value string, opts *Options) (string, error) {
	return Regex(value, zipRe, "That is not a valid zip code.", opts)
}
