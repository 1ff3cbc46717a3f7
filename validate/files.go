package validate

import (
	"os"
	"strings"
)

const badFilenameChars = `\/:*?"<>|`

// Filename validates a bare filename: no path separators or other
// characters forbidden on common filesystems, and no trailing space.
func Filename(value string, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if strings.ContainsAny(v, badFilenameChars) || strings.HasSuffix(v, " ") {
		return "", fail(v, "'%s' is not a valid filename.", v)
	}
	return v, nil
}

// Filepath validates a file path. Separators are allowed; the other
// forbidden filename characters are not. With mustExist the path must
// resolve on the local filesystem.
func Filepath(value string, mustExist bool, opts *Options) (string, error) {
	v, done, err := prevalidate(value, opts)
	if err != nil {
		return "", err
	}
	if done {
		return v, nil
	}
	if strings.ContainsAny(v, `*?"<>|`) || strings.HasSuffix(v, " ") {
		return "", fail(v, "'%s' is not a valid file path.", v)
	}
	if mustExist {
		if _, serr := os.Stat(v); serr != nil {
			return "", fail(v, "'%s' does not exist on this filesystem.", v)
		}
	}
	return v, nil
}
