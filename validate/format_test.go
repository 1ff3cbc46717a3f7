package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	got, err := Email("al@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, "al@example.com", got)

	for _, bad := range []string{"not-an-email", "a@", "@example.com"} {
		_, err := Email(bad, nil)
		assert.Error(t, err, bad)
	}
}

func TestURL(t *testing.T) {
	for _, good := range []string{
		"https://example.com/path?q=1",
		"example.com",
		"mailto:me@example.com",
	} {
		got, err := URL(good, nil)
		require.NoError(t, err, good)
		assert.Equal(t, good, got)
	}

	_, err := URL("not a url at all", nil)
	assert.Error(t, err)
}

func TestIP(t *testing.T) {
	for _, good := range []string{"192.168.0.1", "::1", "2001:db8::ff00:42:8329"} {
		_, err := IP(good, nil)
		assert.NoError(t, err, good)
	}

	for _, bad := range []string{"256.1.1.1", "example.com", "1.2.3"} {
		_, err := IP(bad, nil)
		assert.Error(t, err, bad)
	}
}

func TestRegex(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)

	got, err := Regex("ABC-1234", re, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", got)

	_, err = Regex("nope", re, "Use the ticket format.", nil)
	require.Error(t, err)
	assert.Equal(t, "Use the ticket format.", err.Error())

	_, err = Regex("nope", re, "", nil)
	require.Error(t, err)
	assert.Equal(t, "'nope' does not match the required pattern.", err.Error())
}

func TestRegexStr(t *testing.T) {
	re, err := RegexStr(`\d+`, nil)
	require.NoError(t, err)
	assert.True(t, re.MatchString("abc123"))

	_, err = RegexStr(`[unclosed`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid regular expression")
}

func TestZip(t *testing.T) {
	for _, good := range []string{"90210", "501", "12345-6789"} {
		got, err := Zip(good, nil)
		require.NoError(t, err, good)
		assert.Equal(t, good, got)
	}

	for _, bad := range []string{"123456", "abcde", "12345-67"} {
		_, err := Zip(bad, nil)
		require.Error(t, err, bad)
		assert.Equal(t, "That is not a valid zip code.", err.Error())
	}
}
