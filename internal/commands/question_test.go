package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/plume/prompt"
)

func scriptedQuestion(q Question, lines ...string) Question {
	q.in = &prompt.ScriptReader{Lines: lines}
	q.out = &bytes.Buffer{}
	return q
}

func TestQuestionAsk(t *testing.T) {
	tests := []struct {
		name  string
		q     Question
		lines []string
		want  any
	}{
		{"empty kind is str", Question{Name: "n"}, []string{"hello"}, "hello"},
		{"str", Question{Name: "n", Kind: "str"}, []string{"hello"}, "hello"},
		{"kind is case insensitive", Question{Name: "n", Kind: "STR"}, []string{"hello"}, "hello"},
		{"int", Question{Name: "n", Kind: "int"}, []string{"42"}, 42},
		{"number", Question{Name: "n", Kind: "number"}, []string{"2.5"}, 2.5},
		{"float alias", Question{Name: "n", Kind: "float"}, []string{"2.5"}, 2.5},
		{"choice", Question{Name: "n", Kind: "choice", Choices: []string{"dog", "cat"}}, []string{"cat"}, "cat"},
		{"menu numbered", Question{Name: "n", Kind: "menu", Choices: []string{"dog", "cat"}, Numbered: true}, []string{"2"}, "cat"},
		{"yesno", Question{Name: "n", Kind: "yesno"}, []string{"y"}, "yes"},
		{"bool", Question{Name: "n", Kind: "bool"}, []string{"t"}, true},
		{"month", Question{Name: "n", Kind: "month"}, []string{"3"}, "March"},
		{"dayofweek", Question{Name: "n", Kind: "dayofweek"}, []string{"fri"}, "Friday"},
		{"email", Question{Name: "n", Kind: "email"}, []string{"al@example.com"}, "al@example.com"},
		{"ip", Question{Name: "n", Kind: "ip"}, []string{"10.0.0.1"}, "10.0.0.1"},
		{"zip", Question{Name: "n", Kind: "zip"}, []string{"90210"}, "90210"},
		{"state", Question{Name: "n", Kind: "state"}, []string{"texas"}, "TX"},
		{"filename", Question{Name: "n", Kind: "filename"}, []string{"notes.txt"}, "notes.txt"},
		{"password keeps spaces", Question{Name: "n", Kind: "password"}, []string{" pw "}, " pw "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scriptedQuestion(tt.q, tt.lines...).Ask(Defaults{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionAsk_Date(t *testing.T) {
	got, err := scriptedQuestion(Question{Name: "d", Kind: "date"}, "2026-03-14").Ask(Defaults{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestQuestionAsk_IntBounds(t *testing.T) {
	min, max := 1.0, 65535.0
	q := scriptedQuestion(Question{Name: "port", Kind: "int", Min: &min, Max: &max}, "0", "8080")

	got, err := q.Ask(Defaults{})
	require.NoError(t, err)
	assert.Equal(t, 8080, got)
}

func TestQuestionAsk_DefaultOnLimit(t *testing.T) {
	q := scriptedQuestion(Question{Name: "n", Kind: "int", Limit: 2, Default: "7"}, "cat", "dog")

	got, err := q.Ask(Defaults{})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestQuestionAsk_SessionDefaultsApply(t *testing.T) {
	// The question sets no limit, so the session default of 1 applies.
	q := scriptedQuestion(Question{Name: "n", Kind: "int"}, "cat", "42")

	_, err := q.Ask(Defaults{Limit: 1})
	var limitErr *prompt.RetryLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 1, limitErr.Limit)
}

func TestQuestionAsk_OwnLimitWinsOverDefaults(t *testing.T) {
	q := scriptedQuestion(Question{Name: "n", Kind: "int", Limit: 2}, "cat", "42")

	got, err := q.Ask(Defaults{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestQuestionAsk_BadDefaults(t *testing.T) {
	_, err := scriptedQuestion(Question{Name: "n", Kind: "int", Default: "seven"}, "1").Ask(Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default "seven" is not an int`)

	_, err = scriptedQuestion(Question{Name: "n", Kind: "number", Default: "pi"}, "1").Ask(Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default "pi" is not a number`)
}

func TestQuestionAsk_UnknownKind(t *testing.T) {
	_, err := Question{Name: "n", Kind: "quantum"}.Ask(Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "quantum"`)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "42", format(42))
	assert.Equal(t, "true", format(true))
	assert.Equal(t, "hello", format("hello"))

	ts := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14T15:09:00Z", format(ts))
}
