package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeForm(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadForm(t *testing.T) {
	path := writeForm(t, `
questions:
  - name: email
    kind: email
    prompt: "Work email: "
  - name: seats
    kind: int
    prompt: "Seats: "
    min: 1
    default: "1"
`)

	form, err := LoadForm(path)
	require.NoError(t, err)
	require.Len(t, form.Questions, 2)

	assert.Equal(t, "email", form.Questions[0].Name)
	assert.Equal(t, "email", form.Questions[0].Kind)
	assert.Equal(t, "seats", form.Questions[1].Name)
	require.NotNil(t, form.Questions[1].Min)
	assert.Equal(t, 1.0, *form.Questions[1].Min)
	assert.Equal(t, "1", form.Questions[1].Default)
}

func TestLoadForm_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"not yaml", "{{nope", "parsing form"},
		{"no questions", "questions: []", "has no questions"},
		{"unnamed question", "questions:\n  - kind: str", "question 1 has no name"},
		{"duplicate names", "questions:\n  - name: a\n  - name: a", `duplicate question name "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadForm(writeForm(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadForm_MissingFile(t *testing.T) {
	_, err := LoadForm(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading form")
}

func TestFormRun(t *testing.T) {
	form := &Form{Questions: []Question{
		scriptedQuestion(Question{Name: "name", Kind: "str"}, "Ada"),
		scriptedQuestion(Question{Name: "seats", Kind: "int"}, "3"),
		scriptedQuestion(Question{Name: "vip", Kind: "bool"}, "t"),
	}}

	answers, err := form.Run(Defaults{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Ada", "seats": 3, "vip": true}, answers)
}

func TestFormRun_AbortsOnFirstFailure(t *testing.T) {
	form := &Form{Questions: []Question{
		scriptedQuestion(Question{Name: "a", Kind: "int", Limit: 1}, "cat"),
		scriptedQuestion(Question{Name: "b", Kind: "str"}, "never asked"),
	}}

	_, err := form.Run(Defaults{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `question "a"`)
}
