package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizview/internal/quiz"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheck_Embedded(t *testing.T) {
	out, err := execute(t, "check", "--data", "embedded")
	require.NoError(t, err)
	assert.Contains(t, out, "embedded: 3 questions OK")
}

func TestCheck_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"question_number": 1}]`), 0o600))

	_, err := execute(t, "check", "--data", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, quiz.ErrDataLoad)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quizview")
}
