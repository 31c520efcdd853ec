package helpers_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile creates an empty file in the test's temporary directory. The
// directory, and the file with it, is removed when the test is done.
func CreateTempFile(t *testing.T, pattern string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)

	t.Cleanup(func() {
		tmpFile.Close()
	})

	return tmpFile
}

// CreateTempFileWithContents writes content to a new temporary file and
// returns its path.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, "tautology-checker-test-*")

	_, err := tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	return tmpFile.Name()
}

// CreateExpressionFile writes one expression per line, the format read by
// the batch command.
func CreateExpressionFile(t *testing.T, expressions ...string) string {
	t.Helper()

	return CreateTempFileWithContents(t, strings.Join(expressions, "\n")+"\n")
}

// MissingFilePath returns a path inside the test's temporary directory that
// does not exist.
func MissingFilePath(t *testing.T, name string) string {
	t.Helper()

	return t.TempDir() + string(os.PathSeparator) + name
}
