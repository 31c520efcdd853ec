package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpressionFile(t *testing.T) {
	path := CreateExpressionFile(t, "(Av!A)", "(A^!A)")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "(Av!A)\n(A^!A)\n", string(content))
}

func TestMissingFilePath(t *testing.T) {
	_, err := os.Stat(MissingFilePath(t, "verdicts.csv"))
	assert.True(t, os.IsNotExist(err))
}
