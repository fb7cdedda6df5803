package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	superTiebreak = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid super tie-break match", func(t *testing.T) {
		out, err := runCLI(t, "validate", "6-4 4-6 10-8", "--super-tiebreak")
		require.NoError(t, err)
		assert.Contains(t, out, "Valid: team 1 wins 6-4 4-6 10-8")
		assert.Contains(t, out, "Sets 2-1, games 10-10")
	})

	t.Run("third set without super tie-break must be a normal set", func(t *testing.T) {
		out, err := runCLI(t, "validate", "6-4", "4-6", "10-8")
		require.Error(t, err)
		assert.Contains(t, out, "Invalid:")
	})

	t.Run("unparseable score", func(t *testing.T) {
		_, err := runCLI(t, "validate", "six-four")
		assert.Error(t, err)
	})
}
