package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir isolates a test from any scorekeeper.yaml in the package directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}
