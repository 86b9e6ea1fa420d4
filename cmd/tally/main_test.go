package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/tally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "tally version "+strings.TrimSpace(tally.Version)+"\n", out)
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "", "eval", "--precision", "2", "10/3", "2*(3+4)")
	require.NoError(t, err)
	assert.Equal(t, "3.33\n14\n", out)
}

func TestEvalCommand_Failure(t *testing.T) {
	out, err := execute(t, "", "eval", "1/0")
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(out, "Error\n"))
}

func TestRunCommand_LineMode(t *testing.T) {
	out, err := execute(t, "7*6\n", "run", "--line")
	require.NoError(t, err)
	assert.Equal(t, "7*6 = 42\n", out)
}

func TestRootRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "", "eval", "--store", "etcd", "1")
	assert.ErrorContains(t, err, "store.driver")
}
