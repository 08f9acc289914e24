package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewLoggerLevels(t *testing.T) {
	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.DebugLevel))
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	loud, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, loud.Core().Enabled(zapcore.DebugLevel))
}

// useRootCmd points the shared root command at in/out/args and puts the
// defaults back when the test ends.
func useRootCmd(t *testing.T, in string, out *bytes.Buffer, args ...string) {
	t.Helper()
	rootCmd.SetIn(strings.NewReader(in))
	rootCmd.SetOut(out)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
}

func TestRootCommandRunsMenu(t *testing.T) {
	var out bytes.Buffer
	useRootCmd(t, "abc\n4\n8\n", &out)

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Choose a topic:")
	assert.Contains(t, got, "invalid input")
	assert.Contains(t, got, "t := true           → true")
	assert.Contains(t, got, "var f bool = false  → false")
}

func TestRootCommandRejectsArgs(t *testing.T) {
	useRootCmd(t, "", &bytes.Buffer{}, "extra")

	assert.Error(t, rootCmd.Execute())
}

func TestRootCommandLeavesNoState(t *testing.T) {
	t.Run("run", func(t *testing.T) {
		useRootCmd(t, "8\n", &bytes.Buffer{})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Equal(t, os.Stdin, rootCmd.InOrStdin())
	assert.Equal(t, os.Stdout, rootCmd.OutOrStdout())
}
