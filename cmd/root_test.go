package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	// Drain the pipe concurrently so fn never blocks on a full pipe buffer.
	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = io.Copy(&buf, r)
	}()

	fn()

	_ = w.Close()
	os.Stdout = old
	<-done
	return buf.String()
}

func TestRunCommand_MalformedRate_Errors(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "not-a-number", "10", "5"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestRunCommand_WrongArgCount_Errors(t *testing.T) {
	rootCmd.SetArgs([]string{"run", "1.0", "10"})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestRunCommand_ZeroIntensity_HeaderOnly(t *testing.T) {
	// GIVEN arrival intensity 0.0, 10 blocks, 5 runs with a fixed seed
	rootCmd.SetArgs([]string{"run", "0.0", "10", "5", "--seed", "1", "--log", "error"})

	// WHEN the command runs
	var err error
	output := captureStdout(t, func() {
		err = rootCmd.Execute()
	})

	// THEN the parameter header appears and no data rows follow it
	assert.NoError(t, err)
	assert.Contains(t, output, "initial TPS: 0.000000, num blocks: 10, num simulations: 5\n-\n")
	assert.Equal(t, "initial TPS: 0.000000, num blocks: 10, num simulations: 5\n-\n", output)
}

func TestRunCommand_FixedSeed_EmitsCumulativeReport(t *testing.T) {
	// GIVEN a small loaded batch with a fixed seed
	rootCmd.SetArgs([]string{"run", "3.5", "20", "2", "--seed", "7", "--log", "error"})

	var err error
	output := captureStdout(t, func() {
		err = rootCmd.Execute()
	})

	// THEN the header is followed by ` | `-separated rows ending at a
	// cumulative share of one
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.Equal(t, "initial TPS: 3.500000, num blocks: 20, num simulations: 2", lines[0])
	assert.Equal(t, "-", lines[1])
	if len(lines) < 3 {
		t.Fatal("expected data rows after the header")
	}
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "| 1.000000"),
		"last row %q must close the cumulative distribution", lines[len(lines)-1])
}
