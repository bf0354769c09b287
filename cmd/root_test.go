package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_PrintsUsageWithoutServing(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"--help"})

	require.NoError(t, RootCmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "fmh-devserver")
}

func TestConfirmContinue_SkipsWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer

	// Plain reader: not a file at all
	require.NoError(t, confirmContinue(bytes.NewBufferString("ignored"), &out))
	assert.Empty(t, out.String(), "no prompt expected without a terminal")
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	printBanner(&out, "http://localhost:8080")

	assert.Contains(t, out.String(), "http://localhost:8080")
	assert.Contains(t, out.String(), "FMH-Management-Panel.html")
	assert.Contains(t, out.String(), "FMH-Connection-Diagnostic.html")
	assert.Contains(t, out.String(), "Ctrl+C")
}
