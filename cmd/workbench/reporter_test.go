package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSDFormatting(t *testing.T) {
	assert.Equal(t, "$9,800.00", usd(9800))
	assert.Equal(t, "$348,300.00", usd(348300))
	assert.Equal(t, "$0.50", usd(0.5))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", padRight("abc", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "a ve…", truncateName("a very long model name", 5))
}

func TestTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	table(&buf, []string{"Model", "Cost"}, [][]string{
		{"claude_sonnet", "$9,800.00"},
		{"opus", "$15,500.00"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Model")
	assert.Contains(t, lines[1], "-----")
	// The cost column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[2], "$"), strings.Index(lines[3], "$"))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"total": 3}))
	assert.Contains(t, buf.String(), "\"total\": 3")
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("table"))
	assert.NoError(t, validateFormat("json"))
	assert.Error(t, validateFormat("yaml"))
}
