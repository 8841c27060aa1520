package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/etgrep"
	"github.com/farcloser/etgrep/internal/output"
)

func TestReport(t *testing.T) {
	t.Parallel()

	result := etgrep.Extract("transformer.0.mha.qkv transformer.0.mha.qkv COMP_NODE foo.bar")

	var buf bytes.Buffer
	require.NoError(t, output.Report(&buf, "/traces/generated_attn/rank.0.et", result))

	banner := strings.Repeat("=", 80)
	expected := banner + "\n" +
		"Operations found in rank.0.et\n" +
		banner + "\n" +
		"\n" +
		"Total unique operations: 2\n" +
		"\n" +
		"Operations grouped by prefix:\n" +
		"\n" +
		"foo.bar:\n" +
		"  - foo.bar (appears 2 time(s))\n" +
		"\n" +
		"transformer.0.mha:\n" +
		"  - transformer.0.mha.qkv (appears 2 time(s))\n" +
		"\n" +
		"\n" +
		banner + "\n" +
		"All unique operations (sorted):\n" +
		banner + "\n" +
		"  foo.bar (2)\n" +
		"  transformer.0.mha.qkv (2)\n"

	assert.Equal(t, expected, buf.String())
}

func TestReportEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, output.Report(&buf, "empty.et", etgrep.Extract("")))

	assert.Contains(t, buf.String(), "Total unique operations: 0\n")
	assert.True(t, strings.HasSuffix(buf.String(), "All unique operations (sorted):\n"+strings.Repeat("=", 80)+"\n"))
}
