package params

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUsage(t *testing.T) {
	var (
		audible  bool
		count    uint
		interval float32
		dest     string
	)
	p := New(Program("overview"), Description("Probes a host."))
	require.NoError(t, Bind(p, &audible, []string{"-a"}, Help("audible ping")))
	require.NoError(t, Bind(p, &count, []string{"-c", "--count"}, Help("number of probes")))
	require.NoError(t, Bind(p, &interval, []string{"-i", "--interval"}, Metavar("SECONDS")))
	require.NoError(t, Bind(p, &dest, []string{"dest"}, Required(), Help("host to probe")))

	var buf bytes.Buffer
	p.WriteUsage(&buf)
	out := buf.String()
	assert.Contains(t, out, "Usage:\n  overview [OPTIONS...] <DEST>\n")
	assert.Contains(t, out, "Probes a host.\n")
	assert.Contains(t, out, "Arguments:\n")
	assert.Contains(t, out, "DEST")
	assert.Contains(t, out, "host to probe")
	assert.Contains(t, out, "Options:\n")
	assert.Contains(t, out, "-a")
	assert.Contains(t, out, "audible ping")
	assert.Contains(t, out, "-c, --count COUNT")
	assert.Contains(t, out, "-i, --interval SECONDS")
}

func TestWriteUsageOptionalPositional(t *testing.T) {
	p := New()
	require.NoError(t, Declare[string](p, []string{"src"}))
	var buf bytes.Buffer
	p.WriteUsage(&buf)
	assert.Contains(t, buf.String(), "Usage:\n  program [SRC]\n")
}

func TestMetavarNames(t *testing.T) {
	for _, c := range []struct {
		names    []string
		expected string
	}{
		{[]string{"-c", "--count"}, "COUNT"},
		{[]string{"--listen-addr"}, "LISTEN_ADDR"},
		{[]string{"dest"}, "DEST"},
		{nil, "ARG"},
	} {
		s := param{names: c.names}
		assert.EqualValues(t, c.expected, s.metavarName(), "%q", c.names)
	}
}
