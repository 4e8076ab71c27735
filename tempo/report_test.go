package tempo

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportListsAllTimers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	m := NewTimerManager()
	require.NoError(t, m.Time("alpha", func() {}))
	require.NoError(t, m.Time("beta", func() {}))

	buf.Reset()
	m.Report()

	out := buf.String()
	assert.Contains(t, out, "Timers")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "beta")
}

func TestReportEmptyManager(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	m := NewTimerManager()
	m.Report()

	assert.Contains(t, buf.String(), "Timers")
}
