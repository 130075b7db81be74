package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/domainlog/core"
)

func testRecord() *core.Record {
	return &core.Record{
		Time:     time.Date(2026, 2, 18, 13, 4, 5, 7*int(time.Millisecond)+999, time.Local),
		Level:    core.WarningLevel,
		Domain:   "cluster",
		Message:  "test message",
		ThreadID: 17,
	}
}

func TestTextFormatter_Layout(t *testing.T) {
	f := NewTextFormatter(Config{})

	result, err := f.Format(testRecord())
	require.NoError(t, err)

	assert.Equal(t, "2026/02/18 13:04:05.0007: [   17]:  WARNING:      cluster: test message\n", string(result))
}

func TestTextFormatter_Levels(t *testing.T) {
	f := NewTextFormatter(Config{})

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.ErrorLevel, "   ERROR: "},
		{core.CriticalLevel, "CRITICAL: "},
		{core.WarningLevel, " WARNING: "},
		{core.MessageLevel, " MESSAGE: "},
		{core.InfoLevel, "    INFO: "},
		{core.DebugLevel, "   DEBUG: "},
		{core.TraceLevel, "   TRACE: "},
		{core.Level(99), " UNKNOWN: "},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			r := testRecord()
			r.Level = tt.level
			out, err := f.Format(r)
			require.NoError(t, err)
			assert.Contains(t, string(out), "]: "+tt.want)
		})
	}
}

func TestTextFormatter_WideColumns(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := testRecord()
	r.Domain = "a-domain-longer-than-twelve"
	r.ThreadID = 1234567

	out, err := f.Format(r)
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "[1234567]")
	assert.Contains(t, line, ": a-domain-longer-than-twelve: test message")
}

func TestTextFormatter_EmptyDomainAndMessage(t *testing.T) {
	f := NewTextFormatter(Config{})

	r := testRecord()
	r.Domain = ""
	r.Message = ""

	out, err := f.Format(r)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), ":             : \n"), string(out))
}

func TestTextFormatter_TimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: "15:04:05"})

	out, err := f.Format(testRecord())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "13:04:05.0007: "), string(out))
}

func TestTextFormatter_Color(t *testing.T) {
	plain := NewTextFormatter(Config{})
	colored := NewTextFormatter(Config{Color: true})

	p, err := plain.Format(testRecord())
	require.NoError(t, err)
	c, err := colored.Format(testRecord())
	require.NoError(t, err)

	assert.NotContains(t, string(p), "\x1b[")
	assert.Contains(t, string(c), "\x1b[")
	assert.Contains(t, string(c), " WARNING")
	assert.Contains(t, string(c), "cluster: test message\n")
}

func TestTextFormatter_FormatTo(t *testing.T) {
	f := NewTextFormatter(Config{})

	var buf bytes.Buffer
	require.NoError(t, f.FormatTo(testRecord(), &buf))

	want, err := f.Format(testRecord())
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextFormatter_FormatToError(t *testing.T) {
	f := NewTextFormatter(Config{})
	assert.EqualError(t, f.FormatTo(testRecord(), failingWriter{}), "disk full")
}

func TestBufferPool_LargeBuffersDropped(t *testing.T) {
	buf := getBuffer()
	buf.Grow(128 * 1024)
	putBuffer(buf)

	next := getBuffer()
	defer putBuffer(next)
	assert.Equal(t, 0, next.Len())
}

func BenchmarkTextFormatter_FormatTo(b *testing.B) {
	f := NewTextFormatter(Config{})
	r := testRecord()
	var buf bytes.Buffer

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = f.FormatTo(r, &buf)
	}
}
