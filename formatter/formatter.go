package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/domainlog/core"
)

// Formatter turns a record into a single output line
type Formatter interface {
	// Format formats a record into bytes
	Format(r *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it to w with a single Write call
	FormatTo(r *core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat is the layout for the seconds part of the timestamp
	// (default: DefaultTimestampFormat). Milliseconds are always appended.
	TimestampFormat string
	// Color wraps the level name in ANSI colour sequences
	Color bool
}

// DefaultTimestampFormat renders local time as 2006/01/02 15:04:05.
const DefaultTimestampFormat = "2006/01/02 15:04:05"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
