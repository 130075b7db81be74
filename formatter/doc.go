// Package formatter defines how records are rendered into output lines.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// TextFormatter produces the classic single-line layout:
//
//	2006/01/02 15:04:05.0123: [ 4242]:  WARNING:      storage: disk almost full
//
// Seconds come from TimestampFormat, milliseconds are always appended
// as four zero-padded digits, the thread id is right-justified in five
// columns, the level name in eight and the domain in twelve. Values
// wider than their column are printed in full.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
