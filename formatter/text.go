package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/philipp01105/domainlog/core"
)

// Column widths of the text line.
const (
	threadIDWidth = 5
	levelWidth    = 8
	domainWidth   = 12
	millisWidth   = 4
)

// TextFormatter renders records as
//
//	2006/01/02 15:04:05.0123: [ 4242]:     INFO:         test: hello world
//
// i.e. local timestamp with milliseconds, thread id, then the level name and
// domain right-justified, then the message.
type TextFormatter struct {
	Config
	levelColors map[core.Level]*color.Color
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	f := &TextFormatter{Config: cfg}
	if cfg.Color {
		f.levelColors = newLevelColors()
	}
	return f
}

func newLevelColors() map[core.Level]*color.Color {
	colors := map[core.Level]*color.Color{
		core.ErrorLevel:    color.New(color.FgRed, color.Bold),
		core.CriticalLevel: color.New(color.FgMagenta, color.Bold),
		core.WarningLevel:  color.New(color.FgYellow),
		core.MessageLevel:  color.New(color.FgGreen),
		core.InfoLevel:     color.New(color.FgCyan),
		core.DebugLevel:    color.New(color.FgBlue),
		core.TraceLevel:    color.New(color.Faint),
	}
	// Override color.NoColor, which only looks at os.Stdout.
	for _, c := range colors {
		c.EnableColor()
	}
	return colors
}

// Format formats a record as text
func (f *TextFormatter) Format(r *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(r, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *TextFormatter) FormatTo(r *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(r, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *TextFormatter) formatToBuffer(r *core.Record, buf *bytes.Buffer) {
	t := r.Time.Local()
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	var num [20]byte
	buf.WriteByte('.')
	ms := int64(t.Nanosecond() / int(time.Millisecond))
	writePadded(buf, strconv.AppendInt(num[:0], ms, 10), millisWidth, '0')

	buf.WriteString(": [")
	writePadded(buf, strconv.AppendInt(num[:0], int64(r.ThreadID), 10), threadIDWidth, ' ')
	buf.WriteString("]: ")

	name := r.Level.String()
	if c, ok := f.levelColors[r.Level]; ok {
		if n := levelWidth - len(name); n > 0 {
			name = strings.Repeat(" ", n) + name
		}
		buf.WriteString(c.Sprint(name))
	} else {
		writePaddedString(buf, name, levelWidth)
	}

	buf.WriteString(": ")
	writePaddedString(buf, r.Domain, domainWidth)
	buf.WriteString(": ")
	buf.WriteString(r.Message)
	buf.WriteByte('\n')
}

// writePadded writes b right-justified in a field of the given width.
// Values wider than the field are written in full.
func writePadded(buf *bytes.Buffer, b []byte, width int, pad byte) {
	for i := len(b); i < width; i++ {
		buf.WriteByte(pad)
	}
	buf.Write(b)
}

func writePaddedString(buf *bytes.Buffer, s string, width int) {
	for i := len(s); i < width; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteString(s)
}
