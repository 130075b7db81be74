package consolehandler

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/formatter"
	"github.com/philipp01105/domainlog/handler"
	"github.com/philipp01105/domainlog/internal/osutil"
)

// Config holds configuration for the console handler
type Config struct {
	// Stdout receives MESSAGE, INFO, DEBUG and TRACE lines (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives ERROR, CRITICAL and WARNING lines (default: os.Stderr)
	Stderr io.Writer
	// Formatter to use for both streams (default: TextFormatter)
	Formatter formatter.Formatter
	// Color enables coloured level names on streams that are terminals.
	// Ignored when Formatter is set.
	Color bool
	// CoarseClock takes timestamps from core.CoarseNow instead of time.Now
	CoarseClock bool
	// Clock overrides the time source (default: time.Now)
	Clock func() time.Time
	// ThreadID overrides the thread id source (default: osutil.ThreadID)
	ThreadID func() int
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Clock == nil {
		if cfg.CoarseClock {
			core.StartCoarseClock()
			cfg.Clock = core.CoarseNow
		} else {
			cfg.Clock = time.Now
		}
	}
	if cfg.ThreadID == nil {
		cfg.ThreadID = osutil.ThreadID
	}
}

// stream is one output destination with the formatter chosen for it.
type stream struct {
	w               io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	concurrentSafe  bool
	mu              sync.Mutex
}

func newStream(w io.Writer, f formatter.Formatter) *stream {
	s := &stream{
		w:              w,
		formatter:      f,
		concurrentSafe: isConcurrentSafeWriter(w),
	}
	// Cache WriterFormatter for zero-alloc path
	s.writerFormatter, _ = f.(formatter.WriterFormatter)
	return s
}

func (s *stream) write(r *core.Record) error {
	if !s.concurrentSafe {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if s.writerFormatter != nil {
		return s.writerFormatter.FormatTo(r, s.w)
	}
	data, err := s.formatter.Format(r)
	if err != nil {
		return err
	}
	_, err = s.w.Write(data)
	return err
}

// Console writes one line per message, routing by severity: ERROR,
// CRITICAL and WARNING go to Stderr, every other level to Stdout. The
// routing is fixed; swap the whole handler to change it.
//
// Write errors are not reported to the caller, only counted in Stats.
type Console struct {
	stdout *stream
	stderr *stream
	now    func() time.Time
	tid    func() int
	stats  *handler.Stats
}

// New creates a console handler
func New(cfg Config) *Console {
	applyDefaults(&cfg)
	return &Console{
		stdout: newStream(cfg.Stdout, pickFormatter(cfg, cfg.Stdout)),
		stderr: newStream(cfg.Stderr, pickFormatter(cfg, cfg.Stderr)),
		now:    cfg.Clock,
		tid:    cfg.ThreadID,
		stats:  handler.NewStats(),
	}
}

func pickFormatter(cfg Config, w io.Writer) formatter.Formatter {
	if cfg.Formatter != nil {
		return cfg.Formatter
	}
	return formatter.NewTextFormatter(formatter.Config{
		Color: cfg.Color && isTerminal(w),
	})
}

// Handle formats and writes one message. It implements handler.Handler.
func (c *Console) Handle(level core.Level, domain, message string) {
	r := core.Record{
		Time:     c.now(),
		Level:    level,
		Domain:   domain,
		Message:  message,
		ThreadID: c.tid(),
	}

	s := c.stdout
	if level.Severe() {
		s = c.stderr
	}
	if err := s.write(&r); err != nil {
		c.stats.IncrementFailed()
		return
	}
	c.stats.IncrementProcessed(level)
}

// Func returns c as a two-part handler that ignores its data argument.
func (c *Console) Func() handler.Func {
	return handler.Of(c)
}

// Stats returns a snapshot of the current statistics
func (c *Console) Stats() handler.Snapshot {
	return c.stats.GetSnapshot()
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default is the built-in handler: a Console on os.Stdout and os.Stderr
// with the standard text layout. The data argument is ignored. It is
// exported so custom handlers can fall back to it.
func Default(level core.Level, domain, message string, _ any) {
	defaultOnce.Do(func() {
		defaultConsole = New(Config{})
	})
	defaultConsole.Handle(level, domain, message)
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
