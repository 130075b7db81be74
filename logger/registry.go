package logger

import (
	"sync"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
	"github.com/philipp01105/domainlog/handler/consolehandler"
)

// registry holds the active handler and its data. One mutex guards every
// read, write and handler call; there is no reader/writer split.
type registry struct {
	once    sync.Once
	initial func() (handler.Func, any)

	mu   sync.Mutex
	fn   handler.Func
	data any
}

// ensureInitialized installs the initial handler exactly once, no matter
// how many goroutines race to use the registry first.
func (r *registry) ensureInitialized() {
	r.once.Do(func() {
		fn, data := r.initialHandler()
		r.mu.Lock()
		r.fn, r.data = fn, data
		r.mu.Unlock()
	})
}

// initialHandler returns the handler installed on first use. A registry
// without one, such as the zero Logger, starts with the console handler.
func (r *registry) initialHandler() (handler.Func, any) {
	if r.initial == nil {
		return consolehandler.New(consolehandler.Config{}).Func(), nil
	}
	return r.initial()
}

// set replaces handler and data as one unit. When set is the first use,
// the pair is installed inside the once and the initial handler is never
// built.
func (r *registry) set(fn handler.Func, data any) {
	first := false
	r.once.Do(func() {
		r.mu.Lock()
		r.fn, r.data = fn, data
		r.mu.Unlock()
		first = true
	})
	if first {
		return
	}
	r.mu.Lock()
	r.fn, r.data = fn, data
	r.mu.Unlock()
}

// get returns the current pair.
func (r *registry) get() (handler.Func, any) {
	r.ensureInitialized()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fn, r.data
}

// invoke calls the current handler with the lock held for the whole call,
// so handler bodies never overlap. A nil handler drops the message.
func (r *registry) invoke(level core.Level, domain, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fn == nil {
		return
	}
	r.fn(level, domain, message, r.data)
}
