package logger

import (
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// saveDefault restores the process-wide handler when the test ends.
func saveDefault(t *testing.T) {
	t.Helper()
	fn, data := Handler()
	t.Cleanup(func() { SetHandler(fn, data) })
}

func TestDefault_Singleton(t *testing.T) {
	var wg sync.WaitGroup
	loggers := make([]*Logger, 16)
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, l := range loggers {
		assert.Same(t, loggers[0], l)
	}
}

func TestDefault_StartsWithConsole(t *testing.T) {
	fn, data := Handler()
	assert.NotNil(t, fn)
	assert.Nil(t, data)
}

// The process-wide logger is shared by every test in this binary, so its
// first use is checked in a child process that does nothing else.
func TestDefault_FirstUseWritesToStdout(t *testing.T) {
	if os.Getenv("DOMAINLOG_DEFAULT_CHILD") == "1" {
		Infof("test", "hello %s", "world")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDefault_FirstUseWritesToStdout$")
	cmd.Env = append(os.Environ(), "DOMAINLOG_DEFAULT_CHILD=1")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	require.NoError(t, err, stderr.String())

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "hello world") {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 1, string(out))
	assert.Contains(t, lines[0], "    INFO: ")
	assert.Contains(t, lines[0], "        test: hello world")
	assert.NotContains(t, stderr.String(), "hello world")
}

func TestPackageFunctions(t *testing.T) {
	saveDefault(t)

	rec := &recorder{}
	SetHandler(rec.handle, "pkg")

	Log(InfoLevel, "test", "hello %s", "world")
	Errorf("e", "1")
	Criticalf("c", "2")
	Warningf("w", "3")
	Messagef("m", "4")
	Infof("i", "5")
	Debugf("d", "6")
	Tracef("t", "7")

	calls := rec.snapshot()
	require.Len(t, calls, 8)
	assert.Equal(t, call{InfoLevel, "test", "hello world", "pkg"}, calls[0])
	levels := []Level{ErrorLevel, CriticalLevel, WarningLevel, MessageLevel, InfoLevel, DebugLevel, TraceLevel}
	for i, l := range levels {
		assert.Equal(t, l, calls[i+1].level)
		assert.Equal(t, "pkg", calls[i+1].data)
	}
}

func TestPackageFunctions_Disabled(t *testing.T) {
	saveDefault(t)

	var renders atomic.Int32
	SetHandler(nil, nil)
	Log(ErrorLevel, "off", "%v", spy{&renders})
	assert.Zero(t, renders.Load())

	fn, _ := Handler()
	assert.Nil(t, fn)
}

func TestPackageFunctions_ConcurrentRegistration(t *testing.T) {
	saveDefault(t)

	const goroutines = 50
	var torn atomic.Int64

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			SetHandler(func(_ Level, _, _ string, data any) {
				if data != id {
					torn.Add(1)
				}
			}, id)
			Debugf("race", "from %d", id)
		}(g)
	}
	wg.Wait()

	assert.Zero(t, torn.Load())
	_, data := Handler()
	id, ok := data.(int)
	require.True(t, ok)
	assert.True(t, id >= 0 && id < goroutines, "final data %d is not one of the registered values", id)
}

func TestSetHandlerOf_Package(t *testing.T) {
	saveDefault(t)

	var n atomic.Int32
	SetHandlerOf(handlerFunc(func(Level, string, string) { n.Add(1) }))
	Infof("closure", "x")

	assert.Equal(t, int32(1), n.Load())
}

type handlerFunc func(Level, string, string)

func (f handlerFunc) Handle(level Level, domain, message string) { f(level, domain, message) }
