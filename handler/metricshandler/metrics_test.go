package metricshandler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/logger"
)

func TestWrap_CountsAndForwards(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(Config{Registerer: reg, DomainLabel: true})
	require.NoError(t, err)

	var got []string
	var gotData []any
	next := func(level core.Level, domain, message string, data any) {
		got = append(got, domain+":"+message)
		gotData = append(gotData, data)
	}

	l := logger.New()
	l.SetHandler(c.Wrap(next), "payload")
	l.Infof("test", "hello %s", "world")
	l.Infof("test", "again")
	l.Errorf("db", "down")

	assert.Equal(t, []string{"test:hello world", "test:again", "db:down"}, got)
	assert.Equal(t, []any{"payload", "payload", "payload"}, gotData)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.vec.WithLabelValues("INFO", "test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.vec.WithLabelValues("ERROR", "db")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.vec))
}

func TestWrap_LevelOnly(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(Config{Registerer: reg, Namespace: "app"})
	require.NoError(t, err)

	fn := c.Wrap(func(core.Level, string, string, any) {})
	fn(core.WarningLevel, "a", "x", nil)
	fn(core.WarningLevel, "b", "y", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.vec.WithLabelValues("WARNING")))
	n, err := testutil.GatherAndCount(reg, "app_messages_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWrap_NilStaysDisabled(t *testing.T) {
	c, err := New(Config{Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)

	assert.Nil(t, c.Wrap(nil))
}

func TestNew_ReusesRegisteredCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c1, err := New(Config{Registerer: reg})
	require.NoError(t, err)
	c2, err := New(Config{Registerer: reg})
	require.NoError(t, err)

	assert.Same(t, c1.vec, c2.vec)
}

func TestNew_ConflictingRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(Config{Registerer: reg})
	require.NoError(t, err)

	_, err = New(Config{Registerer: reg, DomainLabel: true})
	assert.ErrorContains(t, err, "register message counter")
}
