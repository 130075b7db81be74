package metricshandler

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/domainlog/core"
	"github.com/philipp01105/domainlog/handler"
)

// Config holds configuration for the message counter
type Config struct {
	// Registerer to register the counter with (default: prometheus.DefaultRegisterer)
	Registerer prometheus.Registerer
	// Namespace of the metric name (default: "domainlog")
	Namespace string
	// DomainLabel adds the domain as a label. Leave off when domains are
	// unbounded, e.g. built from user input.
	DomainLabel bool
}

// Counter counts dispatched messages in a Prometheus counter vector named
// <namespace>_messages_total, labelled by level and optionally domain.
type Counter struct {
	vec         *prometheus.CounterVec
	domainLabel bool
}

// New creates the counter and registers it. Registering the same
// configuration twice reuses the existing collector.
func New(cfg Config) (*Counter, error) {
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "domainlog"
	}

	labels := []string{"level"}
	if cfg.DomainLabel {
		labels = append(labels, "domain")
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "messages_total",
		Help:      "Number of log messages dispatched to the active handler.",
	}, labels)

	if err := cfg.Registerer.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("register message counter: %w", err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("register message counter: existing collector is %T", are.ExistingCollector)
		}
		vec = existing
	}

	return &Counter{vec: vec, domainLabel: cfg.DomainLabel}, nil
}

// Wrap returns a handler that counts each message and then passes it,
// with its data, to next. Wrapping the disabled (nil) handler yields the
// disabled handler, so nothing is counted while logging is off.
func (c *Counter) Wrap(next handler.Func) handler.Func {
	if next == nil {
		return nil
	}
	return func(level core.Level, domain, message string, data any) {
		c.observe(level, domain)
		next(level, domain, message, data)
	}
}

func (c *Counter) observe(level core.Level, domain string) {
	if c.domainLabel {
		c.vec.WithLabelValues(level.String(), domain).Inc()
		return
	}
	c.vec.WithLabelValues(level.String()).Inc()
}
