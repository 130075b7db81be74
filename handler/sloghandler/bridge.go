package sloghandler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/domainlog/logger"
)

// Bridge is a slog.Handler that feeds records into a domainlog Logger, so
// code written against log/slog ends up at the same single handler.
//
// Attributes are appended to the message as key=value pairs; group names
// prefix their keys with "group.". A top-level "domain" attribute
// overrides the bridge's domain for that record.
type Bridge struct {
	logger *logger.Logger
	domain string
	attrs  string // pre-rendered " k=v" pairs from WithAttrs
	group  string
}

// NewBridge creates a slog.Handler that logs through l under domain.
func NewBridge(l *logger.Logger, domain string) *Bridge {
	return &Bridge{
		logger: l,
		domain: domain,
	}
}

// Enabled reports whether the Logger currently has a handler. domainlog
// does no level filtering of its own.
func (b *Bridge) Enabled(_ context.Context, _ slog.Level) bool {
	return b.logger.Enabled()
}

// Handle renders the record and logs it.
func (b *Bridge) Handle(_ context.Context, r slog.Record) error {
	domain := b.domain
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(b.attrs)
	r.Attrs(func(a slog.Attr) bool {
		if b.group == "" && a.Key == DomainKey {
			domain = a.Value.Resolve().String()
			return true
		}
		appendAttr(&sb, b.group, a)
		return true
	})

	b.logger.Log(FromSlog(r.Level), domain, "%s", sb.String())
	return nil
}

// WithAttrs returns a new Bridge with additional attributes.
func (b *Bridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return b
	}
	nb := *b
	var sb strings.Builder
	sb.WriteString(b.attrs)
	for _, a := range attrs {
		if b.group == "" && a.Key == DomainKey {
			nb.domain = a.Value.Resolve().String()
			continue
		}
		appendAttr(&sb, b.group, a)
	}
	nb.attrs = sb.String()
	return &nb
}

// WithGroup returns a new Bridge with the given group name.
func (b *Bridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	nb := *b
	if b.group != "" {
		nb.group = b.group + "." + name
	} else {
		nb.group = name
	}
	return &nb
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
