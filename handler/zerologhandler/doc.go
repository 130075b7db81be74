// Package zerologhandler forwards domainlog messages to a zerolog.Logger,
// with the domain as a "domain" field.
package zerologhandler
