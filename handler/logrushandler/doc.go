// Package logrushandler forwards domainlog messages to logrus, with the
// domain as a "domain" field.
package logrushandler
