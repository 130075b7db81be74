// Package zaphandler forwards domainlog messages to a zap.Logger.
//
// The domain travels as a "domain" string field. zap's own level
// filtering applies: messages below the core's level are dropped by
// zap, not by domainlog.
package zaphandler
