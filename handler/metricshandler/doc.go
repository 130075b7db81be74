// Package metricshandler decorates a handler with a Prometheus counter.
//
// It is not a fan-out: the wrapped handler is still the only place
// messages go. The counter only records that a message was dispatched,
// before the wrapped handler runs.
//
//	c, err := metricshandler.New(metricshandler.Config{DomainLabel: true})
//	if err != nil {
//	    return err
//	}
//	logger.SetHandler(c.Wrap(consolehandler.Default), nil)
package metricshandler
