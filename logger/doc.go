// Package logger provides structured logging for wirekit using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("bindings")
//	log.Info("applied", logger.Fields(logger.FieldCount, 12))
package logger
