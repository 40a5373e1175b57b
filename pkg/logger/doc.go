// Package logger builds slog loggers from environment configuration and
// enriches records with request-scoped attributes.
//
// Handlers can be decorated with context extractors so that values
// carried in the request context (the tenant identifier, the request
// ID) appear on every log line emitted within that request without
// each call site passing them explicitly.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(cfg,
//		logger.WithExtractors(
//			tenant.LoggerExtractor(),
//			requestlog.LoggerExtractor(),
//		),
//	)
//	slog.SetDefault(log)
package logger
