// Package logger builds configured log/slog loggers for formkit services.
//
// The factory covers the two setups services actually run with: JSON output
// for production log aggregation and text output for development, plus
// static attributes stamped on every record.
//
//	log := logger.New(
//	    logger.WithProduction("signup"),
//	    logger.WithAttr(slog.String("version", version)),
//	)
//
// Components that accept a *slog.Logger option default to a discard logger,
// so logging stays opt-in.
package logger
