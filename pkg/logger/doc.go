// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New builds a *slog.Logger from Option values:
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format
//   - WithLevel: minimum level
//   - WithAttr: static attributes
//   - WithContextExtractors / WithContextValue: attributes pulled from context
//
// NewFromConfig does the same from a Config filled from LOG_LEVEL, LOG_FORMAT,
// APP_ENV and APP_NAME.
//
// The concrete text or JSON handler is wrapped with LogHandlerDecorator, which
// runs the registered ContextExtractor callbacks on every Handle call so that
// request-scoped values such as request ids end up in each record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("sessions"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "session created", logger.SessionID(id))
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("saved", logger.Error(err))
//
// needs no nil check.
package logger
