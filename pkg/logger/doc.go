// Package logger builds *slog.Logger instances for growlkit services and tools.
//
// New creates a logger configured by Option functions: output format (text or json),
// minimum level, default attributes and ContextExtractor callbacks that copy
// request-scoped values from a context.Context into every record.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "growl-demo")),
//	)
//	log.Info("widget rendered", logger.WidgetID(w.ID()), logger.Mode(w.Mode()))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
