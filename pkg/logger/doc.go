// Package logger builds configured slog.Logger instances with
// environment presets and provides attribute helpers for the fields this
// toolkit logs most: errors, components, screen phases and durations.
//
//	log := logger.New(logger.WithEnvironment(cfg.Environment, "userlist"))
//	logger.SetAsDefault(log)
//
//	log.Info("screen ready", logger.Component("viewmodel"))
package logger
