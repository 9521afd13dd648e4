// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON logging with configurable log levels, plus context plumbing so request
// middleware can hand a trace-scoped logger down through services and stores.
package logger
