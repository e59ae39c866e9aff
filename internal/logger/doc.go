// Package logger wraps zap to offer a global sugared logger with a console
// encoder, context helpers (ToContext/FromContext/WithName/WithKV) and level
// parsing for the --log-level flag.
package logger
