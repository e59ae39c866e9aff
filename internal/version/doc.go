// Package version exposes build metadata for DialTimer.
//
// Version, Commit and BuildTime are injected at build time via ldflags.
package version
