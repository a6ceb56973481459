// Package ui renders git command lifecycle events as concise console
// messages. Structured telemetry stays on the zap logger wired into the shell
// executor; this package covers the human-facing feedback channel.
package ui
