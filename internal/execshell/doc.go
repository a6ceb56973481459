// Package execshell provides structured helpers for invoking the external git
// tool.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions repostate uses to run
// git queries and mutations in a testable manner.
package execshell
