package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/repostate/internal/execshell"
)

const (
	commandStartedTemplateConstant          = "Running %s"
	commandCompletedTemplateConstant        = "Completed %s"
	commandFailedTemplateConstant           = "%s failed with exit code %d"
	commandExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectoryTemplateConstant        = " (in %s)"
	standardErrorTemplateConstant           = ": %s"
	argumentSeparatorConstant               = " "
	unknownFailureMessageConstant           = "unknown error"
)

// CommandEventFormatter builds human-readable messages for command lifecycle events.
type CommandEventFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandEventFormatter) BuildStartedMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandStartedTemplateConstant, formatter.commandLabel(command))
}

// BuildSuccessMessage formats the message describing a command that exited cleanly.
func (formatter CommandEventFormatter) BuildSuccessMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandCompletedTemplateConstant, formatter.commandLabel(command))
}

// BuildFailureMessage formats the message describing a non-zero exit, appending
// trimmed standard error output when present.
func (formatter CommandEventFormatter) BuildFailureMessage(command execshell.ShellCommand, result execshell.ExecutionResult) string {
	failureMessage := fmt.Sprintf(commandFailedTemplateConstant, formatter.commandLabel(command), result.ExitCode)
	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) == 0 {
		return failureMessage
	}
	return failureMessage + fmt.Sprintf(standardErrorTemplateConstant, trimmedStandardError)
}

// BuildExecutionFailureMessage formats the message describing a command that could not run.
func (formatter CommandEventFormatter) BuildExecutionFailureMessage(command execshell.ShellCommand, failure error) string {
	failureReason := unknownFailureMessageConstant
	if failure != nil {
		failureReason = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailureTemplateConstant, formatter.commandLabel(command), failureReason)
}

func (formatter CommandEventFormatter) commandLabel(command execshell.ShellCommand) string {
	labelParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		labelParts = append(labelParts, strings.Join(command.Details.Arguments, argumentSeparatorConstant))
	}
	commandLabel := strings.Join(labelParts, argumentSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return commandLabel
	}
	return commandLabel + fmt.Sprintf(workingDirectoryTemplateConstant, trimmedWorkingDirectory)
}

// ConsoleCommandEventLogger renders command lifecycle events through a zap
// logger configured for human-readable output. It implements
// execshell.CommandEventObserver.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter CommandEventFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: CommandEventFormatter{}}
}

// CommandStarted logs a command start notification.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted logs the command outcome, warning on non-zero exits.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(command))
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed logs commands that could not be executed at all.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}
