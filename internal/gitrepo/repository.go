package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/repostate/internal/execshell"
	"github.com/temirov/repostate/internal/filesystem"
)

const (
	gitMetadataDirectoryNameConstant      = ".git"
	bareRepositoryTrueLiteralConstant     = "true"
	remoteNameSeparatorConstant           = "\n"
	remoteURLConfigKeyTemplateConstant    = "remote.%s.url"
	executorNotConfiguredMessageConstant  = "git executor not configured"
	checkoutTargetMissingMessageConstant  = "checkout requires a branch name or a commit hash"
	derivationErrorTemplateConstant       = "repository state derivation failed for %s: %s"
	cloneFailedTemplateConstant           = "clone of %s into %s failed with exit code %d"
	cloneFailedWithCauseTemplateConstant  = "clone of %s into %s failed: %s"
	derivationFailedLogMessageConstant    = "repository state derivation failed"
	operationFailedLogMessageConstant     = "git operation failed"
	submoduleInvocationLogMessageConstant = "invoking git submodule"
	cloneInvocationLogMessageConstant     = "cloning repository"
	logFieldRepositoryPathConstant        = "repository_path"
	logFieldArgumentsConstant             = "arguments"
	logFieldExitCodeConstant              = "exit_code"
	logFieldCapturedOutputConstant        = "captured_output"
	logFieldStandardErrorConstant         = "standard_error"
	logFieldSubmoduleCommandConstant      = "submodule_command"
	logFieldRemoteURLConstant             = "remote_url"
	logFieldDestinationPathConstant       = "destination_path"
)

const (
	gitRevParseSubcommandConstant    = "rev-parse"
	gitAbbreviatedRefFlagConstant    = "--abbrev-ref"
	gitHeadReferenceConstant         = "HEAD"
	gitRemoteSubcommandConstant      = "remote"
	gitConfigSubcommandConstant      = "config"
	gitConfigGetFlagConstant         = "--get"
	gitStatusSubcommandConstant      = "status"
	gitStatusShortFlagConstant       = "--short"
	gitLogSubcommandConstant         = "log"
	gitLogBranchesFlagConstant       = "--branches"
	gitLogNotFlagConstant            = "--not"
	gitLogRemotesFlagConstant        = "--remotes"
	gitLogDecorateFlagConstant       = "--decorate"
	gitLogOnelineFlagConstant        = "--oneline"
	gitBareRepositoryFlagConstant    = "--is-bare-repository"
	gitCheckoutSubcommandConstant    = "checkout"
	gitFetchSubcommandConstant       = "fetch"
	gitPullSubcommandConstant        = "pull"
	gitSubmoduleSubcommandConstant   = "submodule"
	gitCloneSubcommandConstant       = "clone"
	gitCloneDepthFlagConstant        = "--depth"
	gitCloneDepthValueConstant       = "1"
	gitShallowSubmodulesFlagConstant = "--shallow-submodules"
	gitRecurseSubmodulesFlagConstant = "--recurse-submodules"
)

// GitExecutor exposes the subset of shell execution required by repository handles.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// FileSystem exposes the filesystem predicate required by repository handles.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// Dependencies captures the collaborators required by a repository handle.
type Dependencies struct {
	GitExecutor GitExecutor
	FileSystem  FileSystem
	Logger      *zap.Logger
}

func (dependencies Dependencies) resolved() (Dependencies, error) {
	if dependencies.GitExecutor == nil {
		return Dependencies{}, ErrExecutorNotConfigured
	}
	if dependencies.FileSystem == nil {
		dependencies.FileSystem = filesystem.OSFileSystem{}
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	return dependencies, nil
}

var (
	// ErrExecutorNotConfigured indicates a handle was requested without a git executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrCheckoutTargetMissing indicates Checkout received neither a branch nor a commit.
	ErrCheckoutTargetMissing = errors.New(checkoutTargetMissingMessageConstant)
)

// DerivationError reports a failure while deriving repository state.
type DerivationError struct {
	RepositoryPath string
	Cause          error
}

// Error describes the derivation failure.
func (derivationError DerivationError) Error() string {
	return fmt.Sprintf(derivationErrorTemplateConstant, derivationError.RepositoryPath, derivationError.Cause)
}

// Unwrap exposes the underlying cause.
func (derivationError DerivationError) Unwrap() error {
	return derivationError.Cause
}

// CloneFailedError reports a clone invocation that did not complete successfully.
type CloneFailedError struct {
	RemoteURL       string
	DestinationPath string
	ExitCode        int
	Output          string
	Cause           error
}

// Error describes the clone failure.
func (cloneError CloneFailedError) Error() string {
	if cloneError.Cause != nil {
		return fmt.Sprintf(cloneFailedWithCauseTemplateConstant, cloneError.RemoteURL, cloneError.DestinationPath, cloneError.Cause)
	}
	return fmt.Sprintf(cloneFailedTemplateConstant, cloneError.RemoteURL, cloneError.DestinationPath, cloneError.ExitCode)
}

// Unwrap exposes the underlying cause when execution itself failed.
func (cloneError CloneFailedError) Unwrap() error {
	return cloneError.Cause
}

// CheckoutTarget identifies the reference a checkout should switch to. Exactly
// one of the branch or commit constructors must be used; branch targets take
// precedence when both values are somehow populated.
type CheckoutTarget struct {
	branchName string
	commitHash string
}

// BranchCheckoutTarget builds a checkout target for a named branch.
func BranchCheckoutTarget(branchName string) CheckoutTarget {
	return CheckoutTarget{branchName: strings.TrimSpace(branchName)}
}

// CommitCheckoutTarget builds a checkout target for a commit hash.
func CommitCheckoutTarget(commitHash string) CheckoutTarget {
	return CheckoutTarget{commitHash: strings.TrimSpace(commitHash)}
}

func (target CheckoutTarget) reference() (string, bool) {
	if len(target.branchName) > 0 {
		return target.branchName, true
	}
	if len(target.commitHash) > 0 {
		return target.commitHash, true
	}
	return "", false
}

// HeadRecord captures the commit currently referenced by HEAD.
type HeadRecord struct {
	Commit string
}

// Repository is a handle over a filesystem path whose git state is derived at
// construction and recomputed on demand via Refresh. Mutating operations issue
// git commands in the handle's working directory without touching the cached
// fields, except Clone which refreshes after completion.
type Repository struct {
	repositoryPath string
	dependencies   Dependencies

	exists      bool
	initialized bool
	bare        bool
	dirty       bool
	branch      BranchState
	head        HeadRecord
	remotes     *RemoteCollection
}

// NewRepository constructs a handle rooted at repositoryPath and performs the
// initial state derivation. A path that is not a directory yields a handle
// holding construction defaults without invoking git; a derivation failure is
// logged and returned as a DerivationError.
func NewRepository(executionContext context.Context, dependencies Dependencies, repositoryPath string) (*Repository, error) {
	resolvedDependencies, resolutionError := dependencies.resolved()
	if resolutionError != nil {
		return nil, resolutionError
	}

	repository := &Repository{
		repositoryPath: repositoryPath,
		dependencies:   resolvedDependencies,
		bare:           true,
		remotes:        NewRemoteCollection(),
	}

	if refreshError := repository.Refresh(executionContext); refreshError != nil {
		return nil, refreshError
	}

	return repository, nil
}

// Refresh re-derives the repository state. Paths that are not directories leave
// the handle unpopulated.
func (repository *Repository) Refresh(executionContext context.Context) error {
	if !repository.isDirectory(repository.repositoryPath) {
		return nil
	}

	if derivationError := repository.deriveState(executionContext); derivationError != nil {
		repository.dependencies.Logger.Error(
			derivationFailedLogMessageConstant,
			zap.String(logFieldRepositoryPathConstant, repository.repositoryPath),
			zap.Error(derivationError),
		)
		return DerivationError{RepositoryPath: repository.repositoryPath, Cause: derivationError}
	}

	return nil
}

// Path returns the filesystem path the handle is rooted at.
func (repository *Repository) Path() string {
	return repository.repositoryPath
}

// Exists reports whether the target path was a directory at derivation time.
func (repository *Repository) Exists() bool {
	return repository.exists
}

// Initialized reports whether a git metadata directory is present under the path.
func (repository *Repository) Initialized() bool {
	return repository.initialized
}

// Bare reports whether git identifies the repository as bare.
func (repository *Repository) Bare() bool {
	return repository.bare
}

// Dirty reports whether the working tree has uncommitted changes or local
// commits absent from every remote-tracking branch.
func (repository *Repository) Dirty() bool {
	return repository.dirty
}

// Branch returns the derived branch state.
func (repository *Repository) Branch() BranchState {
	return repository.branch
}

// Head returns the derived head record.
func (repository *Repository) Head() HeadRecord {
	return repository.head
}

// Remotes returns the derived remote collection.
func (repository *Repository) Remotes() *RemoteCollection {
	return repository.remotes
}

func (repository *Repository) deriveState(executionContext context.Context) error {
	repository.exists = true

	branchOutput, branchError := repository.runQuery(executionContext, gitRevParseSubcommandConstant, gitAbbreviatedRefFlagConstant, gitHeadReferenceConstant)
	if branchError != nil {
		return branchError
	}
	repository.branch = ParseBranchState(branchOutput)

	remoteCollection, remotesError := repository.deriveRemotes(executionContext)
	if remotesError != nil {
		return remotesError
	}
	repository.remotes = remoteCollection

	headOutput, headError := repository.runQuery(executionContext, gitRevParseSubcommandConstant, gitHeadReferenceConstant)
	if headError != nil {
		return headError
	}
	repository.head = HeadRecord{Commit: headOutput}

	dirtyState, dirtyError := repository.deriveDirty(executionContext)
	if dirtyError != nil {
		return dirtyError
	}
	repository.dirty = dirtyState

	bareOutput, bareError := repository.runQuery(executionContext, gitRevParseSubcommandConstant, gitBareRepositoryFlagConstant)
	if bareError != nil {
		return bareError
	}
	repository.bare = strings.EqualFold(bareOutput, bareRepositoryTrueLiteralConstant)

	repository.initialized = repository.isDirectory(filepath.Join(repository.repositoryPath, gitMetadataDirectoryNameConstant))

	return nil
}

// deriveRemotes enumerates remote names and looks up each configured URL. A
// repository without remotes yields a single empty-string name from the list
// query, which is stored as-is to match the reference behavior.
func (repository *Repository) deriveRemotes(executionContext context.Context) (*RemoteCollection, error) {
	remoteListOutput, listError := repository.runQuery(executionContext, gitRemoteSubcommandConstant)
	if listError != nil {
		return nil, listError
	}

	remoteCollection := NewRemoteCollection()
	for _, remoteName := range strings.Split(remoteListOutput, remoteNameSeparatorConstant) {
		remoteName = strings.TrimSpace(remoteName)
		remoteURL, urlError := repository.runQuery(executionContext, gitConfigSubcommandConstant, gitConfigGetFlagConstant, fmt.Sprintf(remoteURLConfigKeyTemplateConstant, remoteName))
		if urlError != nil {
			return nil, urlError
		}
		remoteCollection.Set(remoteName, Remote{URL: remoteURL})
	}

	return remoteCollection, nil
}

// deriveDirty checks the short working-tree status first and consults the
// unpushed-commit log only when the status output is empty.
func (repository *Repository) deriveDirty(executionContext context.Context) (bool, error) {
	statusOutput, statusError := repository.runQuery(executionContext, gitStatusSubcommandConstant, gitStatusShortFlagConstant)
	if statusError != nil {
		return false, statusError
	}
	if len(statusOutput) > 0 {
		return true, nil
	}

	unpushedOutput, unpushedError := repository.runQuery(
		executionContext,
		gitLogSubcommandConstant,
		gitLogBranchesFlagConstant,
		gitLogNotFlagConstant,
		gitLogRemotesFlagConstant,
		gitLogDecorateFlagConstant,
		gitLogOnelineFlagConstant,
	)
	if unpushedError != nil {
		return false, unpushedError
	}

	return len(unpushedOutput) > 0, nil
}

// runQuery executes a state query and returns its trimmed standard output. A
// non-zero exit is not a query failure: the captured output is used as-is,
// mirroring the reference tool contract. Only execution faults propagate.
func (repository *Repository) runQuery(executionContext context.Context, arguments ...string) (string, error) {
	executionResult, executionError := repository.dependencies.GitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repository.repositoryPath,
	})
	if executionError != nil {
		failedError := execshell.CommandFailedError{}
		if errors.As(executionError, &failedError) {
			return strings.TrimSpace(failedError.Result.StandardOutput), nil
		}
		return "", executionError
	}
	return strings.TrimSpace(executionResult.StandardOutput), nil
}

// Fetch downloads updates from the configured remotes. It returns false after
// logging the captured output when git reports failure.
func (repository *Repository) Fetch(executionContext context.Context) bool {
	return repository.runOperation(executionContext, zap.ErrorLevel, gitFetchSubcommandConstant)
}

// Pull integrates updates from the tracked remote branch. It returns false
// after logging the captured output when git reports failure.
func (repository *Repository) Pull(executionContext context.Context) bool {
	return repository.runOperation(executionContext, zap.ErrorLevel, gitPullSubcommandConstant)
}

// Submodule invokes the git submodule subcommand with the provided flags.
func (repository *Repository) Submodule(executionContext context.Context, submoduleCommand string, flagArguments ...string) bool {
	repository.dependencies.Logger.Debug(
		submoduleInvocationLogMessageConstant,
		zap.String(logFieldSubmoduleCommandConstant, submoduleCommand),
		zap.Strings(logFieldArgumentsConstant, flagArguments),
	)

	commandArguments := append([]string{gitSubmoduleSubcommandConstant, submoduleCommand}, flagArguments...)
	return repository.runOperation(executionContext, zap.ErrorLevel, commandArguments...)
}

// Checkout switches the working tree to the requested target. A zero target is
// a contract violation reported as ErrCheckoutTargetMissing. Failures reported
// by git are logged at debug severity and surface as a false result.
func (repository *Repository) Checkout(executionContext context.Context, target CheckoutTarget) (bool, error) {
	checkoutReference, referencePresent := target.reference()
	if !referencePresent {
		return false, ErrCheckoutTargetMissing
	}

	return repository.runOperation(executionContext, zap.DebugLevel, gitCheckoutSubcommandConstant, checkoutReference), nil
}

// Clone clones the provided URL into the handle's own path with recursive
// submodules, then refreshes the handle state.
func (repository *Repository) Clone(executionContext context.Context, remoteURL string, shallow bool) error {
	cloneError := runClone(executionContext, repository.dependencies, remoteURL, repository.repositoryPath, shallow)
	if cloneError != nil {
		return cloneError
	}
	return repository.Refresh(executionContext)
}

// CloneFrom clones the provided URL into destinationPath and returns a fresh
// handle derived from the destination. A non-zero clone exit yields a
// CloneFailedError.
func CloneFrom(executionContext context.Context, dependencies Dependencies, remoteURL string, destinationPath string, shallow bool) (*Repository, error) {
	resolvedDependencies, resolutionError := dependencies.resolved()
	if resolutionError != nil {
		return nil, resolutionError
	}

	if cloneError := runClone(executionContext, resolvedDependencies, remoteURL, destinationPath, shallow); cloneError != nil {
		return nil, cloneError
	}

	return NewRepository(executionContext, resolvedDependencies, destinationPath)
}

func runClone(executionContext context.Context, dependencies Dependencies, remoteURL string, destinationPath string, shallow bool) error {
	dependencies.Logger.Debug(
		cloneInvocationLogMessageConstant,
		zap.String(logFieldRemoteURLConstant, remoteURL),
		zap.String(logFieldDestinationPathConstant, destinationPath),
	)

	commandArguments := []string{gitCloneSubcommandConstant}
	if shallow {
		commandArguments = append(commandArguments, gitCloneDepthFlagConstant, gitCloneDepthValueConstant, gitShallowSubmodulesFlagConstant)
	}
	commandArguments = append(commandArguments, gitRecurseSubmodulesFlagConstant, remoteURL, destinationPath)

	_, executionError := dependencies.GitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{Arguments: commandArguments})
	if executionError != nil {
		failedError := execshell.CommandFailedError{}
		if errors.As(executionError, &failedError) {
			return CloneFailedError{
				RemoteURL:       remoteURL,
				DestinationPath: destinationPath,
				ExitCode:        failedError.Result.ExitCode,
				Output:          strings.TrimSpace(failedError.Result.StandardOutput),
			}
		}
		return CloneFailedError{RemoteURL: remoteURL, DestinationPath: destinationPath, Cause: executionError}
	}

	return nil
}

// runOperation executes a mutating git command, logging captured output at the
// requested severity when the command fails.
func (repository *Repository) runOperation(executionContext context.Context, failureLogLevel zapcore.Level, arguments ...string) bool {
	executionResult, executionError := repository.dependencies.GitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: repository.repositoryPath,
	})
	if executionError == nil {
		return true
	}

	logFields := []zap.Field{
		zap.String(logFieldRepositoryPathConstant, repository.repositoryPath),
		zap.Strings(logFieldArgumentsConstant, arguments),
		zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
		zap.String(logFieldCapturedOutputConstant, strings.TrimSpace(executionResult.StandardOutput)),
		zap.String(logFieldStandardErrorConstant, strings.TrimSpace(executionResult.StandardError)),
	}

	if checkedEntry := repository.dependencies.Logger.Check(failureLogLevel, operationFailedLogMessageConstant); checkedEntry != nil {
		checkedEntry.Write(logFields...)
	}

	return false
}

func (repository *Repository) isDirectory(candidatePath string) bool {
	pathInformation, statError := repository.dependencies.FileSystem.Stat(candidatePath)
	if statError != nil {
		return false
	}
	return pathInformation.IsDir()
}
