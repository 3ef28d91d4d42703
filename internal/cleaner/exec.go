package cleaner

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// commandTimeout bounds every privileged command. A timed-out command is
// treated as failed; there is no rollback of whatever it completed.
const commandTimeout = 120 * time.Second

// CommandRunner executes a literal argument vector and returns its error.
// The orchestrator depends on this narrow interface so tests can substitute
// a fake elevation mechanism.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) error
}

// ExitCodeError reports a command that ran to completion with a non-zero
// exit code.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// ExecRunner runs commands with exec.CommandContext under commandTimeout.
// It is the production elevation boundary: argv is passed through verbatim,
// never assembled into a shell string.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return cerr.New("empty command")
	}

	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	zap.L().Info("executing privileged cleanup command", zap.Strings("argv", argv))
	cmd := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return context.DeadlineExceeded
		}
		zap.L().Error("privileged command failed",
			zap.Strings("argv", argv),
			zap.ByteString("output", output),
			zap.Error(err))
		var exitErr *exec.ExitError
		if cerr.As(err, &exitErr) {
			return &ExitCodeError{Code: exitErr.ExitCode()}
		}
		return cerr.Wrapf(err, "running %s", argv[0])
	}
	return nil
}

// classifyCommandError maps a runner error for path into an ItemError.
// Exit codes 126 and 127 are the conventional "authorization denied or
// cancelled" results from pkexec.
func classifyCommandError(path string, err error) *ItemError {
	if cerr.Is(err, context.DeadlineExceeded) {
		return &ItemError{Kind: KindTimeout, Path: path, Err: err}
	}
	var exitErr *ExitCodeError
	if cerr.As(err, &exitErr) {
		if exitErr.Code == 126 || exitErr.Code == 127 {
			return &ItemError{Kind: KindAuthCancelled, Path: path, Code: exitErr.Code, Err: err}
		}
		return &ItemError{Kind: KindCommandFailed, Path: path, Code: exitErr.Code, Err: err}
	}
	return &ItemError{Kind: KindCommandFailed, Path: path, Err: err}
}
