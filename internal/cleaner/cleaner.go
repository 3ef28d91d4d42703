package cleaner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/GK-Developers/GK-Healter/internal/scan"
)

// Validator is the safety gate every deletion must pass. Satisfied by
// *safety.Validator.
type Validator interface {
	IsSafeToDelete(path string) bool
}

// CommandResolver maps a system path or marker to its privileged command
// line. A nil result means "not resolvable".
type CommandResolver func(path string) []string

// Outcome aggregates a cleaning batch. All failure is captured here as
// data; Clean never panics and never aborts the remaining batch because one
// item failed.
type Outcome struct {
	Succeeded int
	Failed    int
	Errors    []string
}

// Orchestrator dispatches selected scan results to user-space deletion or
// privileged-command execution.
type Orchestrator struct {
	validator Validator
	resolve   CommandResolver
	runner    CommandRunner
	dryRun    bool
}

// New builds an orchestrator. runner may be nil, in which case the
// production ExecRunner is used.
func New(validator Validator, resolve CommandResolver, runner CommandRunner) *Orchestrator {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Orchestrator{validator: validator, resolve: resolve, runner: runner}
}

// SetDryRun makes Clean report what it would do without touching anything.
func (o *Orchestrator) SetDryRun(dry bool) { o.dryRun = dry }

// Clean processes each selected item independently: re-validates it against
// the safety gate (defense in depth — scan results are not trusted), then
// deletes user items directly or executes the resolved privileged command
// for system items. Deletions are permanent; there is no trash or undo.
func (o *Orchestrator) Clean(ctx context.Context, selected []scan.Result) Outcome {
	var out Outcome
	for _, item := range selected {
		if err := o.cleanOne(ctx, item); err != nil {
			out.Failed++
			out.Errors = append(out.Errors, err.Error())
			zap.L().Warn("clean item failed", zap.String("path", item.Path), zap.Error(err))
			continue
		}
		out.Succeeded++
		zap.L().Info("cleaned",
			zap.String("label", item.Label),
			zap.String("path", item.Path),
			zap.Int64("bytes", item.SizeBytes))
	}
	return out
}

func (o *Orchestrator) cleanOne(ctx context.Context, item scan.Result) *ItemError {
	// Safety gate first: a rejected item never reaches the filesystem.
	if !o.validator.IsSafeToDelete(item.Path) {
		return &ItemError{Kind: KindSafetyRejected, Path: item.Path}
	}

	if o.dryRun {
		zap.L().Info("dry run: would clean", zap.String("path", item.Path))
		return nil
	}

	if item.System {
		return o.cleanSystem(ctx, item.Path)
	}
	return cleanUser(item.Path)
}

// cleanSystem resolves and executes the privileged command for a system
// path or marker.
func (o *Orchestrator) cleanSystem(ctx context.Context, path string) *ItemError {
	argv := o.resolve(path)
	if len(argv) == 0 {
		return &ItemError{Kind: KindUnknownSystemPath, Path: path}
	}
	if err := o.runner.Run(ctx, argv); err != nil {
		return classifyCommandError(path, err)
	}
	return nil
}

// removeFile is a seam for partial-failure tests.
var removeFile = os.Remove

// cleanUser removes a user-space candidate: the file itself, or every file
// under the directory while leaving the directory structure in place. The
// walk is best-effort bulk deletion, not transactional — files already
// removed stay removed when a later one fails. All per-file failures are
// counted and reported together with the first underlying cause.
func cleanUser(path string) *ItemError {
	info, err := os.Lstat(path)
	if err != nil {
		return &ItemError{Kind: KindIOFailure, Path: path, Err: err}
	}

	if !info.IsDir() {
		if err := removeFile(path); err != nil {
			return &ItemError{Kind: KindIOFailure, Path: path, Err: err}
		}
		return nil
	}

	if err := unix.Access(path, unix.W_OK); err != nil {
		return &ItemError{Kind: KindIOFailure, Path: path, Err: err}
	}

	var firstErr error
	failed := 0
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if err := removeFile(p); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil
	})
	if firstErr != nil {
		return &ItemError{
			Kind: KindIOFailure,
			Path: path,
			Err:  cerr.Wrapf(firstErr, "%d file(s) could not be removed", failed),
		}
	}
	return nil
}
