package cleaner

import "fmt"

// ErrorKind classifies why one item of a cleaning batch failed. Failures
// are data: they are collected per item and never abort the batch.
type ErrorKind int

const (
	// KindSafetyRejected: the path failed safety validation. Never retried.
	KindSafetyRejected ErrorKind = iota

	// KindUnknownSystemPath: a system item has no resolvable privileged
	// command.
	KindUnknownSystemPath

	// KindAuthCancelled: the elevation mechanism reported denial or
	// cancellation.
	KindAuthCancelled

	// KindCommandFailed: the privileged command ran and returned a
	// failure code.
	KindCommandFailed

	// KindTimeout: the privileged command exceeded its bound. The
	// external process may or may not have completed.
	KindTimeout

	// KindIOFailure: user-space deletion hit an unexpected filesystem
	// error partway through. Files already removed stay removed.
	KindIOFailure
)

// ItemError is the failure record for a single batch item.
type ItemError struct {
	Kind ErrorKind
	Path string
	Code int   // exit code, for KindCommandFailed
	Err  error // underlying cause, if any
}

func (e *ItemError) Error() string {
	switch e.Kind {
	case KindSafetyRejected:
		return fmt.Sprintf("refusing to clean %s: path is not on the safety allow-list", e.Path)
	case KindUnknownSystemPath:
		return fmt.Sprintf("no cleanup command known for system path %s", e.Path)
	case KindAuthCancelled:
		return fmt.Sprintf("authorization cancelled while cleaning %s", e.Path)
	case KindCommandFailed:
		return fmt.Sprintf("cleanup command for %s failed with exit code %d", e.Path, e.Code)
	case KindTimeout:
		return fmt.Sprintf("cleanup command for %s timed out", e.Path)
	case KindIOFailure:
		return fmt.Sprintf("failed to remove files under %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("cleaning %s failed: %v", e.Path, e.Err)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ItemError) Unwrap() error { return e.Err }
