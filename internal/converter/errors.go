package converter

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies a conversion failure
type Kind int

const (
	IOError Kind = iota
	FileNotFound
	DirectoryNotFound
	PermissionDenied
	InvalidArguments
)

func (k Kind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case DirectoryNotFound:
		return "directory not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidArguments:
		return "invalid arguments"
	default:
		return "i/o error"
	}
}

// Error is a failure tied to the path it happened on
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, IOError when there is none
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return IOError
}

// newError wraps err for path. notFound is the kind reported for a missing path.
func newError(path string, err error, notFound Kind) *Error {
	kind := IOError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = notFound
	case errors.Is(err, fs.ErrPermission):
		kind = PermissionDenied
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// Report is the outcome of a batch run
type Report struct {
	Converted []Result
	Failed    []*Error
}

func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}
