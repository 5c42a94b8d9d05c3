package jenkins

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the client can surface.
// Callers match with errors.Is; the concrete error is always *Error.
var (
	// ErrInvalidArgument means the caller passed a malformed argument
	// (empty job name, unusable parameter value). Detected before any
	// request is sent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidParameters means Jenkins rejected the trigger parameters,
	// typically because the job is not parameterized or a parameter
	// failed the job's declared parameter set.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrJobNotFound means Jenkins has no job with the given name.
	ErrJobNotFound = errors.New("job not found")

	// ErrBuildNotFound means the job exists but the requested build
	// number does not, or the job has no builds at all.
	ErrBuildNotFound = errors.New("build not found")

	// ErrUnavailable covers transport failures and any HTTP-level
	// failure without a more specific mapping (auth, 5xx, bad proxy).
	ErrUnavailable = errors.New("jenkins unavailable")
)

// Error is the concrete error type returned by all Client methods.
// It wraps one of the sentinel kinds above.
type Error struct {
	Op     string // operation, e.g. "get job"
	Job    string // job name when the failure is job-scoped
	Kind   error  // one of the Err* sentinels
	Detail string // human-readable detail, usually from the server
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Job != "" {
		msg = fmt.Sprintf("%s %q", e.Op, e.Job)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", msg, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %v", msg, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

func opErr(op, job string, kind error, detail string) *Error {
	return &Error{Op: op, Job: job, Kind: kind, Detail: detail}
}
