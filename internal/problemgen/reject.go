package problemgen

import (
	"errors"
	"fmt"
)

// RejectReason classifies why a single synthesis attempt produced nothing.
type RejectReason string

const (
	// ReasonUnsatisfiable means the random draws left no value that meets
	// the configured bounds.
	ReasonUnsatisfiable RejectReason = "unsatisfiable"

	// ReasonDuplicate means the rendered text was already in the batch.
	ReasonDuplicate RejectReason = "duplicate"

	// ReasonInvalid means a validator refused the candidate.
	ReasonInvalid RejectReason = "invalid"
)

// Rejection is returned for an attempt that should simply be retried with
// fresh draws. It is never fatal.
type Rejection struct {
	Op     Operator
	Reason RejectReason
	Detail string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s problem rejected (%s): %s", r.Op, r.Reason, r.Detail)
}

func reject(op Operator, reason RejectReason, format string, args ...any) *Rejection {
	return &Rejection{Op: op, Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a retryable *Rejection.
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}
