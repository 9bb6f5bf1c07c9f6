// Package apperr defines the error vocabulary shared by the feed and
// content services. Handlers translate these into HTTP statuses; the
// underlying store causes never reach a client.
package apperr

import "errors"

var (
	// ErrNotFound: the entity is absent or soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrEmptyResult: the query succeeded but produced no candidates.
	// Surfaced like a 404 but distinct from a missing entity, and never
	// logged as a failure.
	ErrEmptyResult = errors.New("empty result")

	// ErrForbidden: the actor lacks rights over a write.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRequest: a required parameter is missing or malformed.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStoreUnavailable: the data store failed; always propagated.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// kindError ties a cause to one of the sentinel kinds so callers can use
// errors.Is on the kind while logs keep the cause.
type kindError struct {
	kind  error
	cause error
	msg   string
}

func (e *kindError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// Wrap attaches cause to kind with a message. A nil cause is allowed.
func Wrap(kind, cause error, msg string) error {
	return &kindError{kind: kind, cause: cause, msg: msg}
}

// New returns a kind-tagged error with a message and no cause.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Blocked reports a mutual-block condition on a profile read. It is not a
// failure: handlers answer 200 with the explanatory message.
type Blocked struct {
	// ByTarget is true when the profile's owner blocks the viewer, false
	// when the viewer blocks the owner.
	ByTarget bool
}

func (b *Blocked) Error() string {
	if b.ByTarget {
		return "this user blocks you ! you can't see his tweets and he can't see your tweets"
	}
	return "you block this user ! you can't see his tweets and he can't see your tweets"
}
