// Package errutil provides small helpers for remapping and redirecting
// errors at scope boundaries.
package errutil

import "errors"

// remapped replaces the message of an underlying error kind while keeping
// the kind reachable through errors.Is.
type remapped struct {
	kind error
	msg  string
}

func (e *remapped) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.kind.Error()
}

func (e *remapped) Unwrap() error {
	return e.kind
}

// Remap morphs err into a different kind and/or message.
//
// A nil err stays nil. When catch is non-empty and err matches none of its
// entries (per errors.Is), err passes through unchanged. Otherwise the
// result is an error of kind into — or of err's own kind when into is nil —
// carrying msg when msg is non-empty and the kind's own message otherwise.
// The result wraps the kind, so errors.Is(result, kind) reports true.
func Remap(err error, into error, msg string, catch ...error) error {
	if err == nil {
		return nil
	}
	if len(catch) > 0 && !matchesAny(err, catch) {
		return err
	}
	if into == nil {
		if msg == "" {
			return err
		}
		into = err
	}
	return &remapped{kind: into, msg: msg}
}

// Reraise is the deferred form of Remap, for rewriting an error on the way
// out of a function:
//
//	func load(path string) (err error) {
//		defer errutil.Reraise(&err, ErrLoad, "loading "+path, fs.ErrNotExist)
//		...
//	}
func Reraise(errp *error, into error, msg string, catch ...error) {
	*errp = Remap(*errp, into, msg, catch...)
}

// Redirect runs fn and swallows its error. When sink is non-nil, a non-nil
// error is reported to it as text instead of propagating.
func Redirect(fn func() error, sink func(string)) {
	if err := fn(); err != nil && sink != nil {
		sink(err.Error())
	}
}

func matchesAny(err error, kinds []error) bool {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
