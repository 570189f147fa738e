// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optional

import "errors"

// ErrNotPresent is the error reported for an Empty Option when no [Failure]
// is supplied. It can be matched with [errors.Is].
var ErrNotPresent = errors.New("Value not present.")

// Failure describes how an Empty Option is reported as an error by
// [Option.OrElseErr] and [Option.ToFuture]. It is implemented by exactly
// [Message] and [FailureFunc].
type Failure interface {
	resolve() error
}

// Message is a [Failure] which reports an error carrying the given message.
type Message string

func (m Message) resolve() error {
	return errors.New(string(m))
}

// FailureFunc is a [Failure] which supplies the error value itself. The
// returned error is used verbatim, so it can be any error type and remains
// matchable with [errors.As]. It is only invoked when the Option is Empty.
type FailureFunc func() error

func (f FailureFunc) resolve() error {
	return f()
}

func resolveFailure(failure []Failure) error {
	if len(failure) == 0 || failure[0] == nil {
		return ErrNotPresent
	}
	return failure[0].resolve()
}
