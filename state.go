// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optional

// State is the sum-type projection of an [Option]: it is implemented by
// exactly [Present] and [Empty]. A type switch over [Option.State] gives
// calling code a statically narrowed view of the container:
//
//	switch s := o.State().(type) {
//	case optional.Present[int]:
//		use(s.Value)
//	case optional.Empty[int]:
//		// nothing to use
//	}
type State[T any] interface {
	optionState() // sealed, only Present and Empty implement State
}

// Present is the narrowed state of an Option known to hold a value.
type Present[T any] struct {
	Value T
}

// Empty is the narrowed state of an Option known to hold nothing.
type Empty[T any] struct{}

func (Present[T]) optionState() {}

func (Empty[T]) optionState() {}

// State returns the narrowed state of the Option: a [Present] carrying the
// value, or an [Empty].
func (o Option[T]) State() State[T] {
	if o.present {
		return Present[T]{Value: o.value}
	}
	return Empty[T]{}
}
