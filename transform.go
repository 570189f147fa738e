// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optional

// Map transforms the value of o with mapper. An Empty input stays Empty and
// the mapper is never invoked on it. The mapper's result is wrapped with the
// same presence rule as [Of], so a mapper returning a nil pointer or nil
// interface collapses the result to Empty; mapping never produces a Present
// Option holding an absent value.
//
// Map is a free function because Go methods can not introduce the result
// type parameter U.
func Map[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Of(mapper(o.value))
}

// FlatMap transforms the value of o with a mapper which itself produces an
// Option. The mapper's result is returned verbatim without re-wrapping, so
// the mapper alone decides whether the result is Present or Empty. An Empty
// input stays Empty and the mapper is never invoked on it.
func FlatMap[T, U any](o Option[T], mapper func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return mapper(o.value)
}
