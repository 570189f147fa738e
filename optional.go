// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optional

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/lilBunnyRabbit/optional/future"
)

// Option is an immutable container which either holds a value of type T or
// holds nothing. The zero value of Option is Empty.
//
// Every method is defined on a value receiver and every transformation
// returns a new Option, so an Option can never be observed changing state.
type Option[T any] struct {
	value   T
	present bool
}

// Of wraps a possibly absent value. It returns a Present Option unless v is
// absent per [IsPresentValue], in which case it returns an Empty Option.
//
// Zero values are not absent: Of(0), Of("") and Of(false) are all Present.
func Of[T any](v T) Option[T] {
	if !IsPresentValue(v) {
		return None[T]()
	}
	return Option[T]{value: v, present: true}
}

// OfPtr wraps the value behind p, collapsing a nil pointer to Empty.
func OfPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// OfOk adapts the (value, ok) pair returned by map lookups, type assertions
// and channel receives. A false ok produces an Empty Option.
//
//	v, ok := m["key"]
//	o := optional.OfOk(v, ok)
func OfOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// None returns an Empty Option for type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsPresentValue reports whether v counts as a present value. It is false
// for an untyped nil and for a typed nil of a nilable kind (pointer,
// interface, map, slice, func, chan), true for everything else.
//
// [Of] uses it to gate construction and [Map] applies it to mapper results,
// so no Present Option ever holds an absent value.
func IsPresentValue(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether the Option holds nothing. It is always the
// negation of [Option.IsPresent].
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the stored slot verbatim: the value when Present, the zero
// value of T when Empty. It never panics. Use [Option.Unpack] or
// [Option.IsPresent] to distinguish a stored zero value from absence.
func (o Option[T]) Get() T {
	return o.value
}

// Unpack returns the stored value and whether it is present, mirroring the
// comma-ok form of a map lookup.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.present
}

// Ptr returns a pointer to a copy of the value when Present and nil when
// Empty. The pointee is detached from the Option, mutating it does not
// affect the container.
func (o Option[T]) Ptr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// IfPresent invokes consumer with the value when Present and does nothing
// when Empty. It returns the receiver unchanged so calls can be chained.
func (o Option[T]) IfPresent(consumer func(T)) Option[T] {
	if o.present {
		consumer(o.value)
	}
	return o
}

// IfEmpty invokes consumer when Empty and does nothing when Present. It
// returns the receiver unchanged so calls can be chained.
func (o Option[T]) IfEmpty(consumer func()) Option[T] {
	if !o.present {
		consumer()
	}
	return o
}

// Filter returns the receiver unchanged when Empty or when predicate
// accepts the value, and an Empty Option when predicate rejects it. The
// predicate is never invoked on an Empty Option.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.present || predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the receiver when Present, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the value when Present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value when Present, otherwise the result of
// invoking supplier. The supplier is only invoked when Empty.
func (o Option[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	return supplier()
}

// OrElseErr returns the value when Present. When Empty it returns the zero
// value of T together with an error resolved from failure: [ErrNotPresent]
// when no failure is given, otherwise the error described by the [Failure].
func (o Option[T]) OrElseErr(failure ...Failure) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, resolveFailure(failure)
}

// MustGet returns the value when Present and panics with [ErrNotPresent]
// when Empty. Reserve it for call sites where presence is guaranteed by an
// invariant, e.g. directly after a Filter that can not reject.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(ErrNotPresent)
	}
	return o.value
}

// ToFuture converts the Option into an already settled [future.Future]:
// resolved with the value when Present, rejected when Empty. The rejection
// error follows the same resolution rule as [Option.OrElseErr]. The
// returned future is never pending.
func (o Option[T]) ToFuture(failure ...Failure) *future.Future[T] {
	if o.present {
		return future.Resolved(o.value)
	}
	return future.Rejected[T](resolveFailure(failure))
}

// Equals reports whether two Options hold equal values. Two Empty Options
// are always equal and an Empty Option never equals a Present one. When
// both are Present the values are compared with comparator if one is given,
// otherwise with Go's == on the dynamic values. Without a comparator the
// value type must be comparable; comparing uncomparable values is a caller
// error and panics, just like == on such values.
func (o Option[T]) Equals(other Option[T], comparator ...func(T, T) bool) bool {
	if !o.present || !other.present {
		return o.present == other.present
	}
	if len(comparator) > 0 && comparator[0] != nil {
		return comparator[0](o.value, other.value)
	}
	return any(o.value) == any(other.value)
}

// Contains reports whether the Option is Present and holds a value equal to
// v under Go's == on the dynamic values. It is always false for an Empty
// Option.
func (o Option[T]) Contains(v T) bool {
	return o.present && any(o.value) == any(v)
}

// String implements [fmt.Stringer].
//
// An Empty Option renders as "Option.Empty". A Present Option renders as
// "Option.Present<rendering>" where strings and composite values (structs,
// maps, slices, arrays, pointers) render as JSON and all other values
// render with the %v verb. When JSON marshaling fails, e.g. on a cyclic
// structure, the %v rendering is substituted instead.
func (o Option[T]) String() string {
	if !o.present {
		return "Option.Empty"
	}
	return "Option.Present<" + renderValue(o.value) + ">"
}

func renderValue(v any) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		b, err := json.Marshal(v)
		if err == nil {
			return string(b)
		}
	}
	return fmt.Sprintf("%v", v)
}
