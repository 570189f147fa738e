// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package optional provides a generic, immutable container which explicitly
// models the presence or absence of a value.
//
// The package is built around a single type, [Option], which is always in
// exactly one of two states:
//
//   - Present: the container holds a value
//   - Empty: the container holds nothing
//
// Presence is tracked explicitly, never inferred from the value itself. A
// Present [Option] may hold 0, "", or false. Only the "no value" inputs of
// Go, an untyped nil or a typed nil of a nilable kind, produce an Empty
// container; see [IsPresentValue].
//
// # Basic Usage
//
// Construct an [Option] from a possibly absent value and chain operations
// on it:
//
//	name := optional.OfPtr(req.Name).
//		Filter(func(s string) bool { return s != "" }).
//		OrElse("anonymous")
//
// Transformations which change the value type are free functions since Go
// methods can not introduce new type parameters:
//
//	host, ok := cfg["host"]
//	addr := optional.Map(optional.OfOk(host, ok), func(host string) string {
//		return net.JoinHostPort(host, "443")
//	})
//
// # Extraction
//
// Terminal operations either fall back to a caller supplied value
// ([Option.OrElse], [Option.OrElseGet]) or report absence as an error
// ([Option.OrElseErr], [Option.ToFuture]). The error used for an Empty
// container is resolved from an optional [Failure] argument: by default it
// is [ErrNotPresent], a [Message] carries a custom message and a
// [FailureFunc] supplies the error value verbatim.
package optional
