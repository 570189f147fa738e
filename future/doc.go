// Copyright (c) 2025 lilBunnyRabbit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package future provides a minimal one-shot completion value.
//
// A [Future] settles exactly once with a value or an error. It can be
// constructed already settled via [Resolved] and [Rejected], which is how
// [optional.Option.ToFuture] produces it, or driven by a background
// goroutine via [Go].
package future
