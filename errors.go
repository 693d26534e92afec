// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "concise: " + string(e) }

var (
	// ErrInvalidArgument reports a malformed argument: an element outside
	// [0, 2^31), an inverted from/to range, or a non-positive
	// contains-at-least threshold. The target is left unchanged.
	ErrInvalidArgument = Error("invalid argument")

	// ErrEmptySet reports a query (First, Last) made against an empty set.
	ErrEmptySet = Error("set is empty")

	// ErrOutOfRange reports a positional Get outside [0, Size).
	ErrOutOfRange = Error("index out of range")
)
