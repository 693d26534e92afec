// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"math"

	"github.com/wordset/concise/internal"
)

// binOp identifies one of the four binary set operations sharing the
// two-cursor driver below.
type binOp int

const (
	opIntersect binOp = iota
	opUnion
	opDifference
	opSymmetricDifference
)

// advance moves c to its next block, reporting whether one existed.
func advance(c *cursor) bool {
	if !c.hasNext() {
		return false
	}
	c.next()
	return true
}

// combine drives the shared binary-operation template of spec §4.4.1: walk
// two cursors in lockstep by block prefix, resolve any gap per op, combine
// aligned literals with the bitwise operator, and flush whichever side
// survives once the other exhausts.
func combine(a, b *Set, op binOp) *Set {
	switch {
	case a == b:
		switch op {
		case opIntersect, opUnion:
			return a.Clone()
		case opDifference, opSymmetricDifference:
			return New()
		}
	case a.lastWordIndex < 0:
		switch op {
		case opUnion, opSymmetricDifference:
			return b.Clone()
		default:
			return New()
		}
	case b.lastWordIndex < 0:
		switch op {
		case opIntersect:
			return New()
		default:
			return a.Clone()
		}
	}

	out := New()
	out.words = make([]uint32, 0, presize(a, b, op))

	ca := newCursor(a.words, a.lastWordIndex)
	cb := newCursor(b.words, b.lastWordIndex)
	aOK := advance(&ca)
	bOK := advance(&cb)

	for aOK && bOK {
		switch {
		case ca.currentPrefix < cb.currentPrefix:
			switch op {
			case opIntersect:
				aOK = ca.skipAllBefore(cb.currentPrefix)
			default:
				out.appendLiteral(ca.currentLiteral(), ca.currentPrefix)
				aOK = advance(&ca)
			}
		case cb.currentPrefix < ca.currentPrefix:
			switch op {
			case opIntersect, opDifference:
				bOK = cb.skipAllBefore(ca.currentPrefix)
			default:
				out.appendLiteral(cb.currentLiteral(), cb.currentPrefix)
				bOK = advance(&cb)
			}
		default:
			lit := combineLiterals(op, ca.currentLiteral(), cb.currentLiteral())
			if lit != 0 {
				out.appendLiteral(lit, ca.currentPrefix)
			}
			for aOK && bOK && ca.remainingLiterals > 0 && cb.remainingLiterals > 0 {
				ca.fastNext()
				cb.fastNext()
				lit := combineLiterals(op, ca.currentLiteral(), cb.currentLiteral())
				if lit != 0 {
					out.appendLiteral(lit, ca.currentPrefix)
				}
			}
			aOK = advance(&ca)
			bOK = advance(&cb)
		}
	}

	switch op {
	case opUnion, opSymmetricDifference:
		if aOK {
			out.appendAll(&ca, math.MaxInt64)
		}
		if bOK {
			out.appendAll(&cb, math.MaxInt64)
		}
	case opDifference:
		if aOK {
			out.appendAll(&ca, math.MaxInt64)
		}
	case opIntersect:
		// Leftovers on either side cannot intersect; drop them.
	}

	out.refreshLast()
	out.size = -1
	out.hash = -1
	return out
}

// combineLiterals applies op's bitwise combinator to one pair of aligned
// 32-bit block literals.
func combineLiterals(op binOp, la, lb uint32) uint32 {
	switch op {
	case opIntersect:
		return la & lb
	case opUnion:
		return la | lb
	case opDifference:
		return la &^ lb
	case opSymmetricDifference:
		return la ^ lb
	}
	return 0
}

// presize returns the upper bound on output words for op, per spec §5:
// min+1 for intersection, max+1 for union/symmetric-difference, A+1 for
// difference.
func presize(a, b *Set, op binOp) int {
	na, nb := a.lastWordIndex+1, b.lastWordIndex+1
	switch op {
	case opIntersect:
		if na < nb {
			return na + 1
		}
		return nb + 1
	case opDifference:
		return na + 1
	default:
		if na > nb {
			return na + 1
		}
		return nb + 1
	}
}

// Intersection returns a new Set containing every element in both a and b.
func Intersection(a, b *Set) *Set { return combine(a, b, opIntersect) }

// Union returns a new Set containing every element in a or b.
func Union(a, b *Set) *Set { return combine(a, b, opUnion) }

// Difference returns a new Set containing every element of a not in b.
func Difference(a, b *Set) *Set { return combine(a, b, opDifference) }

// SymmetricDifference returns a new Set containing every element in
// exactly one of a or b.
func SymmetricDifference(a, b *Set) *Set { return combine(a, b, opSymmetricDifference) }

func unionPure(a, b *Set) *Set      { return Union(a, b) }
func intersectPure(a, b *Set) *Set  { return Intersection(a, b) }
func differencePure(a, b *Set) *Set { return Difference(a, b) }

// intersectionCount walks a and b in lockstep, counting shared elements.
// It stops once the running count reaches limit, checked after each
// aligned run of blocks (pass math.MaxInt64 for no early exit), which is
// what lets ContainsAny and
// ContainsAtLeast short-circuit without a full O(words) scan.
func intersectionCount(a, b *Set, limit int64) int64 {
	if a.lastWordIndex < 0 || b.lastWordIndex < 0 {
		return 0
	}
	ca := newCursor(a.words, a.lastWordIndex)
	cb := newCursor(b.words, b.lastWordIndex)
	aOK := advance(&ca)
	bOK := advance(&cb)

	var total int64
	for aOK && bOK && total < limit {
		switch {
		case ca.currentPrefix < cb.currentPrefix:
			aOK = ca.skipAllBefore(cb.currentPrefix)
		case cb.currentPrefix < ca.currentPrefix:
			bOK = cb.skipAllBefore(ca.currentPrefix)
		default:
			total += int64(internal.Popcount32(ca.currentLiteral() & cb.currentLiteral()))
			for aOK && bOK && ca.remainingLiterals > 0 && cb.remainingLiterals > 0 {
				ca.fastNext()
				cb.fastNext()
				total += int64(internal.Popcount32(ca.currentLiteral() & cb.currentLiteral()))
			}
			aOK = advance(&ca)
			bOK = advance(&cb)
		}
	}
	return total
}

// IntersectionSize returns |a ∩ b| without materializing the intersection.
func IntersectionSize(a, b *Set) int {
	return int(intersectionCount(a, b, math.MaxInt64))
}

// UnionSize returns |a ∪ b|.
func UnionSize(a, b *Set) int {
	return a.Size() + b.Size() - IntersectionSize(a, b)
}

// DifferenceSize returns |a \ b|.
func DifferenceSize(a, b *Set) int {
	return a.Size() - IntersectionSize(a, b)
}

// SymmetricDifferenceSize returns |a △ b|.
func SymmetricDifferenceSize(a, b *Set) int {
	return a.Size() + b.Size() - 2*IntersectionSize(a, b)
}

// ContainsAny reports whether a and b share at least one element.
func ContainsAny(a, b *Set) bool {
	return intersectionCount(a, b, 1) >= 1
}

// ContainsAtLeast reports whether a and b share at least n elements. n
// must be positive.
func ContainsAtLeast(a, b *Set, n int) (bool, error) {
	if n < 1 {
		return false, ErrInvalidArgument
	}
	return intersectionCount(a, b, int64(n)) >= int64(n), nil
}

// ContainsAll reports whether every element of b is also in a.
func ContainsAll(a, b *Set) bool {
	return IntersectionSize(a, b) == b.Size()
}
