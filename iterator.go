// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import "github.com/wordset/concise/internal"

// Iterator walks a Set's elements in ascending order. It reads the set's
// live word buffer rather than a copy, so in-place mutations made to the
// set while the iterator is in flight can show through in blocks it has
// not reached yet.
type Iterator struct {
	c    cursor
	ok   bool
	mask uint32 // bits of the current block not yet consumed
}

// Iterator returns a forward iterator positioned before s's smallest
// element.
func (s *Set) Iterator() *Iterator {
	it := &Iterator{c: newCursor(s.words, s.lastWordIndex)}
	it.advanceBlock()
	return it
}

func (it *Iterator) advanceBlock() {
	if !it.c.hasNext() {
		it.ok = false
		return
	}
	it.c.next()
	it.mask = it.c.currentLiteral()
	it.ok = true
}

// HasNext reports whether Next has another element to return.
func (it *Iterator) HasNext() bool {
	return it.ok
}

// Next returns the iterator's next element in ascending order, or (0,
// false) once every element has been consumed.
func (it *Iterator) Next() (uint32, bool) {
	if !it.ok {
		return 0, false
	}
	tz := internal.TrailingZeros32(it.mask)
	v := uint32(it.c.currentPrefix) + uint32(tz)
	it.mask &^= uint32(1) << uint(tz)
	if it.mask == 0 {
		it.advanceBlock()
	}
	return v, true
}

// SkipAllBefore advances the iterator to its first remaining element that
// is >= target, discarding everything smaller. It reports whether the
// iterator still has an element to return afterward.
func (it *Iterator) SkipAllBefore(target uint32) bool {
	if !it.ok {
		return false
	}
	targetPrefix := int64(target &^ 31)
	if it.c.currentPrefix < targetPrefix {
		if !it.c.skipAllBefore(targetPrefix) {
			it.ok = false
			return false
		}
		it.mask = it.c.currentLiteral()
	}
	if it.c.currentPrefix == targetPrefix {
		low := uint(target & 31)
		it.mask &^= uint32(1)<<low - 1
		if it.mask == 0 {
			it.advanceBlock()
		}
	}
	return it.ok
}

// ReverseIterator walks a Set's elements in descending order. Unlike
// Iterator, it decodes every block into its own list at creation time, so
// later mutations to the set are not reflected in it.
type ReverseIterator struct {
	c    reverseCursor
	ok   bool
	mask uint32
}

// ReverseIterator returns a reverse iterator positioned after s's largest
// element.
func (s *Set) ReverseIterator() *ReverseIterator {
	it := &ReverseIterator{c: newReverseCursor(s.words, s.lastWordIndex)}
	it.advanceBlock()
	return it
}

func (it *ReverseIterator) advanceBlock() {
	if !it.c.hasNext() {
		it.ok = false
		return
	}
	it.c.next()
	it.mask = it.c.currentLiteral()
	it.ok = true
}

// HasNext reports whether Next has another element to return.
func (it *ReverseIterator) HasNext() bool {
	return it.ok
}

// Next returns the iterator's next element in descending order, or (0,
// false) once every element has been consumed.
func (it *ReverseIterator) Next() (uint32, bool) {
	if !it.ok {
		return 0, false
	}
	bit := 31 - internal.LeadingZeros32(it.mask)
	v := uint32(it.c.currentPrefix()) + uint32(bit)
	it.mask &^= uint32(1) << uint(bit)
	if it.mask == 0 {
		it.advanceBlock()
	}
	return v, true
}

// SkipAllBefore advances the iterator to its first remaining element that
// is <= target, discarding everything larger. It reports whether the
// iterator still has an element to return afterward.
func (it *ReverseIterator) SkipAllBefore(target uint32) bool {
	targetPrefix := int64(target &^ 31)
	for it.ok && it.c.currentPrefix() > targetPrefix {
		it.advanceBlock()
	}
	if it.ok && it.c.currentPrefix() == targetPrefix {
		high := uint(target & 31)
		if high < 31 {
			it.mask &= uint32(1)<<(high+1) - 1
		}
		if it.mask == 0 {
			it.advanceBlock()
		}
	}
	return it.ok
}
