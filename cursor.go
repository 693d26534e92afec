// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

// cursor is a stateful forward traversal over a Set's word buffer. It
// borrows the slice for the lifetime of the traversal; it never allocates.
//
// Each call to next advances to the next logical block, which is either a
// literal attached to the governing marker or a single-value block. The
// cursor hides the marker/literal split from its callers: currentPrefix and
// currentLiteral always describe "the block currently under the cursor".
type cursor struct {
	words     []uint32
	lastIndex int // index of the last active word in words; -1 if empty

	wordIndex         int // index of the word last consumed
	wordValue         uint32
	currentPrefix     int64
	remainingLiterals int
	isSingleValue     bool
}

// newCursor opens a cursor positioned before the first word of words[0:lastIndex+1].
func newCursor(words []uint32, lastIndex int) cursor {
	return cursor{
		words:         words,
		lastIndex:     lastIndex,
		wordIndex:     -1,
		currentPrefix: -blockBits,
		isSingleValue: true,
	}
}

// hasNext reports whether another word remains to be consumed.
func (c *cursor) hasNext() bool {
	return c.wordIndex < c.lastIndex
}

// next advances the cursor to the next logical block: a literal attached to
// the current marker, or a fresh single-value or simple-marker block.
func (c *cursor) next() {
	c.wordIndex++
	w := c.words[c.wordIndex]

	if c.remainingLiterals > 0 {
		c.remainingLiterals--
		c.currentPrefix += blockBits
		c.isSingleValue = false
		c.wordValue = w
		return
	}

	c.currentPrefix = int64(prefixOf(w))
	c.isSingleValue = isSingleValue(w)
	if c.isSingleValue {
		c.wordValue = w
		return
	}

	c.remainingLiterals = literalCountOf(w)
	c.wordIndex++
	c.wordValue = c.words[c.wordIndex]
}

// currentLiteral returns the 32-bit bitmap of the block the cursor is
// positioned on.
func (c *cursor) currentLiteral() uint32 {
	if c.isSingleValue {
		return uint32(1) << (c.wordValue & 0x1F)
	}
	return c.wordValue
}

// fastNext advances by exactly one attached literal. Precondition:
// remainingLiterals > 0 (i.e. the word after the current one is another
// literal belonging to the same marker).
func (c *cursor) fastNext() {
	c.wordIndex++
	c.remainingLiterals--
	c.currentPrefix += blockBits
	c.wordValue = c.words[c.wordIndex]
}

// skipAllBefore advances the cursor until currentPrefix >= target or the
// cursor is exhausted, using the run-length acceleration described in the
// package's design: while inside a literal run, a whole span of literals
// can be jumped in O(1) rather than visited one at a time. target must be a
// block-aligned prefix (a multiple of 32). Reports whether the cursor is
// still positioned on a block (false means exhausted).
func (c *cursor) skipAllBefore(target int64) bool {
	for c.currentPrefix < target {
		if !c.isSingleValue && c.remainingLiterals > 0 {
			gap := (target - c.currentPrefix) >> 5
			if gap <= int64(c.remainingLiterals) {
				c.wordIndex += int(gap)
				c.currentPrefix += gap * blockBits
				c.remainingLiterals -= int(gap)
				c.wordValue = c.words[c.wordIndex]
				continue
			}
		}
		if !c.hasNext() {
			return false
		}
		c.next()
	}
	return true
}

// block is one decoded logical block: a literal bitmap and the prefix of
// the 32 values it covers.
type block struct {
	prefix  int64
	literal uint32
}

// reverseCursor walks a Set's logical blocks in descending prefix order.
//
// A marker is only decodable by reading it before its attached literals, so
// a backward word-by-word scan cannot recover block boundaries on its own.
// reverseCursor instead makes one forward pass at construction to record
// every block's (prefix, literal) pair, then walks that record back to
// front; total work is still O(words), just not O(1) auxiliary space.
type reverseCursor struct {
	blocks []block
	pos    int // index of the block last returned by next(); len(blocks) before start
}

// newReverseCursor opens a cursor over words[0:lastIndex+1], positioned
// after the last block.
func newReverseCursor(words []uint32, lastIndex int) reverseCursor {
	var blocks []block
	fwd := newCursor(words, lastIndex)
	for fwd.hasNext() {
		fwd.next()
		blocks = append(blocks, block{fwd.currentPrefix, fwd.currentLiteral()})
	}
	return reverseCursor{blocks: blocks, pos: len(blocks)}
}

func (c *reverseCursor) hasNext() bool {
	return c.pos > 0
}

// next moves the cursor to the next block in descending order.
func (c *reverseCursor) next() {
	c.pos--
}

// currentPrefix returns the prefix of the block under the cursor.
func (c *reverseCursor) currentPrefix() int64 {
	return c.blocks[c.pos].prefix
}

// currentLiteral returns the bitmap of the block under the cursor.
func (c *reverseCursor) currentLiteral() uint32 {
	return c.blocks[c.pos].literal
}
