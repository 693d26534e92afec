// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	reInt   = regexp.MustCompile(`^[0-9]+$`)
	reRange = regexp.MustCompile(`^[0-9]+-[0-9]+$`)
	reQuant = regexp.MustCompile(`^[0-9]+[*][0-9]+$`)
)

// DecodeSetGen decodes a SetGen formatted string into a sorted, deduplicated
// slice of elements.
//
// The SetGen format is a compact way to script a set's contents for a test
// without writing an imperative builder loop. It is a whitespace-separated
// token stream; the '#' character starts a comment running to the end of
// its line.
//
// A token of the pattern "[0-9]+" is a single element.
//
// A token of the pattern "lo-hi" (e.g. "10-20") expands to every integer in
// [lo, hi], inclusive; lo must not exceed hi.
//
// A token of the pattern "start*n" (e.g. "100*5") expands to the n
// consecutive integers starting at start (100, 101, 102, 103, 104) — a
// quantifier for quickly scripting a run without spelling out a range.
//
// Example SetGen string:
//
//	0 1 2          # three singletons
//	100-103        # a contiguous run, inclusive
//	1000*4         # four consecutive elements starting at 1000
//	4000000000     # an element above 2^31
//
// decodes to {0, 1, 2, 100, 101, 102, 103, 1000, 1001, 1002, 1003, 4000000000}.
func DecodeSetGen(str string) ([]uint32, error) {
	var toks []string
	for _, line := range strings.Split(str, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		toks = append(toks, strings.Fields(line)...)
	}

	var elems []uint32
	for _, t := range toks {
		switch {
		case reRange.MatchString(t):
			i := strings.IndexByte(t, '-')
			lo, err1 := strconv.ParseUint(t[:i], 10, 32)
			hi, err2 := strconv.ParseUint(t[i+1:], 10, 32)
			if err1 != nil || err2 != nil || lo > hi {
				return nil, fmt.Errorf("testutil: invalid range token: %s", t)
			}
			for v := lo; v <= hi; v++ {
				elems = append(elems, uint32(v))
			}
		case reQuant.MatchString(t):
			i := strings.IndexByte(t, '*')
			start, err1 := strconv.ParseUint(t[:i], 10, 32)
			n, err2 := strconv.Atoi(t[i+1:])
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("testutil: invalid quantified token: %s", t)
			}
			for i := 0; i < n; i++ {
				elems = append(elems, uint32(start)+uint32(i))
			}
		case reInt.MatchString(t):
			v, err := strconv.ParseUint(t, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("testutil: invalid integer token: %s", t)
			}
			elems = append(elems, uint32(v))
		default:
			return nil, fmt.Errorf("testutil: invalid token: %s", t)
		}
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })
	out := elems[:0]
	for _, v := range elems {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out, nil
}

// MustDecodeSetGen is like DecodeSetGen but panics on error. It is meant to
// be used in tests with a trusted, hand-authored literal.
func MustDecodeSetGen(str string) []uint32 {
	elems, err := DecodeSetGen(str)
	if err != nil {
		panic(err)
	}
	return elems
}
