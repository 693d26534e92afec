// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drainForward(it *Iterator) []uint32 {
	var out []uint32
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func drainReverse(it *ReverseIterator) []uint32 {
	var out []uint32
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestIteratorForwardOrder(t *testing.T) {
	elems := []uint32{0, 1, 31, 32, 63, 64, 1000, 1<<31 - 1}
	s := buildSet(t, elems)
	if diff := cmp.Diff(elems, drainForward(s.Iterator())); diff != "" {
		t.Errorf("forward iterator mismatch (-want +got):\n%s", diff)
	}
}

func TestIteratorReverseOrder(t *testing.T) {
	elems := []uint32{0, 1, 31, 32, 63, 64, 1000, 1<<31 - 1}
	want := make([]uint32, len(elems))
	for i, v := range elems {
		want[len(elems)-1-i] = v
	}
	s := buildSet(t, elems)
	if diff := cmp.Diff(want, drainReverse(s.ReverseIterator())); diff != "" {
		t.Errorf("reverse iterator mismatch (-want +got):\n%s", diff)
	}
}

func TestIteratorEmptySet(t *testing.T) {
	s := New()
	if _, ok := s.Iterator().Next(); ok {
		t.Error("forward iterator over empty set: want exhausted")
	}
	if _, ok := s.ReverseIterator().Next(); ok {
		t.Error("reverse iterator over empty set: want exhausted")
	}
}

func TestIteratorSkipAllBefore(t *testing.T) {
	elems := []uint32{0, 1, 10, 11, 40, 41, 100}
	s := buildSet(t, elems)

	it := s.Iterator()
	if ok := it.SkipAllBefore(11); !ok {
		t.Fatal("SkipAllBefore(11): want an element to remain")
	}
	if diff := cmp.Diff([]uint32{11, 40, 41, 100}, drainForward(it)); diff != "" {
		t.Errorf("after SkipAllBefore(11) mismatch (-want +got):\n%s", diff)
	}

	it2 := s.Iterator()
	if ok := it2.SkipAllBefore(12); !ok {
		t.Fatal("SkipAllBefore(12): want an element to remain")
	}
	if diff := cmp.Diff([]uint32{40, 41, 100}, drainForward(it2)); diff != "" {
		t.Errorf("after SkipAllBefore(12) mismatch (-want +got):\n%s", diff)
	}

	it3 := s.Iterator()
	if ok := it3.SkipAllBefore(1000); ok {
		t.Fatal("SkipAllBefore(1000): want exhausted, nothing is that large")
	}
}

func TestReverseIteratorSkipAllBefore(t *testing.T) {
	elems := []uint32{0, 1, 10, 11, 40, 41, 100}
	s := buildSet(t, elems)

	it := s.ReverseIterator()
	if ok := it.SkipAllBefore(40); !ok {
		t.Fatal("SkipAllBefore(40): want an element to remain")
	}
	if diff := cmp.Diff([]uint32{40, 11, 10, 1, 0}, drainReverse(it)); diff != "" {
		t.Errorf("after SkipAllBefore(40) mismatch (-want +got):\n%s", diff)
	}

	it2 := s.ReverseIterator()
	if ok := it2.SkipAllBefore(39); !ok {
		t.Fatal("SkipAllBefore(39): want an element to remain")
	}
	if diff := cmp.Diff([]uint32{11, 10, 1, 0}, drainReverse(it2)); diff != "" {
		t.Errorf("after SkipAllBefore(39) mismatch (-want +got):\n%s", diff)
	}

	it3 := s.ReverseIterator()
	if ok := it3.SkipAllBefore(0); !ok {
		t.Fatal("SkipAllBefore(0): want the element 0 to remain")
	}
	if diff := cmp.Diff([]uint32{0}, drainReverse(it3)); diff != "" {
		t.Errorf("after SkipAllBefore(0) mismatch (-want +got):\n%s", diff)
	}
}
