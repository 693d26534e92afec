// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package concise

import (
	"testing"

	"github.com/wordset/concise/internal/testutil"
)

// randomSet draws n distinct values from [0, universe) using a
// version-stable PRNG so failures reproduce across Go releases.
func randomSet(t *testing.T, r *testutil.Rand, n, universe int) ([]uint32, *Set) {
	t.Helper()
	perm := r.Perm(universe)
	elems := make([]uint32, n)
	for i := 0; i < n; i++ {
		elems[i] = uint32(perm[i])
	}
	return elems, buildSet(t, elems)
}

func TestPropertyUnionIntersectionLaws(t *testing.T) {
	r := testutil.NewRand(42)
	for trial := 0; trial < 20; trial++ {
		_, a := randomSet(t, r, 30, 2000)
		_, b := randomSet(t, r, 30, 2000)
		_, c := randomSet(t, r, 30, 2000)

		// Commutativity.
		if !Union(a, b).Equals(Union(b, a)) {
			t.Fatalf("trial %d: Union not commutative", trial)
		}
		if !Intersection(a, b).Equals(Intersection(b, a)) {
			t.Fatalf("trial %d: Intersection not commutative", trial)
		}

		// Associativity.
		if !Union(Union(a, b), c).Equals(Union(a, Union(b, c))) {
			t.Fatalf("trial %d: Union not associative", trial)
		}
		if !Intersection(Intersection(a, b), c).Equals(Intersection(a, Intersection(b, c))) {
			t.Fatalf("trial %d: Intersection not associative", trial)
		}

		// Absorption: A ∪ (A ∩ B) == A, and A ∩ (A ∪ B) == A.
		if !Union(a, Intersection(a, b)).Equals(a) {
			t.Fatalf("trial %d: absorption law (union) violated", trial)
		}
		if !Intersection(a, Union(a, b)).Equals(a) {
			t.Fatalf("trial %d: absorption law (intersection) violated", trial)
		}
	}
}

func TestPropertySymmetricDifferenceIsUnionMinusIntersection(t *testing.T) {
	r := testutil.NewRand(7)
	for trial := 0; trial < 20; trial++ {
		_, a := randomSet(t, r, 25, 1000)
		_, b := randomSet(t, r, 25, 1000)

		sd := SymmetricDifference(a, b)
		alt := Difference(Union(a, b), Intersection(a, b))
		if !sd.Equals(alt) {
			t.Fatalf("trial %d: SymmetricDifference(a,b) != Union(a,b) - Intersection(a,b)", trial)
		}
	}
}

func TestPropertyDifferenceIsComplementOfIntersection(t *testing.T) {
	r := testutil.NewRand(99)
	for trial := 0; trial < 20; trial++ {
		_, a := randomSet(t, r, 25, 1000)
		_, b := randomSet(t, r, 25, 1000)

		diff := Difference(a, b)
		if got, want := diff.Size(), a.Size()-IntersectionSize(a, b); got != want {
			t.Fatalf("trial %d: |A-B|=%d, want |A|-|A∩B|=%d", trial, got, want)
		}
	}
}
