/*
Copyright (C) 2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lam

import "testing"

func TestAlphaEquivalentBasics(t *testing.T) {
	cases := []struct {
		a, b Term
		want bool
	}{
		// \x.x and \y.y are alpha-equivalent
		{Abs{"x", Var{"x"}}, Abs{"y", Var{"y"}}, true},
		// \x.y and \x.z differ in a free variable
		{Abs{"x", Var{"y"}}, Abs{"x", Var{"z"}}, false},
		// \x.x y and \x.y x have different structure
		{Abs{"x", App{Var{"x"}, Var{"y"}}}, Abs{"x", App{Var{"y"}, Var{"x"}}}, false},
		// free variables must match by name
		{Var{"x"}, Var{"y"}, false},
		{Var{"x"}, Var{"x"}, true},
		// bound/free mix: \x.x z vs \y.y z
		{Abs{"x", App{Var{"x"}, Var{"z"}}}, Abs{"y", App{Var{"y"}, Var{"z"}}}, true},
		// shape mismatch
		{Abs{"x", Var{"x"}}, App{Var{"x"}, Var{"x"}}, false},
	}
	for _, c := range cases {
		if got := AlphaEquivalent(c.a, c.b); got != c.want {
			t.Errorf("AlphaEquivalent(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestAlphaEquivalenceRelation(t *testing.T) {
	terms := []Term{
		Abs{"x", Var{"x"}},
		Abs{"y", Var{"y"}},
		Abs{"f", Abs{"x", App{Var{"f"}, Var{"x"}}}},
		Abs{"g", Abs{"y", App{Var{"g"}, Var{"y"}}}},
		App{Var{"a"}, Var{"b"}},
	}
	// reflexive
	for _, a := range terms {
		if !AlphaEquivalent(a, a) {
			t.Errorf("not reflexive on %s", a)
		}
	}
	// symmetric
	for _, a := range terms {
		for _, b := range terms {
			if AlphaEquivalent(a, b) != AlphaEquivalent(b, a) {
				t.Errorf("not symmetric on %s, %s", a, b)
			}
		}
	}
	// transitive
	for _, a := range terms {
		for _, b := range terms {
			for _, c := range terms {
				if AlphaEquivalent(a, b) && AlphaEquivalent(b, c) && !AlphaEquivalent(a, c) {
					t.Errorf("not transitive on %s, %s, %s", a, b, c)
				}
			}
		}
	}
}

func TestRenamingPreservesAlphaEquivalence(t *testing.T) {
	// renaming a bound identifier to a name not occurring in the term
	// yields an alpha-equivalent term
	term := Abs{"x", App{Var{"x"}, Var{"y"}}}
	renamed := Rename("x", "w", term)
	if !AlphaEquivalent(term, renamed) {
		t.Fatalf("%s and %s must be alpha-equivalent", term, renamed)
	}
	// but renaming onto a free variable changes meaning
	clash := Abs{"y", App{Var{"y"}, Var{"y"}}}
	if AlphaEquivalent(term, clash) {
		t.Fatalf("%s and %s must not be alpha-equivalent", term, clash)
	}
}

func TestAlphaDeepBinders(t *testing.T) {
	// same structure, consistently different names at several depths
	a := Abs{"x", Abs{"y", App{Var{"x"}, Abs{"z", App{Var{"z"}, Var{"y"}}}}}}
	b := Abs{"a", Abs{"b", App{Var{"a"}, Abs{"c", App{Var{"c"}, Var{"b"}}}}}}
	if !AlphaEquivalent(a, b) {
		t.Fatal("deeply nested consistent renaming must be alpha-equivalent")
	}
	// inconsistent renaming: inner variable points at the wrong binder
	c := Abs{"a", Abs{"b", App{Var{"a"}, Abs{"c", App{Var{"c"}, Var{"a"}}}}}}
	if AlphaEquivalent(a, c) {
		t.Fatal("pointing at a different binder must not be alpha-equivalent")
	}
}

func TestAlphaShadowing(t *testing.T) {
	// \x.\x.x binds to the inner x; equivalent to \a.\b.b, not \a.\b.a
	shadow := Abs{"x", Abs{"x", Var{"x"}}}
	if !AlphaEquivalent(shadow, Abs{"a", Abs{"b", Var{"b"}}}) {
		t.Fatal("shadowed binder must resolve innermost")
	}
	if AlphaEquivalent(shadow, Abs{"a", Abs{"b", Var{"a"}}}) {
		t.Fatal("shadowed binder must not resolve outermost")
	}
}
