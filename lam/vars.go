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

import "sort"

// FreeVars returns the set of identifiers occurring free in t.
func FreeVars(t Term) map[string]bool {
	result := make(map[string]bool)
	collectFree(t, result)
	return result
}

func collectFree(t Term, into map[string]bool) {
	switch t2 := t.(type) {
	case Var:
		into[t2.Name] = true
	case Abs:
		inner := make(map[string]bool)
		collectFree(t2.Body, inner)
		delete(inner, t2.Arg)
		for v := range inner {
			into[v] = true
		}
	case App:
		collectFree(t2.Fun, into)
		collectFree(t2.Arg, into)
	}
}

// IsFreeIn reports whether name occurs free in t, without building
// the whole free-variable set.
func IsFreeIn(name string, t Term) bool {
	switch t2 := t.(type) {
	case Var:
		return t2.Name == name
	case Abs:
		if t2.Arg == name {
			return false
		}
		return IsFreeIn(name, t2.Body)
	case App:
		return IsFreeIn(name, t2.Fun) || IsFreeIn(name, t2.Arg)
	}
	return false
}

// AllVars returns every identifier occurring in t, free or bound.
func AllVars(t Term) map[string]bool {
	result := make(map[string]bool)
	collectAll(t, result)
	return result
}

func collectAll(t Term, into map[string]bool) {
	switch t2 := t.(type) {
	case Var:
		into[t2.Name] = true
	case Abs:
		into[t2.Arg] = true
		collectAll(t2.Body, into)
	case App:
		collectAll(t2.Fun, into)
		collectAll(t2.Arg, into)
	}
}

// SortedNames turns a variable set into a deterministic list for output.
func SortedNames(set map[string]bool) []string {
	result := make([]string, 0, len(set))
	for v := range set {
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}

// nextName is the successor rule for identifiers: a..y step to the next
// letter, any other single character starts a numbered series, a
// two-character name ending in 0..8 bumps its digit, everything else
// gets a prime appended.
func nextName(n string) string {
	if len(n) == 1 {
		if n[0] >= 'a' && n[0] <= 'y' {
			return string(n[0] + 1)
		}
		return n + "0"
	}
	if len(n) == 2 && n[1] >= '0' && n[1] <= '8' {
		return n[:1] + string(n[1]+1)
	}
	return n + "'"
}

// FreshName derives an identifier from candidate that is not free in t.
// It is a pure function of its inputs, so renaming is reproducible.
func FreshName(t Term, candidate string) string {
	for IsFreeIn(candidate, t) {
		candidate = nextName(candidate)
	}
	return candidate
}
