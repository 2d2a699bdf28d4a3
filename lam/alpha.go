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

// canonical de-Bruijn-indexed form, only used by AlphaEquivalent.
// Bound variables become their binder distance, free variables keep
// their name as a marker.
type canonTerm interface{}

type canonBound int
type canonFree string
type canonAbs struct {
	body canonTerm
}
type canonApp struct {
	fun canonTerm
	arg canonTerm
}

// canonicalize converts t in a single top-down traversal, carrying the
// in-scope bound identifiers innermost first.
func canonicalize(t Term, scope []string) canonTerm {
	switch t2 := t.(type) {
	case Var:
		for i, v := range scope {
			if v == t2.Name {
				return canonBound(i)
			}
		}
		return canonFree(t2.Name)
	case Abs:
		inner := make([]string, 0, len(scope)+1)
		inner = append(inner, t2.Arg)
		inner = append(inner, scope...)
		return canonAbs{canonicalize(t2.Body, inner)}
	case App:
		return canonApp{canonicalize(t2.Fun, scope), canonicalize(t2.Arg, scope)}
	}
	panic("unknown term type")
}

func canonEqual(a, b canonTerm) bool {
	switch a2 := a.(type) {
	case canonBound:
		b2, ok := b.(canonBound)
		return ok && a2 == b2
	case canonFree:
		b2, ok := b.(canonFree)
		return ok && a2 == b2
	case canonAbs:
		b2, ok := b.(canonAbs)
		return ok && canonEqual(a2.body, b2.body)
	case canonApp:
		b2, ok := b.(canonApp)
		return ok && canonEqual(a2.fun, b2.fun) && canonEqual(a2.arg, b2.arg)
	}
	return false
}

// AlphaEquivalent reports whether t and u are equal up to consistent
// renaming of bound identifiers. Free variables must match by name.
func AlphaEquivalent(t, u Term) bool {
	return canonEqual(canonicalize(t, nil), canonicalize(u, nil))
}
