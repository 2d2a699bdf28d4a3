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

// Church builds the Church numeral \f.\x.f (f ... (f x)) with n
// applications of f. Numeral literals in the surface syntax are
// converted through this before they reach the engine.
func Church(n int) Term {
	body := Term(Var{"x"})
	for i := 0; i < n; i++ {
		body = App{Var{"f"}, body}
	}
	return Abs{"f", Abs{"x", body}}
}

// ChurchNumeral recognizes a term of Church numeral shape regardless
// of the names chosen for its binders and returns its value. The
// printer uses it to annotate results with their decimal reading.
func ChurchNumeral(t Term) (int, bool) {
	outer, ok := t.(Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(Abs)
	if !ok {
		return 0, false
	}
	f, x := outer.Arg, inner.Arg
	n := 0
	body := inner.Body
	for {
		if v, ok := body.(Var); ok && v.Name == x {
			return n, true
		}
		app, ok := body.(App)
		if !ok {
			return 0, false
		}
		// the head must be the outer binder; if both binders share a
		// name, the inner one shadows and only numeral 0 is possible
		head, ok := app.Fun.(Var)
		if !ok || head.Name != f || f == x {
			return 0, false
		}
		n++
		body = app.Arg
	}
}
