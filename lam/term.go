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

// Term is a lambda calculus term: Var, Abs or App.
// Terms are immutable values; every operation on them returns fresh
// nodes, so subtrees may be shared freely between terms and goroutines.
type Term interface {
	String() string
}

// Var is a variable occurrence.
type Var struct {
	Name string
}

// Abs is an abstraction \x.body; Arg scopes over the whole body.
type Abs struct {
	Arg  string
	Body Term
}

// App is the application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

// String renders the exact tree shape in the surface grammar:
// applications and abstractions are always parenthesized, bare
// variables never. This is the debug/round-trip form; see Print
// for the display form with minimal parentheses.
func (v Var) String() string {
	return v.Name
}

func (a Abs) String() string {
	return "(\\" + a.Arg + "." + a.Body.String() + ")"
}

func (a App) String() string {
	return "(" + a.Fun.String() + " " + a.Arg.String() + ")"
}

// Equal is structural equality: identical shape and identical
// identifiers. It is stricter than AlphaEquivalent, which ignores
// the names of bound variables.
func Equal(t, u Term) bool {
	switch t2 := t.(type) {
	case Var:
		u2, ok := u.(Var)
		return ok && t2.Name == u2.Name
	case Abs:
		u2, ok := u.(Abs)
		return ok && t2.Arg == u2.Arg && Equal(t2.Body, u2.Body)
	case App:
		u2, ok := u.(App)
		return ok && Equal(t2.Fun, u2.Fun) && Equal(t2.Arg, u2.Arg)
	}
	panic("unknown term type")
}
