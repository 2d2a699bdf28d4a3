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

// Rename replaces every occurrence of from in t with to, both as a
// variable and as the bound identifier of an abstraction. It is a
// blind name-level rewrite; Substitute only calls it after choosing
// a fresh name, so no capture analysis happens here.
func Rename(from, to string, t Term) Term {
	switch t2 := t.(type) {
	case Var:
		if t2.Name == from {
			return Var{to}
		}
		return t2
	case Abs:
		arg := t2.Arg
		if arg == from {
			arg = to
		}
		return Abs{arg, Rename(from, to, t2.Body)}
	case App:
		return App{Rename(from, to, t2.Fun), Rename(from, to, t2.Arg)}
	}
	panic("unknown term type")
}

// Substitute returns subject with every free occurrence of name
// replaced by repl. Invariant: no free variable of repl becomes
// bound in the result; the bound identifier of an abstraction is
// renamed to a fresh one whenever it occurs free in repl.
func Substitute(name string, repl Term, subject Term) Term {
	switch s := subject.(type) {
	case Var:
		if s.Name == name {
			return repl
		}
		return s
	case App:
		return App{Substitute(name, repl, s.Fun), Substitute(name, repl, s.Arg)}
	case Abs:
		if s.Arg == name {
			// name is re-bound here, the substitution is vacuous
			return s
		}
		if IsFreeIn(s.Arg, repl) {
			fresh := FreshName(repl, s.Arg)
			return Abs{fresh, Substitute(name, repl, Rename(s.Arg, fresh, s.Body))}
		}
		return Abs{s.Arg, Substitute(name, repl, s.Body)}
	}
	panic("unknown term type")
}
