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

// ContainsRedex reports whether t contains a reducible application
// anywhere in the tree.
func ContainsRedex(t Term) bool {
	switch t2 := t.(type) {
	case Var:
		return false
	case Abs:
		return ContainsRedex(t2.Body)
	case App:
		if _, ok := t2.Fun.(Abs); ok {
			return true
		}
		return ContainsRedex(t2.Fun) || ContainsRedex(t2.Arg)
	}
	return false
}

// ReduceOnce performs one leftmost-outermost beta-reduction step.
// A term in normal form is returned unchanged. Note that reduction
// descends into abstraction bodies once no outer redex exists, so
// \x.((\y.y) x) does step to \x.x.
func ReduceOnce(t Term) Term {
	switch t2 := t.(type) {
	case Var:
		return t2
	case Abs:
		return Abs{t2.Arg, ReduceOnce(t2.Body)}
	case App:
		if fun, ok := t2.Fun.(Abs); ok {
			return Substitute(fun.Arg, t2.Arg, fun.Body)
		}
		if ContainsRedex(t2.Fun) {
			return App{ReduceOnce(t2.Fun), t2.Arg}
		}
		return App{t2.Fun, ReduceOnce(t2.Arg)}
	}
	panic("unknown term type")
}

// Result is the outcome of an iterated reduction. NormalForm
// distinguishes "no redex left" from "step limit exhausted while a
// redex remained"; Term holds the last term either way.
type Result struct {
	Term       Term
	Steps      int
	Limit      int
	NormalForm bool
}

// Reduce applies ReduceOnce until normal form or until limit steps
// were spent. There is no cycle detection beyond the limit; diverging
// terms like (\x.x x)(\x.x x) simply exhaust it.
func Reduce(t Term, limit int) Result {
	steps := 0
	for steps < limit && ContainsRedex(t) {
		t = ReduceOnce(t)
		steps++
	}
	return Result{t, steps, limit, !ContainsRedex(t)}
}

// Trace reduces like Reduce but also returns every intermediate term,
// starting with the input. Used by the :trace command.
func Trace(t Term, limit int) ([]Term, Result) {
	history := []Term{t}
	steps := 0
	for steps < limit && ContainsRedex(t) {
		t = ReduceOnce(t)
		history = append(history, t)
		steps++
	}
	return history, Result{t, steps, limit, !ContainsRedex(t)}
}
