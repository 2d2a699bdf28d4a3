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

import "fmt"
import "strings"

// Print renders t with minimal parentheses: application is
// left-associative, abstraction bodies extend maximally rightward.
// The output parses back to the same tree.
func Print(t Term) string {
	var b strings.Builder
	printTerm(&b, t, false, false)
	return b.String()
}

// funpos: t sits in the function position of an application.
// argpos: t sits in the argument position of an application that is
// not the last thing on the line.
func printTerm(b *strings.Builder, t Term, funpos bool, argpos bool) {
	switch t2 := t.(type) {
	case Var:
		b.WriteString(t2.Name)
	case Abs:
		if funpos || argpos {
			b.WriteString("(")
		}
		b.WriteString("\\")
		b.WriteString(t2.Arg)
		b.WriteString(".")
		printTerm(b, t2.Body, false, false)
		if funpos || argpos {
			b.WriteString(")")
		}
	case App:
		if argpos {
			b.WriteString("(")
		}
		printTerm(b, t2.Fun, true, false)
		b.WriteString(" ")
		printTerm(b, t2.Arg, false, true)
		if argpos {
			b.WriteString(")")
		}
	}
}

// Describe renders t for the REPL: the compact form, annotated with
// the decimal value when the term is a Church numeral.
func Describe(t Term) string {
	if n, ok := ChurchNumeral(t); ok {
		return fmt.Sprintf("%s  (numeral %d)", Print(t), n)
	}
	return Print(t)
}
