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
import "strconv"
import "strings"

// the built-in command set; IO commands (save, load, stats) are
// declared by the host in main.go, the same way memcp keeps its
// sandboxable core free of file access.
func init() {
	DeclareTitle("Terms")
	Declare(&Declaration{
		"free", "lists the free variables of a term",
		[]DeclarationParameter{
			DeclarationParameter{"term", "term", "term to analyze"},
		},
		func(ws *Workspace, args string) string {
			t := mustParse(args)
			free := SortedNames(FreeVars(t))
			if len(free) == 0 {
				return "no free variables"
			}
			return strings.Join(free, " ")
		},
	})
	Declare(&Declaration{
		"vars", "lists all variables of a term, free and bound",
		[]DeclarationParameter{
			DeclarationParameter{"term", "term", "term to analyze"},
		},
		func(ws *Workspace, args string) string {
			return strings.Join(SortedNames(AllVars(mustParse(args))), " ")
		},
	})
	Declare(&Declaration{
		"alpha", `checks two terms for alpha-equivalence

The terms are separated by a comma:
:alpha \x.x , \y.y`,
		[]DeclarationParameter{
			DeclarationParameter{"term , term", "term", "the two terms to compare"},
		},
		func(ws *Workspace, args string) string {
			left, right, found := strings.Cut(args, ",")
			if !found {
				panic("usage: :alpha term , term")
			}
			if AlphaEquivalent(mustParse(left), mustParse(right)) {
				return "alpha-equivalent"
			}
			return "not alpha-equivalent"
		},
	})
	Declare(&Declaration{
		"trace", "reduces a term step by step and prints every intermediate term",
		[]DeclarationParameter{
			DeclarationParameter{"term", "term", "term to reduce"},
		},
		func(ws *Workspace, args string) string {
			t := ws.Expand(mustParse(args))
			history, result := Trace(t, ws.StepLimit)
			var b strings.Builder
			for i, step := range history {
				fmt.Fprintf(&b, "%4d  %s\n", i, Print(step))
			}
			if result.NormalForm {
				fmt.Fprintf(&b, "normal form after %d steps", result.Steps)
			} else {
				fmt.Fprintf(&b, "no normal form after %d steps", result.Limit)
			}
			return b.String()
		},
	})

	DeclareTitle("Workspace")
	Declare(&Declaration{
		"env", "lists all defined names and their terms",
		nil,
		func(ws *Workspace, args string) string {
			defs := ws.List()
			if len(defs) == 0 {
				return "no definitions"
			}
			var b strings.Builder
			for _, d := range defs {
				b.WriteString(d.Name + " = " + Print(d.Term) + "\n")
			}
			return strings.TrimRight(b.String(), "\n")
		},
	})
	Declare(&Declaration{
		"undef", "removes a definition from the workspace",
		[]DeclarationParameter{
			DeclarationParameter{"name", "name", "name to remove"},
		},
		func(ws *Workspace, args string) string {
			if args == "" {
				panic("usage: :undef name")
			}
			if !ws.Undefine(args) {
				panic("not defined: " + args)
			}
			return "removed " + args
		},
	})
	Declare(&Declaration{
		"limit", "shows or sets the reduction step limit",
		[]DeclarationParameter{
			DeclarationParameter{"steps", "int", "(optional) new limit"},
		},
		func(ws *Workspace, args string) string {
			if args != "" {
				n, err := strconv.Atoi(args)
				if err != nil || n < 1 {
					panic("limit must be a positive integer")
				}
				ws.StepLimit = n
			}
			return fmt.Sprintf("step limit is %d", ws.StepLimit)
		},
	})

	DeclareTitle("Shell")
	Declare(&Declaration{
		"help", "lists all commands or prints help for a specific command",
		[]DeclarationParameter{
			DeclarationParameter{"topic", "name", "(optional) command to print help about"},
		},
		func(ws *Workspace, args string) string {
			return Help(args)
		},
	})
	Declare(&Declaration{
		"quit", "leaves the shell (also :exit or Ctrl-D)",
		nil,
		func(ws *Workspace, args string) string {
			return "" // handled by the REPL loop itself
		},
	})
}

func mustParse(src string) Term {
	t, err := Parse("command", strings.TrimSpace(src))
	if err != nil {
		panic(err)
	}
	return t
}
