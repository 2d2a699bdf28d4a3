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
import packrat "github.com/launix-de/go-packrat/v2"

/*
surface grammar:

	expr := atom+                      application, left-associative
	atom := ("\"|"λ") var "." expr     abstraction, body maximally rightward
	      | "(" expr ")"
	      | number                     Church numeral literal
	      | var
	var  := [a-zA-Z][a-zA-Z0-9_']*

the token parsers are built with skipWs=false: the scanner's word break
table treats λ as a letter, so a skipWs atom can never stop between λ
and the variable that follows it. whitespace is skipped explicitly
instead (OrParser skips on its own, tokenParser covers the rest).
*/

// tokenParser skips leading whitespace, then delegates to a skipWs=false
// subparser. backtracking is left to the enclosing And/Or/Many parsers.
type tokenParser struct {
	sub packrat.Parser[Term]
}

func (p *tokenParser) Match(s *packrat.Scanner[Term]) (packrat.Node[Term], bool) {
	s.Skip()
	return p.sub.Match(s)
}

func token(sub packrat.Parser[Term]) packrat.Parser[Term] {
	return &tokenParser{sub}
}

var rootParser = newGrammar()

func newGrammar() packrat.Parser[Term] {
	// expr is recursive (lambda bodies and parens close over it), so it
	// is created empty here and filled via Set below
	expr := packrat.NewManyParser[Term](func(_ string, parts ...Term) Term {
		result := parts[0]
		for _, part := range parts[1:] {
			result = App{result, part}
		}
		return result
	}, nil, nil)

	variable := packrat.NewRegexParser[Term](func(match string) Term {
		return Var{match}
	}, `[a-zA-Z][a-zA-Z0-9_']*`, false, false)

	number := packrat.NewRegexParser[Term](func(match string) Term {
		n, err := strconv.Atoi(match)
		if err != nil {
			panic("numeral out of range: " + match)
		}
		return Church(n)
	}, `[0-9]+`, false, false)

	lambda := packrat.NewAndParser[Term](func(_ string, parts ...Term) Term {
		return Abs{parts[1].(Var).Name, parts[3]}
	},
		packrat.NewOrParser[Term](
			packrat.NewAtomParser[Term](nil, `\`, false, false),
			packrat.NewAtomParser[Term](nil, "λ", false, false),
		),
		token(variable),
		token(packrat.NewAtomParser[Term](nil, ".", false, false)),
		expr,
	)

	paren := packrat.NewAndParser[Term](func(_ string, parts ...Term) Term {
		return parts[1]
	},
		packrat.NewAtomParser[Term](nil, "(", false, false),
		expr,
		token(packrat.NewAtomParser[Term](nil, ")", false, false)),
	)

	expr.Set(packrat.NewOrParser[Term](lambda, paren, number, variable), nil)

	// packrat.Parse rejects leftover input itself, so expr is the root
	return expr
}

// Parse turns source text into a term. origin tags error messages with
// where the text came from (filename, repl, http).
func Parse(origin string, src string) (result Term, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%s: %v", origin, r)
		}
	}()
	scanner := packrat.NewScanner[Term](src, packrat.SkipWhitespaceRegex)
	node, parseErr := packrat.Parse[Term](rootParser, scanner)
	if parseErr != nil {
		return nil, fmt.Errorf("%s: %s", origin, parseErr.Error())
	}
	if node.Payload == nil {
		return nil, fmt.Errorf("%s: empty input", origin)
	}
	return node.Payload, nil
}
