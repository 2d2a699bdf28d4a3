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

func parse(t *testing.T, src string) Term {
	t.Helper()
	term, err := Parse("test", src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return term
}

func TestParseBasics(t *testing.T) {
	cases := []struct {
		src  string
		want Term
	}{
		{"x", Var{"x"}},
		{`\x.x`, Abs{"x", Var{"x"}}},
		{"λx.x", Abs{"x", Var{"x"}}},
		{"(f a)", App{Var{"f"}, Var{"a"}}},
		{"f a", App{Var{"f"}, Var{"a"}}},
		{`(\x.x) y`, App{Abs{"x", Var{"x"}}, Var{"y"}}},
		{"foo bar'", App{Var{"foo"}, Var{"bar'"}}},
	}
	for _, c := range cases {
		got := parse(t, c.src)
		if !Equal(got, c.want) {
			t.Errorf("Parse(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestParseApplicationLeftAssociative(t *testing.T) {
	got := parse(t, "f a b c")
	want := App{App{App{Var{"f"}, Var{"a"}}, Var{"b"}}, Var{"c"}}
	if !Equal(got, want) {
		t.Fatalf("Parse = %s, want %s", got, want)
	}
	// explicit grouping overrides
	got = parse(t, "f (a b) c")
	want = App{App{Var{"f"}, App{Var{"a"}, Var{"b"}}}, Var{"c"}}
	if !Equal(got, want) {
		t.Fatalf("Parse = %s, want %s", got, want)
	}
}

func TestParseBodyExtendsRight(t *testing.T) {
	// the abstraction body extends maximally rightward
	got := parse(t, `\x.x y z`)
	want := Abs{"x", App{App{Var{"x"}, Var{"y"}}, Var{"z"}}}
	if !Equal(got, want) {
		t.Fatalf("Parse = %s, want %s", got, want)
	}
	got = parse(t, `\f.\x.f x`)
	want = Abs{"f", Abs{"x", App{Var{"f"}, Var{"x"}}}}
	if !Equal(got, want) {
		t.Fatalf("Parse = %s, want %s", got, want)
	}
	// parentheses stop the body
	got = parse(t, `(\x.x) y`)
	if !Equal(got, App{Abs{"x", Var{"x"}}, Var{"y"}}) {
		t.Fatalf("Parse = %s", got)
	}
}

func TestParseNumerals(t *testing.T) {
	got := parse(t, "2")
	want := Abs{"f", Abs{"x", App{Var{"f"}, App{Var{"f"}, Var{"x"}}}}}
	if !Equal(got, want) {
		t.Fatalf("Parse(2) = %s, want %s", got, want)
	}
	if !Equal(parse(t, "0"), Abs{"f", Abs{"x", Var{"x"}}}) {
		t.Fatal("Parse(0) is not the zero numeral")
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"", "(", "(x", ")", `\`, `\x`, `\x.`, "(x))", "?"} {
		if _, err := Parse("test", src); err == nil {
			t.Errorf("Parse(%q) must fail", src)
		}
	}
}

func TestPrintRoundTrip(t *testing.T) {
	terms := []Term{
		Var{"x"},
		Abs{"x", Var{"x"}},
		App{Var{"f"}, Var{"a"}},
		App{App{Var{"f"}, Var{"a"}}, Var{"b"}},
		App{Var{"f"}, App{Var{"a"}, Var{"b"}}},
		App{Abs{"x", Var{"x"}}, Var{"y"}},
		Abs{"x", App{App{Var{"x"}, Var{"y"}}, Var{"z"}}},
		Abs{"f", Abs{"x", App{Var{"f"}, App{Var{"f"}, Var{"x"}}}}},
		App{Var{"f"}, Abs{"x", Var{"x"}}},
		App{App{Var{"x"}, Abs{"y", Var{"y"}}}, Var{"z"}},
	}
	for _, term := range terms {
		compact := parse(t, Print(term))
		if !Equal(compact, term) {
			t.Errorf("Print round trip failed: %s -> %q -> %s", term, Print(term), compact)
		}
		// the fully parenthesized debug form parses back too
		debug := parse(t, term.String())
		if !Equal(debug, term) {
			t.Errorf("String round trip failed: %q -> %s", term.String(), debug)
		}
	}
}

func TestPrintMinimalParens(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{App{App{Var{"f"}, Var{"a"}}, Var{"b"}}, "f a b"},
		{App{Var{"f"}, App{Var{"a"}, Var{"b"}}}, "f (a b)"},
		{App{Abs{"x", Var{"x"}}, Var{"y"}}, `(\x.x) y`},
		{Abs{"x", App{Var{"x"}, Var{"y"}}}, `\x.x y`},
	}
	for _, c := range cases {
		if got := Print(c.term); got != c.want {
			t.Errorf("Print(%s) = %q, want %q", c.term, got, c.want)
		}
	}
}
