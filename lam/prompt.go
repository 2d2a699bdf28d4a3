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

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"github.com/chzyer/readline"
)

const newprompt = "\033[32mλ>\033[0m "
const contprompt = "\033[32m..\033[0m "
const resultprompt = "\033[31m=\033[0m "

func PrintError(msg string) {
	fmt.Println("\033[1;31m" + msg + "\033[0m")
}

// HistoryFile is where readline keeps its line history.
var HistoryFile string = ".lambda-history.tmp"

// ReplInstance is exposed so the exit routine can close the terminal
// even when the process is torn down by a signal.
var ReplInstance *readline.Instance

var defineRe = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9_']*)\s*=(.*)$`)

// EvalLine handles one line of user input: a :command, a definition of
// the form "name = term", or a term to expand and reduce. It returns
// the text to show. Malformed input panics; the REPL and the web
// endpoint recover at their boundary.
func EvalLine(ws *Workspace, origin string, line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		return Dispatch(ws, line[1:])
	}
	if m := defineRe.FindStringSubmatch(line); m != nil {
		t, err := Parse(origin, m[2])
		if err != nil {
			panic(err)
		}
		ws.Define(m[1], t)
		return m[1] + " = " + Print(t)
	}
	t, err := Parse(origin, line)
	if err != nil {
		panic(err)
	}
	result := ws.Eval(t)
	out := Describe(result.Term)
	if !result.NormalForm {
		out = out + fmt.Sprintf("\n\033[1;31mno normal form after %d steps (change with :limit)\033[0m", result.Limit)
	}
	return out
}

// unbalanced reports whether line has more open than close parentheses,
// in which case the REPL keeps reading continuation lines.
func unbalanced(line string) bool {
	depth := 0
	for _, c := range line {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}

func Repl(ws *Workspace) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	ReplInstance = l
	defer l.Close()
	l.CaptureExitSignal()

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				oldline = ""
				l.SetPrompt(newprompt)
				continue
			}
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed == ":quit" || trimmed == ":exit" {
			break
		}
		if unbalanced(line) {
			oldline = line + "\n"
			l.SetPrompt(contprompt)
			continue
		}

		// anti-panic func
		func() {
			defer func() {
				if r := recover(); r != nil {
					PrintError(fmt.Sprint(r))
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			out := EvalLine(ws, "user prompt", line)
			fmt.Print(resultprompt)
			fmt.Println(out)
			oldline = ""
			l.SetPrompt(newprompt)
		}()
	}
}
