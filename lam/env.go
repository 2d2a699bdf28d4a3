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

import "sort"
import "sync/atomic"
import "github.com/launix-de/NonLockingReadMap"

// Definition is one named term in the workspace dictionary.
type Definition struct {
	Name string
	Term Term
}

func (d Definition) GetKey() string {
	return d.Name
}

func (d Definition) ComputeSize() uint {
	return uint(len(d.Name)) + 16*uint(TermSize(d.Term))
}

// TermSize counts the nodes of a term.
func TermSize(t Term) int {
	switch t2 := t.(type) {
	case Abs:
		return 1 + TermSize(t2.Body)
	case App:
		return 1 + TermSize(t2.Fun) + TermSize(t2.Arg)
	}
	return 1
}

// Workspace is the externally-owned state around the engine: the
// dictionary of named terms and the reduction step limit. The engine
// itself never touches it; the REPL, the web endpoint and the library
// persistence do. Reads of the dictionary are non-blocking, so
// concurrent evaluations (websocket sessions) need no extra locking.
type Workspace struct {
	Defs      NonLockingReadMap.NonLockingReadMap[Definition, string]
	StepLimit int
	dirty     atomic.Bool
}

func NewWorkspace() *Workspace {
	return &Workspace{
		Defs:      NonLockingReadMap.New[Definition, string](),
		StepLimit: 1000,
	}
}

func (ws *Workspace) Define(name string, t Term) {
	ws.Defs.Set(&Definition{name, t})
	ws.dirty.Store(true)
}

func (ws *Workspace) Undefine(name string) bool {
	if ws.Defs.Remove(name) == nil {
		return false
	}
	ws.dirty.Store(true)
	return true
}

func (ws *Workspace) Get(name string) (Term, bool) {
	if d := ws.Defs.Get(name); d != nil {
		return d.Term, true
	}
	return nil, false
}

// List returns all definitions ordered by name.
func (ws *Workspace) List() []*Definition {
	defs := ws.Defs.GetAll()
	result := make([]*Definition, len(defs))
	copy(result, defs)
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Dirty reports whether the dictionary changed since the last MarkClean.
func (ws *Workspace) Dirty() bool {
	return ws.dirty.Load()
}

func (ws *Workspace) MarkClean() {
	ws.dirty.Store(false)
}

// Expand substitutes defined names for the free variables of t, so a
// user term may reference dictionary entries. Definitions may refer to
// other definitions; expansion iterates until nothing changes. Each
// name is substituted at most once, so cyclic definitions like
// a = a a come out partially expanded instead of growing forever.
func (ws *Workspace) Expand(t Term) Term {
	expanded := make(map[string]bool)
	for {
		changed := false
		for _, name := range SortedNames(FreeVars(t)) {
			if expanded[name] {
				continue
			}
			if def := ws.Defs.Get(name); def != nil {
				t = Substitute(name, def.Term, t)
				expanded[name] = true
				changed = true
			}
		}
		if !changed {
			return t
		}
	}
}

// Eval is the full pipeline behind a REPL line or a web request:
// expand dictionary names, then reduce under the step limit.
func (ws *Workspace) Eval(t Term) Result {
	return Reduce(ws.Expand(t), ws.StepLimit)
}
