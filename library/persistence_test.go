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
package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/launix-de/lambda/lam"
)

func testWorkspace() *lam.Workspace {
	ws := lam.NewWorkspace()
	ws.Define("id", lam.Abs{Arg: "x", Body: lam.Var{Name: "x"}})
	ws.Define("k", lam.Abs{Arg: "x", Body: lam.Abs{Arg: "y", Body: lam.Var{Name: "x"}}})
	ws.Define("two", lam.Church(2))
	return ws
}

func assertRestored(t *testing.T, ws *lam.Workspace) {
	t.Helper()
	for _, name := range []string{"id", "k", "two"} {
		if _, ok := ws.Get(name); !ok {
			t.Fatalf("%s missing after load", name)
		}
	}
	term, _ := ws.Get("two")
	if n, ok := lam.ChurchNumeral(term); !ok || n != 2 {
		t.Fatalf("two restored wrong: %s", term)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "defs.lam")
	count, err := Save(testWorkspace(), filename)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if count != 3 {
		t.Fatalf("saved %d definitions, want 3", count)
	}

	ws := lam.NewWorkspace()
	count, err = Load(ws, filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if count != 3 {
		t.Fatalf("loaded %d definitions, want 3", count)
	}
	assertRestored(t, ws)
}

func TestSaveLoadLz4(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "defs.lam.lz4")
	if _, err := Save(testWorkspace(), filename); err != nil {
		t.Fatalf("save: %v", err)
	}
	// an lz4 frame, not plaintext: check the frame magic number
	raw, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) < 4 || raw[0] != 0x04 || raw[1] != 0x22 || raw[2] != 0x4d || raw[3] != 0x18 {
		t.Fatalf("file does not start with the lz4 frame magic: % x", raw[:4])
	}
	ws := lam.NewWorkspace()
	if _, err := Load(ws, filename); err != nil {
		t.Fatalf("load: %v", err)
	}
	assertRestored(t, ws)
}

func TestSaveKeepsBackup(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "defs.lam")
	if _, err := Save(testWorkspace(), filename); err != nil {
		t.Fatal(err)
	}
	ws := testWorkspace()
	ws.Define("extra", lam.Var{Name: "y"})
	if _, err := Save(ws, filename); err != nil {
		t.Fatal(err)
	}
	old, err := os.ReadFile(filename + ".old")
	if err != nil {
		t.Fatalf("previous version not rescued: %v", err)
	}
	if strings.Contains(string(old), "extra") {
		t.Fatal(".old must hold the previous version")
	}
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "defs.lam")
	content := "# a comment\n\nid = \\x.x\n\n# another\nk = \\x.\\y.x\n"
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	ws := lam.NewWorkspace()
	count, err := Load(ws, filename)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if count != 2 {
		t.Fatalf("loaded %d definitions, want 2", count)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "defs.lam")
	if err := os.WriteFile(filename, []byte("id = \\x.x\nthis is not a definition\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ws := lam.NewWorkspace()
	if _, err := Load(ws, filename); err == nil {
		t.Fatal("garbage line must be rejected")
	} else if !strings.Contains(err.Error(), ":2") {
		t.Fatalf("error must carry the line number, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	ws := lam.NewWorkspace()
	if _, err := Load(ws, filepath.Join(t.TempDir(), "nope.lam")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestSaveMarksClean(t *testing.T) {
	ws := testWorkspace()
	if !ws.Dirty() {
		t.Fatal("workspace with definitions must be dirty")
	}
	if _, err := Save(ws, filepath.Join(t.TempDir(), "defs.lam")); err != nil {
		t.Fatal(err)
	}
	if ws.Dirty() {
		t.Fatal("Save must mark the workspace clean")
	}
}
