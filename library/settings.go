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
	"fmt"
	"runtime"
	"strings"

	"github.com/dc0d/onexit"
	"github.com/docker/go-units"
	"github.com/launix-de/lambda/lam"
)

type SettingsT struct {
	StepLimit   int
	Autosave    bool
	LibraryFile string
	HistoryFile string
}

var Settings SettingsT = SettingsT{1000, true, "", ".lambda-history.tmp"}

// InitSettings applies Settings to the workspace and registers the
// exit hook that saves a dirty library. Call after Settings is filled
// from the command line.
func InitSettings(ws *lam.Workspace) {
	ws.StepLimit = Settings.StepLimit
	lam.HistoryFile = Settings.HistoryFile
	onexit.Register(func() {
		if Settings.Autosave && Settings.LibraryFile != "" && ws.Dirty() {
			if _, err := Save(ws, Settings.LibraryFile); err != nil {
				fmt.Println("autosave failed:", err)
			}
		}
	})
}

// Stats summarizes the workspace and the process for the :stats command.
func Stats(ws *lam.Workspace) string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	defs := ws.List()
	nodes := 0
	for _, d := range defs {
		nodes += lam.TermSize(d.Term)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "definitions:    %d (%d term nodes)\n", len(defs), nodes)
	fmt.Fprintf(&b, "step limit:     %d\n", ws.StepLimit)
	if Settings.LibraryFile != "" {
		fmt.Fprintf(&b, "library file:   %s (autosave %v)\n", Settings.LibraryFile, Settings.Autosave)
	}
	fmt.Fprintf(&b, "heap in use:    %s\n", units.HumanSize(float64(m.HeapInuse)))
	fmt.Fprintf(&b, "total alloc:    %s\n", units.HumanSize(float64(m.TotalAlloc)))
	fmt.Fprintf(&b, "goroutines:     %d", runtime.NumGoroutine())
	return b.String()
}
