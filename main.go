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
/*
	lambda - an interactive lambda calculus workbench

	normal order reduction with capture-avoiding substitution,
	a persisted dictionary of named terms and a web evaluation endpoint
*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "syscall"
import "os/signal"
import "crypto/rand"
import "runtime/pprof"
import "github.com/google/uuid"
import "github.com/fsnotify/fsnotify"
import "github.com/launix-de/lambda/lam"
import "github.com/launix-de/lambda/library"

// workaround for flags package to allow multiple values
type arrayFlags []string

func (i *arrayFlags) String() string {
	return "dummy"
}

func (i *arrayFlags) Set(value string) error {
	*i = append(*i, value)
	return nil
}

// setupIO declares the commands that touch the filesystem or the
// process; the lam package keeps its command set free of IO so it
// stays embeddable.
func setupIO(ws *lam.Workspace) {
	lam.DeclareTitle("IO")
	lam.Declare(&lam.Declaration{
		Name: "save",
		Desc: "saves all definitions to the library file (or a given file; .lz4 compresses)",
		Params: []lam.DeclarationParameter{
			lam.DeclarationParameter{Name: "filename", Type: "file", Desc: "(optional) target file"},
		},
		Fn: func(ws *lam.Workspace, args string) string {
			filename := args
			if filename == "" {
				filename = library.Settings.LibraryFile
			}
			if filename == "" {
				panic("no library file configured, use :save filename")
			}
			count, err := library.Save(ws, filename)
			if err != nil {
				panic(err)
			}
			return fmt.Sprintf("saved %d definitions to %s", count, filename)
		},
	})
	lam.Declare(&lam.Declaration{
		Name: "load",
		Desc: "loads definitions from a library file (.lz4 and .xz are decompressed)",
		Params: []lam.DeclarationParameter{
			lam.DeclarationParameter{Name: "filename", Type: "file", Desc: "file to load"},
		},
		Fn: func(ws *lam.Workspace, args string) string {
			if args == "" {
				panic("usage: :load filename")
			}
			count, err := library.Load(ws, args)
			if err != nil {
				panic(err)
			}
			return fmt.Sprintf("loaded %d definitions from %s", count, args)
		},
	})
	lam.Declare(&lam.Declaration{
		Name: "stats",
		Desc: "prints workspace and process statistics",
		Fn: func(ws *lam.Workspace, args string) string {
			return library.Stats(ws)
		},
	})
}

// watchLibrary reloads the library file whenever it changes on disk.
func watchLibrary(ws *lam.Workspace, filename string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		panic(err)
	}
	go func() {
		for {
			select {
			case <-watcher.Events:
				// flush all other events
				for {
					time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read empty files
					select {
					case <-watcher.Events:
						// ignore
					default:
						goto to_reread
					}
				}
			to_reread:
				func() {
					defer func() {
						if err := recover(); err != nil {
							// error happens during reload: log to console
							fmt.Println(err)
						}
					}()
					count, err := library.Load(ws, filename)
					if err != nil {
						panic(err)
					}
					fmt.Println("reloaded", count, "definitions from", filename)
				}()
				watcher.Add(filename) // text editors rename, so we have to rewatch
			}
		}
	}()
	err = watcher.Add(filename)
	if err != nil {
		panic(err)
	}
}

// runCommand evaluates one -c line. Panics from bad input are caught
// here so the remaining commands still run.
func runCommand(ws *lam.Workspace, command string) {
	defer func() {
		if r := recover(); r != nil {
			lam.PrintError(fmt.Sprint(r))
		}
	}()
	fmt.Println(lam.EvalLine(ws, "command line", command))
}

func main() {
	fmt.Print(`lambda Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)

	// init random generator for session UUIDs
	uuid.SetRand(rand.Reader)

	// parse command line options
	var commands arrayFlags
	flag.Var(&commands, "c", "Evaluate a line as if typed into the shell")

	libfile := ""
	flag.StringVar(&libfile, "library", "", "Library file with named terms, loaded at start and saved at exit")

	flag.IntVar(&library.Settings.StepLimit, "limit", 1000, "Reduction step limit")
	flag.BoolVar(&library.Settings.Autosave, "autosave", true, "Save the library file at exit when it changed")
	flag.StringVar(&library.Settings.HistoryFile, "history", ".lambda-history.tmp", "Readline history file")

	watch := false
	flag.BoolVar(&watch, "watch", false, "Reload the library file when it changes on disk")

	port := 0
	flag.IntVar(&port, "port", 0, "Open a HTTP/websocket evaluation endpoint on this port")

	docs := ""
	flag.StringVar(&docs, "docs", "", "Write the command reference as markdown into this folder and exit")

	profile := ""
	flag.StringVar(&profile, "profile", "", "Write a CPU profile to this file")

	flag.Parse()
	imports := flag.Args()

	ws := lam.NewWorkspace()
	setupIO(ws)
	library.Settings.LibraryFile = libfile
	library.InitSettings(ws)

	if docs != "" {
		if err := lam.WriteDocumentation(docs); err != nil {
			panic(err)
		}
		fmt.Println("documentation written to " + docs)
		return
	}

	// load the library and any files from the command line
	if libfile != "" {
		if _, err := os.Stat(libfile); err == nil {
			count, err := library.Load(ws, libfile)
			if err != nil {
				panic(err)
			}
			ws.MarkClean()
			fmt.Println("loaded", count, "definitions from", libfile)
		}
		if watch {
			watchLibrary(ws, libfile)
		}
	}
	for _, file := range imports {
		fmt.Println("Loading " + file + " ...")
		count, err := library.Load(ws, file)
		if err != nil {
			panic(err)
		}
		fmt.Println("loaded", count, "definitions")
	}
	for _, command := range commands {
		fmt.Println("Executing " + command + " ...")
		runCommand(ws, command)
	}

	// install exit handler
	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)
	go (func() {
		<-cancelChan
		exitroutine(ws)
		os.Exit(1)
	})()

	// init profiling
	if profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if port != 0 {
		lam.HTTPServe(port, ws)
		fmt.Println("evaluation endpoint listening on port", port)
	}

	fmt.Print(`
    Type :help to show help

`)
	// REPL shell
	lam.Repl(ws)

	// normal shutdown
	exitroutine(ws)
}

func exitroutine(ws *lam.Workspace) {
	fmt.Println("Exit procedure...")
	if lam.ReplInstance != nil {
		// in case it doesn't exit properly
		lam.ReplInstance.Close()
	}
	if library.Settings.Autosave && library.Settings.LibraryFile != "" && ws.Dirty() {
		count, err := library.Save(ws, library.Settings.LibraryFile)
		if err != nil {
			fmt.Println("autosave failed:", err)
		} else {
			fmt.Println("saved", count, "definitions to", library.Settings.LibraryFile)
		}
	}
	fmt.Println("Exit procedure finished")
}
