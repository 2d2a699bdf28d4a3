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

import "os"
import "fmt"
import "strings"
import "path/filepath"

// Declaration describes one REPL command (the text after the leading
// colon). Fn receives the workspace and the raw argument string; it
// returns the text to print.
type Declaration struct {
	Name   string
	Desc   string
	Params []DeclarationParameter
	Fn     func(ws *Workspace, args string) string
}

type DeclarationParameter struct {
	Name string
	Type string // term | name | int | file | none
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

func Declare(def *Declaration) {
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
}

// Dispatch runs the command line (without the leading colon) against
// the registry. Unknown commands panic; the REPL boundary recovers.
func Dispatch(ws *Workspace, line string) string {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	def, ok := declarations[name]
	if !ok {
		panic("unknown command :" + name + " (type :help for a list)")
	}
	return def.Fn(ws, strings.TrimSpace(args))
}

func Help(topic string) string {
	var b strings.Builder
	if topic == "" {
		b.WriteString("Available commands:\n")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				b.WriteString("\n-- " + title[1:] + " --\n")
			} else {
				b.WriteString("  :" + title + ": " + strings.Split(declarations[title].Desc, "\n")[0] + "\n")
			}
		}
		b.WriteString("\nget further information by typing :help commandname\n")
		b.WriteString("any other line is a term to evaluate, or a definition of the form  name = term\n")
	} else {
		def, ok := declarations[strings.TrimPrefix(topic, ":")]
		if !ok {
			panic("command not found: " + topic)
		}
		b.WriteString("Help for: :" + def.Name + "\n===\n\n")
		b.WriteString(def.Desc + "\n\n")
		for _, p := range def.Params {
			b.WriteString(" - " + p.Name + " (" + p.Type + "): " + p.Desc + "\n")
		}
	}
	return b.String()
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		out = "chapter"
	}
	return out
}

// WriteDocumentation generates Markdown docs for the command set:
// index.md with links to chapters, one <chapter>.md per chapter.
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type Chapter struct {
		Title string
		Slug  string
		Fns   []*Declaration
	}

	var chapters []*Chapter
	var current *Chapter
	usedSlugs := map[string]int{}

	uniqSlug := func(s string) string {
		base := slugify(s)
		if usedSlugs[base] == 0 {
			usedSlugs[base] = 1
			return base
		}
		for i := 2; ; i++ {
			candidate := fmt.Sprintf("%s-%d", base, i)
			if usedSlugs[candidate] == 0 {
				usedSlugs[candidate] = 1
				return candidate
			}
		}
	}

	for _, t := range declaration_titles {
		if len(t) > 0 && t[0] == '#' {
			title := strings.TrimSpace(t[1:])
			ch := &Chapter{Title: title, Slug: uniqSlug(title)}
			chapters = append(chapters, ch)
			current = ch
			continue
		}
		def, ok := declarations[t]
		if !ok {
			continue
		}
		if current == nil {
			current = &Chapter{Title: "General", Slug: uniqSlug("General")}
			chapters = append(chapters, current)
		}
		current.Fns = append(current.Fns, def)
	}

	indexPath := filepath.Join(folder, "index.md")
	indexFile, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", indexPath, err)
	}
	defer indexFile.Close()

	fmt.Fprintf(indexFile, "# Command reference\n\n")
	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fmt.Fprintf(indexFile, "- [%s](%s.md)\n", ch.Title, ch.Slug)
	}

	for _, ch := range chapters {
		if len(ch.Fns) == 0 {
			continue
		}
		fp := filepath.Join(folder, ch.Slug+".md")
		f, err := os.Create(fp)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", fp, err)
		}
		fmt.Fprintf(f, "# %s\n\n", ch.Title)
		for _, def := range ch.Fns {
			fmt.Fprintf(f, "## :%s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(f, "%s\n\n", def.Desc)
			}
			fmt.Fprintf(f, "### Parameters\n\n")
			if len(def.Params) == 0 {
				fmt.Fprintf(f, "_This command has no parameters._\n\n")
			} else {
				for _, p := range def.Params {
					fmt.Fprintf(f, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
				}
				fmt.Fprintln(f)
			}
		}
		_ = f.Close()
	}

	return nil
}
