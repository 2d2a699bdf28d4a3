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

import "io"
import "os"
import "fmt"
import "bufio"
import "strings"
import "github.com/pierrec/lz4/v4"
import "github.com/ulikunitz/xz"
import "github.com/launix-de/lambda/lam"

/*
The library file is plain text, one definition per line:

	# comment
	id = \x.x
	two = \f.\x.f (f x)

Files ending in .lz4 or .xz are (de)compressed transparently; saving
always goes through a .old backup of the previous version, the same
rescue scheme memcp uses for its schema files.
*/

// OpenReader opens filename for reading, decompressing .lz4 and .xz.
func OpenReader(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(filename, ".lz4"):
		return &wrappedReader{lz4.NewReader(bufio.NewReader(f)), f}, nil
	case strings.HasSuffix(filename, ".xz"):
		r, err := xz.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open %s: %w", filename, err)
		}
		return &wrappedReader{r, f}, nil
	}
	return f, nil
}

type wrappedReader struct {
	r io.Reader
	f *os.File
}

func (w *wrappedReader) Read(p []byte) (int, error) {
	return w.r.Read(p)
}

func (w *wrappedReader) Close() error {
	return w.f.Close()
}

// Load reads a library file into the workspace. Lines must be blank,
// comments (#) or definitions; anything else aborts with a line number.
func Load(ws *lam.Workspace, filename string) (int, error) {
	r, err := OpenReader(filename)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	count := 0
	lineno := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, rhs, found := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !found || !validName(name) {
			return count, fmt.Errorf("%s:%d: expected a definition of the form name = term", filename, lineno)
		}
		t, err := lam.Parse(fmt.Sprintf("%s:%d", filename, lineno), rhs)
		if err != nil {
			return count, err
		}
		ws.Define(name, t)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("read %s: %w", filename, err)
	}
	return count, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		letter := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
		if i == 0 && !letter {
			return false
		}
		if !letter && !(c >= '0' && c <= '9') && c != '_' && c != '\'' {
			return false
		}
	}
	return true
}

// Save writes all definitions of the workspace to filename, compressed
// when the name ends in .lz4. A previous non-empty version is rescued
// to filename.old first in case the write fails halfway.
func Save(ws *lam.Workspace, filename string) (int, error) {
	if stat, err := os.Stat(filename); err == nil && stat.Size() > 0 {
		os.Rename(filename, filename+".old")
	}
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var w io.Writer = f
	var finish func() error
	if strings.HasSuffix(filename, ".lz4") {
		zw := lz4.NewWriter(f)
		w = zw
		finish = zw.Close
	}
	count := 0
	for _, d := range ws.List() {
		if _, err := fmt.Fprintf(w, "%s = %s\n", d.Name, lam.Print(d.Term)); err != nil {
			return count, fmt.Errorf("write %s: %w", filename, err)
		}
		count++
	}
	if finish != nil {
		if err := finish(); err != nil {
			return count, fmt.Errorf("write %s: %w", filename, err)
		}
	}
	ws.MarkClean()
	return count, nil
}
