// pkg/manifest/manifest.go
package manifest

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/llvmboot/pkg/toolchain"
)

// Generator writes the linker response file for an LLVM installation root.
// The file at Path doubles as input: when it already exists, its basename
// ordering is preserved across regeneration. Otherwise the basenames come
// from a name-sorted scan of the root's lib directory.
type Generator struct {
	// Path is the response file location, read for ordering and
	// overwritten on Write.
	Path string

	// Prefix and Suffix select library files during the fallback scan
	// (e.g. LLVM*.lib on Windows, libLLVM*.a elsewhere).
	Prefix string
	Suffix string

	// Logger for debug output
	Logger *log.Logger
}

// Result reports what a Write produced.
type Result struct {
	Written int      // lines emitted to the response file
	Missing []string // basenames skipped because they do not exist under lib/
}

// NewGenerator creates a generator with the platform defaults.
func NewGenerator(path string) *Generator {
	return &Generator{
		Path:   path,
		Prefix: toolchain.LibraryPrefix(),
		Suffix: toolchain.LibrarySuffix(),
		Logger: log.New(io.Discard, "", 0),
	}
}

// Write regenerates the response file for root. Every emitted line is a
// quoted absolute path to a library that exists under <root>/lib at
// generation time; basenames that do not resolve are dropped and reported
// in the result, never silently included.
func (g *Generator) Write(root string) (*Result, error) {
	libDir := filepath.Join(root, "lib")
	if fi, err := os.Stat(libDir); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("llvm lib directory not found: %s", libDir)
	}

	names := g.readBasenames()
	if len(names) == 0 {
		var err error
		names, err = g.scanLibDir(libDir)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{}
	var sb strings.Builder
	for _, name := range names {
		full := filepath.Join(libDir, name)
		if _, err := os.Stat(full); err != nil {
			res.Missing = append(res.Missing, name)
			continue
		}
		sb.WriteString(`"`)
		sb.WriteString(full)
		sb.WriteString("\"\n")
		res.Written++
	}

	if len(res.Missing) > 0 {
		g.Logger.Printf("%d libs not found under %s: %v", len(res.Missing), libDir, Preview(res.Missing, 5))
	}

	if err := os.WriteFile(g.Path, []byte(sb.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", g.Path, err)
	}
	g.Logger.Printf("Wrote %s (%d libs)", g.Path, res.Written)

	return res, nil
}

// readBasenames parses the existing response file, if any. Blank lines and
// # comments are skipped; entries without the library suffix are ignored.
func (g *Generator) readBasenames() []string {
	data, err := os.ReadFile(g.Path)
	if err != nil {
		return nil
	}

	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, `"`)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := filepath.Base(line)
		if strings.HasSuffix(name, g.Suffix) {
			names = append(names, name)
		}
	}
	return names
}

// scanLibDir lists the LLVM component libraries under libDir in name order.
func (g *Generator) scanLibDir(libDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(libDir, g.Prefix+"*"+g.Suffix))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", libDir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names, nil
}

// Preview returns at most n leading elements of names, for warning messages.
func Preview(names []string, n int) []string {
	if len(names) > n {
		return names[:n]
	}
	return names
}
