// pkg/toolchain/locator.go
package toolchain

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrNotFound indicates no LLVM installation root could be resolved.
var ErrNotFound = errors.New("llvm installation not found")

// Locator resolves an LLVM installation root. Candidates are tried in strict
// priority order: explicit override, environment variables, well-known
// install directories, then a clang executable on the search path. A
// candidate is accepted when it carries the core library under lib/ or an
// include/llvm directory.
type Locator struct {
	// EnvVars are checked in order when no override is given; the first
	// variable that is set and points at a valid root wins.
	EnvVars []string

	// SearchDirs are well-known install locations. Only the first entry
	// that exists on disk is examined.
	SearchDirs []string

	// CoreLib is the core library filename used as the validation marker.
	CoreLib string

	// Getenv and LookPath are swappable for tests.
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

// NewLocator creates a locator with the platform defaults.
func NewLocator() *Locator {
	return &Locator{
		EnvVars:    []string{"LLVM_PATH", "LLVM_DIR", "LLVM_HOME"},
		SearchDirs: DefaultSearchDirs(),
		CoreLib:    CoreLibraryName(),
		Getenv:     os.Getenv,
		LookPath:   exec.LookPath,
	}
}

// Resolve determines the LLVM installation root. When override is non-empty
// it is the only candidate considered: an invalid override reports
// ErrNotFound without falling through to the other strategies.
func (l *Locator) Resolve(override string) (string, error) {
	if override != "" {
		p, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolving override path: %w", err)
		}
		if l.validRoot(p) {
			return p, nil
		}
		return "", fmt.Errorf("%s: %w", p, ErrNotFound)
	}

	for _, name := range l.EnvVars {
		v := l.Getenv(name)
		if v == "" {
			continue
		}
		p, err := filepath.Abs(v)
		if err != nil {
			continue
		}
		if l.validRoot(p) {
			return p, nil
		}
	}

	if root, ok := l.scanKnownDirs(); ok {
		return root, nil
	}

	if root, ok := l.fromClang(); ok {
		return root, nil
	}

	return "", ErrNotFound
}

// validRoot reports whether root carries either marker.
func (l *Locator) validRoot(root string) bool {
	return l.hasCoreLib(root) || dirExists(filepath.Join(root, "include", "llvm"))
}

// hasCoreLib reports whether root carries the core library marker.
func (l *Locator) hasCoreLib(root string) bool {
	return fileExists(filepath.Join(root, "lib", l.CoreLib))
}

// scanKnownDirs checks the well-known install locations. Only the first base
// directory that exists is examined: the base itself first, then its
// immediate subdirectories to cover versioned layouts like
// C:\LLVM-dev\clang+llvm-21.1.8-x86_64-pc-windows-msvc.
func (l *Locator) scanKnownDirs() (string, bool) {
	for _, base := range l.SearchDirs {
		fi, err := os.Stat(base)
		if err != nil {
			continue
		}
		if fi.IsDir() {
			if l.hasCoreLib(base) {
				return base, true
			}
			entries, err := os.ReadDir(base)
			if err == nil {
				for _, entry := range entries {
					if !entry.IsDir() {
						continue
					}
					sub := filepath.Join(base, entry.Name())
					if l.hasCoreLib(sub) {
						return sub, true
					}
				}
			}
		}
		// The scan stops after the first existing base directory.
		break
	}
	return "", false
}

// fromClang derives a candidate root from a clang executable on the search
// path: .../bin/clang -> parent of bin. Lookup failures are treated as
// not-found, never as fatal errors.
func (l *Locator) fromClang() (string, bool) {
	clang, err := l.LookPath("clang")
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(clang)
	if err != nil {
		return "", false
	}
	root := filepath.Dir(filepath.Dir(abs))
	if l.hasCoreLib(root) {
		return root, true
	}
	return "", false
}
