// pkg/toolchain/locator_test.go
package toolchain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testCoreLib = "LLVMCore.lib"

func testLocator() *Locator {
	return &Locator{
		EnvVars:  []string{"LLVM_PATH", "LLVM_DIR", "LLVM_HOME"},
		CoreLib:  testCoreLib,
		Getenv:   func(string) string { return "" },
		LookPath: func(string) (string, error) { return "", errors.New("executable file not found") },
	}
}

func withEnv(l *Locator, env map[string]string) *Locator {
	l.Getenv = func(name string) string { return env[name] }
	return l
}

func makeRoot(t *testing.T, coreLib, headers bool) string {
	t.Helper()
	root := t.TempDir()
	if coreLib {
		writeFile(t, filepath.Join(root, "lib", testCoreLib))
	}
	if headers {
		if err := os.MkdirAll(filepath.Join(root, "include", "llvm"), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveOverride(t *testing.T) {
	tests := []struct {
		name    string
		coreLib bool
		headers bool
		want    bool
	}{
		{"core library marker", true, false, true},
		{"header marker only", false, true, true},
		{"both markers", true, true, true},
		{"no markers", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := makeRoot(t, tt.coreLib, tt.headers)
			got, err := testLocator().Resolve(root)
			if tt.want {
				if err != nil {
					t.Fatalf("Resolve(%s): %v", root, err)
				}
				if got != root {
					t.Errorf("Resolve(%s) = %s", root, got)
				}
			} else if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve(%s) err = %v, want ErrNotFound", root, err)
			}
		})
	}
}

func TestOverrideShortCircuitsOtherStrategies(t *testing.T) {
	valid := makeRoot(t, true, false)
	invalid := makeRoot(t, false, false)

	// Everything except the override would succeed.
	l := withEnv(testLocator(), map[string]string{"LLVM_PATH": valid})
	l.SearchDirs = []string{valid}
	l.LookPath = func(string) (string, error) { return filepath.Join(valid, "bin", "clang"), nil }

	if _, err := l.Resolve(invalid); !errors.Is(err, ErrNotFound) {
		t.Errorf("invalid override must not fall through, got err = %v", err)
	}
}

func TestResolveEnvVars(t *testing.T) {
	first := makeRoot(t, true, false)
	second := makeRoot(t, true, false)
	invalid := makeRoot(t, false, false)

	t.Run("first set variable wins", func(t *testing.T) {
		l := withEnv(testLocator(), map[string]string{"LLVM_PATH": first, "LLVM_HOME": second})
		got, err := l.Resolve("")
		if err != nil || got != first {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, first)
		}
	})

	t.Run("invalid variable falls through to the next", func(t *testing.T) {
		l := withEnv(testLocator(), map[string]string{"LLVM_PATH": invalid, "LLVM_DIR": second})
		got, err := l.Resolve("")
		if err != nil || got != second {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, second)
		}
	})

	t.Run("header marker accepted", func(t *testing.T) {
		headerRoot := makeRoot(t, false, true)
		l := withEnv(testLocator(), map[string]string{"LLVM_DIR": headerRoot})
		got, err := l.Resolve("")
		if err != nil || got != headerRoot {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, headerRoot)
		}
	})
}

func TestScanKnownDirs(t *testing.T) {
	t.Run("direct root", func(t *testing.T) {
		root := makeRoot(t, true, false)
		l := testLocator()
		l.SearchDirs = []string{root}
		got, err := l.Resolve("")
		if err != nil || got != root {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, root)
		}
	})

	t.Run("versioned subdirectory", func(t *testing.T) {
		base := t.TempDir()
		sub := filepath.Join(base, "clang+llvm-21.1.8-x86_64-pc-windows-msvc")
		writeFile(t, filepath.Join(sub, "lib", testCoreLib))

		l := testLocator()
		l.SearchDirs = []string{base}
		got, err := l.Resolve("")
		if err != nil || got != sub {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, sub)
		}
	})

	t.Run("missing bases are skipped without error", func(t *testing.T) {
		root := makeRoot(t, true, false)
		l := testLocator()
		l.SearchDirs = []string{filepath.Join(t.TempDir(), "does-not-exist"), root}
		got, err := l.Resolve("")
		if err != nil || got != root {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, root)
		}
	})

	t.Run("scan stops after first existing base", func(t *testing.T) {
		empty := t.TempDir()
		valid := makeRoot(t, true, false)
		l := testLocator()
		l.SearchDirs = []string{empty, valid}
		if _, err := l.Resolve(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after first existing base, got %v", err)
		}
	})

	t.Run("no bases exist", func(t *testing.T) {
		l := testLocator()
		l.SearchDirs = []string{filepath.Join(t.TempDir(), "nope")}
		if _, err := l.Resolve(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestFromClang(t *testing.T) {
	t.Run("root derived from bin/clang", func(t *testing.T) {
		root := makeRoot(t, true, false)
		clang := filepath.Join(root, "bin", "clang")
		writeFile(t, clang)

		l := testLocator()
		l.LookPath = func(name string) (string, error) {
			if name != "clang" {
				t.Fatalf("unexpected lookup: %s", name)
			}
			return clang, nil
		}
		got, err := l.Resolve("")
		if err != nil || got != root {
			t.Errorf("Resolve() = %s, %v, want %s", got, err, root)
		}
	})

	t.Run("header-only root is rejected", func(t *testing.T) {
		root := makeRoot(t, false, true)
		l := testLocator()
		l.LookPath = func(string) (string, error) { return filepath.Join(root, "bin", "clang"), nil }
		if _, err := l.Resolve(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("clang absent", func(t *testing.T) {
		if _, err := testLocator().Resolve(""); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestNewLocatorDefaults(t *testing.T) {
	l := NewLocator()
	want := []string{"LLVM_PATH", "LLVM_DIR", "LLVM_HOME"}
	if len(l.EnvVars) != len(want) {
		t.Fatalf("EnvVars = %v, want %v", l.EnvVars, want)
	}
	for i, name := range want {
		if l.EnvVars[i] != name {
			t.Errorf("EnvVars[%d] = %s, want %s", i, l.EnvVars[i], name)
		}
	}
	if l.CoreLib != CoreLibraryName() {
		t.Errorf("CoreLib = %s, want %s", l.CoreLib, CoreLibraryName())
	}
	if len(l.SearchDirs) == 0 {
		t.Error("SearchDirs is empty")
	}
}
