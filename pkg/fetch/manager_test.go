// pkg/fetch/manager_test.go
package fetch

import (
	"archive/tar"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeTestArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clang+llvm-test.tar.xz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	xzw, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	tw := tar.NewWriter(xzw)

	for name, content := range entries {
		if strings.HasSuffix(name, "/") {
			if err := tw.WriteHeader(&tar.Header{Name: name, Typeflag: tar.TypeDir, Mode: 0755}); err != nil {
				t.Fatal(err)
			}
			continue
		}
		hdr := &tar.Header{Name: name, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(content))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := xzw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractArchiveStripsTopLevel(t *testing.T) {
	archive := writeTestArchive(t, map[string]string{
		"clang+llvm-18.1.8-x86_64-linux-gnu/":                  "",
		"clang+llvm-18.1.8-x86_64-linux-gnu/lib/":              "",
		"clang+llvm-18.1.8-x86_64-linux-gnu/lib/libLLVMCore.a": "core",
		"clang+llvm-18.1.8-x86_64-linux-gnu/include/llvm/IR.h": "hdr",
	})

	dest := t.TempDir()
	m := NewManager(&Config{InstallPath: dest, CachePath: t.TempDir()})
	if err := m.extractArchive(archive, dest); err != nil {
		t.Fatalf("extractArchive: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "lib", "libLLVMCore.a"))
	if err != nil {
		t.Fatalf("top-level directory not stripped: %v", err)
	}
	if string(data) != "core" {
		t.Errorf("content = %q, want %q", data, "core")
	}
	if _, err := os.Stat(filepath.Join(dest, "include", "llvm", "IR.h")); err != nil {
		t.Errorf("header not extracted: %v", err)
	}
}

func TestExtractArchiveRejectsTraversal(t *testing.T) {
	archive := writeTestArchive(t, map[string]string{
		"clang+llvm-x/../../evil": "boom",
	})

	dest := t.TempDir()
	m := NewManager(&Config{InstallPath: dest, CachePath: t.TempDir()})
	if err := m.extractArchive(archive, dest); err == nil {
		t.Error("expected an error for a path-traversal entry")
	}
}

func TestStripTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"clang+llvm-18/lib/libLLVMCore.a", filepath.FromSlash("lib/libLLVMCore.a")},
		{"./clang+llvm-18/bin/clang", filepath.FromSlash("bin/clang")},
		{"clang+llvm-18/", ""},
		{"clang+llvm-18", ""},
	}
	for _, tt := range tests {
		if got := stripTopLevel(tt.in); got != tt.want {
			t.Errorf("stripTopLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReleaseURL(t *testing.T) {
	if _, err := ReleaseTriple(); err != nil {
		t.Skipf("no release triple for this platform: %v", err)
	}

	url, err := ReleaseURL(DefaultReleaseURL, "18.1.8")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(url, "/llvmorg-18.1.8/clang+llvm-18.1.8-") {
		t.Errorf("url = %s", url)
	}
	if !strings.HasSuffix(url, ".tar.xz") {
		t.Errorf("url = %s", url)
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(nil)
	if m.config.ReleaseURL != DefaultReleaseURL {
		t.Errorf("ReleaseURL = %s", m.config.ReleaseURL)
	}
	if m.config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s", m.config.Timeout)
	}
	if m.config.CachePath == "" {
		t.Error("CachePath not defaulted")
	}
}
