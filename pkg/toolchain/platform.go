// pkg/toolchain/platform.go
package toolchain

import "runtime"

// CoreLibraryName returns the filename of the LLVM core library used as the
// validation marker (MSVC layout on Windows, ar archives elsewhere).
func CoreLibraryName() string {
	if runtime.GOOS == "windows" {
		return "LLVMCore.lib"
	}
	return "libLLVMCore.a"
}

// LibrarySuffix returns the static library filename suffix for the current
// platform.
func LibrarySuffix() string {
	if runtime.GOOS == "windows" {
		return ".lib"
	}
	return ".a"
}

// LibraryPrefix returns the filename prefix shared by LLVM component
// libraries on the current platform.
func LibraryPrefix() string {
	if runtime.GOOS == "windows" {
		return "LLVM"
	}
	return "libLLVM"
}

// DefaultSearchDirs returns the well-known install locations checked during
// auto-detection, most specific first.
func DefaultSearchDirs() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\LLVM-dev`,
			`C:\Program Files\LLVM`,
			`C:\llvm`,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/opt/llvm",
			"/usr/local/opt/llvm",
			"/opt/llvm",
		}
	default:
		return []string{
			"/usr/local/llvm",
			"/opt/llvm",
			"/usr/lib/llvm",
		}
	}
}
