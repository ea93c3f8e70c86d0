// pkg/fetch/constants.go
package fetch

import (
	"fmt"
	"runtime"
	"time"
)

const (
	// DefaultReleaseURL is the base URL of the official LLVM release downloads
	DefaultReleaseURL = "https://github.com/llvm/llvm-project/releases/download"

	// DefaultVersion is the release fetched when none is requested
	DefaultVersion = "18.1.8"

	// DefaultTimeout for network operations
	DefaultTimeout = 15 * time.Minute
)

// ReleaseTriple returns the clang+llvm release triple published for the
// current platform.
func ReleaseTriple() (string, error) {
	switch runtime.GOOS + "/" + runtime.GOARCH {
	case "windows/amd64":
		return "x86_64-pc-windows-msvc", nil
	case "linux/amd64":
		return "x86_64-linux-gnu-ubuntu-18.04", nil
	case "linux/arm64":
		return "aarch64-linux-gnu", nil
	case "darwin/amd64":
		return "x86_64-apple-darwin", nil
	case "darwin/arm64":
		return "arm64-apple-darwin", nil
	default:
		return "", fmt.Errorf("no clang+llvm release published for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}

// ArchiveName returns the release archive filename for version on the
// current platform, e.g. clang+llvm-18.1.8-x86_64-pc-windows-msvc.tar.xz.
func ArchiveName(version string) (string, error) {
	triple, err := ReleaseTriple()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("clang+llvm-%s-%s.tar.xz", version, triple), nil
}

// ReleaseURL returns the download URL for version on the current platform.
func ReleaseURL(baseURL, version string) (string, error) {
	name, err := ArchiveName(version)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/llvmorg-%s/%s", baseURL, version, name), nil
}
