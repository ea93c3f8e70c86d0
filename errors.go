// errors.go
package llvmboot

import (
	"fmt"

	"github.com/arc-language/llvmboot/pkg/buildscript"
	"github.com/arc-language/llvmboot/pkg/toolchain"
)

var (
	// ErrNotFound indicates no LLVM installation root could be resolved
	ErrNotFound = toolchain.ErrNotFound

	// ErrBadTemplate indicates the build script template is missing its
	// LLVM_DIR configuration line
	ErrBadTemplate = buildscript.ErrBadTemplate
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or directory involved, if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitError carries the exit code the process should terminate with, either
// a build failure's code passed through verbatim or 1 when no installation
// root resolves.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
