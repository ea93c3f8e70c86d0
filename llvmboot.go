// llvmboot.go
package llvmboot

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/arc-language/llvmboot/pkg/buildscript"
	"github.com/arc-language/llvmboot/pkg/core"
	"github.com/arc-language/llvmboot/pkg/manifest"
	"github.com/arc-language/llvmboot/pkg/toolchain"
)

// Re-export core types for convenience
type (
	Config  = core.Config
	Locator = toolchain.Locator
	Result  = manifest.Result
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Bootstrap drives the locate -> generate -> run sequence for an LLVM
// based build. The three steps are strictly ordered, never retried, and a
// step's failure halts the sequence.
type Bootstrap struct {
	config  *core.Config
	locator *toolchain.Locator
	logger  *log.Logger
}

// New creates a Bootstrap for the given configuration
func New(cfg *core.Config) *Bootstrap {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stdout, "[LLVMBOOT] ", log.LstdFlags)
	}

	return &Bootstrap{
		config:  cfg,
		locator: toolchain.NewLocator(),
		logger:  logger,
	}
}

// Resolve locates the LLVM installation root, honoring the configured
// override path.
func (b *Bootstrap) Resolve() (string, error) {
	root, err := b.locator.Resolve(b.config.LLVMPath)
	if err != nil {
		return "", err
	}
	b.logger.Printf("Resolved LLVM root: %s", root)
	return root, nil
}

// Generate writes the linker response file and the build script for root.
// Both artifacts must be written before a build may run; the response file
// is written first, so a template failure leaves it valid on disk.
func (b *Bootstrap) Generate(root string) (*manifest.Result, error) {
	gen := manifest.NewGenerator(b.config.ManifestPath())
	gen.Logger = b.logger

	res, err := gen.Write(root)
	if err != nil {
		return nil, &Error{Op: "generating manifest", Path: b.config.ManifestPath(), Err: err}
	}

	if err := buildscript.Render(b.config.TemplatePath(), b.config.OutputScriptPath(), root); err != nil {
		return res, &Error{Op: "generating build script", Path: b.config.OutputScriptPath(), Err: err}
	}
	b.logger.Printf("Wrote %s with LLVM_DIR=%s", b.config.OutputScriptPath(), root)

	return res, nil
}

// Run executes the generated build script and returns its exit code
// verbatim.
func (b *Bootstrap) Run(ctx context.Context) (int, error) {
	return buildscript.Run(ctx, b.config.OutputScriptPath())
}

// Setup runs the full locate -> generate -> run sequence. A failing build
// surfaces as an ExitError carrying the child's exit code.
func (b *Bootstrap) Setup(ctx context.Context, skipRun bool) error {
	root, err := b.Resolve()
	if err != nil {
		return err
	}

	if _, err := b.Generate(root); err != nil {
		return err
	}

	if skipRun {
		return nil
	}

	code, err := b.Run(ctx)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// LibDir returns the lib directory under an installation root.
func LibDir(root string) string {
	return filepath.Join(root, "lib")
}
