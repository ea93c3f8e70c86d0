// internal/cli/setup.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/arc-language/llvmboot"
	"github.com/arc-language/llvmboot/pkg/manifest"
)

var (
	setupLLVM  string
	setupNoRun bool
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Detect LLVM and generate the build files",
	Long: `Detect the LLVM installation, generate the linker response file and the
build script pointing at it, then run the build.

Examples:
  llvmboot setup
  llvmboot setup --no-run
  llvmboot setup --llvm C:\LLVM-dev\clang+llvm-21.1.8-x86_64-pc-windows-msvc`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupLLVM, "llvm", "", "use this LLVM root instead of auto-detection")
	setupCmd.Flags().BoolVar(&setupNoRun, "no-run", false, "only generate files, do not run the build")
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if setupLLVM != "" {
		config.LLVMPath = setupLLVM
	}
	boot := llvmboot.New(config)

	root, err := boot.Resolve()
	if err != nil {
		if errors.Is(err, llvmboot.ErrNotFound) {
			printRemediation()
			return &llvmboot.ExitError{Code: 1}
		}
		return err
	}

	fmt.Printf("Using LLVM: %s\n", root)

	res, err := boot.Generate(root)
	if err != nil {
		return err
	}
	if len(res.Missing) > 0 {
		fmt.Printf("Warning: %d libs not found under %s: %v\n",
			len(res.Missing), llvmboot.LibDir(root), manifest.Preview(res.Missing, 5))
	}
	fmt.Printf("Wrote %s (%d libs)\n", config.ManifestPath(), res.Written)
	fmt.Printf("Wrote %s with LLVM_DIR=%s\n", config.OutputScriptPath(), root)

	if setupNoRun {
		fmt.Printf("Skipping build (--no-run). Run %s to build.\n", config.OutputScript)
		return nil
	}

	fmt.Printf("Running %s ...\n", config.OutputScriptPath())
	code, err := boot.Run(ctx)
	if err != nil {
		return err
	}
	if code != 0 {
		return &llvmboot.ExitError{Code: code}
	}
	return nil
}

func printRemediation() {
	fmt.Fprintln(os.Stderr, "Error: could not detect an LLVM installation. Install LLVM (e.g. clang+llvm-*) and either:")
	fmt.Fprintln(os.Stderr, "  - set LLVM_PATH, LLVM_DIR or LLVM_HOME to the LLVM root, or")
	fmt.Fprintln(os.Stderr, "  - run: llvmboot setup --llvm /path/to/llvm, or")
	fmt.Fprintln(os.Stderr, "  - run: llvmboot fetch to download a release")
}
