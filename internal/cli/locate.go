// internal/cli/locate.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/arc-language/llvmboot"
	"github.com/arc-language/llvmboot/pkg/toolchain"
)

var locateLLVM string

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the detected LLVM installation root",
	Long:  `Run the LLVM auto-detection and print the resolved installation root.`,
	RunE:  runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateLLVM, "llvm", "", "validate this LLVM root instead of auto-detection")
}

func runLocate(cmd *cobra.Command, args []string) error {
	override := locateLLVM
	if override == "" {
		override = config.LLVMPath
	}

	root, err := toolchain.NewLocator().Resolve(override)
	if err != nil {
		if errors.Is(err, toolchain.ErrNotFound) {
			printRemediation()
			return &llvmboot.ExitError{Code: 1}
		}
		return err
	}

	fmt.Println(root)
	return nil
}
