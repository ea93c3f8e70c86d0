// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/arc-language/llvmboot/pkg/core"
)

var (
	cfgFile   string
	scriptDir string
	debug     bool
	config    *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "llvmboot",
	Short: "LLVM build bootstrap",
	Long: `llvmboot - LLVM build bootstrap

Locates an installed LLVM toolchain, generates the linker response file and
the build script pointing at it, and optionally runs the build.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/llvmboot/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&scriptDir, "script-dir", "", "directory holding the template and generated files")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if scriptDir != "" {
		config.ScriptDir = scriptDir
	}
	if debug {
		config.Debug = true
	}
}
