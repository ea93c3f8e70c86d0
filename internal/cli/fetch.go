// internal/cli/fetch.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/arc-language/llvmboot/pkg/fetch"
)

var (
	fetchVersion string
	fetchSHA256  string
	fetchKeep    bool
	fetchDest    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and unpack an official clang+llvm release",
	Long: `Download an official clang+llvm release archive for this platform, verify
it when a hash is given, and unpack it to the configured install path.

Examples:
  llvmboot fetch
  llvmboot fetch --version 18.1.8
  llvmboot fetch --version 18.1.8 --sha256 0b58557a6d32... --keep-archive`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchVersion, "version", fetch.DefaultVersion, "release version to fetch")
	fetchCmd.Flags().StringVar(&fetchSHA256, "sha256", "", "expected archive sha256, hex encoded")
	fetchCmd.Flags().BoolVar(&fetchKeep, "keep-archive", false, "keep the downloaded archive")
	fetchCmd.Flags().StringVar(&fetchDest, "dest", "", "install path (default from config)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	installPath := config.InstallPath
	if fetchDest != "" {
		installPath = fetchDest
	}

	m := fetch.NewManager(&fetch.Config{
		InstallPath: installPath,
		Debug:       config.Debug,
	})

	fmt.Printf("Fetching clang+llvm %s...\n", fetchVersion)
	root, err := m.Fetch(ctx, &fetch.DownloadOptions{
		Version:     fetchVersion,
		SHA256:      fetchSHA256,
		KeepArchive: fetchKeep,
	})
	if err != nil {
		return fmt.Errorf("fetching clang+llvm %s: %w", fetchVersion, err)
	}

	fmt.Printf("✓ Unpacked clang+llvm %s to %s\n", fetchVersion, root)
	fmt.Printf("Set LLVM_PATH=%s or run 'llvmboot setup --llvm %s' to use it.\n", root, root)
	return nil
}
