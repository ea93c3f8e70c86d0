// cmd/llvmboot/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arc-language/llvmboot"
	"github.com/arc-language/llvmboot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *llvmboot.ExitError
		if errors.As(err, &exitErr) {
			// Diagnostics were already printed; pass the code through.
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
