// pkg/toolchain/utils.go
package toolchain

import "os"

// fileExists checks if path exists and is a regular file
func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// dirExists checks if path exists and is a directory
func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
