// pkg/buildscript/script.go
package buildscript

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// ErrBadTemplate indicates the template has no LLVM_DIR configuration line.
var ErrBadTemplate = errors.New("template has no 'set LLVM_DIR=...' line")

var dirLine = regexp.MustCompile(`(?m)^set LLVM_DIR=.*$`)

// Render writes the build script at outPath from the template at
// templatePath, with the first line matching `set LLVM_DIR=...` rewritten to
// point at root. The path is spliced in as literal text so that separators
// like \L are never reinterpreted as escapes; every other byte of the
// template is preserved.
func Render(templatePath, outPath, root string) error {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	content := string(data)
	loc := dirLine.FindStringIndex(content)
	if loc == nil {
		return fmt.Errorf("%w: %s", ErrBadTemplate, templatePath)
	}

	out := content[:loc[0]] + "set LLVM_DIR=" + root + content[loc[1]:]
	if err := os.WriteFile(outPath, []byte(out), 0755); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
