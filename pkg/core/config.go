// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds llvmboot configuration
type Config struct {
	LLVMPath     string `yaml:"llvm_path"`     // explicit LLVM root, skips auto-detection
	ScriptDir    string `yaml:"script_dir"`    // directory holding the template and generated files
	Manifest     string `yaml:"manifest"`      // response file name
	Template     string `yaml:"template"`      // build script template name
	OutputScript string `yaml:"output_script"` // generated build script name
	InstallPath  string `yaml:"install_path"`  // where fetched releases are unpacked
	Debug        bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LLVMPath:     "", // Auto-detect
		ScriptDir:    ".",
		Manifest:     "llvm_libs.rsp",
		Template:     defaultTemplateName(),
		OutputScript: defaultOutputName(),
		InstallPath:  getDefaultInstallPath(),
		Debug:        false,
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "llvmboot", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "llvmboot", "config.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ManifestPath returns the response file location.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.ScriptDir, c.Manifest)
}

// TemplatePath returns the build script template location.
func (c *Config) TemplatePath() string {
	return filepath.Join(c.ScriptDir, c.Template)
}

// OutputScriptPath returns the generated build script location.
func (c *Config) OutputScriptPath() string {
	return filepath.Join(c.ScriptDir, c.OutputScript)
}

func defaultTemplateName() string {
	if runtime.GOOS == "windows" {
		return "rebuild_all.bat"
	}
	return "rebuild_all.sh"
}

func defaultOutputName() string {
	if runtime.GOOS == "windows" {
		return "rebuild_auto.bat"
	}
	return "rebuild_auto.sh"
}

func getDefaultInstallPath() string {
	if path := os.Getenv("LLVMBOOT_INSTALL_PATH"); path != "" {
		return path
	}

	if runtime.GOOS == "windows" {
		return `C:\LLVM-dev`
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "/usr/local/llvm"
	}

	return filepath.Join(home, ".llvmboot", "llvm")
}
