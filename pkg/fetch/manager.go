// pkg/fetch/manager.go
package fetch

import (
	"archive/tar"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// Config holds configuration for the release fetcher
type Config struct {
	// ReleaseURL is the base URL for release downloads
	ReleaseURL string

	// InstallPath is where the release is unpacked
	InstallPath string

	// CachePath is where downloaded archives are kept
	CachePath string

	// Timeout for network operations
	Timeout time.Duration

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}

// DownloadOptions configures a single fetch
type DownloadOptions struct {
	Version     string // release version (default: DefaultVersion)
	SHA256      string // optional expected archive hash, hex encoded
	KeepArchive bool   // keep the downloaded archive after unpacking
}

// Manager downloads and unpacks official clang+llvm release archives
type Manager struct {
	client *Client
	config *Config
	logger *log.Logger
}

// NewManager creates a new release fetcher
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}

	// Set defaults
	if cfg.ReleaseURL == "" {
		cfg.ReleaseURL = DefaultReleaseURL
	}
	if cfg.CachePath == "" {
		homeDir, _ := os.UserHomeDir()
		cfg.CachePath = filepath.Join(homeDir, ".cache", "llvmboot")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	// Setup logger
	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[FETCH] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	return &Manager{
		client: NewClientWithTimeout(cfg.Timeout),
		config: cfg,
		logger: logger,
	}
}

// Fetch downloads the requested clang+llvm release, verifies it when a hash
// is given, and unpacks it under the configured install path. It returns the
// unpacked installation root.
func (m *Manager) Fetch(ctx context.Context, opts *DownloadOptions) (string, error) {
	if opts == nil {
		opts = &DownloadOptions{}
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if m.config.InstallPath == "" {
		return "", fmt.Errorf("InstallPath is required")
	}

	url, err := ReleaseURL(m.config.ReleaseURL, opts.Version)
	if err != nil {
		return "", err
	}
	name, _ := ArchiveName(opts.Version)
	archivePath := filepath.Join(m.config.CachePath, "downloads", name)

	m.logger.Printf("Step 1: Downloading %s...", url)
	if err := m.download(ctx, url, archivePath); err != nil {
		return "", fmt.Errorf("downloading release: %w", err)
	}

	if opts.SHA256 != "" {
		m.logger.Printf("Step 2: Verifying archive hash...")
		if err := m.verifyFileHash(archivePath, opts.SHA256); err != nil {
			return "", err
		}
	}

	m.logger.Printf("Step 3: Unpacking to %s...", m.config.InstallPath)
	if err := m.extractArchive(archivePath, m.config.InstallPath); err != nil {
		return "", fmt.Errorf("unpacking release: %w", err)
	}

	if !opts.KeepArchive {
		os.Remove(archivePath)
	}

	return m.config.InstallPath, nil
}

// download fetches url to destPath, creating parent directories as needed
func (m *Manager) download(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	written, err := m.client.Download(ctx, url, f)
	if err != nil {
		return err
	}
	m.logger.Printf("  Downloaded %d bytes", written)

	return nil
}

// verifyFileHash checks the sha256 of filePath against expectedHash
func (m *Manager) verifyFileHash(filePath, expectedHash string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hashing file: %w", err)
	}

	actual := hex.EncodeToString(h.Sum(nil))
	if !strings.EqualFold(actual, expectedHash) {
		return fmt.Errorf("hash mismatch for %s: expected %s, got %s", filePath, expectedHash, actual)
	}

	m.logger.Printf("  Hash verified: %s", actual)
	return nil
}

// extractArchive unpacks a clang+llvm .tar.xz archive into installPath.
// Release archives wrap everything in a single clang+llvm-* directory; that
// leading component is stripped so lib/ and include/ land directly under
// installPath.
func (m *Manager) extractArchive(archivePath, installPath string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	xzReader, err := xz.NewReader(f)
	if err != nil {
		return fmt.Errorf("creating xz reader: %w", err)
	}
	tarReader := tar.NewReader(xzReader)

	fileCount := 0
	dirCount := 0
	symlinkCount := 0

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		cleanPath := stripTopLevel(header.Name)
		if cleanPath == "" {
			continue
		}
		if !filepath.IsLocal(cleanPath) {
			return fmt.Errorf("archive entry escapes install path: %s", header.Name)
		}

		targetPath := filepath.Join(installPath, cleanPath)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(targetPath, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", targetPath, err)
			}
			dirCount++

		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory for symlink: %w", err)
			}
			// Remove existing symlink if it exists
			os.Remove(targetPath)
			if err := os.Symlink(header.Linkname, targetPath); err != nil {
				return fmt.Errorf("creating symlink %s -> %s: %w", targetPath, header.Linkname, err)
			}
			symlinkCount++

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
				return fmt.Errorf("creating parent directory: %w", err)
			}

			outFile, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return fmt.Errorf("creating file %s: %w", targetPath, err)
			}

			_, err = io.Copy(outFile, tarReader)
			outFile.Close()
			if err != nil {
				return fmt.Errorf("writing file %s: %w", targetPath, err)
			}
			fileCount++
		}
	}

	m.logger.Printf("  Unpacked %d files, %d directories, %d symlinks", fileCount, dirCount, symlinkCount)
	return nil
}

// stripTopLevel removes the leading path component of a tar entry name
func stripTopLevel(name string) string {
	clean := strings.TrimPrefix(strings.TrimPrefix(name, "./"), "/")
	if i := strings.IndexByte(clean, '/'); i >= 0 {
		return filepath.FromSlash(clean[i+1:])
	}
	return ""
}
