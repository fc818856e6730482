// Package fs provides file-based storage for mirrored pages.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagemirror"
)

// Ensure Root implements pagemirror.WorkspaceOpener at compile time.
var _ pagemirror.WorkspaceOpener = (*Root)(nil)

// Root creates page workspaces below a base directory.
type Root struct {
	baseDir string
}

// NewRoot creates a new Root that places workspaces under baseDir.
func NewRoot(baseDir string) *Root {
	return &Root{baseDir: baseDir}
}

// Open creates baseDir/name with its pdf and data subfolders.
func (r *Root) Open(ctx context.Context, name string) (pagemirror.Workspace, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.baseDir, name)
	for _, sub := range []string{pagemirror.SubfolderPDF, pagemirror.SubfolderData} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("create workspace: %w", err)
		}
	}

	return &Workspace{dir: dir}, nil
}

// Ensure Workspace implements pagemirror.Workspace at compile time.
var _ pagemirror.Workspace = (*Workspace)(nil)

// Workspace writes a page and its assets into one directory.
type Workspace struct {
	dir string
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// WriteAsset writes data to subfolder/name, replacing any existing file.
func (w *Workspace) WriteAsset(ctx context.Context, subfolder, name string, data []byte) (string, error) {
	path, err := w.assetPath(subfolder, name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write asset: %w", err)
	}
	return path, nil
}

// CopyAsset copies src to subfolder/name, replacing any existing file.
func (w *Workspace) CopyAsset(ctx context.Context, src, subfolder, name string) (string, error) {
	path, err := w.assetPath(subfolder, name)
	if err != nil {
		return "", err
	}
	if filepath.Clean(src) == path {
		return path, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("copy asset: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("copy asset: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("copy asset: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("copy asset: %w", err)
	}
	return path, nil
}

// WritePage writes the rewritten page into the workspace directory.
func (w *Workspace) WritePage(ctx context.Context, name string, data []byte) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return path, nil
}

func (w *Workspace) assetPath(subfolder, name string) (string, error) {
	if subfolder != pagemirror.SubfolderPDF && subfolder != pagemirror.SubfolderData {
		return "", pagemirror.Errorf(pagemirror.EINVALID, "unknown subfolder %q", subfolder)
	}
	if err := validateName(name); err != nil {
		return "", err
	}
	return filepath.Join(w.dir, subfolder, name), nil
}

// validateName rejects names that would escape their parent directory.
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return pagemirror.Errorf(pagemirror.EINVALID, "invalid file name %q", name)
	}
	return nil
}
