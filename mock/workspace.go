package mock

import (
	"context"

	"github.com/fwojciec/pagemirror"
)

var _ pagemirror.WorkspaceOpener = (*WorkspaceOpener)(nil)

// WorkspaceOpener is a mock implementation of pagemirror.WorkspaceOpener.
type WorkspaceOpener struct {
	OpenFn func(ctx context.Context, name string) (pagemirror.Workspace, error)
}

func (o *WorkspaceOpener) Open(ctx context.Context, name string) (pagemirror.Workspace, error) {
	return o.OpenFn(ctx, name)
}

var _ pagemirror.Workspace = (*Workspace)(nil)

// Workspace is a mock implementation of pagemirror.Workspace.
type Workspace struct {
	DirFn        func() string
	WriteAssetFn func(ctx context.Context, subfolder, name string, data []byte) (string, error)
	CopyAssetFn  func(ctx context.Context, src, subfolder, name string) (string, error)
	WritePageFn  func(ctx context.Context, name string, data []byte) (string, error)
}

func (w *Workspace) Dir() string {
	return w.DirFn()
}

func (w *Workspace) WriteAsset(ctx context.Context, subfolder, name string, data []byte) (string, error) {
	return w.WriteAssetFn(ctx, subfolder, name, data)
}

func (w *Workspace) CopyAsset(ctx context.Context, src, subfolder, name string) (string, error) {
	return w.CopyAssetFn(ctx, src, subfolder, name)
}

func (w *Workspace) WritePage(ctx context.Context, name string, data []byte) (string, error) {
	return w.WritePageFn(ctx, name, data)
}

var _ pagemirror.AssetCache = (*AssetCache)(nil)

// AssetCache is a mock implementation of pagemirror.AssetCache.
type AssetCache struct {
	PutFn func(ctx context.Context, url string, data []byte) (string, error)
}

func (c *AssetCache) Put(ctx context.Context, url string, data []byte) (string, error) {
	return c.PutFn(ctx, url, data)
}

var _ pagemirror.DownloadSet = (*DownloadSet)(nil)

// DownloadSet is a mock implementation of pagemirror.DownloadSet.
type DownloadSet struct {
	LookupFn func(url string) (string, bool)
	AddFn    func(url, path string)
	LenFn    func() int
}

func (s *DownloadSet) Lookup(url string) (string, bool) {
	return s.LookupFn(url)
}

func (s *DownloadSet) Add(url, path string) {
	s.AddFn(url, path)
}

func (s *DownloadSet) Len() int {
	return s.LenFn()
}
