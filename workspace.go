package pagemirror

import "context"

// WorkspaceOpener creates working directories for mirrored pages.
type WorkspaceOpener interface {
	// Open returns the workspace called name, creating it and its pdf and
	// data subfolders when missing. Existing directories are not an error.
	Open(ctx context.Context, name string) (Workspace, error)
}

// Workspace is the output folder of one mirrored page.
// Every write overwrites an existing file with the same name.
type Workspace interface {
	// Dir returns the workspace directory.
	Dir() string

	// WriteAsset stores data as subfolder/name and returns the written path.
	WriteAsset(ctx context.Context, subfolder, name string, data []byte) (string, error)

	// CopyAsset copies the file at src to subfolder/name and returns the
	// written path. Copying a file onto itself is a no-op.
	CopyAsset(ctx context.Context, src, subfolder, name string) (string, error)

	// WritePage stores the rewritten page as name and returns the written path.
	WritePage(ctx context.Context, name string, data []byte) (string, error)
}

// AssetCache keeps a private copy of every downloaded asset for the
// duration of a run. Cached files are never overwritten by other URLs.
type AssetCache interface {
	// Put stores data for url and returns the path of the cached copy.
	Put(ctx context.Context, url string, data []byte) (string, error)
}

// DownloadSet records the asset URLs fetched during a run and the
// AssetCache path holding each one.
type DownloadSet interface {
	// Lookup returns the local path recorded for url.
	Lookup(url string) (path string, ok bool)

	// Add records url as downloaded to path.
	Add(url, path string)

	// Len returns the number of recorded URLs.
	Len() int
}
