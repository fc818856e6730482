package pagemirror

// Progress reports one file written while mirroring a page.
// Asset is empty for the page itself.
type Progress struct {
	Page   string
	Asset  string
	Path   string
	Bytes  int
	Cached bool // asset was already downloaded earlier in the run
}

// ProgressFunc is called after each file is written.
type ProgressFunc func(Progress)
