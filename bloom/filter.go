// Package bloom provides asset URL deduplication backed by Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pagemirror"
)

// Filter wraps a Bloom filter for URL membership tests.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Ensure Set implements pagemirror.DownloadSet at compile time.
var _ pagemirror.DownloadSet = (*Set)(nil)

// Set is an exact pagemirror.DownloadSet. The Bloom filter answers most
// lookups for unseen URLs; positives are confirmed against the path index.
type Set struct {
	filter *Filter
	paths  map[string]string
}

// NewSet creates a Set sized for n expected URLs.
func NewSet(n uint) *Set {
	return &Set{
		filter: NewFilter(n, 0.01),
		paths:  make(map[string]string),
	}
}

// Lookup returns the path recorded for url.
func (s *Set) Lookup(url string) (string, bool) {
	if !s.filter.Test(url) {
		return "", false
	}
	path, ok := s.paths[url]
	return path, ok
}

// Add records url with its local path. Adding a URL twice keeps the first path.
func (s *Set) Add(url, path string) {
	if _, ok := s.paths[url]; ok {
		return
	}
	s.paths[url] = path
	s.filter.Add(url)
}

// Len returns the number of recorded URLs.
func (s *Set) Len() int {
	return len(s.paths)
}
