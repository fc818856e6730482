package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pagemirror"
	"github.com/fwojciec/pagemirror/bloom"
	"github.com/stretchr/testify/assert"
)

// Ensure Set implements pagemirror.DownloadSet at compile time.
var _ pagemirror.DownloadSet = (*bloom.Set)(nil)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/a.js"))

	f.Add("https://example.com/a.js")

	assert.True(t, f.Test("https://example.com/a.js"))
	assert.False(t, f.Test("https://example.com/b.js"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)
	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("https://example.com/a.js")
	f.Add("https://example.com/b.js")
	f.Add("https://example.com/c.js")

	count := f.EstimatedCount()
	assert.GreaterOrEqual(t, count, uint(2))
	assert.LessOrEqual(t, count, uint(4))
}

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("records url with path", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSet(16)

		_, ok := s.Lookup("https://example.com/a.png")
		assert.False(t, ok)

		s.Add("https://example.com/a.png", "site/data/a.png")

		path, ok := s.Lookup("https://example.com/a.png")
		assert.True(t, ok)
		assert.Equal(t, "site/data/a.png", path)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("keeps first path on duplicate add", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSet(16)
		s.Add("https://example.com/a.png", "first/data/a.png")
		s.Add("https://example.com/a.png", "second/data/a.png")

		path, ok := s.Lookup("https://example.com/a.png")
		assert.True(t, ok)
		assert.Equal(t, "first/data/a.png", path)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("stays exact beyond its sizing", func(t *testing.T) {
		t.Parallel()

		s := bloom.NewSet(4)
		for i := 0; i < 500; i++ {
			s.Add(fmt.Sprintf("https://example.com/img/%d.png", i), fmt.Sprintf("data/%d.png", i))
		}

		assert.Equal(t, 500, s.Len())
		for i := 0; i < 500; i++ {
			path, ok := s.Lookup(fmt.Sprintf("https://example.com/img/%d.png", i))
			assert.True(t, ok)
			assert.Equal(t, fmt.Sprintf("data/%d.png", i), path)
		}
		for i := 500; i < 1000; i++ {
			_, ok := s.Lookup(fmt.Sprintf("https://example.com/img/%d.png", i))
			assert.False(t, ok)
		}
	})
}
