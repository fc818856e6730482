package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagemirror"
	"github.com/fwojciec/pagemirror/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements pagemirror.Parser at compile time.
var _ pagemirror.Parser = (*goquery.Parser)(nil)

func parse(t *testing.T, src string) pagemirror.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	t.Run("returns title text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>Annual Report</title></head><body></body></html>`)

		title, ok := doc.Title()
		assert.True(t, ok)
		assert.Equal(t, "Annual Report", title)
	})

	t.Run("reports missing title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head></head><body><h1>No title</h1></body></html>`)

		_, ok := doc.Title()
		assert.False(t, ok)
	})

	t.Run("uses first title", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<title>First</title><title>Second</title>`)

		title, ok := doc.Title()
		assert.True(t, ok)
		assert.Equal(t, "First", title)
	})
}

func TestDocument_HasBase(t *testing.T) {
	t.Parallel()

	assert.True(t, parse(t, `<html><head><base href="https://example.com/"><title>x</title></head></html>`).HasBase())
	assert.False(t, parse(t, `<html><head><title>x</title></head></html>`).HasBase())
}

func TestDocument_Refs(t *testing.T) {
	t.Parallel()

	const src = `<html><head>
<title>Page</title>
<script src="app.js"></script>
<link rel="stylesheet" href="/css/site.css">
</head><body>
<img src="a.png">
<a href="paper.pdf">Paper</a>
<a href="about.html">About</a>
<img src="b.jpg">
<img data-src="lazy.png">
</body></html>`

	doc := parse(t, src)
	refs := doc.Refs(pagemirror.DefaultExtensions.Match)

	var got []string
	for _, r := range refs {
		got = append(got, r.Attr()+"="+r.Value())
	}
	assert.Equal(t, []string{
		"href=/css/site.css",
		"href=paper.pdf",
		"src=app.js",
		"src=a.png",
		"src=b.jpg",
	}, got)
}

func TestDocument_RefSetAndRender(t *testing.T) {
	t.Parallel()

	doc := parse(t, `<html><head><title>Page</title></head><body><a href="docs/paper.pdf">Paper</a><img src="x.png"></body></html>`)

	for _, r := range doc.Refs(pagemirror.DefaultExtensions.Match) {
		if r.Attr() == "href" {
			r.Set("pdf/paper.pdf")
		} else {
			r.Set("data/x.png")
		}
	}

	out, err := doc.Render()
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<a href="pdf/paper.pdf">Paper</a>`)
	assert.Contains(t, s, `<img src="data/x.png"/>`)
	assert.NotContains(t, s, "docs/paper.pdf")
	assert.True(t, strings.Contains(s, "<title>Page</title>"))
}
