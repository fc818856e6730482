package pagemirror_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/fwojciec/pagemirror"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "url", in: "https://example.com/dir/page.html", want: "httpsexample.comdirpage.html"},
		{name: "keeps safe punctuation", in: "a b.c_d-e", want: "a b.c_d-e"},
		{name: "trims trailing spaces", in: "My Page  ", want: "My Page"},
		{name: "keeps leading spaces", in: "  title", want: "  title"},
		{name: "drops trailing space exposed by removal", in: "Report ?", want: "Report"},
		{name: "query string", in: "font.woff2?v=3", want: "font.woff2v3"},
		{name: "unicode letters", in: "Über Straße", want: "Über Straße"},
		{name: "control characters", in: "a\tb\nc", want: "abc"},
		{name: "invalid utf8", in: "a\xffb", want: "ab"},
		{name: "only unsafe", in: "/?#:&", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pagemirror.Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com/a b/c?d=e#f",
		"Title with   trailing\t \n",
		"日本語 タイトル!",
		"..//..\\",
	}
	for _, in := range inputs {
		once := pagemirror.Sanitize(in)
		assert.Equal(t, once, pagemirror.Sanitize(once), "input %q", in)
	}
}

func FuzzSanitize(f *testing.F) {
	f.Add("https://example.com/dir/page.html")
	f.Add("My Title  ")
	f.Add("a\x00b\xffc")
	f.Fuzz(func(t *testing.T, in string) {
		out := pagemirror.Sanitize(in)

		for _, r := range out {
			ok := unicode.IsLetter(r) || unicode.IsNumber(r) || strings.ContainsRune(" ._-", r)
			if !ok {
				t.Fatalf("Sanitize(%q) = %q contains %q", in, out, r)
			}
		}
		if strings.TrimRightFunc(out, unicode.IsSpace) != out {
			t.Fatalf("Sanitize(%q) = %q has trailing whitespace", in, out)
		}
		if again := pagemirror.Sanitize(out); again != out {
			t.Fatalf("Sanitize not idempotent: %q -> %q -> %q", in, out, again)
		}
	})
}
