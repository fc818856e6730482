package pagemirror

import (
	"regexp"
	"strings"
)

// DefaultExtensions lists the file extensions downloaded when none are configured.
var DefaultExtensions = Extensions{"pdf", "js", "css", "jpg", "png", "gif", "woff2"}

// Extensions is a set of file extensions (without the leading dot) that
// mark an attribute value as a downloadable asset.
type Extensions []string

// NewExtensions normalizes exts by dropping leading dots and empty entries.
// It returns DefaultExtensions when nothing remains.
func NewExtensions(exts ...string) Extensions {
	var out Extensions
	for _, ext := range exts {
		ext = strings.TrimLeft(strings.TrimSpace(ext), ".")
		if ext != "" {
			out = append(out, ext)
		}
	}
	if len(out) == 0 {
		return DefaultExtensions
	}
	return out
}

// Match reports whether value ends in "."+ext for any configured extension.
// Matching is case-sensitive.
func (e Extensions) Match(value string) bool {
	for _, ext := range e {
		if strings.HasSuffix(value, "."+ext) {
			return true
		}
	}
	return false
}

// AssetLink describes one asset reference found in a page: the attribute
// value as written, where the asset is stored locally, and where it is
// fetched from.
type AssetLink struct {
	Value     string // original attribute value
	Subfolder string // SubfolderPDF or SubfolderData
	Name      string // sanitized file name
	URL       string // absolute URL to fetch
}

// LocalPath returns the path written back into the document, relative to
// the page's working directory.
func (l AssetLink) LocalPath() string {
	return l.Subfolder + "/" + l.Name
}

// NewAssetLink builds the AssetLink for an attribute value found on the page
// at pageURL.
func NewAssetLink(pageURL, value string) (AssetLink, error) {
	abs, err := ResolveURL(pageURL, value)
	if err != nil {
		return AssetLink{}, err
	}
	return AssetLink{
		Value:     value,
		Subfolder: Subfolder(value),
		Name:      LocalName(value),
		URL:       abs,
	}, nil
}

// Subfolder returns the working directory subfolder an asset is stored in.
func Subfolder(value string) string {
	if strings.HasSuffix(value, ".pdf") {
		return SubfolderPDF
	}
	return SubfolderData
}

// LocalName returns the sanitized final path segment of value.
func LocalName(value string) string {
	return Sanitize(value[strings.LastIndex(value, "/")+1:])
}

var originRe = regexp.MustCompile(`^https?://[^/]*`)

// ResolveURL turns an href or src value into an absolute URL using plain
// string rules rather than RFC 3986 reference resolution:
//
//   - "//host/x" takes the scheme of pageURL. This is a deliberate exception
//     to the next rule: used as-is such a value cannot be fetched.
//   - Any other value containing "//" is already absolute.
//   - "/x" is appended to the scheme and host of pageURL.
//   - Otherwise value is appended to pageURL up to its last "/", or to
//     pageURL plus "/" when pageURL has no path.
//
// Query strings, ".." segments and embedded "//" are left untouched.
func ResolveURL(pageURL, value string) (string, error) {
	switch {
	case strings.HasPrefix(value, "//"):
		if i := strings.Index(pageURL, "://"); i > 0 {
			return pageURL[:i] + ":" + value, nil
		}
		return value, nil
	case strings.Contains(value, "//"):
		return value, nil
	case strings.HasPrefix(value, "/"):
		origin := originRe.FindString(pageURL)
		if origin == "" {
			return "", Errorf(EINVALID, "cannot resolve %q: page URL %q is not http(s)", value, pageURL)
		}
		return origin + value, nil
	}

	rest := pageURL
	if i := strings.Index(pageURL, "//"); i >= 0 {
		rest = pageURL[i+2:]
	}
	if strings.Contains(rest, "/") {
		return pageURL[:strings.LastIndex(pageURL, "/")+1] + value, nil
	}
	return pageURL + "/" + value, nil
}
