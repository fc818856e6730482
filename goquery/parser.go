// Package goquery implements pagemirror.Parser on top of goquery, with
// serialization through golang.org/x/net/html.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemirror"
	"golang.org/x/net/html"
)

// Ensure Parser implements pagemirror.Parser at compile time.
var _ pagemirror.Parser = (*Parser)(nil)

// Parser parses HTML into editable documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses b as HTML.
func (p *Parser) Parse(b []byte) (pagemirror.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return nil, pagemirror.Errorf(pagemirror.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Ensure Document implements pagemirror.Document at compile time.
var _ pagemirror.Document = (*Document)(nil)

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// Title returns the text of the first <title> element.
func (d *Document) Title() (string, bool) {
	sel := d.doc.Find("title").First()
	if sel.Length() == 0 {
		return "", false
	}
	return sel.Text(), true
}

// HasBase reports whether the document has a <base> element.
func (d *Document) HasBase() bool {
	return d.doc.Find("base").Length() > 0
}

// Refs returns matching href attributes, then matching src attributes,
// each in document order.
func (d *Document) Refs(match func(string) bool) []pagemirror.Ref {
	var refs []pagemirror.Ref
	for _, attr := range []string{"href", "src"} {
		d.doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			if v, ok := sel.Attr(attr); ok && match(v) {
				refs = append(refs, &Ref{sel: sel, attr: attr})
			}
		})
	}
	return refs
}

// Render serializes the whole document.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	for _, n := range d.doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Ensure Ref implements pagemirror.Ref at compile time.
var _ pagemirror.Ref = (*Ref)(nil)

// Ref is one attribute of a single element.
type Ref struct {
	sel  *goquery.Selection
	attr string
}

// Attr returns the attribute name.
func (r *Ref) Attr() string { return r.attr }

// Value returns the attribute's current value.
func (r *Ref) Value() string {
	v, _ := r.sel.Attr(r.attr)
	return v
}

// Set rewrites the attribute.
func (r *Ref) Set(value string) { r.sel.SetAttr(r.attr, value) }
