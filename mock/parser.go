package mock

import "github.com/fwojciec/pagemirror"

var _ pagemirror.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagemirror.Parser.
type Parser struct {
	ParseFn func(html []byte) (pagemirror.Document, error)
}

func (p *Parser) Parse(html []byte) (pagemirror.Document, error) {
	return p.ParseFn(html)
}

var _ pagemirror.Document = (*Document)(nil)

// Document is a mock implementation of pagemirror.Document.
type Document struct {
	TitleFn   func() (string, bool)
	HasBaseFn func() bool
	RefsFn    func(match func(string) bool) []pagemirror.Ref
	RenderFn  func() ([]byte, error)
}

func (d *Document) Title() (string, bool) {
	return d.TitleFn()
}

func (d *Document) HasBase() bool {
	return d.HasBaseFn()
}

func (d *Document) Refs(match func(string) bool) []pagemirror.Ref {
	return d.RefsFn(match)
}

func (d *Document) Render() ([]byte, error) {
	return d.RenderFn()
}
