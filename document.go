package pagemirror

// Parser turns raw HTML into an editable Document.
type Parser interface {
	Parse(html []byte) (Document, error)
}

// Document is a parsed HTML page whose attributes can be rewritten in place.
type Document interface {
	// Title returns the text of the first <title> element.
	// ok is false when the document has no <title>.
	Title() (title string, ok bool)

	// HasBase reports whether the document contains a <base> element.
	HasBase() bool

	// Refs returns the attributes accepted by match: all matching href
	// attributes in document order, followed by all matching src attributes
	// in document order.
	Refs(match func(value string) bool) []Ref

	// Render serializes the document, including any rewritten attributes.
	Render() ([]byte, error)
}

// Ref is a single href or src attribute on an element.
type Ref interface {
	// Attr returns the attribute name ("href" or "src").
	Attr() string

	// Value returns the current attribute value.
	Value() string

	// Set rewrites the attribute value in the owning Document.
	Set(value string)
}
