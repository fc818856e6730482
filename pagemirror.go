// Package pagemirror mirrors individual web pages to local disk. Each page's
// references to binary assets (PDFs, scripts, stylesheets, images, fonts) are
// rewritten to local relative paths and the assets are downloaded next to the
// page, so the page and its assets form a self-contained local copy.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, bloom/).
package pagemirror

// Subfolder names inside a page's working directory.
const (
	SubfolderPDF  = "pdf"
	SubfolderData = "data"
)
