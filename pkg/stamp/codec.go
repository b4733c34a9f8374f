package stamp

// Document is an opaque handle to an open PDF as seen by a Codec: an
// ordered sequence of pages with dimensions. Page order and count are never
// changed by annotation.
type Document interface {
	PageCount() int

	// PageDimensions returns the mediabox width and height in points of
	// the 0-based page.
	PageDimensions(pageIndex int) (width, height float64, err error)
}

// Codec is the injected PDF read/merge/write capability. The annotation
// core treats PDF structure as opaque beyond what Document exposes, so it
// can be exercised against an in-memory codec in tests.
//
// A codec may stage merged overlays and apply them when WriteDocument runs;
// either way no bytes may reach the destination path before WriteDocument,
// and WriteDocument must not leave a truncated file behind on failure.
type Codec interface {
	ReadDocument(path string) (Document, error)

	// MergeOverlay composites ov on top of the existing content of the
	// 0-based page, preserving all original content.
	MergeOverlay(doc Document, pageIndex int, ov Overlay) error

	// WriteDocument persists the document, creating parent directories
	// as needed.
	WriteDocument(doc Document, path string) error
}
