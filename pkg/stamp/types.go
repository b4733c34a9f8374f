package stamp

// Default label texts, shared between the library and the CLI.
const (
	DefaultWatermarkText     = "Controlled Copy"
	DefaultCopyLabelTemplate = "Copy No: {copy_number}"
	DefaultPageLabelTemplate = "Page {number} / {total}"
)

// AnnotationRequest describes one controlled-copy annotation job.
// Optional integer fields use 0 for "not set".
type AnnotationRequest struct {
	InputPath  string
	OutputPath string

	// CopyNumber identifies which controlled copy this is. It is printed
	// on every annotated page via CopyLabelTemplate.
	CopyNumber string

	WatermarkText     string
	CopyLabelTemplate string
	PageLabelTemplate string

	// StartNumber is the page number used for the first annotated page.
	// Must be at least 1.
	StartNumber int

	// TotalPages overrides the total displayed in the page label.
	// When set it must cover every page that will be numbered.
	TotalPages int

	// MaxPages limits how many pages from the start of the document are
	// annotated. Remaining pages are copied through unchanged.
	MaxPages int
}

// NewAnnotationRequest returns a request with the default labels,
// start number 1 and no page limit or total override.
func NewAnnotationRequest(inputPath, outputPath, copyNumber string) AnnotationRequest {
	return AnnotationRequest{
		InputPath:         inputPath,
		OutputPath:        outputPath,
		CopyNumber:        copyNumber,
		WatermarkText:     DefaultWatermarkText,
		CopyLabelTemplate: DefaultCopyLabelTemplate,
		PageLabelTemplate: DefaultPageLabelTemplate,
		StartNumber:       1,
	}
}

// PagePlan is the resolved numbering scheme for one document.
// It is computed once by BuildPlan and never modified afterwards.
type PagePlan struct {
	// ProcessedPageCount is how many pages, counted from the front of the
	// document, receive an overlay.
	ProcessedPageCount int

	// ResolvedTotalPages is the total shown in page labels: the explicit
	// override if one was given, otherwise
	// StartNumber + ProcessedPageCount - 1.
	ResolvedTotalPages int
}

// PageDecision is the per-page outcome derived from a PagePlan:
// whether the page gets an overlay and, if so, with which labels.
type PageDecision struct {
	PageIndex int // 0-based
	Annotated bool
	PageLabel string
	CopyLabel string
}

// Anchor identifies the page-relative reference point of an overlay element.
type Anchor int

const (
	AnchorTopRight Anchor = iota
	AnchorBottomCenter
	AnchorCenter
)

// TextElement is one positioned run of text on an overlay.
type TextElement struct {
	Text     string
	FontName string
	FontSize float64 // points

	Anchor Anchor
	Dx, Dy float64 // offset from the anchor, points

	Rotation float64 // degrees counter-clockwise
	Gray     float64 // fill gray level, 0 black .. 1 white
	Opacity  float64 // 0 transparent .. 1 opaque
}

// Overlay is the transient annotation layer for a single page, sized to
// that page's own dimensions. It is rendered, merged and discarded.
type Overlay struct {
	Width, Height float64
	Elements      []TextElement
}
