package stamp

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUCodec implements Codec on top of the pdfcpu library. Merged
// overlays are staged as per-page text watermarks and applied in a single
// pass when the document is written.
type PDFCPUCodec struct {
	// OpaqueWatermark replaces alpha-blended fills with the same gray
	// pre-blended against white, for rendering surfaces without
	// transparency support.
	OpaqueWatermark bool
}

type pdfcpuDocument struct {
	path   string
	data   []byte
	dims   []types.Dim
	staged map[int][]*model.Watermark // 1-based page number -> watermarks
}

func (d *pdfcpuDocument) PageCount() int { return len(d.dims) }

func (d *pdfcpuDocument) PageDimensions(pageIndex int) (float64, float64, error) {
	if pageIndex < 0 || pageIndex >= len(d.dims) {
		return 0, 0, fmt.Errorf("%w: %s: page index %d out of range", ErrCodec, d.path, pageIndex)
	}
	dim := d.dims[pageIndex]
	return dim.Width, dim.Height, nil
}

// ReadDocument reads the source file fully and resolves the mediabox of
// every page up front.
func (c *PDFCPUCodec) ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrCodec, path, err)
	}
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCodec, path, err)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: page dimensions of %s: %v", ErrCodec, path, err)
	}
	if len(dims) != pageCount {
		return nil, fmt.Errorf("%w: %s: %d pages but %d mediaboxes", ErrCodec, path, pageCount, len(dims))
	}
	return &pdfcpuDocument{
		path:   path,
		data:   data,
		dims:   dims,
		staged: make(map[int][]*model.Watermark),
	}, nil
}

// MergeOverlay stages the overlay's text elements as stamps for the given
// page. The actual compositing happens in WriteDocument.
func (c *PDFCPUCodec) MergeOverlay(doc Document, pageIndex int, ov Overlay) error {
	d, ok := doc.(*pdfcpuDocument)
	if !ok {
		return fmt.Errorf("%w: document was not opened by this codec", ErrCodec)
	}
	if pageIndex < 0 || pageIndex >= len(d.dims) {
		return fmt.Errorf("%w: %s: page index %d out of range", ErrCodec, d.path, pageIndex)
	}
	pageNr := pageIndex + 1
	for _, el := range ov.Elements {
		wm, err := c.textWatermark(el)
		if err != nil {
			return fmt.Errorf("%w: overlay for page %d of %s: %v", ErrCodec, pageNr, d.path, err)
		}
		d.staged[pageNr] = append(d.staged[pageNr], wm)
	}
	return nil
}

// textWatermark translates one overlay element into a pdfcpu text stamp.
// Anchor and offset map onto pdfcpu's position/offset parameters, so the
// element lands at the same point regardless of the page size.
func (c *PDFCPUCodec) textWatermark(el TextElement) (*model.Watermark, error) {
	gray := el.Gray
	opacity := el.Opacity
	if c.OpaqueWatermark && opacity < 1 {
		gray = gray*opacity + (1 - opacity)
		opacity = 1
	}
	desc := fmt.Sprintf(
		"fontname:%s, points:%d, scalefactor:1 abs, position:%s, offset:%.2f %.2f, fillcolor:%.2f %.2f %.2f, rotation:%.0f, opacity:%.2f",
		el.FontName, int(el.FontSize), anchorPosition(el.Anchor),
		el.Dx, el.Dy, gray, gray, gray, el.Rotation, opacity)
	return api.TextWatermark(el.Text, desc, true, false, types.POINTS)
}

func anchorPosition(a Anchor) string {
	switch a {
	case AnchorTopRight:
		return "tr"
	case AnchorBottomCenter:
		return "bc"
	default:
		return "c"
	}
}

// WriteDocument applies all staged stamps in one pass and persists the
// result. The stamped document is composed in memory and moved into place
// with a rename, so a failure never leaves a truncated file at path.
func (c *PDFCPUCodec) WriteDocument(doc Document, path string) error {
	d, ok := doc.(*pdfcpuDocument)
	if !ok {
		return fmt.Errorf("%w: document was not opened by this codec", ErrCodec)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrCodec, dir, err)
	}

	var buf bytes.Buffer
	if len(d.staged) == 0 {
		// Nothing merged: the output is the input, byte for byte.
		buf.Write(d.data)
	} else if err := api.AddWatermarksSliceMap(bytes.NewReader(d.data), &buf, d.staged, nil); err != nil {
		return fmt.Errorf("%w: stamp %s: %v", ErrCodec, d.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".pdfstamp-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrCodec, path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrCodec, path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrCodec, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %v", ErrCodec, path, err)
	}
	return nil
}
