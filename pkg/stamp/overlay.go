package stamp

import (
	"fmt"
	"math"
)

// Overlay layout constants (PDF points).
const (
	overlayMargin     = 43.2 // 0.6 inch from each edge
	copyLabelFontSize = 14
	pageLabelFontSize = 12

	// Watermark font size is the page's short edge times this factor.
	watermarkSizeFactor = 0.1
	watermarkRotation   = 45 // degrees counter-clockwise
	watermarkGray       = 0.7
	watermarkOpacity    = 0.2
)

const (
	fontHelvetica     = "Helvetica"
	fontHelveticaBold = "Helvetica-Bold"
)

// RenderOverlay builds the annotation layer for a single page of the given
// dimensions: the copy label in the top-right corner, the page label at the
// bottom center and the diagonal watermark across the page center. Pure
// rendering; fails with ErrInvalidGeometry unless both dimensions are
// finite and positive.
func RenderOverlay(width, height float64, pageLabel, copyLabel, watermarkText string) (Overlay, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 1) || math.IsInf(height, 1) {
		return Overlay{}, fmt.Errorf("%w: %g x %g points", ErrInvalidGeometry, width, height)
	}

	shortEdge := math.Min(width, height)
	return Overlay{
		Width:  width,
		Height: height,
		Elements: []TextElement{
			{
				Text:     copyLabel,
				FontName: fontHelveticaBold,
				FontSize: copyLabelFontSize,
				Anchor:   AnchorTopRight,
				Dx:       -overlayMargin,
				Dy:       -overlayMargin,
				Opacity:  1,
			},
			{
				Text:     pageLabel,
				FontName: fontHelvetica,
				FontSize: pageLabelFontSize,
				Anchor:   AnchorBottomCenter,
				Dy:       overlayMargin / 2,
				Opacity:  1,
			},
			{
				Text:     watermarkText,
				FontName: fontHelveticaBold,
				FontSize: shortEdge * watermarkSizeFactor,
				Anchor:   AnchorCenter,
				Rotation: watermarkRotation,
				Gray:     watermarkGray,
				Opacity:  watermarkOpacity,
			},
		},
	}, nil
}
