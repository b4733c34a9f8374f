package stamp

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderOverlayLayout(t *testing.T) {
	ov, err := RenderOverlay(612, 792, "Page 1 / 3", "Copy No: CC-001", "Controlled Copy")
	if err != nil {
		t.Fatalf("RenderOverlay failed: %v", err)
	}

	want := Overlay{
		Width:  612,
		Height: 792,
		Elements: []TextElement{
			{
				Text:     "Copy No: CC-001",
				FontName: "Helvetica-Bold",
				FontSize: 14,
				Anchor:   AnchorTopRight,
				Dx:       -43.2,
				Dy:       -43.2,
				Opacity:  1,
			},
			{
				Text:     "Page 1 / 3",
				FontName: "Helvetica",
				FontSize: 12,
				Anchor:   AnchorBottomCenter,
				Dy:       21.6,
				Opacity:  1,
			},
			{
				Text:     "Controlled Copy",
				FontName: "Helvetica-Bold",
				FontSize: 61.2,
				Anchor:   AnchorCenter,
				Rotation: 45,
				Gray:     0.7,
				Opacity:  0.2,
			},
		},
	}
	if diff := cmp.Diff(want, ov); diff != "" {
		t.Errorf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOverlayWatermarkTracksShortEdge(t *testing.T) {
	// Landscape page: the short edge is the height.
	ov, err := RenderOverlay(792, 612, "p", "c", "w")
	if err != nil {
		t.Fatalf("RenderOverlay failed: %v", err)
	}
	wm := ov.Elements[2]
	if wm.FontSize != 61.2 {
		t.Errorf("watermark font size %g, want 61.2", wm.FontSize)
	}
}

func TestRenderOverlayInvalidGeometry(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 792},
		{"zero height", 612, 0},
		{"negative", -612, 792},
		{"nan", math.NaN(), 792},
		{"infinite", math.Inf(1), 792},
	}
	for _, tc := range cases {
		if _, err := RenderOverlay(tc.width, tc.height, "p", "c", "w"); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s: got %v, want ErrInvalidGeometry", tc.name, err)
		}
	}
}
