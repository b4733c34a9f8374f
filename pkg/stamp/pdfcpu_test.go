package stamp

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// writeTestPDF writes a minimal uncompressed PDF with pageCount letter-sized
// pages, each carrying one line of original text.
func writeTestPDF(t *testing.T, path string, pageCount int) {
	t.Helper()

	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, pageCount)
	for i := 0; i < pageCount; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), pageCount))

	for i := 0; i < pageCount; i++ {
		pageObj := 3 + 2*i
		objs = append(objs, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R "+
				"/Resources << /Font << /F1 << /Type /Font /Subtype /Type1 /BaseFont /Helvetica >> >> >> >>",
			pageObj+1))
		content := fmt.Sprintf("BT /F1 12 Tf 72 700 Td (Original content on page %d) Tj ET", i+1)
		objs = append(objs, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs)+1)
	for n, body := range objs {
		offsets[n+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", n+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for n := 1; n <= len(objs); n++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objs)+1, xref)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
}

func pageText(t *testing.T, path string, pageNum int) string {
	t.Helper()
	text, err := ExtractPageText(path, pageNum)
	if err != nil {
		t.Fatalf("extracting text of page %d: %v", pageNum, err)
	}
	return text
}

func TestPDFCPUAnnotateCreatesWatermarkedOutput(t *testing.T) {
	for _, pageCount := range []int{1, 3} {
		dir := t.TempDir()
		input := filepath.Join(dir, "input.pdf")
		output := filepath.Join(dir, "output.pdf")
		writeTestPDF(t, input, pageCount)

		req := NewAnnotationRequest(input, output, "CC-001")
		if err := AnnotateFile(&PDFCPUCodec{}, req); err != nil {
			t.Fatalf("%d pages: AnnotateFile failed: %v", pageCount, err)
		}

		n, err := api.PageCountFile(output)
		if err != nil {
			t.Fatalf("%d pages: reading output: %v", pageCount, err)
		}
		if n != pageCount {
			t.Fatalf("%d pages: output has %d pages", pageCount, n)
		}

		for p := 1; p <= pageCount; p++ {
			text := pageText(t, output, p)
			for _, want := range []string{
				"Controlled Copy",
				"Copy No: CC-001",
				fmt.Sprintf("Page %d / %d", p, pageCount),
				fmt.Sprintf("Original content on page %d", p),
			} {
				if !strings.Contains(text, want) {
					t.Errorf("%d pages: page %d text %q misses %q", pageCount, p, text, want)
				}
			}
		}
	}
}

func TestPDFCPUMaxPagesLimitsProcessing(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "output.pdf")
	writeTestPDF(t, input, 4)

	req := NewAnnotationRequest(input, output, "CC-002")
	req.MaxPages = 2
	req.TotalPages = 5
	if err := AnnotateFile(&PDFCPUCodec{}, req); err != nil {
		t.Fatalf("AnnotateFile failed: %v", err)
	}

	if n, err := api.PageCountFile(output); err != nil || n != 4 {
		t.Fatalf("output page count %d (%v), want 4", n, err)
	}

	first := pageText(t, output, 1)
	if !strings.Contains(first, "Page 1 / 5") || !strings.Contains(first, "Copy No: CC-002") {
		t.Errorf("page 1 text %q misses annotations", first)
	}

	// Pages beyond the limit keep their content and gain nothing.
	third := pageText(t, output, 3)
	if strings.Contains(third, "Copy No: CC-002") || strings.Contains(third, "Page 3 / 5") {
		t.Errorf("page 3 text %q must not be annotated", third)
	}
	if !strings.Contains(third, "Original content on page 3") {
		t.Errorf("page 3 text %q lost its original content", third)
	}
}

func TestPDFCPUInvalidConfigurationLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "output.pdf")
	writeTestPDF(t, input, 2)

	req := NewAnnotationRequest(input, output, "CC-001")
	req.StartNumber = 0
	if err := AnnotateFile(&PDFCPUCodec{}, req); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file must not exist, stat: %v", err)
	}
}

func TestPDFCPUCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "nested", "deeper", "output.pdf")
	writeTestPDF(t, input, 1)

	req := NewAnnotationRequest(input, output, "CC-001")
	if err := AnnotateFile(&PDFCPUCodec{}, req); err != nil {
		t.Fatalf("AnnotateFile failed: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestPDFCPUOpaqueWatermarkFallback(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "output.pdf")
	writeTestPDF(t, input, 1)

	req := NewAnnotationRequest(input, output, "CC-001")
	if err := AnnotateFile(&PDFCPUCodec{OpaqueWatermark: true}, req); err != nil {
		t.Fatalf("AnnotateFile failed: %v", err)
	}

	text := pageText(t, output, 1)
	for _, want := range []string{"Controlled Copy", "Copy No: CC-001", "Page 1 / 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("page text %q misses %q", text, want)
		}
	}
}

func TestPDFCPUReadDocumentCorruptInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "garbage.pdf")
	if err := os.WriteFile(input, []byte("this is not a PDF"), 0644); err != nil {
		t.Fatal(err)
	}

	codec := &PDFCPUCodec{}
	_, err := codec.ReadDocument(input)
	if !errors.Is(err, ErrCodec) {
		t.Fatalf("got %v, want ErrCodec", err)
	}
	if !strings.Contains(err.Error(), input) {
		t.Errorf("error %q does not mention the file path", err)
	}
}
