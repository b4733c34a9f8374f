// pdfstamp - controlled copy PDF annotator
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/novvoo/go-pdfstamp/pkg/stamp"
)

const version = "0.1.0"

var (
	copyNumber        = flag.String("copy-number", "", "identifier displayed on every page (required)")
	watermarkText     = flag.String("watermark-text", stamp.DefaultWatermarkText, "text used as a diagonal watermark")
	copyLabelTemplate = flag.String("copy-label-template", stamp.DefaultCopyLabelTemplate, "template for the copy number label")
	pageLabelTemplate = flag.String("page-label-template", stamp.DefaultPageLabelTemplate, "template for the page numbering label")
	startNumber       = flag.Int("start-number", 1, "number used for the first processed page")
	totalPages        = flag.Int("total-pages", 0, "explicit total used in the page label")
	maxPages          = flag.Int("max-pages", 0, "limit how many pages from the start of the PDF are processed")
	opaqueWatermark   = flag.Bool("opaque-watermark", false, "pre-blended solid gray watermark instead of transparency")
	verbose           = flag.Bool("verbose", false, "print processing details to stderr")
	printVer          = flag.Bool("v", false, "print version information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdfstamp version %s\n", version)
	fmt.Fprintf(os.Stderr, "Usage: pdfstamp [options] <input-PDF-file> <output-PDF-file>\n")
	fmt.Fprintf(os.Stderr, "\nAdds page numbers and a Controlled Copy watermark to a PDF file.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *printVer {
		fmt.Println("pdfstamp version " + version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	if *copyNumber == "" {
		fmt.Fprintln(os.Stderr, "Error: -copy-number is required")
		os.Exit(1)
	}
	if *verbose {
		stamp.SetDebugOutput(os.Stderr)
	}

	req := stamp.AnnotationRequest{
		InputPath:         args[0],
		OutputPath:        args[1],
		CopyNumber:        *copyNumber,
		WatermarkText:     *watermarkText,
		CopyLabelTemplate: *copyLabelTemplate,
		PageLabelTemplate: *pageLabelTemplate,
		StartNumber:       *startNumber,
		TotalPages:        *totalPages,
		MaxPages:          *maxPages,
	}
	codec := &stamp.PDFCPUCodec{OpaqueWatermark: *opaqueWatermark}

	if err := stamp.AnnotateFile(codec, req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
