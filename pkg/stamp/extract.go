package stamp

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ExtractPageText returns the text strings drawn by a page's content
// streams, including streams of form XObjects referenced by the page's
// resources (merged overlays end up there). pageNum is 1-based. The scan
// only understands the Tj, ', " and TJ operators with literal strings,
// which is all the annotation layer ever emits.
func ExtractPageText(path string, pageNum int) (string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: parse %s: %v", ErrCodec, path, err)
	}

	pageDict, _, _, err := ctx.PageDict(pageNum, false)
	if err != nil {
		return "", fmt.Errorf("%w: page %d of %s: %v", ErrCodec, pageNum, path, err)
	}

	var b strings.Builder

	if contents, found := pageDict.Find("Contents"); found && contents != nil {
		if err := appendStreamText(ctx, contents, &b); err != nil {
			return "", fmt.Errorf("%w: contents of page %d of %s: %v", ErrCodec, pageNum, path, err)
		}
	}

	if err := appendFormXObjectText(ctx, pageDict, &b); err != nil {
		return "", fmt.Errorf("%w: xobjects of page %d of %s: %v", ErrCodec, pageNum, path, err)
	}

	return b.String(), nil
}

// appendStreamText decodes the content object (a stream or an array of
// streams) and appends its extracted text to b.
func appendStreamText(ctx *model.Context, obj types.Object, b *strings.Builder) error {
	if arr, ok := obj.(types.Array); ok {
		for _, item := range arr {
			if err := appendStreamText(ctx, item, b); err != nil {
				return err
			}
		}
		return nil
	}
	sd, _, err := ctx.DereferenceStreamDict(obj)
	if err != nil || sd == nil {
		return err
	}
	if err := sd.Decode(); err != nil {
		return err
	}
	b.WriteString(extractTextFromStream(string(sd.Content)))
	return nil
}

// appendFormXObjectText walks the page's XObject resources and extracts
// text from every form found there.
func appendFormXObjectText(ctx *model.Context, pageDict types.Dict, b *strings.Builder) error {
	resObj, found := pageDict.Find("Resources")
	if !found || resObj == nil {
		return nil
	}
	resources, err := derefDict(ctx, resObj)
	if err != nil || resources == nil {
		return err
	}
	xoObj, found := resources.Find("XObject")
	if !found || xoObj == nil {
		return nil
	}
	xobjects, err := derefDict(ctx, xoObj)
	if err != nil || xobjects == nil {
		return err
	}

	for _, v := range xobjects {
		sd, _, err := ctx.DereferenceStreamDict(v)
		if err != nil || sd == nil {
			continue
		}
		if sub, found := sd.Dict.Find("Subtype"); found {
			if name, ok := sub.(types.Name); !ok || string(name) != "Form" {
				continue
			}
		}
		if err := sd.Decode(); err != nil {
			continue
		}
		b.WriteString(extractTextFromStream(string(sd.Content)))
	}
	return nil
}

func derefDict(ctx *model.Context, obj types.Object) (types.Dict, error) {
	o, err := ctx.Dereference(obj)
	if err != nil {
		return nil, err
	}
	d, _ := o.(types.Dict)
	return d, nil
}

// extractTextFromStream pulls the string operands of text-showing
// operators out of a decoded content stream.
func extractTextFromStream(stream string) string {
	var result strings.Builder

	for i := 0; i < len(stream); {
		switch stream[i] {
		case '(':
			text, next := readLiteralString(stream, i)
			if op := peekOperator(stream, next); op == "Tj" || op == "'" || op == "\"" {
				result.WriteString(text)
			}
			i = next
		case '[':
			// TJ array: strings interleaved with positioning numbers.
			var parts []string
			j := i + 1
			for j < len(stream) && stream[j] != ']' {
				if stream[j] == '(' {
					text, next := readLiteralString(stream, j)
					parts = append(parts, text)
					j = next
					continue
				}
				j++
			}
			if peekOperator(stream, j+1) == "TJ" {
				for _, p := range parts {
					result.WriteString(p)
				}
			}
			i = j + 1
		default:
			i++
		}
	}
	return result.String()
}

// readLiteralString reads a parenthesized PDF string starting at the '(' at
// position i, resolving escapes, and returns the text plus the position
// just past the closing ')'.
func readLiteralString(stream string, i int) (string, int) {
	var b strings.Builder
	depth := 1
	i++
	for i < len(stream) && depth > 0 {
		c := stream[i]
		if c == '\\' && i+1 < len(stream) {
			switch stream[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			default:
				b.WriteByte(stream[i+1])
			}
			i += 2
			continue
		}
		if c == '(' {
			depth++
		} else if c == ')' {
			depth--
			if depth == 0 {
				i++
				break
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), i
}

// peekOperator returns the operator token following position i, skipping
// whitespace.
func peekOperator(stream string, i int) string {
	if i >= len(stream) {
		return ""
	}
	for i < len(stream) && (stream[i] == ' ' || stream[i] == '\t' || stream[i] == '\r' || stream[i] == '\n') {
		i++
	}
	start := i
	for i < len(stream) && !strings.ContainsAny(string(stream[i]), " \t\r\n()[]<>/") {
		i++
	}
	return stream[start:i]
}
