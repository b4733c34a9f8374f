package stamp

import (
	"fmt"
	"strings"
)

// Placeholder names recognized in label templates.
const (
	PlaceholderNumber     = "number"
	PlaceholderTotal      = "total"
	PlaceholderCopyNumber = "copy_number"
)

// substituteTemplate replaces {name} placeholders in tmpl with the entries
// of values. Every placeholder occurring in tmpl must name a key of values;
// keys that never occur are simply left out of the result. "{{" and "}}"
// are literal braces. An unterminated "{" or an unknown placeholder name
// fails with ErrTemplate carrying the offending template.
func substituteTemplate(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		if c == '{' {
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrTemplate, tmpl)
			}
			name := tmpl[i+1 : i+end]
			value, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: unknown placeholder {%s} in %q", ErrTemplate, name, tmpl)
			}
			b.WriteString(value)
			i += end + 1
			continue
		}
		if c == '}' && i+1 < len(tmpl) && tmpl[i+1] == '}' {
			b.WriteByte('}')
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

// validateTemplates checks both label templates of req against their
// recognized placeholder sets, so a bad template is rejected before any
// overlay is rendered.
func validateTemplates(req AnnotationRequest) error {
	if _, err := substituteTemplate(req.PageLabelTemplate, map[string]string{
		PlaceholderNumber: "0",
		PlaceholderTotal:  "0",
	}); err != nil {
		return err
	}
	_, err := substituteTemplate(req.CopyLabelTemplate, map[string]string{
		PlaceholderCopyNumber: "",
	})
	return err
}
