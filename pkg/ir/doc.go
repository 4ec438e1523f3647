package ir

import "strings"

// RenderDoc joins doc-comment lines into a Markdown string with paragraph
// semantics: consecutive non-blank lines are joined with a single space
// (matching Markdown's "soft wrap" within a paragraph), and a blank line
// starts a new paragraph. This mirrors the original_source `mabo-doc`
// crate's doc-comment-to-Markdown behaviour (spec.md's own documentation
// renderer templates stay out of scope; this is only the joining rule the
// renderer would need).
func RenderDoc(lines []string) string {
	var (
		b          strings.Builder
		paragraph  []string
		paragraphs []string
	)

	flush := func() {
		if len(paragraph) > 0 {
			paragraphs = append(paragraphs, strings.Join(paragraph, " "))
			paragraph = paragraph[:0]
		}
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		paragraph = append(paragraph, strings.TrimSpace(line))
	}

	flush()

	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}

		b.WriteString(p)
	}

	return b.String()
}
