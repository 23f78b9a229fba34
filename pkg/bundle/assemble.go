// File: pkg/bundle/assemble.go
package bundle

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is ISO-8601 local time at second precision.
const TimestampLayout = "2006-01-02T15:04:05"

// Header carries the document-level fields written before any section.
type Header struct {
	Title       string
	Language    string
	Root        string
	GeneratedAt time.Time
}

// Section is the annotated content of one present file.
type Section struct {
	Rel       string
	Annotated string
}

// Assemble builds the ordered document fragments: title, generation
// metadata, the missing files report when missing is non-empty, and one
// fenced section per entry of sections in the order given.
func Assemble(h Header, missing []string, sections []Section) []string {
	parts := make([]string, 0, 3+len(missing)+2+4*len(sections))
	parts = append(parts,
		fmt.Sprintf("# %s\n", h.Title),
		fmt.Sprintf("- Generated: %s\n", h.GeneratedAt.Format(TimestampLayout)),
		fmt.Sprintf("- Project root: `%s`\n", h.Root),
	)

	if len(missing) > 0 {
		parts = append(parts, "\n## Missing files (skipped)\n")
		for _, m := range missing {
			parts = append(parts, fmt.Sprintf("- `%s`\n", m))
		}
		parts = append(parts, "\n---\n")
	}

	for _, s := range sections {
		parts = append(parts,
			fmt.Sprintf("\n---\n\n## `%s`\n", s.Rel),
			fmt.Sprintf("```%s\n", h.Language),
		)
		body := s.Annotated
		if body != "" && !strings.HasSuffix(body, "\n") {
			// Keep the closing fence on its own line.
			body += "\n"
		}
		parts = append(parts, body, "```\n")
	}
	return parts
}
