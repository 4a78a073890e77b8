// Package highlight marks the source lines touched by findings so the
// rendering layer can show the original document with problem lines
// distinguished. This is pure presentation: no validation semantics.
package highlight

import (
	"regexp"
	"strings"

	"sepalint/internal/validation"
)

// Line is one line of the original document text.
type Line struct {
	Number  int    `json:"number"`
	Text    string `json:"text"`
	Flagged bool   `json:"flagged"`
}

// Mark splits the document into lines and flags every line containing an
// opening, self-closing, or closing form of a tag referenced by any
// finding. Sentinel tags (Unknown, System, XML) never match a document
// element and are skipped.
func Mark(data []byte, findings []validation.Finding) []Line {
	patterns := tagPatterns(findings)

	raw := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for i, text := range raw {
		flagged := false
		for _, p := range patterns {
			if p.MatchString(text) {
				flagged = true
				break
			}
		}
		lines = append(lines, Line{Number: i + 1, Text: text, Flagged: flagged})
	}
	return lines
}

func tagPatterns(findings []validation.Finding) []*regexp.Regexp {
	seen := map[string]bool{}
	var patterns []*regexp.Regexp
	for _, f := range findings {
		tag := f.Tag
		if tag == "" || tag == validation.TagUnknown || tag == validation.TagSystem || tag == validation.TagXML {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		// <Tag ...>, <Tag>, <Tag/> and </Tag>
		patterns = append(patterns, regexp.MustCompile(`<`+regexp.QuoteMeta(tag)+`[\s/>]|</`+regexp.QuoteMeta(tag)+`>`))
	}
	return patterns
}
