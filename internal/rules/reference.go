package rules

import (
	"fmt"
	"unicode/utf8"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	pkgstrings "sepalint/pkg/platform/strings"
)

// MaxReferenceLength is the SEPA ceiling for reference fields.
const MaxReferenceLength = 35

// referenceFields are the identifier fields bound by the ceiling.
var referenceFields = []string{"EndToEndId", "PmtInfId", "MsgId"}

// ReferenceLengthRule enforces the 35-character ceiling on reference and
// identifier fields.
type ReferenceLengthRule struct{}

func (ReferenceLengthRule) ID() string   { return "reference_length" }
func (ReferenceLengthRule) Name() string { return "Reference lengths" }

func (r ReferenceLengthRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, field := range referenceFields {
		for _, el := range root.Descendants(field) {
			text := el.Text()
			// Character count, not bytes: multibyte references are only a
			// charset warning, never a length error.
			length := utf8.RuneCountInString(text)
			if length <= MaxReferenceLength {
				continue
			}
			ok = false
			sess.Add(el, validation.SeverityError, "Reference too long",
				fmt.Sprintf("max. %d characters allowed, found: %d ('%s')",
					MaxReferenceLength, length, pkgstrings.Truncate(text, 40)))
		}
	}
	sess.SetCheck(r.ID(), ok)
}
