package rules

import (
	"fmt"
	"regexp"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	pkgstrings "sepalint/pkg/platform/strings"
)

// charsetFields are the free-text and reference fields restricted to the
// SEPA character set.
var charsetFields = []string{"Ustrd", "EndToEndId", "PmtInfId"}

// sepaCharset is the Latin subset permitted in SEPA text fields.
var sepaCharset = regexp.MustCompile(`^[a-zA-Z0-9/?:().,'+ -]*$`)

// CharsetRule flags characters outside the SEPA character set in designated
// text fields. Offending characters are deduplicated and reported with a
// short preview of the field value. Advisory only: most banks transliterate
// rather than reject.
type CharsetRule struct{}

func (CharsetRule) ID() string   { return "sepa_charset" }
func (CharsetRule) Name() string { return "SEPA character set" }

func (r CharsetRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, field := range charsetFields {
		for _, el := range root.Descendants(field) {
			text := el.Text()
			if text == "" || sepaCharset.MatchString(text) {
				continue
			}
			ok = false
			var invalid []rune
			for _, c := range text {
				if !sepaCharset.MatchString(string(c)) {
					invalid = append(invalid, c)
				}
			}
			sess.Add(el, validation.SeverityWarning, "SEPA character set",
				fmt.Sprintf("invalid characters: %s in '%s'",
					string(pkgstrings.DedupeRunes(invalid)), pkgstrings.Truncate(text, 30)))
		}
	}
	sess.SetCheck(r.ID(), ok)
}
