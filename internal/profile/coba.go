package profile

import (
	"fmt"
	"unicode/utf8"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	pkgstrings "sepalint/pkg/platform/strings"
)

// cobaIDCeiling is Commerzbank's stricter batch reference ceiling. The
// generic SEPA ceiling is 35; CoBa truncates anything beyond 30 in its
// booking systems, so longer IDs are rejected up front.
const cobaIDCeiling = 30

// CoBa implements the Commerzbank submission rules. Profile findings are
// additive to the generic set: the generic 35-character rule still runs, and
// above 35 characters both findings fire.
type CoBa struct{}

func (CoBa) Name() string { return "coba" }

func (CoBa) Describe() (string, string) {
	return "Commerzbank (CoBa)", cobaDescription
}

func (CoBa) Checks() []validation.CheckDecl {
	return []validation.CheckDecl{
		{ID: "coba_id_length", Name: "CoBa: Batch reference length", Level: validation.LevelBank},
	}
}

func (CoBa) ApplyBankRules(root *document.Element, sess *validation.Session) {
	ok := true
	for _, el := range root.Descendants("PmtInfId") {
		text := el.Text()
		length := utf8.RuneCountInString(text)
		if length <= cobaIDCeiling {
			continue
		}
		ok = false
		sess.Add(el, validation.SeverityError, "CoBa: batch reference too long",
			fmt.Sprintf("Commerzbank allows max. %d characters, found: %d ('%s')",
				cobaIDCeiling, length, pkgstrings.Truncate(text, 40)))
	}
	sess.SetCheck("coba_id_length", ok)
}

const cobaDescription = `## Commerzbank validation rules

### Status
In development - institution-specific rules are added incrementally.

### Active rules
- Batch references (PmtInfId) are limited to 30 characters (stricter than
  the generic SEPA ceiling of 35; longer IDs are truncated by downstream
  booking systems).

### Planned rules
- Extended country code checks for foreign payments
- Reference formats
- Remittance information rules
- Amount limits`
