package profile

import (
	"fmt"
	"strings"

	"sepalint/internal/document"
	"sepalint/internal/rules"
	"sepalint/internal/validation"
)

// HVB implements the HypoVereinsbank submission rules layered on top of the
// generic SEPA set.
type HVB struct{}

func (HVB) Name() string { return "hvb" }

func (HVB) Describe() (string, string) {
	return "HypoVereinsbank (HVB)", hvbDescription
}

func (HVB) Checks() []validation.CheckDecl {
	return []validation.CheckDecl{
		{ID: "hvb_no_slashes", Name: "HVB: No slashes", Level: validation.LevelBank},
		{ID: "hvb_urgp_uetr", Name: "HVB: URGP with UETR", Level: validation.LevelBank},
		{ID: "hvb_address_format", Name: "HVB: Address format", Level: validation.LevelBank},
	}
}

// hvbReferenceFields are the reference fields bound by the separator rule.
var hvbReferenceFields = []string{"MsgId", "PmtInfId", "EndToEndId"}

func (p HVB) ApplyBankRules(root *document.Element, sess *validation.Session) {
	p.checkSlashes(root, sess)
	p.checkInstantUETR(root, sess)
	p.checkAddressFormat(root, sess)
}

// checkSlashes rejects references that begin or end with a slash or contain
// a doubled slash. Interior single slashes are allowed.
func (HVB) checkSlashes(root *document.Element, sess *validation.Session) {
	ok := true
	for _, field := range hvbReferenceFields {
		for _, el := range root.Descendants(field) {
			text := el.Text()
			if text == "" {
				continue
			}
			if strings.HasPrefix(text, "/") || strings.HasSuffix(text, "/") || strings.Contains(text, "//") {
				ok = false
				sess.Add(el, validation.SeverityError, "HVB: slash rule",
					fmt.Sprintf("'%s' contains forbidden slashes (leading, trailing, or doubled)", text))
			}
		}
	}
	sess.SetCheck("hvb_no_slashes", ok)
}

// checkInstantUETR requires a UETR on every transaction inside an expedited
// (URGP) batch. Missing UETRs limit payment tracking, so the finding is
// advisory.
func (HVB) checkInstantUETR(root *document.Element, sess *validation.Session) {
	ok := true
	for _, pmt := range root.Descendants("PmtInf") {
		svc := pmt.FirstDescendant("SvcLvl")
		if svc == nil || svc.Child("Cd").Text() != rules.ServiceLevelInstant {
			continue
		}
		for _, tx := range pmt.Descendants("CdtTrfTxInf") {
			if tx.Path("PmtId", "UETR") == nil {
				ok = false
				sess.Add(tx, validation.SeverityWarning, "HVB: URGP without UETR",
					"expedited payment (URGP) without UETR - tracking is limited")
			}
		}
	}
	sess.SetCheck("hvb_urgp_uetr", ok)
}

// checkAddressFormat warns about unstructured address lines; HVB prefers
// structured address fields. When the document has no address lines at all
// the check stays "not applicable" instead of passing: absence of addresses
// says nothing about their format.
func (HVB) checkAddressFormat(root *document.Element, sess *validation.Session) {
	adrLines := root.Descendants("AdrLine")
	if len(adrLines) == 0 {
		return
	}
	for _, adr := range adrLines {
		sess.Add(adr, validation.SeverityWarning, "HVB: address format",
			"unstructured address (AdrLine) - structured address fields preferred")
	}
	sess.SetCheck("hvb_address_format", false)
}

const hvbDescription = `## HypoVereinsbank validation rules

### Technical requirements
- **pain.001.001.09** (SEPA credit transfer)
- **Character set:** SEPA-conformant (Latin subset)
- **Encoding:** UTF-8

### HVB-specific rules

#### 1. References
- No slashes at the beginning or end of a reference: ` + "`/ABC/`, `ABC/`" + `
- No doubled slashes: ` + "`ABC//DEF`" + `
- Allowed: ` + "`ABC/DEF/GHI`" + `
- Applies to: MsgId, PmtInfId, EndToEndId

#### 2. Expedited payments / SEPA Instant
- Service level: URGP
- UETR required: unique end-to-end transaction reference
- Without a UETR, payment tracking is limited

#### 3. Address format
- Structured addresses preferred (street, postal code, town)
- Unstructured AdrLine is accepted but not recommended

#### 4. Amount limits
- SEPA standard: max. 999,999,999.99 EUR
- SEPA Instant: max. 100,000 EUR
- Single payment: min. 0.01 EUR`
