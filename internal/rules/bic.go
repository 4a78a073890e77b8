package rules

import (
	"fmt"
	"strings"

	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// BICRule checks the shape of every BIC: 8 or 11 characters, six letters
// (bank and country code), then an alphanumeric location code, then an
// optional alphanumeric branch code. BIC problems are advisory only; within
// SEPA the IBAN alone routes the payment.
type BICRule struct{}

func (BICRule) ID() string   { return "bic_format" }
func (BICRule) Name() string { return "BIC format" }

func (r BICRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, el := range root.Descendants("BICFI") {
		bic := el.Text()
		if !validBIC(bic) {
			ok = false
			sess.Add(el, validation.SeverityWarning, "BIC format",
				fmt.Sprintf("invalid BIC format: %s", bic))
		}
	}
	sess.SetCheck(r.ID(), ok)
}

func validBIC(raw string) bool {
	bic := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))

	if len(bic) != 8 && len(bic) != 11 {
		return false
	}
	if !isAlpha(bic[:6]) {
		return false
	}
	if !isAlnum(bic[6:8]) {
		return false
	}
	if len(bic) == 11 && !isAlnum(bic[8:11]) {
		return false
	}
	return true
}
