package rules

import (
	"fmt"
	"strings"

	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// IBANRule checks the structural shape of every IBAN in the document:
// overall length 15-34, two-letter country code, two check digits, and the
// fixed national length for German accounts. No checksum arithmetic; the
// shape check is what catches transposed or truncated pastes in practice.
type IBANRule struct{}

func (IBANRule) ID() string   { return "iban_format" }
func (IBANRule) Name() string { return "IBAN format" }

func (r IBANRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, el := range root.Descendants("IBAN") {
		iban := el.Text()
		if !validIBAN(iban) {
			ok = false
			sess.Add(el, validation.SeverityError, "IBAN format",
				fmt.Sprintf("invalid IBAN format: %s", iban))
		}
	}
	sess.SetCheck(r.ID(), ok)
}

// validIBAN normalizes whitespace and case before checking the shape.
func validIBAN(raw string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(raw, " ", ""))

	if len(iban) < 15 || len(iban) > 34 {
		return false
	}
	if !isAlpha(iban[:2]) {
		return false
	}
	if !isDigits(iban[2:4]) {
		return false
	}
	// German IBANs are exactly 22 characters.
	if strings.HasPrefix(iban, "DE") && len(iban) != 22 {
		return false
	}
	return true
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return len(s) > 0
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return len(s) > 0
}
