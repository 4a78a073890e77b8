package profile

import (
	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// Base is the profile with no institution specialization: generic SEPA
// validation only. Its bank-level checklist stays empty, which the UI
// renders as "not applicable".
type Base struct{}

func (Base) Name() string { return "base" }

func (Base) Describe() (string, string) {
	return "Base", baseDescription
}

func (Base) Checks() []validation.CheckDecl { return nil }

func (Base) ApplyBankRules(root *document.Element, sess *validation.Session) {}

const baseDescription = `## Standard ISO 20022 validation

Validates pain.001.001.09 documents against the message schema and the
generic SEPA conventions (currency, character set, IBAN/BIC shape, amounts,
reference lengths, service levels, instant payment limits).

No institution-specific rules are applied.`
