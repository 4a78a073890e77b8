package rules

import (
	"fmt"

	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// PermittedCurrency is the only currency SEPA credit transfers allow.
const PermittedCurrency = "EUR"

// CurrencyRule requires every instructed amount to carry the permitted
// currency code.
type CurrencyRule struct{}

func (CurrencyRule) ID() string   { return "sepa_currency" }
func (CurrencyRule) Name() string { return "SEPA currency (EUR)" }

func (r CurrencyRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, amt := range root.Descendants("InstdAmt") {
		ccy, present := amt.Attr("Ccy")
		if !present {
			// Missing Ccy is a schema concern, not a currency violation.
			continue
		}
		if ccy != PermittedCurrency {
			ok = false
			sess.Add(amt, validation.SeverityError, "SEPA currency",
				fmt.Sprintf("SEPA allows %s only, found: %s", PermittedCurrency, ccy))
		}
	}
	sess.SetCheck(r.ID(), ok)
}
