package rules

import (
	"fmt"
	"strconv"

	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// AmountRule requires every instructed amount to parse as a number and to be
// strictly positive. Unparsable values are reported here rather than aborting
// the rule batch.
type AmountRule struct{}

func (AmountRule) ID() string   { return "amount_positive" }
func (AmountRule) Name() string { return "Amounts > 0" }

func (r AmountRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, amt := range root.Descendants("InstdAmt") {
		value, err := strconv.ParseFloat(amt.Text(), 64)
		if err != nil {
			ok = false
			sess.Add(amt, validation.SeverityError, "Invalid amount",
				fmt.Sprintf("amount is not a number: %s", amt.Text()))
			continue
		}
		if value <= 0 {
			ok = false
			sess.Add(amt, validation.SeverityError, "Invalid amount",
				fmt.Sprintf("amount must be greater than zero, found: %g", value))
		}
	}
	sess.SetCheck(r.ID(), ok)
}
