package rules

import (
	"fmt"
	"strconv"

	"sepalint/internal/document"
	"sepalint/internal/validation"
	pkgstrings "sepalint/pkg/platform/strings"
)

// InstantCeiling is the maximum instructed amount inside an expedited
// (URGP) batch. Exactly the ceiling is still allowed.
const InstantCeiling = 100_000.0

// InstantLimitRule enforces the tiered amount ceiling: within any payment
// batch whose service level marks it as instant, every instructed amount
// must stay at or below the ceiling. Unparsable amounts are left to
// AmountRule; this rule only judges amounts it can read.
type InstantLimitRule struct{}

func (InstantLimitRule) ID() string   { return "amount_limits" }
func (InstantLimitRule) Name() string { return "Amount limits" }

func (r InstantLimitRule) Apply(root *document.Element, sess *validation.Session) {
	ok := true
	for _, pmt := range root.Descendants("PmtInf") {
		svc := pmt.FirstDescendant("SvcLvl")
		if svc == nil || svc.Child("Cd").Text() != ServiceLevelInstant {
			continue
		}
		for _, amt := range pmt.Descendants("InstdAmt") {
			value, err := strconv.ParseFloat(amt.Text(), 64)
			if err != nil {
				continue
			}
			if value > InstantCeiling {
				ok = false
				sess.Add(amt, validation.SeverityError, "SEPA Instant limit",
					fmt.Sprintf("SEPA Instant allows max. %s EUR, found: %s EUR",
						pkgstrings.GroupThousands(strconv.FormatFloat(InstantCeiling, 'f', 2, 64)),
						pkgstrings.GroupThousands(strconv.FormatFloat(value, 'f', 2, 64))))
			}
		}
	}
	sess.SetCheck(r.ID(), ok)
}
