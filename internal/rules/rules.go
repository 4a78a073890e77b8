// Package rules implements the generic SEPA rule battery applied to every
// schema-valid pain.001 document regardless of institution. Each rule scans
// the whole tree independently, appends zero or more findings, and records
// exactly one checklist outcome. Rules never short-circuit each other.
package rules

import (
	"sepalint/internal/document"
	"sepalint/internal/validation"
)

// Rule is one independently evaluated SEPA convention.
type Rule interface {
	// ID is the stable checklist key.
	ID() string
	// Name is the human checklist label.
	Name() string
	// Apply scans the document and records findings plus the rule's outcome.
	Apply(root *document.Element, sess *validation.Session)
}

// GenericSet returns the cross-bank rule battery in its fixed evaluation
// order. Order is part of the output contract: findings must be
// deterministic across runs.
func GenericSet() []Rule {
	return []Rule{
		CurrencyRule{},
		IBANRule{},
		BICRule{},
		AmountRule{},
		CharsetRule{},
		ReferenceLengthRule{},
		ServiceLevelRule{},
		InstantLimitRule{},
	}
}

// Decls returns the checklist declarations for a rule set, used to size the
// session before any evaluation happens.
func Decls(set []Rule) []validation.CheckDecl {
	decls := make([]validation.CheckDecl, 0, len(set))
	for _, r := range set {
		decls = append(decls, validation.CheckDecl{ID: r.ID(), Name: r.Name(), Level: validation.LevelSepa})
	}
	return decls
}
