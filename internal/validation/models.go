// Package validation holds the finding ledger and checklist shared by the
// schema checker, the generic SEPA rules, and the bank profiles.
package validation

// Severity classifies how a finding affects the document.
type Severity string

const (
	// SeverityCritical means the document cannot be processed further
	// (not well-formed, or schema-invalid).
	SeverityCritical Severity = "CRITICAL"
	// SeverityError is a definite rule violation and fails the document.
	SeverityError Severity = "ERROR"
	// SeverityWarning is advisory and never fails the document.
	SeverityWarning Severity = "WARNING"
)

// Blocking reports whether findings of this severity fail the document.
func (s Severity) Blocking() bool {
	return s == SeverityCritical || s == SeverityError
}

// Sentinel tags used when no document element can be attributed.
const (
	TagUnknown = "Unknown"
	TagSystem  = "System"
	TagXML     = "XML"
)

// Finding is one validation result. It is self-contained once created and is
// never mutated or persisted.
type Finding struct {
	Severity Severity `json:"severity"`
	// Tag is the local name of the element the finding concerns, or one of
	// the sentinel tags.
	Tag string `json:"tag"`
	// Line is the 1-based source line, 0 when unresolvable.
	Line    int    `json:"line"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CheckLevel groups checklist entries for display.
type CheckLevel string

const (
	LevelTechnical CheckLevel = "technical"
	LevelSepa      CheckLevel = "sepa"
	LevelBank      CheckLevel = "bank"
)

// CheckDecl declares one named rule before any document is validated.
type CheckDecl struct {
	ID    string
	Name  string
	Level CheckLevel
}

// CheckStatus is one named rule's outcome for the whole document.
// Status is nil until the rule has been evaluated; bank-level entries stay
// nil when the active profile does not cover them.
type CheckStatus struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Level  CheckLevel `json:"level"`
	Status *bool      `json:"status"`
}

// Summary partitions the checklist by level, preserving declaration order
// within each group.
type Summary struct {
	Technical []CheckStatus `json:"technical"`
	Sepa      []CheckStatus `json:"sepa"`
	Bank      []CheckStatus `json:"bank"`
}
