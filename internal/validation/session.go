package validation

import (
	"sepalint/internal/document"
)

// Session collects the findings and checklist for a single validate call.
// A fresh Session is created per document, so no reset discipline and no
// locking is needed; concurrent validations simply use separate sessions.
type Session struct {
	findings []Finding
	checks   map[string]*CheckStatus
	order    []string
}

// NewSession declares the full check set up front. Every declared check gets
// exactly one entry whose status starts as "not evaluated".
func NewSession(decls ...[]CheckDecl) *Session {
	s := &Session{checks: make(map[string]*CheckStatus)}
	for _, group := range decls {
		for _, d := range group {
			if _, ok := s.checks[d.ID]; ok {
				continue
			}
			s.checks[d.ID] = &CheckStatus{ID: d.ID, Name: d.Name, Level: d.Level}
			s.order = append(s.order, d.ID)
		}
	}
	return s
}

// Add appends a finding attributed to a document element. Tag and line fall
// back to the Unknown/0 sentinels when no element context exists.
func (s *Session) Add(el *document.Element, severity Severity, title, message string) {
	tag := TagUnknown
	line := 0
	if el != nil {
		tag = el.Local
		line = el.Line
	}
	s.findings = append(s.findings, Finding{
		Severity: severity,
		Tag:      tag,
		Line:     line,
		Title:    title,
		Message:  message,
	})
}

// AddAt appends a finding with an explicit tag and line, used for schema
// violations and the XML/System sentinels.
func (s *Session) AddAt(tag string, line int, severity Severity, title, message string) {
	if tag == "" {
		tag = TagUnknown
	}
	if line < 0 {
		line = 0
	}
	s.findings = append(s.findings, Finding{
		Severity: severity,
		Tag:      tag,
		Line:     line,
		Title:    title,
		Message:  message,
	})
}

// SetCheck records a declared rule's outcome. A status only moves from
// "not evaluated" to pass/fail; undeclared IDs are ignored rather than
// invented mid-run.
func (s *Session) SetCheck(id string, ok bool) {
	if c, exists := s.checks[id]; exists {
		v := ok
		c.Status = &v
	}
}

// Findings returns the ledger in accumulation order.
func (s *Session) Findings() []Finding {
	return s.findings
}

// Check returns the current status entry for a rule ID.
func (s *Session) Check(id string) (CheckStatus, bool) {
	if c, ok := s.checks[id]; ok {
		return *c, true
	}
	return CheckStatus{}, false
}

// Summary groups all checklist entries by level in declaration order.
func (s *Session) Summary() Summary {
	var sum Summary
	for _, id := range s.order {
		c := *s.checks[id]
		switch c.Level {
		case LevelTechnical:
			sum.Technical = append(sum.Technical, c)
		case LevelSepa:
			sum.Sepa = append(sum.Sepa, c)
		case LevelBank:
			sum.Bank = append(sum.Bank, c)
		}
	}
	return sum
}

// Valid reports the overall result: no CRITICAL or ERROR findings.
// Warnings never fail the document.
func (s *Session) Valid() bool {
	for _, f := range s.findings {
		if f.Severity.Blocking() {
			return false
		}
	}
	return true
}
