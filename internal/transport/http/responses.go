package httptransport

import (
	"sepalint/internal/highlight"
	"sepalint/internal/projection"
	"sepalint/internal/validation"
	"sepalint/internal/validator"
)

// ValidateResponse is the HTTP response for POST /v1/validate.
type ValidateResponse struct {
	Profile  string               `json:"profile"`
	Valid    bool                 `json:"valid"`
	Findings []FindingResponse    `json:"findings"`
	Checks   ChecklistResponse    `json:"checks"`
	Payment  *projection.Payment  `json:"payment,omitempty"`
	Source   []SourceLineResponse `json:"source,omitempty"`
}

// FindingResponse is one validation finding in the response.
type FindingResponse struct {
	Severity string `json:"severity"`
	Tag      string `json:"tag"`
	Line     int    `json:"line"`
	Title    string `json:"title"`
	Message  string `json:"message"`
}

// CheckResponse is one checklist entry. Status is absent for checks that
// were never evaluated, so clients can tell "not run" from "failed".
type CheckResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status *bool  `json:"status,omitempty"`
}

// ChecklistResponse groups checklist entries by level.
type ChecklistResponse struct {
	Technical []CheckResponse `json:"technical"`
	Sepa      []CheckResponse `json:"sepa"`
	Bank      []CheckResponse `json:"bank"`
}

// SourceLineResponse is one annotated source line.
type SourceLineResponse struct {
	Number  int    `json:"number"`
	Text    string `json:"text"`
	Flagged bool   `json:"flagged"`
}

// ProfileListResponse is the HTTP response for GET /v1/profiles.
type ProfileListResponse struct {
	Profiles []validator.ProfileInfo `json:"profiles"`
}

// FromSession assembles the validate response from a completed session. The
// payment summary and annotated source are derived from the raw document so
// even partially valid uploads render something useful.
func FromSession(profileName string, data []byte, sess *validation.Session) *ValidateResponse {
	findings := sess.Findings()

	resp := &ValidateResponse{
		Profile:  profileName,
		Valid:    sess.Valid(),
		Findings: make([]FindingResponse, 0, len(findings)),
		Checks:   fromSummary(sess.Summary()),
		Payment:  projection.Build(data),
	}
	for _, f := range findings {
		resp.Findings = append(resp.Findings, FindingResponse{
			Severity: string(f.Severity),
			Tag:      f.Tag,
			Line:     f.Line,
			Title:    f.Title,
			Message:  f.Message,
		})
	}
	for _, line := range highlight.Mark(data, findings) {
		resp.Source = append(resp.Source, SourceLineResponse{
			Number:  line.Number,
			Text:    line.Text,
			Flagged: line.Flagged,
		})
	}
	return resp
}

func fromSummary(summary validation.Summary) ChecklistResponse {
	return ChecklistResponse{
		Technical: fromChecks(summary.Technical),
		Sepa:      fromChecks(summary.Sepa),
		Bank:      fromChecks(summary.Bank),
	}
}

func fromChecks(checks []validation.CheckStatus) []CheckResponse {
	out := make([]CheckResponse, 0, len(checks))
	for _, c := range checks {
		out = append(out, CheckResponse{ID: c.ID, Name: c.Name, Status: c.Status})
	}
	return out
}
