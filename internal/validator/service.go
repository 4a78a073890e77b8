// Package validator runs the staged validation pipeline: well-formedness,
// schema conformance, generic SEPA rules, then profile-specific bank rules.
package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sepalint/internal/document"
	"sepalint/internal/profile"
	"sepalint/internal/rules"
	"sepalint/internal/schema"
	"sepalint/internal/validation"
	"sepalint/internal/validator/metrics"
)

// technicalChecks are the pipeline's own checklist entries, declared ahead
// of the generic and bank-level rules.
var technicalChecks = []validation.CheckDecl{
	{ID: "xml_wellformed", Name: "XML well-formed", Level: validation.LevelTechnical},
	{ID: "xsd_valid", Name: "Schema conformance", Level: validation.LevelTechnical},
}

// ProfileInfo describes one registered profile for listings.
type ProfileInfo struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service validates single documents end to end. The compiled schema is
// shared read-only; each Validate call owns its session, so concurrent
// callers need no coordination.
type Service struct {
	schema   *schema.Schema
	registry *profile.Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the validation service.
func New(sch *schema.Schema, registry *profile.Registry, opts ...Option) (*Service, error) {
	if sch == nil {
		return nil, fmt.Errorf("schema is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("profile registry is required")
	}

	svc := &Service{schema: sch, registry: registry}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Profiles lists the registered profiles for display.
func (s *Service) Profiles() []ProfileInfo {
	var out []ProfileInfo
	for _, name := range s.registry.Names() {
		p, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		title, desc := p.Describe()
		out = append(out, ProfileInfo{Key: name, Title: title, Description: desc})
	}
	return out
}

// ProfileInfo returns the display info for one profile.
func (s *Service) ProfileInfo(name string) (ProfileInfo, error) {
	p, err := s.registry.Get(name)
	if err != nil {
		return ProfileInfo{}, err
	}
	title, desc := p.Describe()
	return ProfileInfo{Key: name, Title: title, Description: desc}, nil
}

// Validate runs the full pipeline for one document under the named profile
// and returns the completed session. An error is returned only for caller
// mistakes (unknown profile); document problems are findings, not errors.
//
// Stage gating: an unparsable document aborts after a single CRITICAL
// finding; a schema-invalid document skips both the generic and the bank
// rules, because rule evaluation against a nonconforming tree is undefined.
func (s *Service) Validate(ctx context.Context, profileName string, data []byte) (*validation.Session, error) {
	prof, err := s.registry.Get(profileName)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	generic := rules.GenericSet()
	sess := validation.NewSession(technicalChecks, rules.Decls(generic), prof.Checks())

	root, parseErr := document.Parse(data)
	if parseErr != nil {
		sess.SetCheck("xml_wellformed", false)
		sess.AddAt(validation.TagXML, 0, validation.SeverityCritical,
			"XML parse error", fmt.Sprintf("document is not well-formed: %v", parseErr))
		s.finish(ctx, profileName, sess, start)
		return sess, nil
	}
	sess.SetCheck("xml_wellformed", true)

	violations := s.schema.Check(root)
	if len(violations) > 0 {
		sess.SetCheck("xsd_valid", false)
		for _, v := range violations {
			tag, msg := schema.Translate(v)
			sess.AddAt(tag, v.Line, validation.SeverityCritical, "Schema error", msg)
		}
		s.finish(ctx, profileName, sess, start)
		return sess, nil
	}
	sess.SetCheck("xsd_valid", true)

	for _, rule := range generic {
		rule.Apply(root, sess)
	}

	// Bank rules run regardless of the generic outcome; an EUR violation
	// does not make the slash rule any less decidable.
	prof.ApplyBankRules(root, sess)

	s.finish(ctx, profileName, sess, start)
	return sess, nil
}

func (s *Service) finish(ctx context.Context, profileName string, sess *validation.Session, start time.Time) {
	valid := sess.Valid()
	s.metrics.IncrementValidation(profileName, valid)
	for _, f := range sess.Findings() {
		s.metrics.IncrementFinding(string(f.Severity))
	}
	s.metrics.ObserveValidateLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "document validated",
			"profile", profileName,
			"valid", valid,
			"findings", len(sess.Findings()),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
