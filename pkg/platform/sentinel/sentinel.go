package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Lookup layers return these
// (optionally wrapped) so callers can translate them into API errors.
//
// These represent factual states about resources, not validation findings:
// - ErrNotFound: named resource (e.g. a bank profile) is not registered
// - ErrConflict: resource already exists under that name
//
// Document validation outcomes never travel as errors; they are findings.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
