// Package httptransport is the thin HTTP layer. It delegates to the
// validator service and keeps transport concerns out of the domain packages.
package httptransport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sepalint/internal/validation"
	"sepalint/internal/validator"
	"sepalint/pkg/apierrors"
	"sepalint/pkg/platform/httputil"
	"sepalint/pkg/platform/sentinel"
	"sepalint/pkg/requestcontext"
)

// Service defines the validation operations the transport layer consumes.
type Service interface {
	Validate(ctx context.Context, profileName string, data []byte) (*validation.Session, error)
	Profiles() []validator.ProfileInfo
	ProfileInfo(name string) (validator.ProfileInfo, error)
}

// Handler wires the validation endpoints to the validator service.
type Handler struct {
	service        Service
	logger         *slog.Logger
	maxBodyBytes   int64
	defaultProfile string
}

// New constructs the HTTP handler with its dependencies.
func New(service Service, logger *slog.Logger, maxBodyBytes int64, defaultProfile string) *Handler {
	return &Handler{
		service:        service,
		logger:         logger,
		maxBodyBytes:   maxBodyBytes,
		defaultProfile: defaultProfile,
	}
}

// Register mounts the validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/validate", h.handleValidate)
	r.Get("/v1/profiles", h.handleProfiles)
	r.Get("/v1/profiles/{name}", h.handleProfile)
}

// handleValidate handles POST /v1/validate requests. The request body is the
// raw pain.001 document; the profile is selected via the "profile" query
// parameter and falls back to the configured default.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteError(w, apierrors.New(apierrors.CodePayloadTooLarge, "document exceeds the upload limit"))
			return
		}
		h.logger.ErrorContext(ctx, "reading request body failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, apierrors.New(apierrors.CodeBadRequest, "could not read request body"))
		return
	}
	if len(data) == 0 {
		httputil.WriteError(w, apierrors.New(apierrors.CodeBadRequest, "request body is empty"))
		return
	}

	profileName := r.URL.Query().Get("profile")
	if profileName == "" {
		profileName = h.defaultProfile
	}

	sess, err := h.service.Validate(ctx, profileName, data)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, apierrors.New(apierrors.CodeNotFound, "unknown profile: "+profileName))
			return
		}
		h.logger.ErrorContext(ctx, "validation failed",
			"request_id", requestID,
			"profile", profileName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "validation request served",
		"request_id", requestID,
		"profile", profileName,
		"valid", sess.Valid(),
		"findings", len(sess.Findings()),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromSession(profileName, data, sess))
}

// handleProfiles handles GET /v1/profiles requests.
func (h *Handler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, ProfileListResponse{Profiles: h.service.Profiles()})
}

// handleProfile handles GET /v1/profiles/{name} requests.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	info, err := h.service.ProfileInfo(name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, apierrors.New(apierrors.CodeNotFound, "unknown profile: "+name))
			return
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}
