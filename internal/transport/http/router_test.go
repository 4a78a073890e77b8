package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sepalint/internal/transport/http/mocks"
	"sepalint/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := New(mocks.NewMockService(ctrl), logger, testMaxBody, "base")
	return NewRouter(handler, logger)
}

func TestRouterHealthz(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRouterMetrics(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
