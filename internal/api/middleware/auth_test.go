package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/lifegame/internal/dependencies/mocks"
	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/services/auth"
	"github.com/mcoot/lifegame/internal/testutil"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()
	service, err := auth.New(mocks.NewMockClock(time.Now()), auth.Config{Secret: "test-secret"})
	require.NoError(t, err)
	return service
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(newAuthService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"FAILURE"`)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(newAuthService(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthAttachesSession(t *testing.T) {
	service := newAuthService(t)
	session, err := service.IssueSession(&model.Player{ID: "player-1", Username: "alice"})
	require.NoError(t, err)

	var got model.PlayerID
	handler := Auth(service)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = MustGetPlayerID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.PlayerID("player-1"), got)
}

func TestRecoveryWritesFailureBody(t *testing.T) {
	handler := Recovery(testutil.NopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "INTERNAL_ERROR")
}
