package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/lifegame/internal/api"
	"github.com/mcoot/lifegame/internal/api/apierr"
	"github.com/mcoot/lifegame/internal/api/handler"
	"github.com/mcoot/lifegame/internal/api/response"
	"github.com/mcoot/lifegame/internal/factory"
	"github.com/mcoot/lifegame/internal/model"
	"github.com/mcoot/lifegame/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		AuthService: app.AuthService,
		Controller:  app.Controller,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) raw(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) request(method, action string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	return ts.raw(method, "/api/v1/actions/"+action, buf.String(), token)
}

const registrationBody = `{"name":"Alice","age":"25","height":170,"city":"Paris","job":"Baker","username":"alice","password":"secret123"}`

func (ts *testServer) register(t *testing.T) response.EntryResponse {
	t.Helper()
	rr := ts.raw(http.MethodPost, "/api/v1/actions/createNewPlayer", registrationBody, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp response.EntryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var body apierr.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, apierr.StatusFailure, body.Status)
	return body
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.raw(http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

// Dispatcher table tests

func TestUnknownAction(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "danceAllNight", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNoSuchAction, decodeError(t, rr).Code)
}

func TestInternalActionsAreNotPermitted(t *testing.T) {
	ts := newTestServer(t)

	for _, name := range []string{"_getPlayerById", "_validatePlayer", "_"} {
		rr := ts.request(http.MethodGet, name, nil, "")
		assert.Equal(t, http.StatusForbidden, rr.Code, name)
		assert.Equal(t, apierr.CodeNotPermitted, decodeError(t, rr).Code)
	}
}

func TestWrongMethod(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "getFormForNewPlayer", map[string]string{}, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
	assert.Equal(t, apierr.CodeMethodNotAllowed, decodeError(t, rr).Code)
}

func TestPostBodyMustBeJSONObject(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{"", "not json", "[1,2]", "42"} {
		rr := ts.raw(http.MethodPost, "/api/v1/actions/createNewPlayer", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Equal(t, apierr.CodeInvalidFormat, decodeError(t, rr).Code)
	}
}

func TestSessionActionsRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, action := range []string{"getBasicDetailsForLogin", "getRelevantMenu", "getPlayerData"} {
		rr := ts.request(http.MethodGet, action, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, action)
	}
	rr := ts.request(http.MethodPost, "handleChoice", map[string]string{"choice": "SLEEP"}, "bogus")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// Registration tests

func TestGetFormForNewPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "getFormForNewPlayer", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.FormResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusSuccess, resp.Status)
	require.Len(t, resp.Questions, 7)
	assert.Equal(t, "name", resp.Questions[0].Name)
	assert.Equal(t, model.InputPositiveInt, resp.Questions[1].Type)
	assert.Equal(t, "password", resp.Questions[6].Name)
}

func TestValidateSingleInput(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "validateSingleInput", map[string]string{"givenInput": "42", "type": "POSITIVE_INT"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"SUCCESS"}`, rr.Body.String())

	rr = ts.request(http.MethodPost, "validateSingleInput", map[string]string{"givenInput": "-1", "type": "POSITIVE_INT"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, apierr.CodeInvalidInput, body.Code)
	assert.Contains(t, body.Message, "not positive")
}

func TestValidateSingleInputAcceptsNumbers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.raw(http.MethodPost, "/api/v1/actions/validateSingleInput", `{"givenInput":25,"type":"POSITIVE_INT"}`, "")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"status":"SUCCESS"}`, rr.Body.String())

	rr = ts.raw(http.MethodPost, "/api/v1/actions/validateSingleInput", `{"givenInput":-3,"type":"POSITIVE_INT"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = ts.raw(http.MethodPost, "/api/v1/actions/validateSingleInput", `{"givenInput":true,"type":"POSITIVE_INT"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateNewPlayer(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.register(t)
	assert.Equal(t, response.StatusSuccess, resp.Status)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "08:00", resp.Time)
	assert.NotEmpty(t, resp.PlayerID)
	assert.NotEmpty(t, resp.SessionToken)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, model.EventPlayerCreated, resp.Events[0].Type)
	assert.Equal(t, map[string]any{"username": "alice"}, resp.Events[0].Payload)
}

func TestCreateNewPlayerDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t)

	rr := ts.raw(http.MethodPost, "/api/v1/actions/createNewPlayer", registrationBody, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeUsernameTaken, decodeError(t, rr).Code)
}

func TestCreateNewPlayerReportsDoubleAnswer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.raw(http.MethodPost, "/api/v1/actions/createNewPlayer", `{"name":"Alice","name":"Bob"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, apierr.CodeDoubleAnswer, body.Code)
	assert.Equal(t, "name", body.Field)
}

func TestCreateNewPlayerReportsMissingAnswer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.raw(http.MethodPost, "/api/v1/actions/createNewPlayer", `{"name":"Alice","age":25}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, apierr.CodeMissingAnswer, body.Code)
	assert.Equal(t, "height", body.Field)
}

// Login tests

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	rr := ts.request(http.MethodPost, "login", map[string]string{"username": "alice", "password": "secret123"}, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.EntryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, registered.PlayerID, resp.PlayerID)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestLoginDistinguishesFailures(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t)

	rr := ts.request(http.MethodPost, "login", map[string]string{"username": "bob", "password": "secret123"}, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPost, "login", map[string]string{"username": "alice", "password": "wrong-pass"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeIncorrectPassword, decodeError(t, rr).Code)
}

// Session action tests

func TestGetBasicDetailsForLogin(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	rr := ts.request(http.MethodGet, "getBasicDetailsForLogin", nil, registered.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.Details
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, registered.PlayerID, resp.PlayerID)
	assert.Equal(t, "08:00", resp.Time)
}

func TestGetRelevantMenu(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	rr := ts.request(http.MethodGet, "getRelevantMenu", nil, registered.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"SUCCESS","options":[
		{"literal":"LEARN_COOKING","string":"Learn cooking"},
		{"literal":"LEARN_GUITAR","string":"Learn guitar"},
		{"literal":"PLAY_FOOTBALL","string":"Play football"},
		{"literal":"MEET_FRIENDS","string":"Meet friends"},
		{"literal":"READ_A_BOOK","string":"Read a book"}
	]}`, rr.Body.String())
}

func TestHandleChoice(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	rr := ts.request(http.MethodPost, "handleChoice", map[string]string{"choice": "MEET_FRIENDS"}, registered.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.ChoiceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "11:00", resp.Time)
	assert.Equal(t, 11, resp.PlayerData.TimeOfTheDay)
	assert.Equal(t, 1, resp.PlayerData.Skills.Get(model.SkillSocial))
	assert.False(t, resp.AgedUp)
	assert.Nil(t, resp.BonusSkill)

	require.Len(t, resp.Events, 1)
	assert.Equal(t, model.EventActivityDone, resp.Events[0].Type)
	assert.Equal(t, map[string]any{"activity": "MEET_FRIENDS", "time_of_the_day": float64(11)}, resp.Events[0].Payload)
}

func TestHandleChoiceReportsBirthdayAndBonus(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	var types [][]model.EventType
	var last response.ChoiceResponse
	for range 10 {
		rr := ts.request(http.MethodPost, "handleChoice", map[string]string{"choice": "SLEEP"}, registered.SessionToken)
		require.Equal(t, http.StatusOK, rr.Code)

		last = response.ChoiceResponse{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &last))
		var turn []model.EventType
		for _, e := range last.Events {
			turn = append(turn, e.Type)
		}
		types = append(types, turn)
	}

	assert.Equal(t, []model.EventType{model.EventActivityDone, model.EventBonusAwarded}, types[6])
	assert.Equal(t, []model.EventType{model.EventActivityDone, model.EventAgedUp}, types[9])
	assert.Equal(t, map[string]any{"new_age": float64(26), "cause": "SLEEP"}, last.Events[1].Payload)
	assert.True(t, last.AgedUp)
}

func TestHandleChoiceUnknownActivity(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	rr := ts.request(http.MethodPost, "handleChoice", map[string]string{"choice": "DANCE"}, registered.SessionToken)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeUnknownActivity, decodeError(t, rr).Code)
}

func TestReadingUntilMidnightLeavesOnlySleep(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t)

	for range 4 {
		rr := ts.request(http.MethodPost, "handleChoice", map[string]string{"choice": "READ_A_BOOK"}, registered.SessionToken)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ts.request(http.MethodGet, "getPlayerData", nil, registered.SessionToken)
	require.Equal(t, http.StatusOK, rr.Code)
	var data response.PlayerResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &data))
	assert.Equal(t, 24, data.PlayerData.TimeOfTheDay)
	assert.Equal(t, 4, data.PlayerData.Skills.Get(model.SkillStudy))

	rr = ts.request(http.MethodGet, "getRelevantMenu", nil, registered.SessionToken)
	assert.JSONEq(t, `{"status":"SUCCESS","options":[{"literal":"SLEEP","string":"Sleep"}]}`, rr.Body.String())
}

func TestDispatcherNames(t *testing.T) {
	ts := newTestServer(t)
	d := api.NewDispatcher(ts.app.AuthService,
		handler.NewPlayerHandler(ts.app.Controller),
		handler.NewGameHandler(ts.app.Controller),
	)

	assert.Equal(t, []string{
		"createNewPlayer",
		"getBasicDetailsForLogin",
		"getFormForNewPlayer",
		"getPlayerData",
		"getRelevantMenu",
		"handleChoice",
		"login",
		"validateSingleInput",
	}, d.Names())
}
