package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/apierr"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/response"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/factory"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/testutil"
)

const adminID = 999

// testServer bundles the router with its backing app
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:     testutil.NopLogger(),
		Controller: app.Controller,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

type principal struct {
	id       int64
	username string
	name     string
}

func (ts *testServer) request(method, path string, body any, p *principal) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if p != nil {
		req.Header.Set("X-Player-ID", fmt.Sprintf("%d", p.id))
		if p.username != "" {
			req.Header.Set("X-Player-Username", p.username)
		}
		if p.name != "" {
			req.Header.Set("X-Player-Name", p.name)
		}
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestMissingPrincipalRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/enroll", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, apierr.CodeUnauthorized, errorCode(t, rr))
}

func TestInvalidPrincipalRejected(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enroll", bytes.NewBufferString("{}"))
	req.Header.Set("X-Player-ID", "not-a-number")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestEnroll(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/enroll", nil, &principal{id: 1, username: "alice", name: "Alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.EnrollResponse](t, rr)
	assert.Equal(t, int64(1), resp.Player.ID)
	assert.Equal(t, "alice", resp.Player.Username)
	assert.Nil(t, resp.Player.ReferredBy)
	assert.Equal(t, 5, resp.Terms.TableCapacity)
	assert.Equal(t, 5, resp.Terms.BuyIn)
	assert.Equal(t, 20, resp.Terms.WinPrize)
	assert.Equal(t, "$MichaelThornton40", resp.Terms.CashTag)
}

func TestEnrollWithReferralToken(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"referral_token": "promo_42"}
	rr := ts.request(http.MethodPost, "/api/v1/enroll", body, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.EnrollResponse](t, rr)
	require.NotNil(t, resp.Player.ReferredBy)
	assert.Equal(t, int64(42), *resp.Player.ReferredBy)
}

func TestJoinAndFillTable(t *testing.T) {
	ts := newTestServer(t)

	for i := int64(1); i <= 4; i++ {
		rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: i, name: fmt.Sprintf("P%d", i)})
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[response.JoinResponse](t, rr)
		assert.Equal(t, "player_joined", resp.Outcome)
		assert.Equal(t, int64(1), resp.TableID)
		assert.Equal(t, int(i), resp.Seated)
	}

	rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 5, name: "P5"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.JoinResponse](t, rr)
	assert.Equal(t, "table_filled", resp.Outcome)
	assert.Equal(t, 5, resp.Seated)
	assert.Len(t, resp.PlayerNames, 5)
}

func TestJoinTwiceConflicts(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 1, username: "alice"})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeDuplicateEnrollment, errorCode(t, rr))
}

func TestStatus(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/me/status", nil, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.StatusResponse](t, rr)
	assert.Equal(t, int64(1), resp.Player.ID)
	assert.Equal(t, 1, resp.Player.JoinedTables)
	assert.Nil(t, resp.Promoter)
}

func TestPromoterLink(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/promoters/me", nil, &principal{id: 7, username: "bob", name: "Bob"})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.PromoterLinkResponse](t, rr)
	assert.Equal(t, "promo_7", resp.ReferralToken)
	assert.Equal(t, "promo_7", resp.Promoter.PromoCode)
	assert.Equal(t, "$MichaelThornton40", resp.CashTag)
}

func TestAdminRoutesForbiddenForPlayers(t *testing.T) {
	ts := newTestServer(t)
	player := &principal{id: 1, username: "alice"}

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/tables"},
		{http.MethodPost, "/api/v1/tables/1/winner"},
		{http.MethodGet, "/api/v1/promoters/balances"},
	} {
		rr := ts.request(route.method, route.path, nil, player)
		assert.Equal(t, http.StatusForbidden, rr.Code, "%s %s", route.method, route.path)
		assert.Equal(t, apierr.CodeForbidden, errorCode(t, rr))
	}
}

func TestListTables(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/tables", nil, &principal{id: adminID})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.TableListResponse](t, rr)
	require.Len(t, resp.Tables, 1)
	assert.Equal(t, int64(1), resp.Tables[0].ID)
	assert.Equal(t, "waiting", resp.Tables[0].Status)
	assert.Equal(t, 1, resp.Tables[0].Seated)
}

func TestDeclareWinner(t *testing.T) {
	ts := newTestServer(t)

	// referred player 3 wins, bonus accrues to promoter 42
	rr := ts.request(http.MethodPost, "/api/v1/enroll",
		map[string]string{"referral_token": "promo_42"},
		&principal{id: 3, username: "carol"})
	require.Equal(t, http.StatusOK, rr.Code)

	for i := int64(1); i <= 5; i++ {
		rr = ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: i, username: fmt.Sprintf("user%d", i)})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr = ts.request(http.MethodPost, "/api/v1/tables/1/winner",
		map[string]string{"winner": "@carol"},
		&principal{id: adminID})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.WinnerResponse](t, rr)
	assert.Equal(t, int64(3), resp.WinnerID)
	assert.Equal(t, 1, resp.WinnerWins)
	assert.True(t, resp.BonusPaid)
	assert.Equal(t, 2.0, resp.BonusAmount)
	require.NotNil(t, resp.PromoterID)
	assert.Equal(t, int64(42), *resp.PromoterID)
}

func TestDeclareWinnerErrors(t *testing.T) {
	ts := newTestServer(t)
	admin := &principal{id: adminID}

	// unknown table
	rr := ts.request(http.MethodPost, "/api/v1/tables/9/winner",
		map[string]string{"winner": "@alice"}, admin)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeTableNotFound, errorCode(t, rr))

	// waiting table
	rr = ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/tables/1/winner",
		map[string]string{"winner": "@alice"}, admin)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeTableNotRunning, errorCode(t, rr))

	// bad table id
	rr = ts.request(http.MethodPost, "/api/v1/tables/abc/winner",
		map[string]string{"winner": "@alice"}, admin)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// missing winner selector
	rr = ts.request(http.MethodPost, "/api/v1/tables/1/winner",
		map[string]string{}, admin)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, errorCode(t, rr))
}

func TestDeclareWinnerStranger(t *testing.T) {
	ts := newTestServer(t)

	for i := int64(1); i <= 5; i++ {
		rr := ts.request(http.MethodPost, "/api/v1/tables/join", nil, &principal{id: i, username: fmt.Sprintf("user%d", i)})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ts.request(http.MethodPost, "/api/v1/tables/1/winner",
		map[string]string{"winner": "@stranger"},
		&principal{id: adminID})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, apierr.CodeWinnerNotInTable, errorCode(t, rr))
}

func TestPromoterBalances(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/enroll",
		map[string]string{"referral_token": "promo_42"},
		&principal{id: 1, username: "alice"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/promoters/balances", nil, &principal{id: adminID})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.BalanceListResponse](t, rr)
	require.Len(t, resp.Promoters, 1)
	assert.Equal(t, int64(42), resp.Promoters[0].ID)
	assert.Equal(t, 1, resp.Promoters[0].ReferredPlayers)
	assert.Zero(t, resp.Promoters[0].PendingPayout)
}
