package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"hathor-chatbot/internal/core"
	"hathor-chatbot/internal/db"
	"hathor-chatbot/internal/document"
	"hathor-chatbot/internal/session"
	"hathor-chatbot/pkg"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Complete(_ context.Context, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestServer(t *testing.T, client *stubLLM, repo *db.Repository) *Server {
	t.Helper()
	store := session.NewLRUStore(16, time.Minute)
	responder := core.NewResponder(client, store, nil, nil)
	return NewServer(responder, store, document.New(), repo, nil, nil)
}

func postChat(t *testing.T, srv *Server, sessionID, message string) (*httptest.ResponseRecorder, pkg.ChatResponse) {
	t.Helper()
	body, err := json.Marshal(pkg.ChatRequest{Message: message})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(session.HeaderName, sessionID)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	var resp pkg.ChatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestChatRequiresMessage(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	requireBadRequest := func(rec *httptest.ResponseRecorder) {
		t.Helper()
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, false, body["success"])
		require.NotEmpty(t, body["error"])
	}

	rec, _ := postChat(t, srv, "s1", "")
	requireBadRequest(rec)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	requireBadRequest(rec)
}

func TestChatInventoryFlow(t *testing.T) {
	srv := newTestServer(t, &stubLLM{err: errors.New("should not be called")}, nil)

	rec, resp := postChat(t, srv, "s1", "what oils do you have?")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)
	require.True(t, resp.InventoryComplete)
	require.Contains(t, resp.Response, "20 divine oils")

	rec, resp = postChat(t, srv, "s1", "are these all the oils?")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.FollowUpConfirmed)
	require.Contains(t, resp.Response, "Total: 20 sacred oils")
}

func TestChatGeneralFlow(t *testing.T) {
	srv := newTestServer(t, &stubLLM{
		reply: "Apply [Rosemary Oil](https://hathororganics.com/products/rosemary-oil) nightly.",
	}, nil)

	rec, resp := postChat(t, srv, "s1", "my scalp itches")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)
	require.False(t, resp.Fallback)
	require.Contains(t, resp.Response, `target="_blank"`)
	require.True(t, resp.PrescriptionAvailable)
	require.NotNil(t, resp.PrescriptionData)
	require.Equal(t, "Rosemary Oil", resp.PrescriptionData.Products[0].Name)
}

func TestChatGatewayFailureShipsWithStatus200(t *testing.T) {
	srv := newTestServer(t, &stubLLM{err: errors.New("upstream down")}, nil)

	rec, resp := postChat(t, srv, "s1", "help my skin")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)
	require.True(t, resp.Fallback)
	require.Contains(t, resp.Response, "temporarily disrupted")
	require.NotNil(t, resp.Error)
	require.Equal(t, "upstream_error", resp.Error.Code)
}

func TestChatSessionsAreIsolated(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "Rose Oil will lift you."}, nil)

	_, _ = postChat(t, srv, "a", "what oils do you have?")
	// A follow-up in a different session has no inventory context.
	_, resp := postChat(t, srv, "b", "are these all the oils?")
	require.False(t, resp.FollowUpConfirmed)
}

func TestDownloadPrescription(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "Use Argan Oil each evening."}, nil)
	_, _ = postChat(t, srv, "s1", "my skin is rough")

	req := httptest.NewRequest(http.MethodGet, "/api/download-prescription", nil)
	req.Header.Set(session.HeaderName, "s1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), PrescriptionFilename)
	require.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestDownloadPrescriptionColdSession(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/download-prescription", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestPurchaseWithoutDatabase(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	body, _ := json.Marshal(pkg.PurchaseRequest{
		UserID: "user-1",
		Items:  []pkg.PurchaseItem{{OilID: "argan-oil", Quantity: 1}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/subscriptions/user-1", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPurchaseBelowThreshold(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	srv := newTestServer(t, &stubLLM{reply: "x"}, db.NewRepository(mockDB))

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO purchases").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(pkg.PurchaseRequest{
		UserID: "user-1",
		Items:  []pkg.PurchaseItem{{OilID: "argan-oil", Quantity: 2}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp pkg.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Purchase recorded", resp.Message)
	require.Nil(t, resp.Subscription)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPurchaseActivatesFreeSubscription(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	srv := newTestServer(t, &stubLLM{reply: "x"}, db.NewRepository(mockDB))

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO purchases").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO purchase_items").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	mock.ExpectExec("INSERT INTO subscriptions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, _ := json.Marshal(pkg.PurchaseRequest{
		UserID: "user-1",
		Items: []pkg.PurchaseItem{
			{OilID: "argan-oil", Quantity: 2},
			{OilID: "rosemary-oil", Quantity: 1},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp pkg.PurchaseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Purchase recorded and free subscription activated", resp.Message)
	require.NotNil(t, resp.Subscription)
	require.True(t, resp.Subscription.IsActive)
	require.True(t, resp.Subscription.IsFree)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionStatusUnknownUser(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	srv := newTestServer(t, &stubLLM{reply: "x"}, db.NewRepository(mockDB))

	mock.ExpectQuery("SELECT user_id, is_active, is_free, start_date, end_date").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "is_active", "is_free", "start_date", "end_date"}))

	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions/nobody", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp["isActive"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthAndTest(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok"`)

	req = httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Backend server is running!")
}

func TestNotFoundIsJSON(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Cannot GET /api/nope")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubLLM{reply: "x"}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
