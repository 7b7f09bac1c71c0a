package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/config"
	"github.com/auditdesk/backoffice-api/internal/infrastructure/store"
	"github.com/auditdesk/backoffice-api/internal/infrastructure/upstream"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/handler"
	"github.com/auditdesk/backoffice-api/pkg/utils"
)

// fakeUpstream mimics the backend REST service: login issues a fixed token,
// protected endpoints require it verbatim in the Authorization header.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			UserID   string `json:"UserId"`
			Password string `json:"Password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"message": "Invalid UserId or Password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"token": "backend-token", "message": "Welcome"})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "backend-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "c1", "companyName": "Acme", "customerCode": "C001", "workOrderNo": "WO9"},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "backoffice-api"},
		Upstream:  config.UpstreamConfig{BaseURL: upstreamURL, Timeout: 2 * time.Second},
		Session:   config.SessionConfig{Secret: "test-secret", CookieName: "backoffice_session", TTL: time.Hour, DBPath: filepath.Join(t.TempDir(), "sessions.db")},
		Pages:     config.PageConfig{Customers: 10, Expenses: 5, Receipts: 10},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	db, err := store.Open(cfg.Session.DBPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	jwtManager := utils.NewJWTManager(cfg.Session.Secret, cfg.Session.TTL)
	sessions := service.NewSessionService(client, store.NewSessionRepository(db), jwtManager)
	guard := &handler.Guard{Sessions: sessions, CookieName: cfg.Session.CookieName}

	handlers := &Handlers{
		Auth:     handler.NewAuthHandler(sessions, cfg.Session.CookieName, 3600),
		Customer: handler.NewCustomerHandler(guard, service.NewCustomerService(client.Customers(), cfg.Pages.Customers)),
		Expense:  handler.NewExpenseHandler(guard, service.NewExpenseService(client.Expenses(), cfg.Pages.Expenses)),
		Receipt:  handler.NewReceiptHandler(guard, service.NewReceiptService(client.Receipts(), client.Customers(), cfg.Pages.Receipts)),
	}
	return Setup(handlers, &Deps{
		Cfg:             cfg,
		Sessions:        sessions,
		IdempotencyRepo: store.NewIdempotencyRepository(db),
	})
}

func login(t *testing.T, router *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"UserId":"admin","Password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "backoffice_session" && c.Value != "" {
			return c
		}
	}
	return nil
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, fakeUpstream(t).URL)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
}

func TestProtectedRouteWithoutCookie(t *testing.T) {
	router := newTestRouter(t, fakeUpstream(t).URL)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestLoginThenList(t *testing.T) {
	router := newTestRouter(t, fakeUpstream(t).URL)

	w := login(t, router, "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", w.Code, w.Body.String())
	}
	cookie := sessionCookie(t, w)
	if cookie == nil {
		t.Fatal("no session cookie issued")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.AddCookie(cookie)
	lw := httptest.NewRecorder()
	router.ServeHTTP(lw, req)

	if lw.Code != http.StatusOK {
		t.Fatalf("list = %d: %s", lw.Code, lw.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				CustomerCode string `json:"customerCode"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(lw.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Data.Items) != 1 || body.Data.Items[0].CustomerCode != "C001" {
		t.Fatalf("body = %s", lw.Body.String())
	}
}

func TestLoginRejected(t *testing.T) {
	router := newTestRouter(t, fakeUpstream(t).URL)

	w := login(t, router, "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("login = %d, want 401", w.Code)
	}
	if sessionCookie(t, w) != nil {
		t.Fatal("cookie issued for rejected login")
	}
}

func TestStaleBackendTokenInvalidatesSession(t *testing.T) {
	// The backend only honors "backend-token"; this one answers 401 to every
	// protected call, as if the stored token went stale.
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": "soon-stale", "message": "Welcome"})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	router := newTestRouter(t, srv.URL)

	w := login(t, router, "anything")
	cookie := sessionCookie(t, w)
	if cookie == nil {
		t.Fatal("no session cookie issued")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.AddCookie(cookie)
	first := httptest.NewRecorder()
	router.ServeHTTP(first, req)
	if first.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", first.Code)
	}

	// The session row is gone, so the same cookie is now refused at the
	// door without reaching the backend.
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req2.AddCookie(cookie)
	second := httptest.NewRecorder()
	router.ServeHTTP(second, req2)
	if second.Code != http.StatusUnauthorized {
		t.Fatalf("replayed cookie = %d, want 401", second.Code)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	router := newTestRouter(t, fakeUpstream(t).URL)

	// Without any cookie.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("logout without cookie = %d", w.Code)
	}

	// With a live session: the cookie stops working afterwards.
	lw := login(t, router, "secret")
	cookie := sessionCookie(t, lw)
	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req2.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("logout = %d", w2.Code)
	}

	req3 := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req3.AddCookie(cookie)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	if w3.Code != http.StatusUnauthorized {
		t.Fatalf("after logout = %d, want 401", w3.Code)
	}
}

func TestDuplicateSubmitReplayed(t *testing.T) {
	created := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"token": "backend-token", "message": "Welcome"})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []map[string]any{}})
	})
	mux.HandleFunc("POST /newExpense", func(w http.ResponseWriter, r *http.Request) {
		created++
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"_id": "e1"}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	router := newTestRouter(t, srv.URL)
	cookie := sessionCookie(t, login(t, router, "secret"))

	body := `{"date":"2024-02-01","expenseDescription":"Train","amount":"250","paymentBy":"Cash","paidFromAcc":"Current"}`
	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "submit-1")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send()
	if first.Code != http.StatusCreated {
		t.Fatalf("first submit = %d: %s", first.Code, first.Body.String())
	}
	second := send()
	if second.Code != http.StatusCreated {
		t.Fatalf("second submit = %d", second.Code)
	}
	if second.Header().Get("X-Idempotency-Replayed") != "true" {
		t.Error("duplicate submit was not replayed")
	}
	if created != 1 {
		t.Fatalf("backend created %d expenses, want 1", created)
	}
}
