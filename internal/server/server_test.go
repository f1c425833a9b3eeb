package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devsites/internal/config"
	"devsites/internal/database"
	"devsites/internal/services"
	"devsites/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "DEVSITES404 API", Version: "1.0.0", Debug: true},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			MaxAge:         600,
		},
		API: config.APIConfig{DefaultPageSize: 100, MaxPageSize: 500},
	}
}

// newTestServer wires the full stack over a fresh in-memory database
func newTestServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()

	cfg := testConfig()
	db, err := database.Open(config.DatabaseConfig{URL: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	st := store.New(db, nil)
	svc := Services{
		Health:     services.NewHealthService(db, cfg.App.Name, cfg.App.Version, nil),
		Contact:    services.NewContactService(st, cfg.API, nil),
		Inquiry:    services.NewInquiryService(st, cfg.API, nil),
		Newsletter: services.NewNewsletterService(st, nil),
		Stats:      services.NewStatsService(st),
	}
	return New(cfg, svc, nil), db
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func TestHealthAndBanner(t *testing.T) {
	h, db := newTestServer(t)

	rec, body := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "DEVSITES404 API", body["service"])

	rec, body = do(t, h, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "DEVSITES404 API is running", body["message"])
	require.Equal(t, "1.0.0", body["version"])

	require.NoError(t, database.Close(db))
	_, body = do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, "degraded", body["status"])
}

func TestProjectInquiry_EndToEnd(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := do(t, h, http.MethodPost, "/api/project-inquiry", map[string]interface{}{
		"name":           "Grace Hopper",
		"email":          "grace@example.com",
		"project_type":   "standard",
		"include_domain": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, true, body["success"])
	require.Equal(t, 89.98, body["estimated_cost"])
	require.NotEmpty(t, body["id"])
	id := body["id"]

	rec, body = do(t, h, http.MethodGet, "/api/admin/inquiries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inquiries := body["inquiries"].([]interface{})
	require.Len(t, inquiries, 1)
	stored := inquiries[0].(map[string]interface{})
	require.Equal(t, id, stored["id"])
	require.Equal(t, 89.98, stored["estimated_cost"])
	require.Equal(t, "standard", stored["project_type"])
	require.Equal(t, "pending", stored["status"])

	rec, body = do(t, h, http.MethodGet, "/api/project-summary?project_type=standard&include_domain=true&include_database=false", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 89.98, body["total_cost"])
	require.Equal(t, 69.99, body["base_cost"])
	require.Equal(t, "Priority", body["support_level"])
	require.Equal(t, "Standard", body["project_type"])
	require.Equal(t, "14 days", body["estimated_timeline"])
	addons := body["addons"].([]interface{})
	require.Len(t, addons, 1)
	addon := addons[0].(map[string]interface{})
	require.Equal(t, "Domain Setup", addon["name"])
	require.Equal(t, 19.99, addon["cost"])
}

func TestProjectSummary_IsDeterministic(t *testing.T) {
	h, _ := newTestServer(t)

	target := "/api/project-summary?project_type=basic&include_domain=true&include_database=true"
	first, _ := do(t, h, http.MethodGet, target, nil)
	second, _ := do(t, h, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, first.Body.String(), second.Body.String())
}

func TestUnknownProjectTypeIsBadRequest(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := do(t, h, http.MethodPost, "/api/project-inquiry", map[string]interface{}{
		"name": "n", "email": "a@b.co", "project_type": "premium",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "bad_request", body["name"])
	require.Equal(t, "Invalid project type", body["message"])
	require.Equal(t, false, body["fault"])

	rec, _ = do(t, h, http.MethodGet, "/api/project-summary?project_type=premium", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/project-summary?project_type=basic&include_domain=maybe", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, body = do(t, h, http.MethodGet, "/api/admin/inquiries", nil)
	require.Empty(t, body["inquiries"])
}

func TestContactFlow(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := do(t, h, http.MethodPost, "/api/contact", map[string]interface{}{
		"id":      "client-chosen",
		"name":    "Ada",
		"email":   "ADA@example.com",
		"company": "Engines",
		"message": "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, true, body["success"])
	id := body["id"].(string)
	require.NotEqual(t, "client-chosen", id)

	rec, body = do(t, h, http.MethodGet, "/api/admin/contacts?skip=0&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	contacts := body["contacts"].([]interface{})
	require.Len(t, contacts, 1)
	c := contacts[0].(map[string]interface{})
	require.Equal(t, "ada@example.com", c["email"])
	require.Equal(t, "new", c["status"])
	require.Nil(t, c["budget"])

	rec, body = do(t, h, http.MethodPatch, "/api/admin/contacts/"+id+"/status", map[string]string{"status": "contacted"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, true, body["updated"])

	_, body = do(t, h, http.MethodPatch, "/api/admin/contacts/unknown/status", map[string]string{"status": "closed"})
	require.Equal(t, false, body["updated"])

	rec, _ = do(t, h, http.MethodPatch, "/api/admin/contacts/"+id+"/status", map[string]string{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	_, body = do(t, h, http.MethodGet, "/api/admin/contacts", nil)
	require.Equal(t, "contacted", body["contacts"].([]interface{})[0].(map[string]interface{})["status"])
}

func TestRequestValidation(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		name   string
		method string
		target string
		body   interface{}
	}{
		{"malformed json", http.MethodPost, "/api/contact", `{"name":`},
		{"empty body", http.MethodPost, "/api/contact", nil},
		{"bad email", http.MethodPost, "/api/contact", map[string]string{"name": "n", "email": "nope", "message": "m"}},
		{"wrong field type", http.MethodPost, "/api/project-inquiry", `{"name":"n","email":"a@b.co","project_type":"basic","include_domain":"yes"}`},
		{"negative skip", http.MethodGet, "/api/admin/contacts?skip=-1", nil},
		{"limit too large", http.MethodGet, "/api/admin/inquiries?limit=501", nil},
		{"non-numeric limit", http.MethodGet, "/api/admin/contacts?limit=ten", nil},
		{"bad newsletter email", http.MethodPost, "/api/newsletter", map[string]string{"email": "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, tt.method, tt.target, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			require.Equal(t, "bad_request", body["name"])
			require.NotEmpty(t, body["id"])
		})
	}
}

func TestNewsletter_RepeatSignup(t *testing.T) {
	h, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		rec, body := do(t, h, http.MethodPost, "/api/newsletter", map[string]string{"email": "Ada@Example.com"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, true, body["success"])
		require.Equal(t, true, body["subscribed"])
		require.Equal(t, "Successfully subscribed to our newsletter!", body["message"])
	}

	_, body := do(t, h, http.MethodGet, "/api/admin/newsletter", nil)
	subs := body["subscribers"].([]interface{})
	require.Len(t, subs, 1)
	require.Equal(t, "ada@example.com", subs[0].(map[string]interface{})["email"])

	_, body = do(t, h, http.MethodGet, "/api/admin/newsletter?active_only=false", nil)
	require.Len(t, body["subscribers"].([]interface{}), 1)
}

func TestStats(t *testing.T) {
	h, _ := newTestServer(t)

	do(t, h, http.MethodPost, "/api/contact", map[string]string{"name": "n", "email": "a@b.co", "message": "m"})
	do(t, h, http.MethodPost, "/api/project-inquiry", map[string]string{"name": "n", "email": "a@b.co", "project_type": "basic"})
	do(t, h, http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.co"})

	rec, body := do(t, h, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, map[string]interface{}{
		"projects_completed":     float64(86),
		"client_satisfaction":    float64(100),
		"average_turnaround":     float64(14),
		"total_contacts":         float64(1),
		"total_inquiries":        float64(1),
		"newsletter_subscribers": float64(1),
	}, body)
}

func TestStoreFailureAsymmetry(t *testing.T) {
	h, db := newTestServer(t)
	require.NoError(t, database.Close(db))

	rec, body := do(t, h, http.MethodPost, "/api/contact", map[string]string{"name": "n", "email": "a@b.co", "message": "m"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, true, body["fault"])
	require.Equal(t, "Failed to submit contact form", body["message"])

	rec, _ = do(t, h, http.MethodPost, "/api/project-inquiry", map[string]string{"name": "n", "email": "a@b.co", "project_type": "basic"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec, body = do(t, h, http.MethodPost, "/api/newsletter", map[string]string{"email": "a@b.co"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	require.Equal(t, true, body["subscribed"])
	require.Equal(t, "Thank you for your interest! We'll keep you updated.", body["message"])

	rec, body = do(t, h, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(100), body["projects_completed"])
	require.Equal(t, float64(100), body["client_satisfaction"])
	require.Equal(t, float64(0), body["total_contacts"])
}

func TestPricingCatalog(t *testing.T) {
	h, _ := newTestServer(t)

	rec, body := do(t, h, http.MethodGet, "/api/pricing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, body["plans"], 2)
	require.Len(t, body["addons"], 2)
}

func TestResponsesAreAlwaysJSON(t *testing.T) {
	h, _ := newTestServer(t)

	for _, accept := range []string{"application/xml", "application/gob", "text/plain"} {
		t.Run(accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/project-summary?project_type=standard&include_domain=true", nil)
			req.Header.Set("Accept", accept)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
			var summary map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary), rec.Body.String())
			require.Equal(t, 89.98, summary["total_cost"])
			require.Equal(t, 69.99, summary["base_cost"])

			req = httptest.NewRequest(http.MethodGet, "/api/pricing", nil)
			req.Header.Set("Accept", accept)
			rec = httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var catalog map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog), rec.Body.String())
			require.Len(t, catalog["addons"], 2)
		})
	}
}

func TestMiddleware(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://devsites404.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://devsites404.example", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec, _ = do(t, h, http.MethodGet, "/api/stats", nil)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec, _ = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestCORS_RejectsUnknownOrigin(t *testing.T) {
	cfg := testConfig()
	cfg.App.Debug = false
	cfg.CORS.AllowedOrigins = []string{"https://devsites404.example"}

	h := cors(cfg.CORS, cfg.App.Debug)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	req.Header.Set("Origin", "https://devsites404.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
