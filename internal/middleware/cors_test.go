package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsRecorder(origins []string, method, origin string, hdr map[string]string) (*httptest.ResponseRecorder, bool) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = origins

	reached := false
	h := CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/api/photos/01J/file", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, reached
}

func TestCORS_Origins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"nothing configured", nil, "https://photos.example.com", ""},
		{"exact match", []string{"https://photos.example.com"}, "https://photos.example.com", "https://photos.example.com"},
		{"other origin", []string{"https://photos.example.com"}, "https://attacker.test", ""},
		{"subdomain pattern", []string{"https://*.example.com"}, "https://app.example.com", "https://app.example.com"},
		{"same-origin request", []string{"https://photos.example.com"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, reached := corsRecorder(tt.origins, http.MethodGet, tt.origin, nil)

			assert.True(t, reached, "simple requests always reach the handler")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_CredentialsAndExposedHeaders(t *testing.T) {
	t.Parallel()

	rec, _ := corsRecorder([]string{"https://photos.example.com"}, http.MethodGet, "https://photos.example.com", nil)

	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	for _, h := range []string{"Content-Disposition", "X-Request-Id", "X-Trace-Id"} {
		assert.Containsf(t, exposed, http.CanonicalHeaderKey(h), "exposed headers %q", exposed)
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	rec, reached := corsRecorder([]string{"https://photos.example.com"}, http.MethodOptions, "https://photos.example.com",
		map[string]string{
			"Access-Control-Request-Method":  http.MethodDelete,
			"Access-Control-Request-Headers": "Authorization",
		})

	assert.False(t, reached, "preflight is answered by the middleware")
	assert.Equal(t, "https://photos.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodDelete, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PreflightRejectsUnknownMethod(t *testing.T) {
	t.Parallel()

	rec, _ := corsRecorder([]string{"https://photos.example.com"}, http.MethodOptions, "https://photos.example.com",
		map[string]string{"Access-Control-Request-Method": http.MethodPatch})

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}
