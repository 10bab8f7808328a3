package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revanthkumar92/quantara/internal/application/usecase"
	"github.com/revanthkumar92/quantara/internal/interfaces/http/handler"
	"github.com/revanthkumar92/quantara/pkg/config"
	"github.com/revanthkumar92/quantara/pkg/logger"
)

const qubitsJSON = `{"results":[{"id":1,"state":"entangled","amplitude":0.707,"phase":0},{"id":2,"state":"superposition","amplitude":0.5,"phase":1.57}]}`

func newTestServer(t *testing.T, rateLimit config.RateLimitConfig) (http.Handler, string) {
	t.Helper()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>Hello</h1>"), 0o644); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}

	log := logger.New("error")

	static, err := NewStaticMount(root, log)
	if err != nil {
		t.Fatalf("failed to create static mount: %v", err)
	}

	qubitHandler := handler.NewQubitAPIHandler(usecase.NewListQubitsUseCase(log), log)
	router := NewRouter(qubitHandler, static, rateLimit, log)

	return router.Setup(), root
}

func doRequest(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEndToEnd(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{})

	t.Run("root serves index document", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("GET / status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), "<h1>Hello</h1>") {
			t.Errorf("GET / body = %q, want it to contain <h1>Hello</h1>", w.Body.String())
		}
	})

	t.Run("qubits endpoint returns literal records", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/api/qubits")
		if w.Code != http.StatusOK {
			t.Fatalf("GET /api/qubits status = %d, want %d", w.Code, http.StatusOK)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if got := strings.TrimSpace(w.Body.String()); got != qubitsJSON {
			t.Errorf("GET /api/qubits body = %s, want %s", got, qubitsJSON)
		}
	})

	t.Run("missing asset returns 404", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/missing.txt")
		if w.Code != http.StatusNotFound {
			t.Errorf("GET /missing.txt status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestQubitResponseIsIdempotent(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{})

	first := doRequest(t, h, http.MethodGet, "/api/qubits").Body.Bytes()
	for i := 0; i < 5; i++ {
		body := doRequest(t, h, http.MethodGet, "/api/qubits").Body.Bytes()
		if !bytes.Equal(first, body) {
			t.Fatalf("response %d differs from the first: %s vs %s", i, body, first)
		}
	}
}

func TestQubitValuesRoundTrip(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{})

	w := doRequest(t, h, http.MethodGet, "/api/qubits")

	var decoded struct {
		Results []struct {
			ID        int     `json:"id"`
			State     string  `json:"state"`
			Amplitude float64 `json:"amplitude"`
			Phase     float64 `json:"phase"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(decoded.Results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(decoded.Results))
	}
	if decoded.Results[0].ID != 1 || decoded.Results[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", decoded.Results[0].ID, decoded.Results[1].ID)
	}
	if decoded.Results[0].Amplitude != 0.707 || decoded.Results[0].Phase != 0 {
		t.Errorf("record 1 = %+v, want amplitude 0.707 phase 0", decoded.Results[0])
	}
	if decoded.Results[1].Amplitude != 0.5 || decoded.Results[1].Phase != 1.57 {
		t.Errorf("record 2 = %+v, want amplitude 0.5 phase 1.57", decoded.Results[1])
	}
}

func TestStaticAssetServedVerbatim(t *testing.T) {
	h, root := newTestServer(t, config.RateLimitConfig{})

	content := []byte("body { color: #333; }\n")
	if err := os.MkdirAll(filepath.Join(root, "css"), 0o755); err != nil {
		t.Fatalf("failed to create css dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "css", "style.css"), content, 0o644); err != nil {
		t.Fatalf("failed to write style.css: %v", err)
	}

	w := doRequest(t, h, http.MethodGet, "/css/style.css")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !bytes.Equal(w.Body.Bytes(), content) {
		t.Errorf("served bytes differ from the file on disk")
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q, want text/css", ct)
	}
}

func TestGzipAppliedOnlyWhenAccepted(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{})

	plain := doRequest(t, h, http.MethodGet, "/api/qubits")
	if enc := plain.Header().Get("Content-Encoding"); enc != "" {
		t.Errorf("Content-Encoding = %q without Accept-Encoding, want none", enc)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/qubits", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if enc := w.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", enc)
	}

	zr, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("failed to open gzip reader: %v", err)
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("failed to decompress body: %v", err)
	}
	if got := strings.TrimSpace(string(body)); got != qubitsJSON {
		t.Errorf("decompressed body = %s, want %s", got, qubitsJSON)
	}
}

func TestRequestIDEchoedOnResponses(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{})

	w := doRequest(t, h, http.MethodGet, "/api/qubits")
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected a generated X-Request-Id on the response")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/qubits", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want abc-123", got)
	}
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	h, _ := newTestServer(t, config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 2})

	for i := 0; i < 2; i++ {
		if w := doRequest(t, h, http.MethodGet, "/api/qubits"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	if w := doRequest(t, h, http.MethodGet, "/api/qubits"); w.Code != http.StatusTooManyRequests {
		t.Errorf("status after burst = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
}
