package httpapi

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"vibecraft/internal/adapter/repo"
	"vibecraft/internal/domain"
	"vibecraft/internal/http/handlers"
	"vibecraft/internal/i18n"
	"vibecraft/internal/infra"
	"vibecraft/internal/promptgen"
	"vibecraft/internal/service"
)

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, rateLimit int) http.Handler {
	t.Helper()
	ids := []string{"AAA111", "BBB222", "CCC333", "DDD444"}
	n := 0
	gen := promptgen.NewGenerator(
		promptgen.WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, n, 0, time.UTC) }),
		promptgen.WithIDSource(func() string {
			id := ids[n%len(ids)]
			n++
			return id
		}),
	)
	metrics := infra.NewMetrics()
	svc := service.NewBlueprintService(repo.NewBlueprintMemoryRepository(), gen, metrics, zerolog.Nop())
	app := handlers.NewApp(svc, zerolog.Nop())
	return NewRouter(app, Options{
		Logger:          zerolog.Nop(),
		DefaultLocale:   i18n.DefaultLocale,
		AllowedOrigins:  []string{"*"},
		RateLimitPerMin: rateLimit,
		Metrics:         metrics.Handler(),
	})
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t, 0), http.MethodGet, "/v1/healthz", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("healthz = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}
}

func TestQuestionsEndpoint(t *testing.T) {
	h := newTestRouter(t, 0)

	tests := []struct {
		name    string
		body    string
		headers map[string]string
		wantIDs string
		wantDir string
	}{
		{name: "no goal", body: `{}`, wantIDs: "subject", wantDir: "ltr"},
		{name: "noir video", body: `{"goal":"video","moods":["noir"]}`, wantIDs: "pacing,fog_density,subject", wantDir: "ltr"},
		{name: "product image", body: `{"goal":"image","category":"product"}`, wantIDs: "material,lighting_setup,subject", wantDir: "ltr"},
		{name: "arabic locale", body: `{"goal":"tool"}`, headers: map[string]string{"X-Locale": "ar"}, wantIDs: "user_level,subject", wantDir: "rtl"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/questions", tc.body, tc.headers)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			resp := decodeJSON[struct {
				Direction string            `json:"direction"`
				Questions []domain.Question `json:"questions"`
			}](t, rec)
			ids := make([]string, len(resp.Questions))
			for i, q := range resp.Questions {
				ids[i] = q.ID
			}
			if got := strings.Join(ids, ","); got != tc.wantIDs {
				t.Fatalf("ids = %s, want %s", got, tc.wantIDs)
			}
			if resp.Direction != tc.wantDir {
				t.Fatalf("direction = %s, want %s", resp.Direction, tc.wantDir)
			}
		})
	}
}

func TestQuestionsLocalized(t *testing.T) {
	h := newTestRouter(t, 0)
	rec := do(t, h, http.MethodPost, "/v1/questions", `{"goal":"image","category":"portrait"}`, map[string]string{"Accept-Language": "tr-TR,tr;q=0.9"})
	resp := decodeJSON[struct {
		Locale    string            `json:"locale"`
		Questions []domain.Question `json:"questions"`
	}](t, rec)
	if resp.Locale != "tr" {
		t.Fatalf("locale = %s", resp.Locale)
	}
	if resp.Questions[0].Label != "Tercih edilen odak uzaklığı?" {
		t.Fatalf("lens label was not translated")
	}
	if resp.Questions[0].Options[0].Value != "35mm" {
		t.Fatalf("option values must stay untranslated: %+v", resp.Questions[0].Options[0])
	}
}

func TestBadRequests(t *testing.T) {
	h := newTestRouter(t, 0)
	tests := []struct {
		name, method, path, body string
	}{
		{name: "malformed json", method: http.MethodPost, path: "/v1/questions", body: `{"goal":`},
		{name: "unknown field", method: http.MethodPost, path: "/v1/questions", body: `{"goal":"image","colour":"red"}`},
		{name: "unknown goal", method: http.MethodPost, path: "/v1/questions", body: `{"goal":"podcast"}`},
		{name: "generate without goal", method: http.MethodPost, path: "/v1/blueprints", body: `{"moods":["noir"]}`},
		{name: "five moods", method: http.MethodPost, path: "/v1/blueprints", body: `{"goal":"image","moods":["noir","ethereal","vintage","cyberpunk","biophilic"]}`},
		{name: "slider range", method: http.MethodPost, path: "/v1/blueprints", body: `{"goal":"image","sliders":{"sharpness":150}}`},
		{name: "bad limit", method: http.MethodGet, path: "/v1/blueprints?limit=abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, tc.path, tc.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			if e := decodeJSON[apiError](t, rec); e.Error.Code != "bad_request" || e.Error.Message == "" {
				t.Fatalf("error body = %+v", e)
			}
		})
	}
}

func TestBlueprintLifecycle(t *testing.T) {
	h := newTestRouter(t, 0)

	body := `{"goal":"image","moods":["noir","ethereal"],"category":"portrait","details":{"lens":"35mm","subject":"a detective"},"sliders":{"complexity":80,"sharpness":90}}`
	rec := do(t, h, http.MethodPost, "/v1/blueprints", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Location") != "/v1/blueprints/AAA111" {
		t.Fatalf("Location = %q", rec.Header().Get("Location"))
	}
	created := decodeJSON[domain.Blueprint](t, rec)
	wantV1 := "[ARCHITECTURAL CINEMATIC]: PORTRAIT perspective. SUBJECT: a detective. AESTHETIC: melancholic shadowplay with ethereal undertones. OPTICS: 35mm, exquisitely intricate, micro-detailed. LIGHTING: natural ambient. COLOR: Muted palette. hyper-defined, 8k resolution, symmetrical balance. --ar 3:2 --v 6.1"
	if created.V1 != wantV1 {
		t.Fatalf("v1 = %q", created.V1)
	}
	if created.Extras.BlueprintRef != "VB-AAA111" || created.Extras.RenderConfig != "RAW Data" {
		t.Fatalf("extras = %+v", created.Extras)
	}

	rec = do(t, h, http.MethodPost, "/v1/blueprints", `{"goal":"video","details":{"subject":"a city"}}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("second create status = %d", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/v1/blueprints", "", nil)
	list := decodeJSON[struct {
		Items []domain.Blueprint `json:"items"`
	}](t, rec)
	if len(list.Items) != 2 || list.Items[0].ID != "BBB222" {
		t.Fatalf("library = %+v", list.Items)
	}

	rec = do(t, h, http.MethodGet, "/v1/blueprints?limit=1", "", nil)
	list = decodeJSON[struct {
		Items []domain.Blueprint `json:"items"`
	}](t, rec)
	if len(list.Items) != 1 {
		t.Fatalf("limited library = %d items", len(list.Items))
	}

	rec = do(t, h, http.MethodGet, "/v1/blueprints/AAA111", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decodeJSON[domain.Blueprint](t, rec); got.Choices.Detail("subject") != "a detective" {
		t.Fatalf("fetched choices = %+v", got.Choices)
	}

	rec = do(t, h, http.MethodGet, "/v1/blueprints/export", "", nil)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/zip" {
		t.Fatalf("export = %d %s", rec.Code, rec.Header().Get("Content-Type"))
	}
	data := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil || len(zr.File) != 4 {
		t.Fatalf("export archive: %v (%d files)", err, len(zr.File))
	}

	rec = do(t, h, http.MethodDelete, "/v1/blueprints/AAA111", "", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec = do(t, h, method, "/v1/blueprints/AAA111", "", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s after delete = %d", method, rec.Code)
		}
		if e := decodeJSON[apiError](t, rec); e.Error.Code != "not_found" {
			t.Fatalf("error body = %+v", e)
		}
	}
}

func TestCatalogEndpoint(t *testing.T) {
	h := newTestRouter(t, 0)
	rec := do(t, h, http.MethodGet, "/v1/catalog", "", map[string]string{"X-Locale": "tr"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Content-Language") != "tr" {
		t.Fatalf("Content-Language = %q", rec.Header().Get("Content-Language"))
	}
	cat := decodeJSON[i18n.Catalog](t, rec)
	if cat.Locale != "tr" || len(cat.Goals) != 4 || len(cat.Moods) != 8 || len(cat.Intents) != 4 {
		t.Fatalf("catalog = %+v", cat)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, 0)
	do(t, h, http.MethodPost, "/v1/blueprints", `{"goal":"game"}`, nil)
	rec := do(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `blueprints_generated_total{goal="game"} 1`) {
		t.Fatalf("metrics = %d\n%s", rec.Code, rec.Body.String())
	}
}

func TestOpenAPIDocument(t *testing.T) {
	rec := do(t, newTestRouter(t, 0), http.MethodGet, "/v1/openapi.json", "", nil)
	doc := decodeJSON[map[string]any](t, rec)
	paths, _ := doc["paths"].(map[string]any)
	for _, p := range []string{"/v1/questions", "/v1/blueprints", "/v1/blueprints/{id}", "/v1/blueprints/export", "/v1/catalog"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("openapi document missing %s", p)
		}
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	h := newTestRouter(t, 1)
	if rec := do(t, h, http.MethodGet, "/v1/catalog", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("first request = %d", rec.Code)
	}
	rec := do(t, h, http.MethodGet, "/v1/catalog", "", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/v1/healthz", "", nil); rec.Code != http.StatusOK {
		t.Fatalf("healthz must not be rate limited, got %d", rec.Code)
	}
}
