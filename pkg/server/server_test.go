package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fontroute/pkg/catalog"
	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/observability"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat := catalog.New()
	require.NoError(t, cat.AddFont("Noto Sans", "Latn"))
	require.NoError(t, cat.AddFont("Noto Naskh Arabic", "Arab"))
	require.NoError(t, cat.AddFont("Amiri", "Arab"))
	require.NoError(t, cat.AddFont("Scheherazade", "Arab"))
	for _, r := range [][3]string{
		{"Noto Sans", "Noto Naskh Arabic", "Arab"},
		{"Noto Sans", "Amiri", "Arab"},
		{"Amiri", "Scheherazade", "Arab"},
	} {
		_, err := cat.AddRoute(r[0], r[1], r[2])
		require.NoError(t, err)
	}
	return New(cat, Options{Logger: log.New(io.Discard)})
}

func do(t *testing.T, h http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestService(t)
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[healthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, s.Revision(), body.Revision)
	assert.Equal(t, 4, body.Fonts)
}

func TestFonts(t *testing.T) {
	s := newTestService(t)
	rec := do(t, s.Handler(), http.MethodGet, "/fonts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	fonts := decode[[]fontResponse](t, rec)
	require.Len(t, fonts, 4)
	assert.Equal(t, "Noto Sans", fonts[0].Name)
	assert.Equal(t, []string{"Latn", "Arab"}, fonts[0].Attached)
}

func TestFont(t *testing.T) {
	s := newTestService(t)

	rec := do(t, s.Handler(), http.MethodGet, "/fonts/Amiri", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[fontResponse](t, rec).ID)

	rec = do(t, s.Handler(), http.MethodGet, "/fonts/Missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodeFontNotFound, decode[errorBody](t, rec).Code)
}

func TestFallbacks(t *testing.T) {
	s := newTestService(t)
	h := s.Handler()

	tests := []struct {
		name   string
		target string
		status int
		want   []string
	}{
		{"direct", "/fonts/Noto%20Sans/fallbacks?tag=arab", http.StatusOK, []string{"Noto Naskh Arabic", "Amiri"}},
		{"limited", "/fonts/Noto%20Sans/fallbacks?tag=Arab&limit=1", http.StatusOK, []string{"Noto Naskh Arabic"}},
		{"chain", "/fonts/Noto%20Sans/fallbacks?tag=Arab&chain=true", http.StatusOK, []string{"Noto Naskh Arabic", "Amiri", "Scheherazade"}},
		{"unattached", "/fonts/Noto%20Sans/fallbacks?tag=Hebr", http.StatusOK, []string{}},
		{"unknown font", "/fonts/Missing/fallbacks?tag=Arab", http.StatusNotFound, nil},
		{"missing tag", "/fonts/Amiri/fallbacks", http.StatusBadRequest, nil},
		{"bad limit", "/fonts/Amiri/fallbacks?tag=Arab&limit=0", http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.want == nil {
				return
			}
			body := decode[fallbacksResponse](t, rec)
			assert.Equal(t, tt.want, body.Fallbacks)
			assert.Equal(t, "Noto Sans", body.Font)
			assert.Equal(t, s.Revision(), body.Revision)
		})
	}
}

func TestFallbacks_CanonicalTag(t *testing.T) {
	s := newTestService(t)
	rec := do(t, s.Handler(), http.MethodGet, "/fonts/Amiri/fallbacks?tag=arab", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Arab", decode[fallbacksResponse](t, rec).Tag)
}

func TestAddRoute(t *testing.T) {
	s := newTestService(t)
	h := s.Handler()
	before := s.Revision()

	tests := []struct {
		name   string
		body   string
		status int
		code   errors.Code
	}{
		{"created", `{"from":"Noto Naskh Arabic","to":"Scheherazade","tag":"Arab"}`, http.StatusCreated, ""},
		{"exists", `{"from":"Noto Sans","to":"Amiri","tag":"arab"}`, http.StatusConflict, errors.ErrCodeRouteExists},
		{"cycle", `{"from":"Scheherazade","to":"Noto Sans","tag":"Arab"}`, http.StatusUnprocessableEntity, errors.ErrCodeRouteCycle},
		{"unknown font", `{"from":"Missing","to":"Amiri","tag":"Arab"}`, http.StatusNotFound, errors.ErrCodeFontNotFound},
		{"bad tag", `{"from":"Amiri","to":"Noto Sans","tag":"??"}`, http.StatusBadRequest, errors.ErrCodeInvalidTag},
		{"bad json", `{"from":`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"unknown field", `{"from":"a","to":"b","tag":"Arab","x":1}`, http.StatusBadRequest, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/routes", tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.code != "" {
				assert.Equal(t, tt.code, decode[errorBody](t, rec).Code)
			}
		})
	}

	after := s.Revision()
	assert.NotEqual(t, before, after, "accepted route should bump the revision")

	rec := do(t, h, http.MethodGet, "/fonts/Noto%20Naskh%20Arabic/fallbacks?tag=Arab", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Scheherazade"}, decode[fallbacksResponse](t, rec).Fallbacks)
}

func TestAddRoute_RejectedKeepsRevision(t *testing.T) {
	s := newTestService(t)
	before := s.Revision()

	rec := do(t, s.Handler(), http.MethodPost, "/routes", `{"from":"Noto Sans","to":"Amiri","tag":"Arab"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, before, s.Revision())
}

func TestRender_DOT(t *testing.T) {
	s := newTestService(t)
	rec := do(t, s.Handler(), http.MethodGet, "/render?format=dot&tag=Arab", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/vnd.graphviz")
	assert.Contains(t, rec.Body.String(), `"Amiri" -> "Scheherazade" [label="#1"];`)

	rec = do(t, s.Handler(), http.MethodGet, "/render?format=gif", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestObserveMiddleware(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	s := newTestService(t)
	do(t, s.Handler(), http.MethodGet, "/healthz", "")
	do(t, s.Handler(), http.MethodGet, "/fonts/Missing", "")

	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, hooks.statuses)
}

func TestRun(t *testing.T) {
	s := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInsufficientStorage, statusFor(errors.ErrCodeCapacity))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.ErrCodeCorrupted))
	assert.Equal(t, http.StatusInternalServerError, statusFor(""))
}
