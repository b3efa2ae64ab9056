package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/pali"
	"github.com/cours-de-latin/pali/internal/config"
	"github.com/cours-de-latin/pali/lexicon"
)

func newTestHandler(t *testing.T, conf config.ServerConfig) http.Handler {
	t.Helper()
	lex := lexicon.NewStatic(lexicon.Entry{Lemma: "dhamma"}, lexicon.Entry{Lemma: "cakka"})
	e, err := pali.New(context.Background(), pali.WithLexicon(lex))
	require.NoError(t, err)
	if conf.CORSOrigins == "" {
		conf.CORSOrigins = "*"
	}
	return newHandler(e, conf)
}

func get(t *testing.T, h http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthAndRequestID(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})

	rec := get(t, h, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestRequestValidation(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/lemmatize?q=devo", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	for _, path := range []string{"/api/lemmatize", "/api/analyze", "/api/generate", "/api/stem", "/api/merge", "/api/split", "/api/compound"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, h, path, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
		})
	}

	rec = get(t, h, "/api/split", url.Values{"q": {"tatheva"}, "depth": {"deep"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/api/merge", url.Values{"q": {"tathā"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLemmatizeEndpoint(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})
	rec := get(t, h, "/api/lemmatize", url.Values{"q": {"gaavena"}})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[lemmatizeResponse](t, rec)
	assert.Equal(t, "gāvena", resp.Word)
	assert.Contains(t, resp.Lemmas, pali.LemmaResult{Word: "gāvena", Lemma: "go", WordClass: "noun"})

	rec = get(t, h, "/api/lemmatize", url.Values{"q": {"xyzzy"}, "pos": {"particle"}, "lexicon": {"true"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decode[lemmatizeResponse](t, rec).Lemmas)
}

func TestAnalyzeAndGenerateEndpoints(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})

	rec := get(t, h, "/api/analyze", url.Values{"q": {"devo"}, "pos": {"noun"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var words []string
	for _, a := range decode[analyzeResponse](t, rec).Analyses {
		words = append(words, a.Word)
	}
	assert.Contains(t, words, "dev_o")

	rec = get(t, h, "/api/generate", url.Values{"q": {"deva"}, "pos": {"noun"}, "gender": {"m"}})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[generateResponse](t, rec)
	require.NotEmpty(t, resp.Forms)
	words = words[:0]
	for _, f := range resp.Forms {
		words = append(words, f.Word)
		assert.Equal(t, "masculine", f.Features["gender"])
	}
	assert.Contains(t, words, "devo")
}

func TestSandhiEndpoints(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})

	rec := get(t, h, "/api/merge", url.Values{"q": {"tathā", "eva"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"tatheva"}, decode[mergeResponse](t, rec).Merged)

	rec = get(t, h, "/api/split", url.Values{"q": {"tatheva"}, "depth": {"1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var segments [][]string
	for _, s := range decode[splitResponse](t, rec).Splits {
		segments = append(segments, s.Segments)
	}
	assert.Contains(t, segments, []string{"tathā", "eva"})

	rec = get(t, h, "/api/split", url.Values{"q": {"tatheva"}, "depth": {"1000"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[splitResponse](t, rec).Splits)

	rec = get(t, h, "/api/compound", url.Values{"q": {"dhammacakka"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"dhamma", "cakka"}, decode[compoundResponse](t, rec).Members)

	rec = get(t, h, "/api/stem", url.Values{"q": {"devo"}, "pos": {"noun"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"dev"}, decode[stemResponse](t, rec).Stems)
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{RateLimit: 0.001, RateBurst: 1})
	assert.Equal(t, http.StatusOK, get(t, h, "/health", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, h, "/health", nil).Code)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, config.ServerConfig{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://reader.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestExtractClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "192.0.2.1", extractClientIP(req))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", extractClientIP(req))
}
