package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLookup struct {
	calls   int
	entries map[string][]Entry
	err     error
}

func (c *countingLookup) FetchEntries(_ context.Context, word string) ([]Entry, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.entries[word], nil
}

func (c *countingLookup) Exists(ctx context.Context, word string) (bool, error) {
	e, err := c.FetchEntries(ctx, word)
	return len(e) > 0, err
}

func newDictServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/lemmas/") {
		case "deva":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]Entry{{Lemma: "deva", WordClass: "noun", Gender: "m"}})
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		case "garbage":
			_, _ = w.Write([]byte("{not json"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newDictServer(t)
	c := NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	entries, err := c.FetchEntries(ctx, "deva")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "noun", entries[0].WordClass)

	ok, err := c.Exists(ctx, "deva")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(ctx, "asdf")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.FetchEntries(ctx, "broken")
	assert.Error(t, err)

	_, err = c.FetchEntries(ctx, "garbage")
	assert.Error(t, err)
}

func TestClientCanceled(t *testing.T) {
	srv := newDictServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, 0).Exists(ctx, "deva")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCached(t *testing.T) {
	inner := &countingLookup{entries: map[string][]Entry{"deva": {{Lemma: "deva"}}}}
	c := NewCached(inner, 10, time.Minute)
	ctx := context.Background()

	for range 3 {
		ok, err := c.Exists(ctx, "deva")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 1, inner.calls)

	ok, err := c.Exists(ctx, "rāja")
	require.NoError(t, err)
	assert.False(t, ok)
	_, _ = c.Exists(ctx, "rāja")
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 2, c.Len())
}

func TestCachedDoesNotKeepErrors(t *testing.T) {
	inner := &countingLookup{err: errors.New("down")}
	c := NewCached(inner, 0, 0)
	_, err := c.Exists(context.Background(), "deva")
	assert.Error(t, err)
	_, err = c.Exists(context.Background(), "deva")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 0, c.Len())
}

const staticYAML = `
lemmas:
  - lemma: deva
    pos: noun
    gender: m
    forms: [devo, devā, deva]
  - lemma: gacchati
    pos: verb
`

func TestStatic(t *testing.T) {
	s, err := LoadStatic(strings.NewReader(staticYAML))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		word   string
		exists bool
	}{
		{"deva", true},
		{"devo", true},
		{"devā", true},
		{"gacchati", true},
		{"gacchanti", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			ok, err := s.Exists(ctx, tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, ok)
		})
	}

	entries, _ := s.FetchEntries(ctx, "deva")
	require.Len(t, entries, 1)
	assert.Equal(t, "m", entries[0].Gender)
}

func TestLoadStaticErrors(t *testing.T) {
	_, err := LoadStatic(strings.NewReader("lemmas:\n  - pos: noun\n"))
	assert.Error(t, err)
	_, err = LoadStatic(strings.NewReader("lemmas: [\n"))
	assert.Error(t, err)
	s, err := LoadStatic(strings.NewReader(""))
	require.NoError(t, err)
	ok, _ := s.Exists(context.Background(), "deva")
	assert.False(t, ok)
	_, err = LoadStaticFile("/nonexistent/lexicon.yaml")
	assert.Error(t, err)
}

func TestNull(t *testing.T) {
	ok, err := Null{}.Exists(context.Background(), "deva")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheFallsBack(t *testing.T) {
	inner := &countingLookup{entries: map[string][]Entry{"deva": {{Lemma: "deva"}}}}
	rc := NewRedisCache(RedisConf{Addr: "127.0.0.1:1", TTLSecs: 60}, inner)
	defer rc.Close()

	ok, err := rc.Exists(context.Background(), "deva")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, inner.calls)
}

func TestCreateCacheID(t *testing.T) {
	id := createCacheID("deva")
	assert.True(t, strings.HasPrefix(id, "pali:lexicon:"))
	assert.Len(t, id, len("pali:lexicon:")+40)
	assert.NotEqual(t, id, createCacheID("devā"))
}
