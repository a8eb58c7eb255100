package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-festival/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	body := []byte(`[{"id":"1"}]`)
	bs, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatal(err)
	}
	status, gotHdr, gotBody, ok := decodePayload(bs)
	if !ok || status != http.StatusOK || gotHdr.Get("Content-Type") != "application/json" || !bytes.Equal(gotBody, body) {
		t.Fatalf("decode = %d %v %q %v", status, gotHdr, gotBody, ok)
	}
	if _, _, _, ok := decodePayload([]byte{0, 0}); ok {
		t.Fatal("short payload decoded")
	}
	if _, _, _, ok := decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0}); ok {
		t.Fatal("payload with oversized header length decoded")
	}
}

func TestCacheKeyUsesRequestPath(t *testing.T) {
	e := echo.New()
	rc := NewResponseCache(config.CacheConfig{Prefix: "p", KeyStrategy: "route_query"}, nil, nil)
	key := func(target string) string {
		return rc.cacheKey(e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder()))
	}
	if key("/api/films/a") == key("/api/films/b") {
		t.Fatal("different film ids share a cache key")
	}
	if key("/api/films?status=approved") == key("/api/films?status=pending") {
		t.Fatal("query is not part of the key")
	}
	if key("/api/films") != key("/api/films") {
		t.Fatal("key is not stable")
	}
}

func TestDisabledCacheIsPassThrough(t *testing.T) {
	rc := NewResponseCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}, nil, nil)
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.String(http.StatusOK, "fresh") }, rc.Middleware())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Body.String() != "fresh" || rec.Header().Get("X-Cache") != "" {
		t.Fatalf("body %q X-Cache %q", rec.Body.String(), rec.Header().Get("X-Cache"))
	}
	if err := rc.Purge(context.Background()); err != nil {
		t.Fatalf("Purge on disabled cache: %v", err)
	}
	var nilCache *ResponseCache
	if err := nilCache.Purge(context.Background()); err != nil {
		t.Fatalf("Purge on nil cache: %v", err)
	}
}
