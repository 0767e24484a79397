// Package acceptance runs the full HTTP stack in-process against the fake
// repository: router, middleware, handlers, validation and service together.
package acceptance

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keksobooking/api/internal/domain"
	"github.com/keksobooking/api/internal/generator"
	httpHandlers "github.com/keksobooking/api/internal/http/handler"
	appRouter "github.com/keksobooking/api/internal/http/router"
	"github.com/keksobooking/api/internal/repository/fake"
	"github.com/keksobooking/api/internal/service"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newServer(t *testing.T, offers ...domain.Offer) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := fake.NewOfferRepository(fake.WithOffers(offers...))
	svc := service.NewService(repo, fixedClock{time.Unix(1541232233, 0)},
		service.WithNamePicker(func() string { return "Keks" }))
	h := httpHandlers.NewHandler(svc)
	router := appRouter.NewRouter(h, httpHandlers.NewHealthHandler(nil, nil))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSONRequest(t *testing.T, method, url string, body any, v any) (int, http.Header) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		buf = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode: %v", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode, resp.Header
}

func Test_OfferLifecycle(t *testing.T) {
	srv := newServer(t)

	// Create an offer
	createReq := map[string]any{
		"title":    "Маленькая квартирка рядом с парком и речкой",
		"type":     "flat",
		"price":    30000,
		"address":  "310, 450",
		"checkin":  "12:00",
		"checkout": "13:00",
		"rooms":    2,
		"features": []string{"wifi", "parking"},
	}
	var created map[string]any
	code, _ := doJSONRequest(t, http.MethodPost, srv.URL+"/api/offers", createReq, &created)
	if code != http.StatusOK {
		t.Fatalf("create failed: %d", code)
	}
	loc, ok := created["location"].(map[string]any)
	if !ok || loc["x"] != float64(310) || loc["y"] != float64(450) {
		t.Fatalf("location not derived: %#v", created["location"])
	}

	// The created offer is retrievable under the stamped date key
	var got domain.Offer
	code, _ = doJSONRequest(t, http.MethodGet, srv.URL+"/api/offers/1541232233", nil, &got)
	if code != http.StatusOK {
		t.Fatalf("get failed: %d", code)
	}
	if got.Title != createReq["title"] || got.Author.Name != "Keks" {
		t.Fatalf("retrieved offer mismatch: %+v", got)
	}

	// And it shows up in the listing
	var page domain.OffersPage
	code, _ = doJSONRequest(t, http.MethodGet, srv.URL+"/api/offers", nil, &page)
	if code != http.StatusOK {
		t.Fatalf("list failed: %d", code)
	}
	if page.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func Test_ListPagination(t *testing.T) {
	offers := generator.New(7, generator.WithNow(func() time.Time {
		return time.Unix(1541232233, 0)
	})).Entities(25)
	srv := newServer(t, offers...)

	var page domain.OffersPage
	code, _ := doJSONRequest(t, http.MethodGet, srv.URL+"/api/offers?skip=20&limit=10", nil, &page)
	if code != http.StatusOK {
		t.Fatalf("list failed: %d", code)
	}
	if page.Total != 25 || len(page.Data) != 5 {
		t.Fatalf("unexpected page: total=%d items=%d", page.Total, len(page.Data))
	}
	if page.Skip != 20 || page.Limit != 10 {
		t.Fatalf("paging params not echoed: %+v", page)
	}
}

func Test_ValidationErrors(t *testing.T) {
	srv := newServer(t)

	var violations []map[string]any
	code, _ := doJSONRequest(t, http.MethodPost, srv.URL+"/api/offers", map[string]any{
		"title": "too short",
	}, &violations)
	if code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", code)
	}
	if len(violations) == 0 {
		t.Fatal("expected violations")
	}
	for _, v := range violations {
		if v["error"] != "Validation Error" {
			t.Fatalf("wrong violation label: %#v", v)
		}
	}
}

func Test_NotFoundAndNotImplemented(t *testing.T) {
	srv := newServer(t)

	var errResp []map[string]any
	code, _ := doJSONRequest(t, http.MethodGet, srv.URL+"/api/offers/12345", nil, &errResp)
	if code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", code)
	}
	if len(errResp) != 1 || errResp[0]["errorMessage"] != "offer with date equals to 12345 wasn't found" {
		t.Fatalf("wrong body: %#v", errResp)
	}

	code, _ = doJSONRequest(t, http.MethodGet, srv.URL+"/api/leads", nil, &errResp)
	if code != http.StatusNotImplemented {
		t.Fatalf("want 501, got %d", code)
	}
}

func Test_HTMLErrorNegotiation(t *testing.T) {
	srv := newServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/offers/abc", nil)
	req.Header.Set("Accept", "text/html")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	if string(body) != "date should be number" {
		t.Fatalf("wrong html body: %q", body)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		t.Logf("content type: %s", resp.Header.Get("Content-Type"))
	}
}

func Test_HeaderPropagation(t *testing.T) {
	srv := newServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "test-request-123")
	req.Header.Set("X-Client-ID", "test-client-456")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.Header.Get("X-Request-ID") != "test-request-123" {
		t.Error("expected X-Request-ID to be echoed back")
	}
	if resp.Header.Get("X-Client-ID") != "test-client-456" {
		t.Error("expected X-Client-ID to be echoed back")
	}

	req2, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	resp2, err := http.DefaultClient.Do(req2)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp2.Body.Close() }()

	if resp2.Header.Get("X-Request-ID") == "" {
		t.Error("expected auto-generated X-Request-ID")
	}
}
