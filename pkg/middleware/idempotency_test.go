package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newCountingHandler(status int) (http.Handler, *int) {
	calls := 0
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"call":%d}`, calls)
	}), &calls
}

func TestIdempotencyReplaysCachedCreation(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	inner, calls := newCountingHandler(http.StatusCreated)
	handler := Idempotency(store, "")(inner)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments/createAppointment", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "booking-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first submit, got %d", first.Code)
	}

	second := send()
	if second.Code != http.StatusCreated {
		t.Fatalf("expected the cached 201 on replay, got %d", second.Code)
	}
	if *calls != 1 {
		t.Errorf("expected the handler to run once, ran %d times", *calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("replay body mismatch: %q vs %q", second.Body.String(), first.Body.String())
	}
	if second.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected the cached headers on replay, got %q", second.Header().Get("Content-Type"))
	}
}

func TestIdempotencyDoesNotCacheFailures(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	inner, calls := newCountingHandler(http.StatusConflict)
	handler := Idempotency(store, "")(inner)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments/createAppointment", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "booking-409")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	}

	if *calls != 2 {
		t.Errorf("a non-2xx response must not be replayed; handler ran %d times", *calls)
	}
}

func TestIdempotencyPassesThroughWithoutKey(t *testing.T) {
	store := NewInMemoryIdempotencyStore(time.Minute)
	defer store.Stop()

	inner, calls := newCountingHandler(http.StatusCreated)
	handler := Idempotency(store, "")(inner)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/appointments/createAppointment", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	}

	if *calls != 2 {
		t.Errorf("requests without a key must not be cached; handler ran %d times", *calls)
	}
}

func TestInMemoryIdempotencyStoreExpiresEntries(t *testing.T) {
	store := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	defer store.Stop()

	store.Set("booking-ttl", &CachedResponse{StatusCode: http.StatusCreated})
	if _, found := store.Get("booking-ttl"); !found {
		t.Fatal("expected a fresh entry to be found")
	}

	time.Sleep(20 * time.Millisecond)
	if _, found := store.Get("booking-ttl"); found {
		t.Error("expected the entry to expire after the TTL")
	}
}
