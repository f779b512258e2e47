package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/ai"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

func TestHandleGenerateItineraryRelaysStream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Day 1: \"}}]}\n\n"))
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Arrive in Manali\"}}]}\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer upstream.Close()

	h := NewAIHandler(store.NewMemStore(), ai.NewClient(upstream.URL, "test-key", "test-model"), nil)

	req := httptest.NewRequest("POST", "/ai/itinerary", strings.NewReader(`{"trek_id":1,"fitness_level":"beginner"}`))
	rr := httptest.NewRecorder()
	h.HandleGenerateItinerary(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("expected event stream content type, got %q", got)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Arrive in Manali") || !strings.Contains(body, "[DONE]") {
		t.Errorf("upstream chunks not relayed: %q", body)
	}
}

func TestHandleGenerateItineraryUnknownTrek(t *testing.T) {
	h := NewAIHandler(store.NewMemStore(), ai.NewClient("http://example.invalid", "test-key", "test-model"), nil)

	req := httptest.NewRequest("POST", "/ai/itinerary", strings.NewReader(`{"trek_id":999}`))
	rr := httptest.NewRecorder()
	h.HandleGenerateItinerary(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestHandleGenerateItineraryGatewayStatuses(t *testing.T) {
	cases := []struct {
		name     string
		upstream int
		want     int
		message  string
	}{
		{"RateLimited", http.StatusTooManyRequests, http.StatusTooManyRequests, "Rate limits exceeded"},
		{"OutOfCredits", http.StatusPaymentRequired, http.StatusPaymentRequired, "AI credits exhausted"},
		{"UpstreamFailure", http.StatusBadGateway, http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.upstream)
			}))
			defer upstream.Close()

			h := NewAIHandler(store.NewMemStore(), ai.NewClient(upstream.URL, "test-key", "test-model"), nil)

			req := httptest.NewRequest("POST", "/ai/itinerary", strings.NewReader(`{"trek_id":1}`))
			rr := httptest.NewRecorder()
			h.HandleGenerateItinerary(rr, req)

			if rr.Code != tc.want {
				t.Errorf("expected %d, got %d", tc.want, rr.Code)
			}
			if tc.message != "" && !strings.Contains(rr.Body.String(), tc.message) {
				t.Errorf("expected message %q, got %s", tc.message, rr.Body.String())
			}
		})
	}
}
