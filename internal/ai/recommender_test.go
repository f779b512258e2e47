package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/himalayan-adventures/trek-api/internal/models"
	"gorm.io/gorm"
)

func sampleTreks() []models.Trek {
	return []models.Trek{
		{Model: gorm.Model{ID: 1}, Slug: "chandratal-lake-trek", Title: "Chandratal Lake Trek", DifficultyLevel: "moderate", BasePrice: 25000},
		{Model: gorm.Model{ID: 3}, Slug: "hampta-pass-circuit", Title: "Hampta Pass Circuit", DifficultyLevel: "moderate", BasePrice: 18000},
	}
}

func TestRecommendParsesToolCallAndJoinsTreks(t *testing.T) {
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		args := `{"recommendations":[` +
			`{"trekId":"1","trekTitle":"Chandratal Lake Trek","matchScore":92,"reasons":["moderate difficulty","alpine lake"],"considerations":"acclimatize in Manali"},` +
			`{"trekId":"99","trekTitle":"Unknown Trek","matchScore":40,"reasons":["filler"]}]}`
		resp := map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{
					"tool_calls": []map[string]any{{
						"function": map[string]any{"name": "recommend_treks", "arguments": args},
					}},
				},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model")
	prefs := Preferences{ExperienceLevel: "beginner", Difficulty: "moderate", Season: "July", Interests: []string{"lakes"}}

	recs, err := client.Recommend(context.Background(), prefs, sampleTreks())
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	if recs[0].Trek == nil || recs[0].Trek.Slug != "chandratal-lake-trek" {
		t.Errorf("expected first recommendation joined to its trek, got %+v", recs[0].Trek)
	}
	if recs[0].MatchScore != 92 {
		t.Errorf("expected match score 92, got %.0f", recs[0].MatchScore)
	}
	// An id the catalog does not contain stays unjoined.
	if recs[1].Trek != nil {
		t.Errorf("expected unknown trek id to stay unjoined, got %+v", recs[1].Trek)
	}

	if gotReq.ToolChoice == nil || gotReq.ToolChoice.Function.Name != "recommend_treks" {
		t.Errorf("expected a forced recommend_treks tool choice, got %+v", gotReq.ToolChoice)
	}
	if gotReq.Stream {
		t.Error("recommendations must not be streamed")
	}
	if gotReq.Model != "test-model" {
		t.Errorf("expected default model to be applied, got %q", gotReq.Model)
	}
}

func TestRecommendWithoutToolCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{{
				"message": map[string]any{"content": "Sorry, I can only answer in prose."},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model")
	if _, err := client.Recommend(context.Background(), Preferences{}, sampleTreks()); err == nil {
		t.Fatal("expected error when the response has no tool call, got nil")
	}
}

func TestChatSurfacesGatewayStatus(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusPaymentRequired} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"gateway says no"}`))
		}))

		client := NewClient(srv.URL, "test-key", "test-model")
		_, err := client.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "hi"}}})

		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError for %d, got %v", status, err)
		}
		if se.StatusCode != status {
			t.Errorf("expected status %d, got %d", status, se.StatusCode)
		}
		if se.Body == "" {
			t.Error("expected the gateway body to be captured")
		}
		srv.Close()
	}
}

func TestChatRequiresKey(t *testing.T) {
	client := NewClient("http://example.invalid", "", "test-model")
	if _, err := client.Chat(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error without a gateway key, got nil")
	}
}
