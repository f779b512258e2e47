package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/himalayan-adventures/trek-api/internal/ai"
	"github.com/himalayan-adventures/trek-api/internal/metrics"
	"github.com/himalayan-adventures/trek-api/internal/store"
)

type AIHandler struct {
	store   store.Store
	client  *ai.Client
	metrics *metrics.Metrics
}

func NewAIHandler(s store.Store, client *ai.Client, m *metrics.Metrics) *AIHandler {
	return &AIHandler{store: s, client: client, metrics: m}
}

func (h *AIHandler) countRequest(endpoint, status string) {
	if h.metrics != nil {
		h.metrics.AIRequests.WithLabelValues(endpoint, status).Inc()
	}
}

type itineraryBody struct {
	TrekID          uint     `json:"trek_id"`
	CustomDays      int      `json:"custom_days,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	FitnessLevel    string   `json:"fitness_level,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
}

// HandleGenerateItinerary relays the streamed completion to the client as
// server-sent events: chunks are forwarded in arrival order and the stream
// closes when the upstream closes or errors. Plain http handler because the
// response is a raw event stream.
func (h *AIHandler) HandleGenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var body itineraryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAIError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	trek, err := h.store.GetTrek(r.Context(), body.TrekID)
	if errors.Is(err, store.ErrNotFound) {
		writeAIError(w, http.StatusNotFound, "Trek not found")
		return
	}
	if err != nil {
		writeAIError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp, err := h.client.StreamItinerary(r.Context(), trek, ai.ItineraryRequest{
		CustomDays:      body.CustomDays,
		Interests:       body.Interests,
		FitnessLevel:    body.FitnessLevel,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		status, msg := aiErrorStatus(err)
		h.countRequest("itinerary", "error")
		writeAIError(w, status, msg)
		return
	}
	defer resp.Body.Close()
	h.countRequest("itinerary", "ok")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, canFlush := w.(http.Flusher)
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				return
			}
			if canFlush {
				flusher.Flush()
			}
		}
		if readErr == io.EOF {
			return
		}
		if readErr != nil {
			log.Printf("Itinerary stream interrupted: %v", readErr)
			return
		}
	}
}

// aiErrorStatus maps gateway failures onto the response: rate-limit and
// quota statuses pass through; everything else collapses to a 500.
func aiErrorStatus(err error) (int, string) {
	var statusErr *ai.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, "Rate limits exceeded. Please try again later."
		case http.StatusPaymentRequired:
			return http.StatusPaymentRequired, "AI credits exhausted. Please try again later."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writeAIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"error": message, "success": false})
}

type RecommendInput struct {
	Body struct {
		Preferences ai.Preferences `json:"preferences" required:"true"`
	}
}

type RecommendOutput struct {
	Body struct {
		Success         bool                `json:"success"`
		Recommendations []ai.Recommendation `json:"recommendations"`
	}
}

func (h *AIHandler) HandleRecommendTreks(ctx context.Context, input *RecommendInput) (*RecommendOutput, error) {
	treks, err := h.store.ListTreks(ctx, store.TrekFilter{})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to fetch treks: " + err.Error())
	}

	recs, err := h.client.Recommend(ctx, input.Body.Preferences, treks)
	if err != nil {
		h.countRequest("recommend", "error")
		status, msg := aiErrorStatus(err)
		return nil, huma.NewError(status, msg)
	}
	h.countRequest("recommend", "ok")

	res := &RecommendOutput{}
	res.Body.Success = true
	res.Body.Recommendations = recs
	return res, nil
}
