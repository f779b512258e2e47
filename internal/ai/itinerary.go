package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/himalayan-adventures/trek-api/internal/models"
)

// ItineraryRequest carries the user's customization for a generated
// itinerary.
type ItineraryRequest struct {
	CustomDays      int      `json:"custom_days,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	FitnessLevel    string   `json:"fitness_level,omitempty"`
	SpecialRequests string   `json:"special_requests,omitempty"`
}

// ItinerarySystemPrompt embeds the trek's attributes and the user's
// preferences into the planner instruction.
func ItinerarySystemPrompt(trek *models.Trek, req ItineraryRequest) string {
	days := trek.DurationDays
	if req.CustomDays > 0 {
		days = req.CustomDays
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert trek itinerary planner for Himalayan Adventures.
Create a detailed, day-by-day itinerary for the following trek, customized to the user's preferences.

Trek Information:
- Title: %s
- Duration: %d days
- Difficulty: %s
- Max Altitude: %dm
- Overview: %s
- Highlights: %s
`, trek.Title, days, trek.DifficultyLevel, trek.MaxAltitude, trek.Overview, strings.Join(trek.Highlights, ", "))

	if len(trek.Itinerary) > 0 {
		existing, _ := json.Marshal(trek.Itinerary)
		fmt.Fprintf(&b, "- Existing Itinerary: %s\n", existing)
	}

	b.WriteString("\nUser Customization:\n")
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "- Special Interests: %s\n", strings.Join(req.Interests, ", "))
	}
	if req.FitnessLevel != "" {
		fmt.Fprintf(&b, "- Fitness Level: %s\n", req.FitnessLevel)
	}
	if req.SpecialRequests != "" {
		fmt.Fprintf(&b, "- Special Requests: %s\n", req.SpecialRequests)
	}

	b.WriteString(`
Create a comprehensive itinerary in markdown format that includes:
1. Day-by-day breakdown with timing
2. Activities and distances
3. Photography tips for scenic spots
4. Acclimatization advice
5. Important safety considerations
6. Recommended packing list specific to this trek
7. Local cultural insights

Make it engaging, informative, and tailored to their preferences.`)

	return b.String()
}

// StreamItinerary opens a streamed completion for the trek itinerary. The
// returned response body is the upstream event stream; the caller relays it
// and closes it.
func (c *Client) StreamItinerary(ctx context.Context, trek *models.Trek, req ItineraryRequest) (*http.Response, error) {
	return c.Chat(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: ItinerarySystemPrompt(trek, req)},
			{Role: "user", Content: "Generate my personalized itinerary."},
		},
		Stream: true,
	})
}
