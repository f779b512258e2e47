package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/himalayan-adventures/trek-api/internal/models"
)

// Preferences is the questionnaire input for trek matching.
type Preferences struct {
	ExperienceLevel string   `json:"experience_level"`
	Difficulty      string   `json:"difficulty"`
	Duration        string   `json:"duration"`
	Budget          string   `json:"budget"`
	Interests       []string `json:"interests"`
	Season          string   `json:"season"`
}

// Recommendation is one entry of the structured tool-call result, joined
// back to its full trek record.
type Recommendation struct {
	TrekID         string       `json:"trekId"`
	TrekTitle      string       `json:"trekTitle"`
	MatchScore     float64      `json:"matchScore"`
	Reasons        []string     `json:"reasons"`
	Considerations string       `json:"considerations,omitempty"`
	Trek           *models.Trek `json:"trek"`
}

var recommendTreksSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "trekId": {"type": "string"},
          "trekTitle": {"type": "string"},
          "matchScore": {"type": "number"},
          "reasons": {"type": "array", "items": {"type": "string"}},
          "considerations": {"type": "string"}
        },
        "required": ["trekId", "trekTitle", "matchScore", "reasons"],
        "additionalProperties": false
      }
    }
  },
  "required": ["recommendations"],
  "additionalProperties": false
}`)

func recommenderSystemPrompt(prefs Preferences, treks []models.Trek) string {
	catalog, _ := json.MarshalIndent(treks, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert trek recommendation system for Himalayan Adventures.
Analyze user preferences and match them with available treks to provide personalized recommendations.

User Preferences:
- Experience Level: %s
- Preferred Difficulty: %s
- Duration: %s
- Budget Range: %s
- Interests: %s
- Preferred Season: %s

Available Treks:
%s

Recommend the top 3 most suitable treks. For each trek, provide:
1. Match score (0-100)
2. Key reasons why it matches their preferences
3. Any considerations or tips

Return your response as a structured recommendation.`,
		prefs.ExperienceLevel, prefs.Difficulty, prefs.Duration, prefs.Budget,
		strings.Join(prefs.Interests, ", "), prefs.Season, catalog)
	return b.String()
}

// Recommend asks the model to rank the given treks against the preferences
// via a constrained tool call, then joins each recommendation to its trek.
func (c *Client) Recommend(ctx context.Context, prefs Preferences, treks []models.Trek) ([]Recommendation, error) {
	toolChoice := &ToolChoice{Type: "function"}
	toolChoice.Function.Name = "recommend_treks"

	resp, err := c.Complete(ctx, ChatRequest{
		Messages: []Message{
			{Role: "system", Content: recommenderSystemPrompt(prefs, treks)},
			{Role: "user", Content: "Based on my preferences, recommend the best treks for me."},
		},
		Tools: []Tool{{
			Type: "function",
			Function: Function{
				Name:        "recommend_treks",
				Description: "Provide trek recommendations with match scores and reasons",
				Parameters:  recommendTreksSchema,
			},
		}},
		ToolChoice: toolChoice,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("AI response contained no tool call")
	}

	var parsed struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	byID := make(map[uint]*models.Trek, len(treks))
	for i := range treks {
		byID[treks[i].ID] = &treks[i]
	}
	for i := range parsed.Recommendations {
		if id, err := strconv.ParseUint(parsed.Recommendations[i].TrekID, 10, 64); err == nil {
			parsed.Recommendations[i].Trek = byID[uint(id)]
		}
	}

	return parsed.Recommendations, nil
}
