package mealplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"grocery-planner/internal/llm"
	"grocery-planner/internal/shared"
)

// Generator produces weekly meal plans from a free-text user request.
type Generator struct {
	textGen llm.TextGenerator
}

// NewGenerator creates a new Generator instance.
func NewGenerator(textGen llm.TextGenerator) *Generator {
	return &Generator{textGen: textGen}
}

// Generate creates a meal plan based on a user request. The returned meta
// carries token usage for the metrics store.
func (g *Generator) Generate(ctx context.Context, userRequest string) (*MealPlan, shared.AgentMeta, error) {
	start := time.Now()

	prompt := fmt.Sprintf(`
You are an expert meal planner. Based on the user's request, create a 7-day meal plan.

User Request: "%s"

Instructions:
1. Plan breakfast, lunch, dinner and snacks for each of the 7 days (Monday to Sunday).
2. Keep meal names short and concrete, naming the main ingredients (e.g. "Grilled Salmon with Broccoli").
3. Estimate the total weekly grocery cost in dollars.
4. Return the result strictly as a JSON object with this structure:
{
  "days": [
    {
      "day": "Monday",
      "breakfast": {"name": "Meal Name", "calories": 400, "protein": 30, "carbs": 40, "fat": 12},
      "lunch": {...},
      "dinner": {...},
      "snacks": {...}
    },
    ...
  ],
  "estimated_cost": 85.50
}

Do not include any other text or formatting in your response.
`, userRequest)

	resp, err := g.textGen.GenerateContent(ctx, prompt)
	meta := shared.AgentMeta{
		AgentName: "Planner",
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}
	if err != nil {
		return nil, meta, fmt.Errorf("failed to generate meal plan from LLM: %w", err)
	}

	var plan MealPlan
	if err := json.Unmarshal([]byte(resp.Content), &plan); err != nil {
		return nil, meta, fmt.Errorf("failed to parse meal plan JSON: %w. Response: %s", err, resp.Content)
	}

	if len(plan.Days) == 0 {
		return nil, meta, fmt.Errorf("generated plan has no days")
	}

	return &plan, meta, nil
}
