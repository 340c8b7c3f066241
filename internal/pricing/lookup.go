package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grocery-planner/internal/llm"
	"grocery-planner/internal/shared"
)

// Quote is a price estimate for one named grocery item.
type Quote struct {
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
}

// Looker looks up a price quote for an item name. A nil quote with a nil
// error means no price is available; callers treat that the same as a
// failed lookup and leave the item unpriced.
type Looker interface {
	LookupPrice(ctx context.Context, itemName string) (*Quote, shared.AgentMeta, error)
}

// llmLooker estimates grocery prices with an LLM.
type llmLooker struct {
	textGen llm.TextGenerator
}

// NewLLMLooker creates a Looker backed by the given text generator.
func NewLLMLooker(textGen llm.TextGenerator) Looker {
	return &llmLooker{textGen: textGen}
}

// LookupPrice asks the model for a typical US grocery price for the item.
func (l *llmLooker) LookupPrice(ctx context.Context, itemName string) (*Quote, shared.AgentMeta, error) {
	start := time.Now()

	prompt := fmt.Sprintf(`
You are a grocery pricing assistant. Estimate the typical US grocery store price for the item below.

Item: "%s"

Return the result strictly as a JSON object with this structure:
{
  "price": 3.99,
  "unit": "per lb"
}

Use a sensible unit such as "per lb", "each", "per dozen" or "per bag".
If you cannot price the item, return {"price": -1, "unit": ""}.
Do not include any other text in your response.
`, itemName)

	resp, err := l.textGen.GenerateContent(ctx, prompt)
	meta := shared.AgentMeta{
		AgentName: "Pricer",
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}
	if err != nil {
		return nil, meta, fmt.Errorf("failed to look up price for %q: %w", itemName, err)
	}

	quote, err := parseQuote(resp.Content)
	if err != nil {
		return nil, meta, fmt.Errorf("failed to parse price for %q: %w", itemName, err)
	}
	return quote, meta, nil
}

// parseQuote decodes the model's JSON answer. A negative price is the
// model's way of declining; that becomes a nil quote, not an error.
func parseQuote(content string) (*Quote, error) {
	var quote Quote
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &quote); err != nil {
		return nil, fmt.Errorf("invalid quote JSON: %w. Response: %s", err, content)
	}
	if quote.Price < 0 {
		return nil, nil
	}
	return &quote, nil
}
