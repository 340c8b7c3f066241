package pricing

import (
	"context"
	"fmt"
	"testing"

	"grocery-planner/internal/grocery"
	"grocery-planner/internal/llm"
	"grocery-planner/internal/shared"
)

type mockLooker struct {
	quotes map[string]*Quote
	calls  []string
}

func (m *mockLooker) LookupPrice(ctx context.Context, itemName string) (*Quote, shared.AgentMeta, error) {
	m.calls = append(m.calls, itemName)
	meta := shared.AgentMeta{AgentName: "Pricer", Usage: shared.TokenUsage{TotalTokens: 10}}
	quote, ok := m.quotes[itemName]
	if !ok {
		return nil, meta, fmt.Errorf("no quote for %s", itemName)
	}
	return quote, meta, nil
}

type mockRecorder struct {
	metas []shared.AgentMeta
}

func (m *mockRecorder) RecordMeta(meta shared.AgentMeta) error {
	m.metas = append(m.metas, meta)
	return nil
}

func TestPriceAll(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesQuotesAndSkipsFailures", func(t *testing.T) {
		list := grocery.NewList()
		_ = list.AddItem(grocery.CategoryProteins, "Salmon")
		_ = list.AddItem(grocery.CategoryProteins, "Chicken")
		_ = list.AddItem(grocery.CategoryVegetables, "Broccoli")

		looker := &mockLooker{quotes: map[string]*Quote{
			"Salmon":   {Price: 12.99, Unit: "per lb"},
			"Broccoli": nil, // lookup declined
		}}
		recorder := &mockRecorder{}
		pricer := NewPricer(looker, recorder)

		priced := pricer.PriceAll(ctx, list)
		if priced != 1 {
			t.Errorf("Expected 1 item priced, got %d", priced)
		}

		salmon := list.Items(grocery.CategoryProteins)[0]
		if salmon.Price == nil || *salmon.Price != 12.99 || salmon.Unit != "per lb" {
			t.Errorf("Expected salmon priced at 12.99 per lb, got %v", salmon)
		}

		// Failed lookup leaves price absent, not zero.
		chicken := list.Items(grocery.CategoryProteins)[1]
		if chicken.Price != nil {
			t.Errorf("Expected chicken to stay unpriced, got %v", *chicken.Price)
		}
		broccoli := list.Items(grocery.CategoryVegetables)[0]
		if broccoli.Price != nil {
			t.Errorf("Expected declined quote to leave broccoli unpriced, got %v", *broccoli.Price)
		}

		if len(recorder.metas) != 3 {
			t.Errorf("Expected 3 recorded lookups, got %d", len(recorder.metas))
		}
	})

	t.Run("SkipsAlreadyPricedItems", func(t *testing.T) {
		list := grocery.NewList()
		_ = list.AddItem(grocery.CategoryProteins, "Salmon")
		_ = list.SetPrice(grocery.CategoryProteins, "Salmon", 10, "per lb")

		looker := &mockLooker{quotes: map[string]*Quote{}}
		pricer := NewPricer(looker, nil)

		pricer.PriceAll(ctx, list)
		if len(looker.calls) != 0 {
			t.Errorf("Expected no lookups for priced items, got %v", looker.calls)
		}
	})
}

func TestPriceItem(t *testing.T) {
	ctx := context.Background()
	list := grocery.NewList()
	_ = list.AddItem(grocery.CategoryProteins, "Salmon")

	looker := &mockLooker{quotes: map[string]*Quote{
		"Salmon": {Price: 9.5, Unit: "per lb"},
	}}
	pricer := NewPricer(looker, nil)

	applied, err := pricer.PriceItem(ctx, list, grocery.CategoryProteins, "Salmon")
	if err != nil {
		t.Fatalf("PriceItem failed: %v", err)
	}
	if !applied {
		t.Fatal("Expected quote to be applied")
	}

	// An item the list does not contain: quote resolves but nothing to
	// apply it to. Discarded silently.
	looker.quotes["Tuna"] = &Quote{Price: 3, Unit: "each"}
	applied, err = pricer.PriceItem(ctx, list, grocery.CategoryProteins, "Tuna")
	if err != nil {
		t.Fatalf("PriceItem failed: %v", err)
	}
	if applied {
		t.Error("Expected unmatched quote to be discarded")
	}
}

type scriptedTextGen struct {
	content string
	err     error
}

func (s *scriptedTextGen) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	if s.err != nil {
		return llm.ContentResponse{}, s.err
	}
	return llm.ContentResponse{Content: s.content}, nil
}

func TestLLMLooker(t *testing.T) {
	ctx := context.Background()

	t.Run("ParsesQuote", func(t *testing.T) {
		looker := NewLLMLooker(&scriptedTextGen{content: `{"price": 4.25, "unit": "each"}`})
		quote, _, err := looker.LookupPrice(ctx, "Avocado")
		if err != nil {
			t.Fatalf("LookupPrice failed: %v", err)
		}
		if quote == nil || quote.Price != 4.25 || quote.Unit != "each" {
			t.Errorf("Expected 4.25 each, got %v", quote)
		}
	})

	t.Run("DeclinedQuote", func(t *testing.T) {
		looker := NewLLMLooker(&scriptedTextGen{content: `{"price": -1, "unit": ""}`})
		quote, _, err := looker.LookupPrice(ctx, "Mystery")
		if err != nil {
			t.Fatalf("Expected no error for declined quote, got %v", err)
		}
		if quote != nil {
			t.Errorf("Expected nil quote, got %v", quote)
		}
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		looker := NewLLMLooker(&scriptedTextGen{content: "no json here"})
		if _, _, err := looker.LookupPrice(ctx, "Salmon"); err == nil {
			t.Fatal("Expected an error for malformed response, got nil")
		}
	})

	t.Run("GeneratorFailure", func(t *testing.T) {
		looker := NewLLMLooker(&scriptedTextGen{err: fmt.Errorf("rate limited")})
		if _, _, err := looker.LookupPrice(ctx, "Salmon"); err == nil {
			t.Fatal("Expected an error when the generator fails, got nil")
		}
	})
}
