package pricing

import (
	"context"
	"log"

	"grocery-planner/internal/grocery"
	"grocery-planner/internal/shared"
)

// MetaRecorder receives usage metadata from each lookup. The metrics store
// satisfies this; a nil recorder disables recording.
type MetaRecorder interface {
	RecordMeta(meta shared.AgentMeta) error
}

// Pricer fills in prices on a grocery list via a Looker.
type Pricer struct {
	looker   Looker
	recorder MetaRecorder
}

// NewPricer creates a Pricer. recorder may be nil.
func NewPricer(looker Looker, recorder MetaRecorder) *Pricer {
	return &Pricer{looker: looker, recorder: recorder}
}

// PriceAll looks up every unpriced item in the list and applies the quotes
// that come back. Failed or declined lookups leave the item unpriced; the
// list stays partially priced, which callers treat as a normal state. The
// number of items that received a price is returned.
func (p *Pricer) PriceAll(ctx context.Context, list grocery.List) int {
	priced := 0
	for _, category := range grocery.Categories {
		for _, item := range list.Items(category) {
			if item.Price != nil {
				continue
			}

			quote, meta, err := p.looker.LookupPrice(ctx, item.Name)
			p.record(meta)
			if err != nil {
				log.Printf("Price lookup failed for '%s': %v", item.Name, err)
				continue
			}
			if quote == nil {
				continue
			}
			if list.ApplyQuote(category, item.Name, quote.Price, quote.Unit) {
				priced++
			}
		}
	}
	return priced
}

// PriceItem looks up a single item and applies the quote on success.
func (p *Pricer) PriceItem(ctx context.Context, list grocery.List, category grocery.Category, name string) (bool, error) {
	quote, meta, err := p.looker.LookupPrice(ctx, name)
	p.record(meta)
	if err != nil {
		return false, err
	}
	if quote == nil {
		return false, nil
	}
	return list.ApplyQuote(category, name, quote.Price, quote.Unit), nil
}

func (p *Pricer) record(meta shared.AgentMeta) {
	if p.recorder == nil {
		return
	}
	if err := p.recorder.RecordMeta(meta); err != nil {
		log.Printf("Failed to record lookup metrics: %v", err)
	}
}
