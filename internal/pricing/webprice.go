package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"grocery-planner/internal/llm"
	"grocery-planner/internal/shared"

	"github.com/PuerkitoBio/goquery"
)

// webLooker grounds price estimates in a store's public search page: the
// page text is fetched, stripped of markup noise and handed to the LLM as
// context. Falls back to nothing when the fetch fails; the caller already
// treats missing quotes as a normal state.
type webLooker struct {
	searchURL  string // printf format with one %s for the query
	textGen    llm.TextGenerator
	httpClient *http.Client
}

// NewWebLooker creates a Looker that reads prices off the search page at
// searchURL (a format string receiving the URL-escaped item name).
func NewWebLooker(searchURL string, textGen llm.TextGenerator) Looker {
	return &webLooker{
		searchURL: searchURL,
		textGen:   textGen,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// LookupPrice fetches the store page for the item and asks the model to
// extract a price from it.
func (w *webLooker) LookupPrice(ctx context.Context, itemName string) (*Quote, shared.AgentMeta, error) {
	start := time.Now()
	meta := shared.AgentMeta{AgentName: "WebPricer"}

	pageText, err := w.fetchAndCleanHTML(ctx, itemName)
	if err != nil {
		meta.Latency = time.Since(start)
		return nil, meta, fmt.Errorf("failed to fetch store page: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a grocery pricing assistant. The text below comes from a grocery store search results page for "%s".
Find the most relevant price for that item.

Return the result strictly as a JSON object with this structure:
{
  "price": 3.99,
  "unit": "per lb"
}

If no price for the item appears in the text, return {"price": -1, "unit": ""}.
Do not include any other text in your response.

Page Text:
%s
`, itemName, pageText)

	resp, err := w.textGen.GenerateContent(ctx, prompt)
	meta.Usage = resp.Usage
	meta.Latency = time.Since(start)
	if err != nil {
		return nil, meta, fmt.Errorf("failed to extract price for %q: %w", itemName, err)
	}

	quote, err := parseQuote(resp.Content)
	if err != nil {
		return nil, meta, fmt.Errorf("failed to parse price for %q: %w", itemName, err)
	}
	return quote, meta, nil
}

func (w *webLooker) fetchAndCleanHTML(ctx context.Context, itemName string) (string, error) {
	pageURL := fmt.Sprintf(w.searchURL, url.QueryEscape(itemName))

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return strings.TrimSpace(doc.Find("body").Text()), nil
}
