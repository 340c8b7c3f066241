package entitystore

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"grocery-planner/internal/config"
	"grocery-planner/internal/grocery"

	"github.com/golang-jwt/jwt/v5"
)

// listPayload is the wire shape for a grocery list record attached to a
// meal plan.
type listPayload struct {
	MealPlanID int64        `json:"meal_plan_id"`
	List       grocery.List `json:"grocery_list"`
}

// Client is an interface for the hosted entity store that keeps grocery
// list records alongside their meal plans.
type Client interface {
	FetchList(mealPlanID int64) (grocery.List, error)
	SaveList(mealPlanID int64, list grocery.List) error
	DeleteList(mealPlanID int64) error
}

// storeClient is the concrete implementation of the entity store client.
type storeClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient creates a new entity store client.
func NewClient(cfg *config.Config) Client {
	return &storeClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		config:     cfg,
	}
}

// FetchList retrieves the grocery list record for a meal plan. A missing
// record is not an error; it returns nil so the caller can derive a fresh
// list from the plan.
func (c *storeClient) FetchList(mealPlanID int64) (grocery.List, error) {
	token, err := c.createAdminToken()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin token: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/meal-plans/%d/grocery-list", c.config.StoreAPIURL, mealPlanID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil // No list persisted yet
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("entity store error: status %d", resp.StatusCode)
	}

	var payload listPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	list := payload.List
	if list == nil {
		list = grocery.NewList()
	}
	list.Reconcile()
	return list, nil
}

// SaveList writes the full grocery list record for a meal plan. Every
// mutation the caller wants to survive a reload must be followed by a save.
func (c *storeClient) SaveList(mealPlanID int64, list grocery.List) error {
	token, err := c.createAdminToken()
	if err != nil {
		return fmt.Errorf("failed to create admin token: %w", err)
	}

	body, err := json.Marshal(listPayload{MealPlanID: mealPlanID, List: list})
	if err != nil {
		return fmt.Errorf("failed to marshal grocery list: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/meal-plans/%d/grocery-list", c.config.StoreAPIURL, mealPlanID)
	req, err := http.NewRequest("PUT", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errResp interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("entity store error: status %d, body: %v", resp.StatusCode, errResp)
	}
	return nil
}

// DeleteList removes the grocery list record for a meal plan.
func (c *storeClient) DeleteList(mealPlanID int64) error {
	token, err := c.createAdminToken()
	if err != nil {
		return fmt.Errorf("failed to create admin token: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/meal-plans/%d/grocery-list", c.config.StoreAPIURL, mealPlanID)
	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("entity store error: status %d", resp.StatusCode)
	}
	return nil
}

// createAdminToken generates a short-lived JWT for the store's admin API.
func (c *storeClient) createAdminToken() (string, error) {
	keyParts := strings.Split(c.config.StoreAdminKey, ":")
	if len(keyParts) != 2 {
		return "", fmt.Errorf("invalid admin key format: expected id:secret")
	}

	id := keyParts[0]
	secretHex := keyParts[1]

	secret, err := hex.DecodeString(secretHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret hex: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(5 * time.Minute).Unix(),
		"aud": "/v1/admin/",
	})
	token.Header["kid"] = id

	return token.SignedString(secret)
}
