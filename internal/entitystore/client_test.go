package entitystore

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"grocery-planner/internal/config"
	"grocery-planner/internal/grocery"
)

// testAdminKey is an id:secret pair in the format the store issues.
const testAdminKey = "abc123:00112233445566778899aabbccddeeff"

func TestFetchList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				t.Errorf("Expected bearer token, got '%s'", auth)
			}
			if r.URL.Path != "/api/v1/meal-plans/42/grocery-list" {
				t.Errorf("Unexpected path %s", r.URL.Path)
			}

			w.WriteHeader(http.StatusOK)
			fmt.Fprintln(w, `{
				"meal_plan_id": 42,
				"grocery_list": {
					"Proteins": [
						{"name": "Salmon", "quantity": 1, "checked": false},
						{"name": "salmon", "quantity": 2, "checked": false}
					]
				}
			}`)
		}))
		defer server.Close()

		cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
		client := NewClient(cfg)

		list, err := client.FetchList(42)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		// Loaded lists are reconciled: the duplicate salmon rows merge.
		proteins := list.Items(grocery.CategoryProteins)
		if len(proteins) != 1 {
			t.Fatalf("Expected 1 item after reconcile, got %d", len(proteins))
		}
		if proteins[0].Quantity != 3 {
			t.Errorf("Expected merged quantity 3, got %v", proteins[0].Quantity)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
		client := NewClient(cfg)

		list, err := client.FetchList(42)
		if err != nil {
			t.Fatalf("Expected no error for missing list, got %v", err)
		}
		if list != nil {
			t.Errorf("Expected nil list for missing record, got %v", list)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
		client := NewClient(cfg)

		if _, err := client.FetchList(42); err == nil {
			t.Fatal("Expected an error for non-200 status code, got nil")
		}
	})

	t.Run("InvalidAdminKey", func(t *testing.T) {
		cfg := &config.Config{StoreAPIURL: "http://store.test", StoreAdminKey: "not-a-key"}
		client := NewClient(cfg)

		if _, err := client.FetchList(42); err == nil {
			t.Fatal("Expected an error for malformed admin key, got nil")
		}
	})
}

func TestSaveList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "PUT" {
				t.Errorf("Expected PUT, got %s", r.Method)
			}
			buf := make([]byte, r.ContentLength)
			r.Body.Read(buf)
			received = string(buf)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
		client := NewClient(cfg)

		list := grocery.NewList()
		_ = list.AddItem(grocery.CategoryProteins, "Salmon")

		if err := client.SaveList(42, list); err != nil {
			t.Fatalf("SaveList failed: %v", err)
		}
		if !strings.Contains(received, `"Salmon"`) {
			t.Errorf("Expected payload to contain the item, got %s", received)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
		client := NewClient(cfg)

		if err := client.SaveList(42, grocery.NewList()); err == nil {
			t.Fatal("Expected an error for rejected save, got nil")
		}
	})
}

func TestDeleteList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	cfg := &config.Config{StoreAPIURL: server.URL, StoreAdminKey: testAdminKey}
	client := NewClient(cfg)

	if err := client.DeleteList(42); err != nil {
		t.Fatalf("DeleteList failed: %v", err)
	}
}
