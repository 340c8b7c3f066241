package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"grocery-planner/internal/grocery"
	"grocery-planner/internal/storage/listdb"
)

// ListRepository handles persistence of grocery lists. A plan has at most
// one list; saves overwrite the stored copy wholesale, mirroring how the
// in-memory list is the source of truth between saves.
type ListRepository struct {
	queries *listdb.Queries
	db      *sql.DB
}

// NewListRepository creates a new grocery list repository.
func NewListRepository(d *sql.DB) *ListRepository {
	return &ListRepository{
		queries: listdb.New(d),
		db:      d,
	}
}

// Save upserts the grocery list for a meal plan.
func (r *ListRepository) Save(ctx context.Context, mealPlanID int64, userID string, list grocery.List) error {
	itemsJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal grocery list: %w", err)
	}

	now := time.Now().UTC()
	err = r.queries.UpsertGroceryList(ctx, listdb.UpsertGroceryListParams{
		MealPlanID: mealPlanID,
		UserID:     userID,
		Items:      string(itemsJSON),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert grocery list: %w", err)
	}
	return nil
}

// GetByMealPlanID retrieves the grocery list for a meal plan. The loaded
// list is reconciled before it is returned: lists saved before
// deduplication was enforced may still contain duplicate entries. Returns
// nil when no list has been persisted yet, which tells the caller to derive
// a fresh one from the plan instead.
func (r *ListRepository) GetByMealPlanID(ctx context.Context, mealPlanID int64) (grocery.List, error) {
	dbList, err := r.queries.GetGroceryListByMealPlanID(ctx, mealPlanID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No grocery list persisted yet
		}
		return nil, fmt.Errorf("failed to get grocery list by meal plan ID: %w", err)
	}

	list := grocery.NewList()
	if err := json.Unmarshal([]byte(dbList.Items), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grocery list items: %w", err)
	}

	list.Reconcile()
	return list, nil
}

// DeleteByMealPlanID deletes the grocery list for a meal plan.
func (r *ListRepository) DeleteByMealPlanID(ctx context.Context, mealPlanID int64) error {
	return r.queries.DeleteGroceryListByMealPlanID(ctx, mealPlanID)
}
