package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"grocery-planner/internal/mealplan/plandb"
)

// Repository is a database-backed repository for meal plans.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// Save inserts a new meal plan and returns its database ID.
func (r *Repository) Save(ctx context.Context, userID string, plan *MealPlan) (int64, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal meal plan: %w", err)
	}

	var estimate sql.NullFloat64
	if plan.EstimatedCost != nil {
		estimate = sql.NullFloat64{Float64: *plan.EstimatedCost, Valid: true}
	}

	id, err := r.queries.InsertMealPlan(ctx, plandb.InsertMealPlanParams{
		UserID:        userID,
		PlanData:      string(planJSON),
		EstimatedCost: estimate,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal plan: %w", err)
	}
	return id, nil
}

// Get retrieves a meal plan by its ID. Returns nil when the plan does not
// exist.
func (r *Repository) Get(ctx context.Context, id int64) (*MealPlan, error) {
	dbPlan, err := r.queries.GetMealPlanByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal plan by ID: %w", err)
	}

	var plan MealPlan
	if err := json.Unmarshal([]byte(dbPlan.PlanData), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan: %w", err)
	}
	plan.ID = dbPlan.ID
	if dbPlan.EstimatedCost.Valid {
		estimate := dbPlan.EstimatedCost.Float64
		plan.EstimatedCost = &estimate
	}
	return &plan, nil
}

// ListRecent retrieves the N most recent meal plans for a given user.
func (r *Repository) ListRecent(ctx context.Context, userID string, limit int) ([]MealPlan, error) {
	dbPlans, err := r.queries.ListRecentMealPlansByUserID(ctx, plandb.ListRecentMealPlansByUserIDParams{
		UserID: userID,
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent meal plans for user %s: %w", userID, err)
	}

	var plans []MealPlan
	for _, dbPlan := range dbPlans {
		var plan MealPlan
		if err := json.Unmarshal([]byte(dbPlan.PlanData), &plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meal plan %d: %w", dbPlan.ID, err)
		}
		plan.ID = dbPlan.ID
		if dbPlan.EstimatedCost.Valid {
			estimate := dbPlan.EstimatedCost.Float64
			plan.EstimatedCost = &estimate
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// Delete removes a meal plan. The grocery list attached to it goes with it
// via the schema's cascade rule.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.queries.DeleteMealPlan(ctx, id)
}
