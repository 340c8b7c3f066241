package app

import (
	"context"
	"fmt"
	"log"

	"grocery-planner/internal/config"
	"grocery-planner/internal/database"
	"grocery-planner/internal/entitystore"
	"grocery-planner/internal/export"
	"grocery-planner/internal/grocery"
	"grocery-planner/internal/mealplan"
	"grocery-planner/internal/metrics"
	"grocery-planner/internal/pricing"
	"grocery-planner/internal/storage"
)

// App holds the application's dependencies.
type App struct {
	cfg          *config.Config
	db           *database.DB
	planRepo     *mealplan.Repository
	listRepo     *storage.ListRepository
	generator    *mealplan.Generator
	pricer       *pricing.Pricer
	categorizer  *grocery.Categorizer
	metricsStore *metrics.Store
	exporter     *export.Exporter
	storeClient  entitystore.Client // nil when no hosted store is configured
}

// NewApp creates and initializes a new App instance.
func NewApp(
	cfg *config.Config,
	db *database.DB,
	planRepo *mealplan.Repository,
	listRepo *storage.ListRepository,
	generator *mealplan.Generator,
	pricer *pricing.Pricer,
	metricsStore *metrics.Store,
	exporter *export.Exporter,
	storeClient entitystore.Client,
) *App {
	return &App{
		cfg:          cfg,
		db:           db,
		planRepo:     planRepo,
		listRepo:     listRepo,
		generator:    generator,
		pricer:       pricer,
		categorizer:  grocery.NewDefaultCategorizer(),
		metricsStore: metricsStore,
		exporter:     exporter,
		storeClient:  storeClient,
	}
}

// GeneratePlan creates a meal plan from a user request, derives its grocery
// list and persists both. Returns the new plan's ID and the list.
func (a *App) GeneratePlan(ctx context.Context, userID, request string) (int64, grocery.List, error) {
	plan, meta, err := a.generator.Generate(ctx, request)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to generate meal plan: %w", err)
	}
	if err := a.metricsStore.RecordMeta(meta); err != nil {
		log.Printf("Failed to record planner metrics: %v", err)
	}

	planID, err := a.planRepo.Save(ctx, userID, plan)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to save meal plan: %w", err)
	}

	list := grocery.BuildList(plan, a.categorizer)
	if err := a.saveList(ctx, planID, userID, list); err != nil {
		return 0, nil, err
	}
	return planID, list, nil
}

// LoadList returns the grocery list for a plan. A persisted list is loaded
// and reconciled so manual additions and price edits survive; only when no
// list was ever saved is a fresh one derived from the plan.
func (a *App) LoadList(ctx context.Context, mealPlanID int64) (grocery.List, *mealplan.MealPlan, error) {
	plan, err := a.planRepo.Get(ctx, mealPlanID)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, fmt.Errorf("meal plan %d not found", mealPlanID)
	}

	list, err := a.listRepo.GetByMealPlanID(ctx, mealPlanID)
	if err != nil {
		return nil, nil, err
	}
	if list == nil {
		list = grocery.BuildList(plan, a.categorizer)
		if err := a.saveList(ctx, mealPlanID, "", list); err != nil {
			return nil, nil, err
		}
	}
	return list, plan, nil
}

// PriceList fetches prices for every unpriced item on the plan's list and
// persists the result. Items the lookup cannot price stay unpriced.
func (a *App) PriceList(ctx context.Context, mealPlanID int64) (grocery.List, int, error) {
	list, _, err := a.LoadList(ctx, mealPlanID)
	if err != nil {
		return nil, 0, err
	}

	priced := a.pricer.PriceAll(ctx, list)
	if err := a.saveList(ctx, mealPlanID, "", list); err != nil {
		return nil, 0, err
	}
	return list, priced, nil
}

// AddItem adds a manual item to the plan's list and persists it.
func (a *App) AddItem(ctx context.Context, mealPlanID int64, category grocery.Category, name string) error {
	list, _, err := a.LoadList(ctx, mealPlanID)
	if err != nil {
		return err
	}
	if err := list.AddItem(category, name); err != nil {
		return err
	}
	return a.saveList(ctx, mealPlanID, "", list)
}

// RemoveItem removes an item from the plan's list and persists the change.
func (a *App) RemoveItem(ctx context.Context, mealPlanID int64, category grocery.Category, name string) error {
	list, _, err := a.LoadList(ctx, mealPlanID)
	if err != nil {
		return err
	}
	list.RemoveItem(category, name)
	return a.saveList(ctx, mealPlanID, "", list)
}

// ToggleChecked flips an item's shopping-progress flag and persists it.
func (a *App) ToggleChecked(ctx context.Context, mealPlanID int64, category grocery.Category, name string) error {
	list, _, err := a.LoadList(ctx, mealPlanID)
	if err != nil {
		return err
	}
	list.ToggleChecked(category, name)
	return a.saveList(ctx, mealPlanID, "", list)
}

// Plan retrieves a stored meal plan. Returns nil when it does not exist.
func (a *App) Plan(ctx context.Context, mealPlanID int64) (*mealplan.MealPlan, error) {
	return a.planRepo.Get(ctx, mealPlanID)
}

// RecentPlans lists the user's most recent meal plans, newest first.
func (a *App) RecentPlans(ctx context.Context, userID string, limit int) ([]mealplan.MealPlan, error) {
	return a.planRepo.ListRecent(ctx, userID, limit)
}

// ExportList writes the plan's list to an export file and returns its path.
func (a *App) ExportList(ctx context.Context, mealPlanID int64) (string, error) {
	list, _, err := a.LoadList(ctx, mealPlanID)
	if err != nil {
		return "", err
	}
	return a.exporter.Export(mealPlanID, list)
}

// DeletePlan removes a meal plan; its grocery list goes with it.
func (a *App) DeletePlan(ctx context.Context, mealPlanID int64) error {
	if a.storeClient != nil {
		if err := a.storeClient.DeleteList(mealPlanID); err != nil {
			log.Printf("Failed to delete list from entity store: %v", err)
		}
	}
	return a.planRepo.Delete(ctx, mealPlanID)
}

// saveList persists the list locally and, when a hosted store is
// configured, mirrors it there. A failed mirror does not fail the save; the
// local list stays the source of truth until the next successful sync.
func (a *App) saveList(ctx context.Context, mealPlanID int64, userID string, list grocery.List) error {
	if err := a.listRepo.Save(ctx, mealPlanID, userID, list); err != nil {
		return fmt.Errorf("failed to save grocery list: %w", err)
	}
	if a.storeClient != nil {
		if err := a.storeClient.SaveList(mealPlanID, list); err != nil {
			log.Printf("Failed to sync list to entity store: %v", err)
		}
	}
	return nil
}
