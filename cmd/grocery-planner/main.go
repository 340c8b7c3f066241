package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"grocery-planner/internal/app"
	"grocery-planner/internal/config"
	"grocery-planner/internal/database"
	"grocery-planner/internal/entitystore"
	"grocery-planner/internal/export"
	"grocery-planner/internal/grocery"
	"grocery-planner/internal/llm"
	"grocery-planner/internal/mealplan"
	"grocery-planner/internal/metrics"
	"grocery-planner/internal/pricing"
	"grocery-planner/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	plannerModel := llm.NewGroqClient(cfg, llm.ModelPlanner, 0.3)

	pricerModel, geminiCloser, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiCloser.Close()

	planRepo := mealplan.NewRepository(db.SQL)
	listRepo := storage.NewListRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	exporter, err := export.NewExporter("data/exports")
	if err != nil {
		log.Fatalf("Failed to initialize exporter: %v", err)
	}

	var storeClient entitystore.Client
	if cfg.StoreAPIURL != "" {
		storeClient = entitystore.NewClient(cfg)
	}

	generator := mealplan.NewGenerator(plannerModel)

	looker := pricing.NewLLMLooker(pricerModel)
	if cfg.PriceSearchURL != "" {
		looker = pricing.NewWebLooker(cfg.PriceSearchURL, pricerModel)
	}
	pricer := pricing.NewPricer(looker, metricsStore)

	application := app.NewApp(cfg, db, planRepo, listRepo, generator, pricer, metricsStore, exporter, storeClient)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		if len(os.Args) < 3 {
			log.Fatal("Usage: grocery-planner generate \"<request>\"")
		}
		planID, list, err := application.GeneratePlan(ctx, "local", os.Args[2])
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		fmt.Printf("Created meal plan %d with %d grocery items.\n\n", planID, list.Len())
		fmt.Print(export.Render(list))
	case "plans":
		plansCmd := flag.NewFlagSet("plans", flag.ExitOnError)
		limit := plansCmd.Int("limit", 10, "Number of recent plans to show")
		plansCmd.Parse(os.Args[2:])

		plans, err := application.RecentPlans(ctx, "local", *limit)
		if err != nil {
			log.Fatalf("Failed to list plans: %v", err)
		}
		if len(plans) == 0 {
			fmt.Println("No meal plans yet.")
			return
		}
		for _, plan := range plans {
			fmt.Printf("Plan %d: %d days", plan.ID, len(plan.Days))
			if plan.EstimatedCost != nil {
				fmt.Printf(", estimated $%.2f", *plan.EstimatedCost)
			}
			fmt.Println()
		}
	case "show":
		list, plan, err := application.LoadList(ctx, planIDArg())
		if err != nil {
			log.Fatalf("Failed to load list: %v", err)
		}
		fmt.Print(export.Render(list))
		if plan.EstimatedCost != nil {
			diff := list.DiffFromEstimate(*plan.EstimatedCost)
			fmt.Printf("\nEstimate: $%.2f (difference %+.2f)\n", *plan.EstimatedCost, diff)
		}
	case "price":
		list, priced, err := application.PriceList(ctx, planIDArg())
		if err != nil {
			log.Fatalf("Pricing failed: %v", err)
		}
		fmt.Printf("Priced %d items.\n\n", priced)
		fmt.Print(export.Render(list))
	case "add":
		if len(os.Args) < 5 {
			log.Fatal("Usage: grocery-planner add <plan-id> <category> <name>")
		}
		if err := application.AddItem(ctx, planIDArg(), grocery.Category(os.Args[3]), os.Args[4]); err != nil {
			log.Fatalf("Add failed: %v", err)
		}
		fmt.Println("Item added.")
	case "remove":
		if len(os.Args) < 5 {
			log.Fatal("Usage: grocery-planner remove <plan-id> <category> <name>")
		}
		if err := application.RemoveItem(ctx, planIDArg(), grocery.Category(os.Args[3]), os.Args[4]); err != nil {
			log.Fatalf("Remove failed: %v", err)
		}
		fmt.Println("Item removed.")
	case "export":
		path, err := application.ExportList(ctx, planIDArg())
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported to %s\n", path)
	case "delete":
		if err := application.DeletePlan(ctx, planIDArg()); err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		fmt.Println("Plan and grocery list deleted.")
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		if err := metricsStore.Cleanup(*days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Println("Old metric records removed.")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func planIDArg() int64 {
	if len(os.Args) < 3 {
		log.Fatal("Missing plan ID argument")
	}
	id, err := strconv.ParseInt(os.Args[2], 10, 64)
	if err != nil {
		log.Fatalf("Invalid plan ID %q", os.Args[2])
	}
	return id
}

func printUsage() {
	fmt.Println("Usage: grocery-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate \"<request>\"          Generate a meal plan and its grocery list")
	fmt.Println("  plans [-limit N]              List recent meal plans")
	fmt.Println("  show <plan-id>                Print the grocery list with totals")
	fmt.Println("  price <plan-id>               Fetch prices for unpriced items")
	fmt.Println("  add <plan-id> <cat> <name>    Add an item manually")
	fmt.Println("  remove <plan-id> <cat> <name> Remove an item")
	fmt.Println("  export <plan-id>              Write the list to an export file")
	fmt.Println("  delete <plan-id>              Delete a plan and its list")
	fmt.Println("  metrics-cleanup               Remove old metric records")
}
