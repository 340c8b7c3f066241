package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"grocery-planner/internal/grocery"
)

// Exporter writes shareable text renderings of grocery lists to files, one
// file per meal plan. Re-exporting a plan replaces earlier exports.
type Exporter struct {
	basePath string
}

// NewExporter creates a new Exporter and ensures the base directory exists.
func NewExporter(basePath string) (*Exporter, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", basePath, err)
	}
	return &Exporter{basePath: basePath}, nil
}

// path returns the export file path for a meal plan.
func (e *Exporter) path(mealPlanID int64) string {
	return filepath.Join(e.basePath, fmt.Sprintf("grocery-list_%d.md", mealPlanID))
}

// Export renders the list and writes it next to earlier exports for the
// same plan, replacing them.
func (e *Exporter) Export(mealPlanID int64, list grocery.List) (string, error) {
	if err := e.removeStale(mealPlanID); err != nil {
		return "", err
	}

	filePath := e.path(mealPlanID)
	if err := os.WriteFile(filePath, []byte(Render(list)), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return filePath, nil
}

// removeStale drops previous exports for the plan.
func (e *Exporter) removeStale(mealPlanID int64) error {
	pattern := filepath.Join(e.basePath, fmt.Sprintf("grocery-list_%d*.md", mealPlanID))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to glob stale exports: %w", err)
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil {
			return fmt.Errorf("failed to remove stale export %s: %w", match, err)
		}
	}
	return nil
}

// Render produces the shareable text form of a grocery list: categories in
// their fixed order with their item lines and running totals, unknown
// categories after them. This is the same shape callers put on the
// clipboard.
func Render(list grocery.List) string {
	var sb strings.Builder
	sb.WriteString("# Grocery List\n")

	writeCategory := func(name string, items []grocery.Item) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&sb, "\n## %s\n", name)
		for _, item := range items {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(&sb, "- [%s] %s x%v", mark, item.Name, item.Quantity)
			if item.Price != nil {
				fmt.Fprintf(&sb, " — $%.2f %s", *item.Price, item.Unit)
			}
			if item.Notes != "" {
				fmt.Fprintf(&sb, " (%s)", item.Notes)
			}
			sb.WriteString("\n")
		}
		if total := list.CategoryTotal(grocery.Category(name)); total > 0 {
			fmt.Fprintf(&sb, "Subtotal: $%.2f\n", total)
		}
	}

	for _, category := range grocery.Categories {
		writeCategory(string(category), list.Items(category))
	}
	var unknown []string
	for name := range list {
		if !grocery.IsKnown(grocery.Category(name)) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		writeCategory(name, list[name])
	}

	if total := list.PlanTotal(); total > 0 {
		fmt.Fprintf(&sb, "\nTotal: $%.2f\n", total)
	}
	return sb.String()
}
