package menu

import (
	"context"
	"fmt"

	"budget/domain"
)

// Execute dispatches one action key.
func Execute(ctx context.Context, key string, d *Deps) error {
	switch key {
	case "add_income":
		return actionAddIncome(ctx, d)
	case "add_food":
		return actionAddPurchase(ctx, d, domain.CatFood)
	case "add_clothes":
		return actionAddPurchase(ctx, d, domain.CatClothes)
	case "add_entertainment":
		return actionAddPurchase(ctx, d, domain.CatEntertainment)
	case "add_other":
		return actionAddPurchase(ctx, d, domain.CatOther)
	case "show_food":
		return actionShowCategory(ctx, d, domain.CatFood)
	case "show_clothes":
		return actionShowCategory(ctx, d, domain.CatClothes)
	case "show_entertainment":
		return actionShowCategory(ctx, d, domain.CatEntertainment)
	case "show_other":
		return actionShowCategory(ctx, d, domain.CatOther)
	case "show_all":
		return actionShowAll(ctx, d)
	case "balance":
		return actionBalance(ctx, d)
	case "save":
		return actionSave(ctx, d)
	case "load":
		return actionLoad(ctx, d)
	case "sort":
		return actionSort(ctx, d)
	case "sort_all":
		return actionShowAll(ctx, d)
	case "sort_types":
		return actionTypeSummary(ctx, d)
	case "sort_food":
		return actionShowCategory(ctx, d, domain.CatFood)
	case "sort_clothes":
		return actionShowCategory(ctx, d, domain.CatClothes)
	case "sort_entertainment":
		return actionShowCategory(ctx, d, domain.CatEntertainment)
	case "sort_other":
		return actionShowCategory(ctx, d, domain.CatOther)
	case "export_csv":
		return actionExport(ctx, d, "csv")
	case "export_json":
		return actionExport(ctx, d, "json")
	case "export_yaml":
		return actionExport(ctx, d, "yaml")
	case "import_csv":
		return actionImport(ctx, d, "csv")
	case "import_json":
		return actionImport(ctx, d, "json")
	case "import_yaml":
		return actionImport(ctx, d, "yaml")
	default:
		fmt.Println("Invalid option.")
	}
	return nil
}
