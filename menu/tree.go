package menu

import "budget/domain"

// Default builds the built-in menu tree. MENU_PATH may override it with a
// JSON tree of the same shape.
func Default() Menu {
	purchase := &Menu{
		Title: "Choose the type of purchase",
		Items: []Item{
			{Option: 1, Label: domain.CatFood.Label(), Key: "add_food"},
			{Option: 2, Label: domain.CatClothes.Label(), Key: "add_clothes"},
			{Option: 3, Label: domain.CatEntertainment.Label(), Key: "add_entertainment"},
			{Option: 4, Label: domain.CatOther.Label(), Key: "add_other"},
			{Option: 5, Label: "Back", Key: "back"},
		},
	}

	show := &Menu{
		Title: "Choose the type of purchases",
		Items: []Item{
			{Option: 1, Label: domain.CatFood.Label(), Key: "show_food"},
			{Option: 2, Label: domain.CatClothes.Label(), Key: "show_clothes"},
			{Option: 3, Label: domain.CatEntertainment.Label(), Key: "show_entertainment"},
			{Option: 4, Label: domain.CatOther.Label(), Key: "show_other"},
			{Option: 5, Label: "All", Key: "show_all"},
			{Option: 6, Label: "Back", Key: "back"},
		},
	}

	// Showing a certain type returns to the analyzer menu, not to this one.
	certainType := &Menu{
		Title: "Choose the type of purchase",
		Items: []Item{
			{Option: 1, Label: domain.CatFood.Label(), Key: "sort_food", PopAfter: true},
			{Option: 2, Label: domain.CatClothes.Label(), Key: "sort_clothes", PopAfter: true},
			{Option: 3, Label: domain.CatEntertainment.Label(), Key: "sort_entertainment", PopAfter: true},
			{Option: 4, Label: domain.CatOther.Label(), Key: "sort_other", PopAfter: true},
		},
	}

	analyzer := &Menu{
		Title: "How do you want to sort?",
		Items: []Item{
			{Option: 1, Label: "Sort all purchases", Key: "sort_all"},
			{Option: 2, Label: "Sort by type", Key: "sort_types"},
			{Option: 3, Label: "Sort certain type", Sub: certainType},
			{Option: 4, Label: "Back", Key: "back"},
		},
	}

	export := &Menu{
		Title: "Choose the format",
		Items: []Item{
			{Option: 1, Label: "CSV", Key: "export_csv"},
			{Option: 2, Label: "JSON", Key: "export_json"},
			{Option: 3, Label: "YAML", Key: "export_yaml"},
			{Option: 4, Label: "Back", Key: "back"},
		},
	}

	imp := &Menu{
		Title: "Choose the format",
		Items: []Item{
			{Option: 1, Label: "CSV", Key: "import_csv"},
			{Option: 2, Label: "JSON", Key: "import_json"},
			{Option: 3, Label: "YAML", Key: "import_yaml"},
			{Option: 4, Label: "Back", Key: "back"},
		},
	}

	return Menu{
		Title: "Choose your action:",
		Items: []Item{
			{Option: 1, Label: "Add income", Key: "add_income"},
			{Option: 2, Label: "Add purchase", Sub: purchase},
			{Option: 3, Label: "Show list of purchases", Sub: show},
			{Option: 4, Label: "Balance", Key: "balance"},
			{Option: 5, Label: "Save", Key: "save"},
			{Option: 6, Label: "Load", Key: "load"},
			{Option: 7, Label: "Analyze (Sort)", Key: "sort", Sub: analyzer},
			{Option: 8, Label: "Export purchases", Sub: export},
			{Option: 9, Label: "Import purchases", Sub: imp},
			{Option: 0, Label: "Exit", Key: "exit"},
		},
	}
}
