package domain

import "fmt"

var ErrUnknownCategory = fmt.Errorf("unknown category label")

var categoryLabels = map[Category]string{
	CatFood:          "Food",
	CatClothes:       "Clothes",
	CatEntertainment: "Entertainment",
	CatOther:         "Other",
}

// Label is the display name, used both in menus and as the on-disk field.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return "Unknown"
}

func (c Category) String() string { return c.Label() }

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Categories returns all categories in declaration order. This order is the
// tie-break for equal totals in the type summary.
func Categories() []Category {
	return []Category{CatFood, CatClothes, CatEntertainment, CatOther}
}

// ParseCategory maps a display label back to its category. Unknown labels
// return ErrUnknownCategory; they are never coerced to a default.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories() {
		if c.Label() == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}
