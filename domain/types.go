package domain

type PurchaseID string

// Category is one of the four fixed purchase classifications.
type Category int

const (
	CatFood Category = iota
	CatClothes
	CatEntertainment
	CatOther
)
