package menu

import (
	"log/slog"

	"budget/domain"
	"budget/facade"
	"budget/files"
	"budget/ledger"
)

// Item is one selectable menu entry. An item may run an action (Key), open
// a submenu (Sub), or both: the action runs first, then the submenu is
// pushed. PopAfter returns control to the parent menu once the action ran.
type Item struct {
	Option   int    `json:"option"`
	Label    string `json:"label"`
	Key      string `json:"key,omitempty"`
	Sub      *Menu  `json:"sub,omitempty"`
	PopAfter bool   `json:"pop_after,omitempty"`
}

type Menu struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Find returns the item bound to option, in insertion order.
func (m Menu) Find(option int) (Item, bool) {
	for _, it := range m.Items {
		if it.Option == option {
			return it, true
		}
	}
	return Item{}, false
}

// Deps is the session state every action receives explicitly. Nothing here
// is captured by closures.
type Deps struct {
	Factory domain.Factory
	Balance *domain.Balance
	Ledger  *ledger.Ledger
	Store   *files.Store

	Led facade.LedgerFacade
	Ana facade.AnalyticsFacade

	Log *slog.Logger
}
