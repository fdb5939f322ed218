// Package di wires the session together.
package di

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/dig"

	"budget/domain"
	"budget/facade"
	"budget/files"
	"budget/ledger"
	"budget/menu"
	"budget/service"
	"budget/state"
)

const (
	defaultLedgerPath = "purchases.txt"
	logPath           = "budget.log"
)

type App struct {
	Menu menu.Menu
	Deps menu.Deps
}

// ledgerPath resolves where the flat ledger file lives:
// LEDGER_FILE env > remembered state > purchases.txt.
func ledgerPath() string {
	if p := os.Getenv("LEDGER_FILE"); p != "" {
		return p
	}
	if p, err := state.LoadLedgerPath(); err == nil && p != "" {
		return p
	}
	return defaultLedgerPath
}

func newLogger() (*slog.Logger, error) {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(f, nil)), nil
}

func newStore() (*files.Store, error) {
	p := ledgerPath()
	st, err := files.NewStore(p)
	if err != nil {
		return nil, err
	}
	_ = state.SaveLedgerPath(p)
	return st, nil
}

func newMenu() (menu.Menu, error) {
	if p := os.Getenv("MENU_PATH"); p != "" {
		return menu.Load(p)
	}
	return menu.Default(), nil
}

func Build(ctx context.Context) (*App, error) {
	c := dig.New()
	if err := c.Provide(func() context.Context { return ctx }); err != nil {
		return nil, err
	}
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}
	if err := c.Provide(newStore); err != nil {
		return nil, err
	}
	if err := c.Provide(newMenu); err != nil {
		return nil, err
	}
	if err := c.Provide(func() domain.Factory { return domain.Factory{} }); err != nil {
		return nil, err
	}
	if err := c.Provide(domain.NewBalance); err != nil {
		return nil, err
	}
	if err := c.Provide(ledger.New); err != nil {
		return nil, err
	}
	if err := c.Provide(service.NewAnalyticsService); err != nil {
		return nil, err
	}

	var app *App
	err := c.Invoke(func(
		f domain.Factory,
		bal *domain.Balance,
		led *ledger.Ledger,
		store *files.Store,
		anaSvc *service.AnalyticsService,
		m menu.Menu,
		log *slog.Logger,
	) error {
		ledFacade := facade.LedgerFacade{F: f, Balance: bal, Ledger: led}
		anaFacade := facade.AnalyticsFacade{Svc: anaSvc}

		log.Info("session start", "ledger_file", store.Path())

		app = &App{
			Menu: m,
			Deps: menu.Deps{
				Factory: f,
				Balance: bal,
				Ledger:  led,
				Store:   store,
				Led:     ledFacade,
				Ana:     anaFacade,
				Log:     log,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
