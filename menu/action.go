package menu

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"budget/domain"
	"budget/files"
)

func actionAddIncome(_ context.Context, d *Deps) error {
	fmt.Println("Enter income:")
	amt, err := readAmount("")
	if err != nil {
		return err
	}
	d.Led.AddIncome(amt)
	fmt.Println("Income was added!")
	return nil
}

func actionAddPurchase(_ context.Context, d *Deps, cat domain.Category) error {
	fmt.Println("Enter purchase name:")
	name := readLine("")
	fmt.Println("Enter its price:")
	price, err := readAmount("")
	if err != nil {
		return err
	}
	if _, err := d.Led.AddPurchase(name, price, cat); err != nil {
		return err
	}
	fmt.Println("Purchase was added!!")
	return nil
}

func actionShowCategory(_ context.Context, d *Deps, cat domain.Category) error {
	d.Led.ShowByCategory(os.Stdout, cat)
	return nil
}

func actionShowAll(_ context.Context, d *Deps) error {
	d.Led.ShowAll(os.Stdout)
	return nil
}

func actionBalance(_ context.Context, d *Deps) error {
	fmt.Println(d.Balance.String())
	return nil
}

func actionSave(_ context.Context, d *Deps) error {
	data := files.EncodeLedger(d.Balance.Amount(), d.Ledger.Purchases())
	if err := d.Store.Save(data); err != nil {
		// Write failures are reported, never fatal.
		fmt.Println("Failed to save purchases:", err)
		return nil
	}
	fmt.Println("Purchases were saved!")
	return nil
}

func actionLoad(_ context.Context, d *Deps) error {
	lines, err := d.Store.LoadLines()
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		balance, purchases, err := files.DecodeLedger(d.Factory, lines)
		if err != nil {
			return err
		}
		// Load replaces the session state, it never merges.
		d.Balance.Set(balance)
		d.Ledger.Replace(purchases)
	}
	fmt.Println("Purchases were loaded!")
	return nil
}

func actionSort(_ context.Context, d *Deps) error {
	d.Ledger.SortByPriceDesc()
	return nil
}

func actionTypeSummary(_ context.Context, d *Deps) error {
	d.Ana.ShowTypeSummary(os.Stdout)
	return nil
}

func actionExport(_ context.Context, d *Deps, format string) error {
	path := readLine(fmt.Sprintf("File path (e.g. purchases.%s): ", format))
	if path == "" {
		path = "purchases." + format
	}
	var err error
	switch format {
	case "csv":
		err = files.ExportPurchasesCSV(d.Ledger.Purchases(), path)
	case "json":
		err = files.ExportPurchasesJSON(d.Ledger.Purchases(), path)
	case "yaml":
		err = files.ExportPurchasesYAML(d.Ledger.Purchases(), path)
	}
	if err != nil {
		return err
	}
	fmt.Println("Purchases were exported to", path)
	return nil
}

func actionImport(_ context.Context, d *Deps, format string) error {
	path := readLine(fmt.Sprintf("Path to %s file: ", format))
	if path == "" {
		fmt.Println("No file given")
		return nil
	}
	var rows []files.Row
	var err error
	switch format {
	case "csv":
		rows, err = files.ImportPurchasesCSV(path)
	case "json":
		rows, err = files.ImportPurchasesJSON(path)
	case "yaml":
		rows, err = files.ImportPurchasesYAML(path)
	}
	if err != nil {
		return err
	}
	// Rows that do not parse are skipped, same lenient contract as the
	// format parsers. Only clean rows land in the ledger.
	imported := 0
	for _, r := range rows {
		cat, err := domain.ParseCategory(r.Category)
		if err != nil {
			continue
		}
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			continue
		}
		// Imported rows are records: the balance is not touched.
		if _, err := d.Led.Record(cat, r.Name, price); err != nil {
			continue
		}
		imported++
	}
	if imported == 0 {
		fmt.Println("Nothing to import")
		return nil
	}
	fmt.Printf("Imported purchases: %d.\n", imported)
	return nil
}
