// ABOUTME: Sale CLI commands
// ABOUTME: Human-friendly commands for recording and listing sales
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

// AddSaleCommand records a new sale
func AddSaleCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-sale", flag.ExitOnError)
	description := fs.String("description", "", "What was sold (required)")
	category := fs.String("category", "", "Sale category")
	amount := fs.Float64("amount", 0, "Sale amount (required)")
	date := fs.String("date", "", "Date (default: today)")
	fs.Parse(args)

	if *description == "" {
		return fmt.Errorf("--description is required")
	}
	if *amount <= 0 {
		return fmt.Errorf("--amount must be positive")
	}
	if *date == "" {
		*date = time.Now().Format("2006-01-02")
	}

	sale := &models.Sale{
		Date:        *date,
		Description: *description,
		Category:    *category,
		Amount:      *amount,
	}

	id, err := store.Put(sale)
	if err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}

	fmt.Printf("✓ Sale recorded: %s (ID: %s)\n", sale.Description, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListSalesCommand lists all sales
func ListSalesCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-sales", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var sales []models.Record
	var err error
	if *pending {
		sales, err = store.ListUnsynced(models.KindSale)
	} else {
		sales, err = store.ListAll(models.KindSale)
	}
	if err != nil {
		return fmt.Errorf("failed to list sales: %w", err)
	}

	if len(sales) == 0 {
		fmt.Println("No sales found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tSYNCED\tID")
	fmt.Fprintln(w, "----\t-----------\t--------\t------\t------\t--")

	for _, rec := range sales {
		sale := rec.(*models.Sale)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			sale.Date, sale.Description, orDash(sale.Category),
			sale.Amount, syncedMark(sale.Sync.Synced), shortID(sale.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d sale(s)\n", len(sales))
	return nil
}

// DeleteSaleCommand deletes a sale locally
func DeleteSaleCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-sale", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-sale <id>")
	}

	if err := store.Delete(models.KindSale, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	fmt.Println("✓ Sale deleted")
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func syncedMark(synced bool) string {
	if synced {
		return "✓"
	}
	return "·"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
