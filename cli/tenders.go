// ABOUTME: Tender CLI commands
// ABOUTME: Human-friendly commands for tracking bids and their expenses
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

// AddTenderCommand records a new tender
func AddTenderCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-tender", flag.ExitOnError)
	reference := fs.String("reference", "", "Tender reference number")
	title := fs.String("title", "", "Tender title (required)")
	companyID := fs.String("company-id", "", "ID of the issuing company")
	status := fs.String("status", "open", "Tender status")
	date := fs.String("date", "", "Date (default: today)")
	bid := fs.Float64("bid", 0, "Bid amount")
	award := fs.Float64("award", 0, "Award amount")
	expenses := fs.String("expenses", "", `Expenses as JSON, e.g. [{"description":"transport","amount":20}]`)
	fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("--title is required")
	}
	if *date == "" {
		*date = time.Now().Format("2006-01-02")
	}

	var expenseList []models.TenderExpense
	if *expenses != "" {
		if err := json.Unmarshal([]byte(*expenses), &expenseList); err != nil {
			return fmt.Errorf("invalid --expenses JSON: %w", err)
		}
	}

	tender := &models.Tender{
		Reference:   *reference,
		Title:       *title,
		CompanyID:   *companyID,
		Status:      *status,
		Date:        *date,
		BidAmount:   *bid,
		AwardAmount: *award,
		Expenses:    expenseList,
	}

	id, err := store.Put(tender)
	if err != nil {
		return fmt.Errorf("failed to save tender: %w", err)
	}

	fmt.Printf("✓ Tender recorded: %s (ID: %s)\n", tender.Title, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListTendersCommand lists all tenders
func ListTendersCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-tenders", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var tenders []models.Record
	var err error
	if *pending {
		tenders, err = store.ListUnsynced(models.KindTender)
	} else {
		tenders, err = store.ListAll(models.KindTender)
	}
	if err != nil {
		return fmt.Errorf("failed to list tenders: %w", err)
	}

	if len(tenders) == 0 {
		fmt.Println("No tenders found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tREFERENCE\tTITLE\tSTATUS\tBID\tAWARD\tSYNCED\tID")
	fmt.Fprintln(w, "----\t---------\t-----\t------\t---\t-----\t------\t--")

	for _, rec := range tenders {
		tender := rec.(*models.Tender)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\n",
			tender.Date, orDash(tender.Reference), tender.Title, tender.Status,
			tender.BidAmount, tender.AwardAmount,
			syncedMark(tender.Sync.Synced), shortID(tender.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d tender(s)\n", len(tenders))
	return nil
}

// DeleteTenderCommand deletes a tender locally
func DeleteTenderCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-tender", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-tender <id>")
	}

	if err := store.Delete(models.KindTender, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete tender: %w", err)
	}

	fmt.Println("✓ Tender deleted")
	return nil
}
