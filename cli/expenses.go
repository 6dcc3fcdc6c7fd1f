// ABOUTME: Expense CLI commands
// ABOUTME: Human-friendly commands for recording and listing expenses
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

// AddExpenseCommand records a new expense
func AddExpenseCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-expense", flag.ExitOnError)
	description := fs.String("description", "", "What the money was spent on (required)")
	category := fs.String("category", "", "Expense category")
	amount := fs.Float64("amount", 0, "Expense amount (required)")
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

	expense := &models.Expense{
		Date:        *date,
		Description: *description,
		Category:    *category,
		Amount:      *amount,
	}

	id, err := store.Put(expense)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	fmt.Printf("✓ Expense recorded: %s (ID: %s)\n", expense.Description, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListExpensesCommand lists all expenses
func ListExpensesCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-expenses", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var expenses []models.Record
	var err error
	if *pending {
		expenses, err = store.ListUnsynced(models.KindExpense)
	} else {
		expenses, err = store.ListAll(models.KindExpense)
	}
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	if len(expenses) == 0 {
		fmt.Println("No expenses found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tSYNCED\tID")
	fmt.Fprintln(w, "----\t-----------\t--------\t------\t------\t--")

	for _, rec := range expenses {
		expense := rec.(*models.Expense)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			expense.Date, expense.Description, orDash(expense.Category),
			expense.Amount, syncedMark(expense.Sync.Synced), shortID(expense.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d expense(s)\n", len(expenses))
	return nil
}

// DeleteExpenseCommand deletes an expense locally
func DeleteExpenseCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-expense", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-expense <id>")
	}

	if err := store.Delete(models.KindExpense, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	fmt.Println("✓ Expense deleted")
	return nil
}
