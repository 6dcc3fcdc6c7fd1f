// ABOUTME: Company CLI commands
// ABOUTME: Human-friendly commands for managing companies
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

// AddCompanyCommand adds a new company
func AddCompanyCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-company", flag.ExitOnError)
	name := fs.String("name", "", "Company name (required)")
	contact := fs.String("contact", "", "Contact person")
	phone := fs.String("phone", "", "Phone number")
	email := fs.String("email", "", "Email address")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	company := &models.Company{
		Name:    *name,
		Contact: *contact,
		Phone:   *phone,
		Email:   *email,
	}

	id, err := store.Put(company)
	if err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}

	fmt.Printf("✓ Company added: %s (ID: %s)\n", company.Name, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListCompaniesCommand lists all companies
func ListCompaniesCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-companies", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var companies []models.Record
	var err error
	if *pending {
		companies, err = store.ListUnsynced(models.KindCompany)
	} else {
		companies, err = store.ListAll(models.KindCompany)
	}
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	if len(companies) == 0 {
		fmt.Println("No companies found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONTACT\tPHONE\tEMAIL\tSYNCED\tID")
	fmt.Fprintln(w, "----\t-------\t-----\t-----\t------\t--")

	for _, rec := range companies {
		company := rec.(*models.Company)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			company.Name, orDash(company.Contact), orDash(company.Phone),
			orDash(company.Email), syncedMark(company.Sync.Synced), shortID(company.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d company(ies)\n", len(companies))
	return nil
}

// DeleteCompanyCommand deletes a company locally
func DeleteCompanyCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-company", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-company <id>")
	}

	if err := store.Delete(models.KindCompany, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	fmt.Println("✓ Company deleted")
	return nil
}
