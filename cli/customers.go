// ABOUTME: Customer CLI commands
// ABOUTME: Human-friendly commands for managing customers
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/models"
)

// AddCustomerCommand adds a new customer
func AddCustomerCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-customer", flag.ExitOnError)
	name := fs.String("name", "", "Customer name (required)")
	phone := fs.String("phone", "", "Phone number")
	email := fs.String("email", "", "Email address")
	address := fs.String("address", "", "Postal address")
	balance := fs.Float64("balance", 0, "Opening balance")
	fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	customer := &models.Customer{
		Name:    *name,
		Phone:   *phone,
		Email:   *email,
		Address: *address,
		Balance: *balance,
	}

	id, err := store.Put(customer)
	if err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	fmt.Printf("✓ Customer added: %s (ID: %s)\n", customer.Name, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListCustomersCommand lists all customers
func ListCustomersCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-customers", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var customers []models.Record
	var err error
	if *pending {
		customers, err = store.ListUnsynced(models.KindCustomer)
	} else {
		customers, err = store.ListAll(models.KindCustomer)
	}
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	if len(customers) == 0 {
		fmt.Println("No customers found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPHONE\tEMAIL\tBALANCE\tSYNCED\tID")
	fmt.Fprintln(w, "----\t-----\t-----\t-------\t------\t--")

	for _, rec := range customers {
		customer := rec.(*models.Customer)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			customer.Name, orDash(customer.Phone), orDash(customer.Email),
			customer.Balance, syncedMark(customer.Sync.Synced), shortID(customer.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d customer(s)\n", len(customers))
	return nil
}

// DeleteCustomerCommand deletes a customer locally
func DeleteCustomerCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-customer", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-customer <id>")
	}

	if err := store.Delete(models.KindCustomer, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	fmt.Println("✓ Customer deleted")
	return nil
}
