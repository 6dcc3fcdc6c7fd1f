// ABOUTME: Service job CLI commands
// ABOUTME: Human-friendly commands for tracking repair and service work
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

// AddServiceCommand records a new service job
func AddServiceCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("add-service", flag.ExitOnError)
	customer := fs.String("customer", "", "Customer name (required)")
	device := fs.String("device", "", "Device being serviced (required)")
	problem := fs.String("problem", "", "Reported problem")
	status := fs.String("status", "received", "Job status")
	received := fs.String("received", "", "Date received (default: today)")
	due := fs.String("due", "", "Date due")
	amount := fs.Float64("amount", 0, "Quoted amount")
	notes := fs.String("notes", "", "Notes about the job")
	fs.Parse(args)

	if *customer == "" {
		return fmt.Errorf("--customer is required")
	}
	if *device == "" {
		return fmt.Errorf("--device is required")
	}
	if *received == "" {
		*received = time.Now().Format("2006-01-02")
	}

	service := &models.Service{
		Customer: *customer,
		Device:   *device,
		Problem:  *problem,
		Status:   *status,
		Received: *received,
		Due:      *due,
		Amount:   *amount,
		Notes:    *notes,
	}

	id, err := store.Put(service)
	if err != nil {
		return fmt.Errorf("failed to save service job: %w", err)
	}

	fmt.Printf("✓ Service job recorded: %s / %s (ID: %s)\n", service.Customer, service.Device, id)
	fmt.Println("  Will sync on the next cycle")
	return nil
}

// ListServicesCommand lists all service jobs
func ListServicesCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("list-services", flag.ExitOnError)
	pending := fs.Bool("pending", false, "Only show records waiting to sync")
	fs.Parse(args)

	var services []models.Record
	var err error
	if *pending {
		services, err = store.ListUnsynced(models.KindService)
	} else {
		services, err = store.ListAll(models.KindService)
	}
	if err != nil {
		return fmt.Errorf("failed to list service jobs: %w", err)
	}

	if len(services) == 0 {
		fmt.Println("No service jobs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tCUSTOMER\tDEVICE\tSTATUS\tAMOUNT\tSYNCED\tID")
	fmt.Fprintln(w, "--------\t--------\t------\t------\t------\t------\t--")

	for _, rec := range services {
		service := rec.(*models.Service)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\t%s\n",
			service.Received, service.Customer, service.Device, service.Status,
			service.Amount, syncedMark(service.Sync.Synced), shortID(service.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d service job(s)\n", len(services))
	return nil
}

// DeleteServiceCommand deletes a service job locally
func DeleteServiceCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("delete-service", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: delete-service <id>")
	}

	if err := store.Delete(models.KindService, fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to delete service job: %w", err)
	}

	fmt.Println("✓ Service job deleted")
	return nil
}
