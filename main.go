// ABOUTME: Entry point for the shopbook CLI
// ABOUTME: Routes record, sync, and settings commands against the local store
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/harperreed/shopbook/cli"
	"github.com/harperreed/shopbook/db"
)

const version = "0.1.0"

func main() {
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/shopbook/shopbook.db)")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("shopbook version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	finalDBPath := getDatabasePath(*dbPath)
	store, err := db.Open(finalDBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	run := func(cmd func(*db.Store, []string) error) {
		if err := cmd(store, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	switch command {
	// Sync commands
	case "connect":
		run(cli.ConnectCommand)
	case "sync":
		run(cli.SyncCommand)
	case "daemon":
		run(cli.DaemonCommand)
	case "status":
		run(cli.StatusCommand)

	// Sale commands
	case "add-sale":
		run(cli.AddSaleCommand)
	case "list-sales":
		run(cli.ListSalesCommand)
	case "delete-sale":
		run(cli.DeleteSaleCommand)

	// Expense commands
	case "add-expense":
		run(cli.AddExpenseCommand)
	case "list-expenses":
		run(cli.ListExpensesCommand)
	case "delete-expense":
		run(cli.DeleteExpenseCommand)

	// Tender commands
	case "add-tender":
		run(cli.AddTenderCommand)
	case "list-tenders":
		run(cli.ListTendersCommand)
	case "delete-tender":
		run(cli.DeleteTenderCommand)

	// Service commands
	case "add-service":
		run(cli.AddServiceCommand)
	case "list-services":
		run(cli.ListServicesCommand)
	case "delete-service":
		run(cli.DeleteServiceCommand)

	// Customer commands
	case "add-customer":
		run(cli.AddCustomerCommand)
	case "list-customers":
		run(cli.ListCustomersCommand)
	case "delete-customer":
		run(cli.DeleteCustomerCommand)

	// Company commands
	case "add-company":
		run(cli.AddCompanyCommand)
	case "list-companies":
		run(cli.ListCompaniesCommand)
	case "delete-company":
		run(cli.DeleteCompanyCommand)

	// Settings commands
	case "get-setting":
		run(cli.GetSettingCommand)
	case "set-setting":
		run(cli.SetSettingCommand)

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	return filepath.Join(xdg.DataHome, "shopbook", "shopbook.db")
}

func printUsage() {
	fmt.Printf(`shopbook v%s - Offline-first business records with Google Sheets sync

USAGE:
  shopbook [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/shopbook/shopbook.db)

SYNC COMMANDS:
  shopbook connect          Authenticate with Google and run the first sync
    --skip-auth               Reuse saved credentials
  shopbook sync             Push pending records now
    --pull                    Pull and merge remote data first
  shopbook daemon           Run the periodic sync loop in the foreground
    --interval <dur>          Time between cycles (default: 5m)
  shopbook status           Show per-kind pending counts

RECORD COMMANDS:
  shopbook add-sale         --description <text> --amount <n> [--category <c>] [--date <d>]
  shopbook add-expense      --description <text> --amount <n> [--category <c>] [--date <d>]
  shopbook add-tender       --title <text> [--reference <ref>] [--bid <n>] [--expenses <json>]
  shopbook add-service      --customer <name> --device <dev> [--problem <text>] [--due <d>]
  shopbook add-customer     --name <name> [--phone <p>] [--email <e>] [--address <a>]
  shopbook add-company      --name <name> [--contact <c>] [--phone <p>] [--email <e>]

  shopbook list-<kind>      List records (sales, expenses, tenders, services,
                            customers, companies); --pending shows unsynced only
  shopbook delete-<kind>    Delete a record locally by ID

SETTINGS COMMANDS:
  shopbook get-setting [--remote] <key>
  shopbook set-setting [--remote] <key> <value>

EXAMPLES:
  # Connect to Google Sheets for the first time
  shopbook connect

  # Record a sale; it syncs on the next cycle
  shopbook add-sale --description "Phone screen replacement" --amount 45

  # Push everything that's pending
  shopbook sync

  # Keep syncing every 5 minutes
  shopbook daemon

`, version)
}
