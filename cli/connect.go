// ABOUTME: Google connect CLI command
// ABOUTME: Runs the OAuth browser flow, then the initial pull-and-push cycle
package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"

	"github.com/harperreed/shopbook/db"
	"github.com/harperreed/shopbook/sheets"
	"github.com/harperreed/shopbook/sync"
)

// newEngine wires the Google Sheets adapter to a fresh engine.
func newEngine(store *db.Store, notify func(sync.Status)) *sync.Engine {
	return sync.New(store, sheets.New(), notify)
}

// ConnectCommand handles OAuth setup and runs the first sync cycle
func ConnectCommand(store *db.Store, args []string) error {
	fs := flag.NewFlagSet("connect", flag.ExitOnError)
	skipAuth := fs.Bool("skip-auth", false, "Skip the OAuth flow and reuse saved credentials")
	_ = fs.Parse(args)

	ctx := context.Background()

	if !*skipAuth {
		if err := runOAuthFlow(ctx); err != nil {
			return err
		}
	}

	fmt.Println("Syncing with Google Sheets...")

	engine := newEngine(store, nil)
	if err := engine.Connect(ctx); err != nil {
		return fmt.Errorf("initial sync failed: %w", err)
	}

	fmt.Println("✓ Connected. Remote data merged and local records pushed.")
	return nil
}

// runOAuthFlow opens the browser and waits for the localhost callback.
func runOAuthFlow(ctx context.Context) error {
	config := sheets.NewOAuthConfig()
	if config.ClientID == "" || config.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: ":8080", Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := config.AuthCodeURL("state", oauth2.AccessTypeOffline)

	fmt.Println("Opening browser for Google OAuth...")
	fmt.Printf("\nIf browser doesn't open, visit this URL:\n%s\n\n", authURL)

	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)

		if err := sheets.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Printf("\n✓ Authenticated successfully\n")
		fmt.Printf("✓ Tokens saved to %s\n\n", sheets.TokenPath())
		return nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return fmt.Errorf("OAuth flow failed: %w", err)
	}
}

// openBrowser attempts to open URL in default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	command := exec.Command(cmd, args...)
	return command.Start()
}
