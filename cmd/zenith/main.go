// Command zenith is the terminal client for the Zenith wellness API.
//
// Usage:
//
//	zenith [flags]
//
// Flags:
//
//	-server string   API base URL (default http://localhost:8080)
//	-login string    Log in with this email before starting (prompts for password)
//	-register        Register instead of logging in
//	-logout          Clear the stored session and exit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/zenithwellness/zenith/internal/domain"
	"github.com/zenithwellness/zenith/internal/tui"
	"github.com/zenithwellness/zenith/pkg/client"
	"github.com/zenithwellness/zenith/pkg/client/session"
)

// localCrisisPhrases gates the client-side /crisis/check call. The server
// keeps the authoritative list.
var localCrisisPhrases = []string{
	"kill myself", "end my life", "suicide", "want to die",
	"end it all", "no reason to live", "hurt myself", "self harm",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zenith: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		serverURL = flag.String("server", "http://localhost:8080", "API base URL")
		loginFlag = flag.String("login", "", "Log in with this email before starting")
		register  = flag.Bool("register", false, "Register instead of logging in")
		logout    = flag.Bool("logout", false, "Clear the stored session and exit")
	)
	flag.Parse()

	store := session.NewStore(session.DefaultPath())
	store.Restore()

	api := client.New(*serverURL, func() string {
		return store.Session().Token
	})

	if *logout {
		// The server ack is best-effort; tokens are stateless.
		_ = api.Call(context.Background(), http.MethodPost, "/api/v1/auth/logout", nil, nil)
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	}

	if *loginFlag != "" {
		if err := authenticate(api, store, *loginFlag, *register); err != nil {
			return err
		}
	}

	model := tui.New(api, store, localCrisisPhrases)

	// Preload recent history for logged-in users; failures just mean an
	// empty view.
	if !store.Session().Guest() {
		var history domain.ChatHistory
		if err := api.Call(context.Background(), http.MethodGet, "/api/v1/chat/history?limit=50", nil, &history); err == nil {
			model.SeedHistory(history.Messages)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func authenticate(api *client.Client, store *session.Store, email string, register bool) error {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	ctx := context.Background()

	if register {
		name := prompt("Display name: ")
		body := map[string]string{
			"email":        email,
			"password":     string(password),
			"display_name": name,
		}
		if err := api.Call(ctx, http.MethodPost, "/api/v1/auth/register", body, nil); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
	}

	var tokens domain.TokenPair
	loginBody := map[string]string{"email": email, "password": string(password)}
	if err := api.Call(ctx, http.MethodPost, "/api/v1/auth/login", loginBody, &tokens); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Fetch the profile so the session carries the user blob.
	sess := store.Session()
	sess.Token = tokens.AccessToken
	if err := store.Set(sess); err != nil {
		return err
	}

	var user domain.User
	if err := api.Call(ctx, http.MethodGet, "/api/v1/me", nil, &user); err != nil {
		store.Clear()
		return fmt.Errorf("failed to load profile: %w", err)
	}

	sess = store.Session()
	sess.User = &user
	sess.Language = user.PreferredLanguage
	if err := store.Set(sess); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s.\n", user.DisplayName)
	return nil
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
