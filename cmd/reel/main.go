package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/drake/reel/internal/adapter"
	"github.com/drake/reel/internal/adapter/tmdb"
	"github.com/drake/reel/internal/auth"
	"github.com/drake/reel/internal/favorites"
	"github.com/drake/reel/internal/nav"
	"github.com/drake/reel/internal/service"
	"github.com/drake/reel/internal/session"
	"github.com/drake/reel/internal/store"
	"github.com/drake/reel/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		openLink    string
		noPersist   bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&openLink, "open", "", "open a deep link (e.g. reel://search?query=alien)")
	flag.BoolVar(&noPersist, "no-persist", false, "keep session and favorites in memory only")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(openLink, noPersist); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(openLink string, noPersist bool) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	if !cfg.IsConfigured() {
		return runSetupFlow(cfg)
	}

	dataDir := cfg.Storage.DataDir
	if noPersist {
		dataDir = ""
	}
	stateStore, err := store.New(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer stateStore.Close()

	client := tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Language, logger)
	catalogSvc := service.NewCatalogService(client, logger)

	authenticator := auth.NewMock(cfg.Auth.TokenSecret, logger)
	sess := session.NewStore(authenticator, stateStore, logger)

	favs := favorites.NewStore(stateStore, logger)
	favs.Load()

	loc := startLocation(openLink, cfg.UI.DefaultRoute)
	model := tui.NewModel(catalogSvc, sess, favs, loc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI", "route", loc.Route)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// startLocation resolves the initial deep link: an explicit -open flag wins,
// otherwise the configured default route is used.
func startLocation(openLink, defaultRoute string) nav.Location {
	if openLink != "" {
		return nav.Parse(openLink)
	}
	if defaultRoute != "" {
		return nav.Parse(defaultRoute)
	}
	return nav.Parse(nav.RouteBrowse)
}

// runSetupFlow handles the initial setup when no API key is configured
func runSetupFlow(cfg *adapter.Config) error {
	fmt.Println()
	fmt.Println("Welcome to Reel!")
	fmt.Println()
	fmt.Println("Reel needs a catalog API key to browse movies.")
	fmt.Println("You can create one for free at https://www.themoviedb.org/settings/api")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	var apiKey string
	for {
		fmt.Print("Enter your API key: ")
		var err error
		if term.IsTerminal(int(syscall.Stdin)) {
			// Keys are credentials; don't echo them.
			keyBytes, readErr := term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if readErr != nil {
				return fmt.Errorf("failed to read input: %w", readErr)
			}
			apiKey = strings.TrimSpace(string(keyBytes))
		} else {
			apiKey, err = reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			apiKey = strings.TrimSpace(apiKey)
		}

		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}
		break
	}

	cfg.Catalog.APIKey = apiKey

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run reel again to start the application.")

	return nil
}
