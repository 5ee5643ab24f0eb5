package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Varun5711/mealcounter/cmd/tui/ui"
	"github.com/Varun5711/mealcounter/internal/config"
	"github.com/Varun5711/mealcounter/internal/gateway"
	"github.com/Varun5711/mealcounter/internal/idgen"
	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/service"
	"github.com/Varun5711/mealcounter/internal/storage"
	"github.com/Varun5711/mealcounter/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout; logs go to LOG_FILE or nowhere.
	logOut := io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Printf("Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger.SetOutput(logOut)

	log := logger.New("tui").WithLevel(logger.ParseLevel(cfg.Log.Level))
	ctx := context.Background()

	st, err := storage.Open(ctx, cfg)
	if err != nil {
		fmt.Printf("Failed to open %s storage: %v\n", cfg.Storage.Driver, err)
		os.Exit(1)
	}
	defer st.Close()

	ids, err := idgen.NewGenerator(cfg.Snowflake.DatacenterID, cfg.Snowflake.WorkerID)
	if err != nil {
		fmt.Printf("Failed to create ID generator: %v\n", err)
		os.Exit(1)
	}

	session, err := store.NewSession(ctx, st, log.Named("session"))
	if err != nil {
		fmt.Printf("Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	meals, err := store.NewMeals(ctx, st, ids, log.Named("meals"))
	if err != nil {
		fmt.Printf("Failed to restore meal history: %v\n", err)
		os.Exit(1)
	}

	gw := gateway.New(gateway.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, log.Named("gateway"))

	log.Info("Starting against %s (storage=%s)", cfg.API.BaseURL, cfg.Storage.Driver)

	p := tea.NewProgram(
		ui.NewModel(ui.Deps{
			Auth:         service.NewAuthService(gw, session, log.Named("auth")),
			Meals:        service.NewMealService(gw, session, meals, log.Named("search")),
			MealStore:    meals,
			SuggestLimit: cfg.Suggest.Limit,
		}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
