package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"fyne.io/fyne/v2/app"
	discbagApp "github.com/shhac/discbag/internal/app"
	"github.com/shhac/discbag/internal/lookup"
	"github.com/shhac/discbag/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting discbag", slog.String("version", ui.Version))

	if err := discbagApp.LoadDotEnv(); err != nil {
		tempLogger.Warn("ignoring .env", slog.Any("error", err))
	}

	// Load configuration from environment
	cfg := discbagApp.ConfigFromEnv()
	lookup.UserAgent = "discbag/" + ui.Version

	// Create Fyne application
	fyneApp := app.NewWithID("com.discbag.client")

	// Create and wire the application
	bagApp, err := discbagApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if cerr := bagApp.Close(); cerr != nil {
			tempLogger.Warn("failed to close application", slog.Any("error", cerr))
		}
	}()

	ui.ApplyStartupTheme(fyneApp, bagApp.Config().Theme)

	// Create main window
	mainWindow := ui.NewMainWindow(
		bagApp.FyneApp(),
		bagApp, // Pass the app as the controller
	)

	// Run the application (blocking)
	bagApp.Run(mainWindow.Window())

	bagApp.Logger().Info("application shutdown complete")
	return nil
}
