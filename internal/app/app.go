package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/shhac/discbag/internal/logging"
	"github.com/shhac/discbag/internal/lookup"
	"github.com/shhac/discbag/internal/model"
	"github.com/shhac/discbag/internal/storage"
)

// App is the main application coordinator, responsible for wiring
// together all components and managing their lifecycle.
type App struct {
	fyneApp     fyne.App
	window      fyne.Window
	config      *Config
	logger      *slog.Logger
	closeLog    func() error
	client      *lookup.Client
	storage     storage.Repository
	bagView     *model.BagView
	lookupState *model.LookupUIState
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := logging.InitLogger("discbag", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a, err := newWithLogger(fyneApp, cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	a.closeLog = closeLog
	return a, nil
}

// newWithLogger wires every component around an existing logger.
func newWithLogger(fyneApp fyne.App, cfg *Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing discbag",
		slog.Bool("debug", cfg.Debug),
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", cfg.Timeout),
		slog.String("decode", cfg.Decode),
	)

	mode, err := lookup.ParseDecodeMode(cfg.Decode)
	if err != nil {
		return nil, fmt.Errorf("invalid decode mode: %w", err)
	}

	client, err := lookup.NewClient(cfg.BaseURL, logging.Component(logger, "lookup"),
		lookup.WithTimeout(cfg.Timeout),
		lookup.WithDecodeMode(mode),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup client: %w", err)
	}

	repo := storage.NewMemoryRepository()
	bagView := model.NewBagView(client, logger, model.WithHistory(repo))

	logger.Info("application initialized successfully")

	return &App{
		fyneApp:     fyneApp,
		config:      cfg,
		logger:      logger,
		client:      client,
		storage:     repo,
		bagView:     bagView,
		lookupState: model.NewLookupUIState(),
	}, nil
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Close cancels any in-flight lookup and closes the log file.
func (a *App) Close() error {
	a.bagView.Close()
	a.logger.Info("application closed")
	if a.closeLog != nil {
		return a.closeLog()
	}
	return nil
}

// Config returns the configuration the app was started with.
func (a *App) Config() *Config {
	return a.config
}

// BagView returns the bag view model for use by UI components.
func (a *App) BagView() *model.BagView {
	return a.bagView
}

// LookupState returns the bindable lookup status shown by the UI.
func (a *App) LookupState() *model.LookupUIState {
	return a.lookupState
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the session lookup history.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
