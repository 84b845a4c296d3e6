package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-task-tamer/internal/adapter"
	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/models"
)

// AdapterFactory builds the server adapter for a loaded profile.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the tamer command tree together with the profile it reads and
// writes.
type App struct {
	configPath    string
	serverAddress string

	newAdapter AdapterFactory
	build      models.AppBuildInfo
	now        func() time.Time

	in  io.Reader
	out io.Writer
	err io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

type Option func(*App)

// WithAdapterFactory replaces the HTTP adapter, e.g. with a mock in tests.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(a *App) {
		a.newAdapter = factory
	}
}

func WithBuildInfo(build models.AppBuildInfo) Option {
	return func(a *App) {
		a.build = build
	}
}

// WithIO redirects the standard streams of every command.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) {
		a.in, a.out, a.err = in, out, errOut
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates the CLI. configPath is the default profile location and can
// be overridden per invocation with --config.
func NewApp(configPath string, logger *logger.Logger, opts ...Option) *App {
	app := &App{
		configPath: configPath,
		newAdapter: adapter.NewHTTPServerAdapter,
		now:        time.Now,
		in:         os.Stdin,
		out:        os.Stdout,
		err:        os.Stderr,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Run executes args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.err)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Err(err).Strs("args", args).Msg("command failed")
	}
	return err
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tamer",
		Short:         "Track work sessions and earnings on a task-tamer server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", a.configPath, "profile file")
	root.PersistentFlags().StringVar(&a.serverAddress, "server", "", "server address (overrides the profile)")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.startCommand(),
		a.transitionCommand("pause", "Pause the running session", adapter.ServerAdapter.PauseSession),
		a.transitionCommand("resume", "Resume a paused session", adapter.ServerAdapter.ResumeSession),
		a.transitionCommand("complete", "Complete the current session", adapter.ServerAdapter.CompleteSession),
		a.statusCommand(),
		a.todayCommand(),
		a.sessionsCommand(),
		a.journalCommand(),
		a.earningsCommand(),
		a.metricsCommand(),
		a.chartsCommand(),
		a.versionCommand(),
	)

	return root
}

// profile loads the profile and applies the --server override.
func (a *App) profile() (*config.ClientConfig, error) {
	cfg, err := config.LoadClientConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.serverAddress != "" {
		cfg.ServerAddress = a.serverAddress
	}

	return cfg, nil
}

func (a *App) connect() (*config.ClientConfig, adapter.ServerAdapter, error) {
	cfg, err := a.profile()
	if err != nil {
		return nil, nil, err
	}

	srv, err := a.newAdapter(*cfg, a.logger)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating server adapter: %w", err)
	}

	return cfg, srv, nil
}

// withServer runs fn with an adapter that carries the saved token.
func (a *App) withServer(cmd *cobra.Command, fn func(ctx context.Context, srv adapter.ServerAdapter) error) error {
	cfg, srv, err := a.connect()
	if err != nil {
		return err
	}
	if cfg.Token == "" {
		return ErrNotLoggedIn
	}

	err = fn(cmd.Context(), srv)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return err
}

// saveToken stores the adapter's token and the user's email in the profile.
func (a *App) saveToken(cfg *config.ClientConfig, token, email string) error {
	cfg.Token = token
	cfg.Email = email

	if err := config.SaveClientConfig(a.configPath, cfg); err != nil {
		return err
	}
	a.logger.Debug().Str("path", a.configPath).Msg("profile saved")

	return nil
}
