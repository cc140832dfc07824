package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/clock"
	"github.com/xvierd/tomato/internal/adapters/notification"
	"github.com/xvierd/tomato/internal/adapters/scheduler"
	"github.com/xvierd/tomato/internal/adapters/sound"
	"github.com/xvierd/tomato/internal/adapters/storage"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/logging"
	"github.com/xvierd/tomato/internal/ports"
	"github.com/xvierd/tomato/internal/services"
)

// longRunning marks commands that stay alive while the timer runs. They
// get the OS scheduler, the chime and a log file instead of stderr.
const longRunning = "long-running"

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	log        zerolog.Logger
	logCloser  io.Closer
	store      ports.SnapshotStore
	notifier   *notification.Notifier
	scheduler  *scheduler.Local
	runner     *services.EffectRunner
	timer      *services.TimerService
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

func isLongRunning(cmd *cobra.Command) bool {
	return cmd.Annotations[longRunning] == "true"
}

// initializeServices sets up all the required services and adapters.
func initializeServices(cmd *cobra.Command) error {
	// Post-run hooks are skipped when a command fails.
	_ = cleanupServices()

	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
	}
	app.configPath = path

	cfg, cfgErr := config.Load(path)
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	app.config = cfg

	if err := initLogger(cmd); err != nil {
		return err
	}
	if cfgErr != nil {
		app.log.Warn().Err(cfgErr).Str("path", path).Msg("config unreadable, using defaults")
	}

	db := dbPath
	if db == "" {
		db = config.GetDBPath(cfg)
	}
	store, err := storage.New(db)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.store = store

	app.notifier = notification.New(&cfg.Notifications)

	opts := []services.RunnerOption{
		services.WithNotifier(app.notifier),
		services.WithStore(store),
	}
	if isLongRunning(cmd) {
		app.scheduler = scheduler.NewLocal(app.notifier, app.log)
		opts = append(opts,
			services.WithScheduler(app.scheduler),
			services.WithSound(sound.New(cfg.Notifications.Sound, app.log)),
		)
	} else {
		// A one-shot process exits right away: there is nobody left to
		// deliver a delayed signal, and a notification for an interval
		// that completed meanwhile must go out before exit.
		opts = append(opts,
			services.WithScheduler(scheduler.Noop{}),
			services.WithSound(sound.Noop{}),
			services.WithDispatch(func(f func()) { f() }),
		)
	}
	app.runner = services.NewEffectRunner(app.log, opts...)

	initial := domain.NewTimerState(cfg.Timer.WorkMinutes, cfg.Timer.BreakMinutes)
	app.timer = services.NewTimerService(initial, clock.System{}, app.runner, app.log)
	if app.scheduler != nil {
		app.scheduler.OnDue(app.timer.ClaimSignal)
	}

	app.timer.Load(context.Background(), store)
	return nil
}

// initLogger picks the log destination for cmd.
func initLogger(cmd *cobra.Command) error {
	level := logging.ParseLevel(app.config.Log.Level)
	if verbose {
		level = zerolog.DebugLevel
	}

	if !isLongRunning(cmd) {
		if !verbose && level < zerolog.WarnLevel {
			level = zerolog.WarnLevel
		}
		app.log = logging.Console(level)
		return nil
	}

	log, closer, err := logging.File(config.GetLogPath(app.config), level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	app.log = log
	app.logCloser = closer
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.scheduler != nil {
		_ = app.scheduler.CancelAll()
	}
	if app.runner != nil {
		app.runner.Close()
	}

	var err error
	if app.store != nil {
		err = app.store.Close()
	}
	if app.logCloser != nil {
		_ = app.logCloser.Close()
	}
	app = appDeps{}
	return err
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
