package entry

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Application carries the process-wide state shared by every macsig server: a
// structured logger and a context that's closed when the process receives a
// shutdown signal
type Application struct {
	ctx      context.Context
	closeCtx context.CancelFunc
	logger   *slog.Logger
}

// NewApplication prepares a JSON logger tagged with the app name and pid, and
// arranges for the application context to close cleanly on signal
func NewApplication(name string) *Application {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("app", name, "pid", os.Getpid())
	logger.Info("Process starting")

	ctx, closeCtx := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	return &Application{
		ctx:      ctx,
		closeCtx: closeCtx,
		logger:   logger,
	}
}

func (a *Application) Context() context.Context {
	return a.ctx
}

func (a *Application) Log() *slog.Logger {
	return a.logger
}

// Fail logs an unrecoverable error and terminates the process with a non-zero
// status
func (a *Application) Fail(message string, err error) {
	a.logger.Error(message, "error", err)
	os.Exit(1)
}

func (a *Application) Stop() {
	a.logger.Info("Process stopping")
	a.closeCtx()
}
