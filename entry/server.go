package entry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// RunServer blocks while an HTTP server application runs, shutting the server
// down gracefully once the application context closes
func RunServer(a *Application, handler http.Handler, bindAddr string, listenPort uint16) {
	addr := fmt.Sprintf("%s:%d", bindAddr, listenPort)
	server := &http.Server{
		Addr:     addr,
		Handler:  Middleware(a.Log())(handler),
		ErrorLog: NewErrorLog(a.Log()),
	}

	// Kick off a goroutine which calls server.ListenAndServe()
	a.Log().Info("Now listening", "bindAddr", bindAddr, "listenPort", listenPort)
	var wg errgroup.Group
	wg.Go(server.ListenAndServe)

	// Once our application-level context is closed, stop accepting connections
	<-a.Context().Done()
	a.Log().Info("Received signal; closing server")
	server.Shutdown(context.Background())

	// Block until ListenAndServe returns
	err := wg.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		a.Log().Info("Server closed")
	} else {
		a.Fail("error running server", err)
	}
}

// NewErrorLog adapts an slog.Logger to the simpler log.Logger interface used
// by http.Server's ErrorLog field
func NewErrorLog(s *slog.Logger) *log.Logger {
	w := errorLogWriter{s}
	return log.New(w, "", 0)
}

// errorLogWriter is an implementation of io.Writer that handles http server
// errors by writing them to an underlying slog.Logger
type errorLogWriter struct {
	logger *slog.Logger
}

func (w errorLogWriter) Write(data []byte) (int, error) {
	w.logger.Error("http.Server error", "error", string(data))
	return len(data), nil
}
