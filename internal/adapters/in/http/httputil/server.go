// Package httputil holds HTTP server plumbing shared by the inbound listeners.
package httputil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/bnema/zerowrap"
)

// ShutdownTimeout bounds graceful shutdown of a listener.
const ShutdownTimeout = 30 * time.Second

// NewServer returns an http.Server with the timeouts every listener uses.
// writeTimeout differs per listener: proxied responses may stream for minutes.
func NewServer(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
// A nil ln makes the server listen on srv.Addr.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, name string) error {
	log := zerowrap.FromCtx(ctx)

	errChan := make(chan error, 1)
	go func() {
		var err error
		if ln != nil {
			err = srv.Serve(ln)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	addr := srv.Addr
	if ln != nil {
		addr = ln.Addr().String()
	}
	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "http").
		Str("listener", name).
		Str("address", addr).
		Msg("server starting")

	select {
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return log.WrapErrWithFields(err, "server failed", map[string]any{"listener": name})
	case <-ctx.Done():
		log.Info().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "http").
			Str("listener", name).
			Msg("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
