package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Serve exposes the recorder on addr at /metrics until the returned server
// is closed.
func Serve(addr string, r *Recorder, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); nil != err && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	return srv
}
