package httpx

import (
	"errors"
	"log"
	"net"
	"net/http"
	"os"

	"site-server/site"
)

// Handler answers every request, whatever the method or path, with the
// configured file as text/html. A failed read never turns into a 200:
// a missing file is a 404, anything else a 500.
func Handler(src *site.Source, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := src.Read()
		if err != nil {
			if logger != nil {
				logger.Printf("read %q: %v", src.Name(), err)
			}
			if errors.Is(err, os.ErrNotExist) {
				http.Error(w, "404 not found", http.StatusNotFound)
			} else {
				http.Error(w, "500 internal server error", http.StatusInternalServerError)
			}
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(data)
	})
}

// StartServer starts an HTTP server on addr serving the configured file.
// It binds the listener before returning so a bad addr fails fast, and
// returns the listener so the caller owns shutdown.
func StartServer(addr string, src *site.Source, logger *log.Logger) (net.Listener, error) {
	srv := &http.Server{Handler: Handler(src, logger)}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	go func() {
		if logger != nil {
			logger.Printf("http server listening on %s serving %q", addr, src.Name())
		}
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Printf("http serve error: %v", err)
			}
		}
	}()
	return ln, nil
}
