package tftp

import (
	"io"
	"log"
	"time"

	tftp "github.com/pin/tftp/v3"

	"site-server/site"
)

func readHandler(src *site.Source, logger *log.Logger) func(string, io.ReaderFrom) error {
	return func(filename string, rf io.ReaderFrom) error {
		if err := src.Send(rf); err != nil {
			if logger != nil {
				logger.Printf("send %q for read of %q: %v", src.Name(), filename, err)
			}
			return err
		}
		return nil
	}
}

// TFTP server only serving the same file regardless of requested path
func StartServer(addr string, src *site.Source, logger *log.Logger) (*tftp.Server, error) {
	// Write handler not used.
	srv := tftp.NewServer(readHandler(src, logger), nil)
	srv.SetTimeout(5 * time.Second)

	go func() {
		if logger != nil {
			logger.Printf("TFTP server listening on %s, serving=%q", addr, src.Name())
		}
		if err := srv.ListenAndServe(addr); err != nil {
			if logger != nil {
				logger.Printf("TFTP server error: %v", err)
			}
		}
	}()
	return srv, nil
}
