package nfs

import (
	"log"
	"net"

	"github.com/go-git/go-billy/v5"
	nfslib "github.com/willscott/go-nfs"
	nfshelper "github.com/willscott/go-nfs/helpers"
)

// StartServer exports fs over NFS on addr. The export is meant for
// reads; the server itself never writes to fs.
func StartServer(addr string, fs billy.Filesystem, logger *log.Logger) (net.Listener, error) {
	if addr == "" {
		addr = ":2049"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	handler := nfshelper.NewNullAuthHandler(fs)
	cached := nfshelper.NewCachingHandler(handler, 1024)
	go func() {
		if logger != nil {
			logger.Printf("nfs server listening on %s", addr)
		}
		if err := nfslib.Serve(ln, cached); err != nil {
			if logger != nil {
				logger.Printf("nfs serve error: %v", err)
			}
		}
	}()
	return ln, nil
}
