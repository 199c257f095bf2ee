package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/sys/unix"

	"site-server/http"
	"site-server/nfs"
	"site-server/site"
	"site-server/tftp"
	"site-server/utils"
)

func main() {
	host := flag.String("host", "localhost", "host to bind")
	port := flag.Int("port", 8080, "port to bind")
	file := flag.String("file", "site.html", "HTML file to serve for every request")
	// TFTP/NFS mirror flags
	tftpEnable := flag.Bool("tftp", false, "also serve the file over TFTP")
	tftpAddr := flag.String("tftp-addr", ":69", "TFTP listen address")
	nfsEnable := flag.Bool("nfs", false, "also export the file's directory over NFS")
	nfsAddr := flag.String("nfs-addr", ":2049", "NFS listen address")
	flag.Parse()

	abs, err := filepath.Abs(*file)
	if err != nil {
		log.Fatalf("resolve %q: %v", *file, err)
	}
	dir := osfs.New(filepath.Dir(abs))
	src := site.NewSource(dir, filepath.Base(abs))

	loggerHTTP := log.New(os.Stdout, "http ", log.LstdFlags)
	httpLn, err := httpx.StartServer(utils.ListenAddr(*host, *port), src, loggerHTTP)
	if err != nil {
		log.Fatalf("start http failure: %v", err)
	}

	if *tftpEnable {
		loggerTFTP := log.New(os.Stdout, "tftp ", log.LstdFlags)
		tftpSrv, err := tftp.StartServer(*tftpAddr, src, loggerTFTP)
		if err != nil {
			log.Fatalf("start tftp failure: %v", err)
		}
		defer tftpSrv.Shutdown()
	}

	var nfsLn net.Listener
	if *nfsEnable {
		loggerNFS := log.New(os.Stdout, "nfs ", log.LstdFlags)
		nfsLn, err = nfs.StartServer(*nfsAddr, dir, loggerNFS)
		if err != nil {
			log.Fatalf("start nfs failure: %v", err)
		}
	}

	log.Printf("Server started %s", utils.SiteURL(*host, *port))

	// Block until termination signal to keep goroutine servers alive
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, unix.SIGTERM)
	sig := <-stop
	log.Printf("received signal %s, stopping", sig)

	httpLn.Close()
	if nfsLn != nil {
		nfsLn.Close()
	}
	log.Printf("Server stopped")
}
