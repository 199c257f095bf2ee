package utils

import (
	"net"
	"strconv"
)

// ListenAddr joins a host and port into a listenable address.
func ListenAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// DisplayHost maps empty or wildcard bind hosts to something a browser
// can actually dial.
func DisplayHost(host string) string {
	if host == "" || host == "0.0.0.0" || host == "::" {
		return "localhost"
	}
	return host
}

// SiteURL is the URL printed at startup.
func SiteURL(host string, port int) string {
	return "http://" + net.JoinHostPort(DisplayHost(host), strconv.Itoa(port))
}
