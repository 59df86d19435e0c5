// Package network builds the HTTP transport used to reach a bridge.
package network

import (
	"net"
	"net/http"
	"time"
)

// Transport returns a transport tuned for a single nearby bridge: a small
// idle pool kept open between ctl calls and short dial and header timeouts.
func Transport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.DialContext = (&net.Dialer{
		Timeout:   3 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
