package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	dialTimeout         = 2 * time.Second
	keepAlive           = 30 * time.Second
	maxIdleConns        = 32
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
)

// New builds the shared client used by the REST gateways. Per-request
// deadlines come from the caller's context; requestTimeout is the hard cap.
func New(requestTimeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: keepAlive,
			}).DialContext,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConns,
			IdleConnTimeout:     idleConnTimeout,
			TLSHandshakeTimeout: tlsHandshakeTimeout,
		},
	}
}
