// Package network provides the HTTP client shared by every source.
package network

import (
	"net/http"
	"time"

	"github.com/flixstream/flixstream/key"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// Client is the HTTP client handed to the sources.
// Setup replaces it according to the network.* configuration.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Setup rebuilds Client from configuration.
func Setup() {
	Client = New(Options{
		Timeout:           time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		RequestsPerSecond: viper.GetFloat64(key.NetworkRequestsPerSecond),
		TLSFingerprint:    viper.GetBool(key.NetworkTLSFingerprint),
	})
}

// Options tune a client built by New.
type Options struct {
	// Timeout bounds a whole request. Zero means one minute.
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing requests. Zero disables throttling.
	RequestsPerSecond float64
	// TLSFingerprint makes the TLS handshake look like Chrome's.
	TLSFingerprint bool
}

// New builds an HTTP client with the given options.
func New(opts Options) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}

	var transport http.RoundTripper = newTransport()
	if opts.TLSFingerprint {
		transport = newFingerprintTransport()
	}

	if opts.RequestsPerSecond > 0 {
		transport = &limitedTransport{
			base:    transport,
			limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		}
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
