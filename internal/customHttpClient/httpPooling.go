package customHttpClient

import (
	"net/http"

	"github.com/gitalabs/GitaAPI/internal/config"
)

//TODO: the genai client still dials with its own transport, wire it through here too

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

// PooledClient returns the shared HTTP client. Embedding calls hit the same
// host over and over, keeping connections warm saves a TLS handshake per call.
func PooledClient() *http.Client {
	return pooledClient
}
