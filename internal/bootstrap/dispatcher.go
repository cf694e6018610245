// Package bootstrap holds the connector-dispatch wiring shared by
// cmd/api and cmd/worker, so both entrypoints build the exact same
// Registry/Dispatcher/UCSClient stack from config.Connectors instead of
// drifting apart as they're maintained independently.
package bootstrap

import (
	"time"

	"paymentcore/config"
	"paymentcore/internal/connector"
	"paymentcore/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultRequestTimeout = 15 * time.Second

// BuildDispatcher assembles the connector registry (mock + generic),
// an access-token cache, an optional UCS gRPC client, and wraps them in
// a Dispatcher implementing ports.ConnectorDispatcher. UCS is dialed
// once using the first configured endpoint found among cfg.Connectors;
// the engine runs UCS-free when no connector names one.
func BuildDispatcher(cfg *config.Config, keyMgr ports.KeyManagerService, log zerolog.Logger) (*connector.Dispatcher, error) {
	var defaultBaseURL string
	requestTimeout := defaultRequestTimeout
	var ucsEndpoint string
	for _, cc := range cfg.Connectors {
		if defaultBaseURL == "" && cc.BaseURL != "" {
			defaultBaseURL = cc.BaseURL
		}
		if cc.RequestTimeout > 0 {
			requestTimeout = cc.RequestTimeout
		}
		if ucsEndpoint == "" && cc.UCSEndpoint != "" {
			ucsEndpoint = cc.UCSEndpoint
		}
	}

	registry := connector.NewRegistry(
		connector.NewMockConnector(),
		connector.NewGenericConnector(defaultBaseURL),
	)
	tokens := connector.NewTokenCache()
	httpClient := connector.NewHTTPClient(requestTimeout)

	var ucsClient *connector.UCSClient
	if ucsEndpoint != "" {
		client, err := connector.NewUCSClient(ucsEndpoint)
		if err != nil {
			return nil, err
		}
		ucsClient = client
		log.Info().Str("ucs_endpoint", ucsEndpoint).Msg("UCS dispatch enabled")
	}

	return connector.NewDispatcher(registry, tokens, keyMgr, httpClient, ucsClient, log), nil
}
