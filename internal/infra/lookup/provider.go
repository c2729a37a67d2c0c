package lookup

import (
	"log/slog"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LookupParams holds dependencies for AddressLookup, injected by Fx
type LookupParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewAddressLookup creates an AddressLookup based on configuration
func NewAddressLookup(params LookupParams) (service.AddressLookup, error) {
	cfg := params.Config.Lookup
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("lookup configuration is missing")
	}

	var lookup service.AddressLookup

	switch cfg.Provider {
	case config.LookupProviderHTTP:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for http lookup provider")
		}
		logger.Info("Using HTTP address lookup",
			slog.String("base_url", cfg.BaseURL),
			slog.Duration("timeout", cfg.Timeout),
		)

		lookup = NewHTTPLookup(cfg.BaseURL, cfg.Timeout, logger)

	case config.LookupProviderStatic:
		logger.Info("Using static address lookup", slog.Int("fixtures", len(cfg.Fixtures)))

		lookup = NewStaticLookup(cfg.Fixtures, logger)

	default:
		return nil, errors.Errorf("unknown lookup provider: %s", cfg.Provider)
	}

	if cfg.Cache.Enabled {
		logger.Info("Caching address lookups",
			slog.Int("size", cfg.Cache.Size),
			slog.Duration("ttl", cfg.Cache.TTL),
		)

		lookup = NewCachedLookup(lookup, cfg.Cache.Size, cfg.Cache.TTL, logger)
	}

	return lookup, nil
}

// Module provides the address lookup FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewAddressLookup),
)
