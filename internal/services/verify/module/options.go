package module

import (
	"cpauth/internal/adapters/platforms"
	"cpauth/internal/platform/config"
)

// Options holds configuration settings for the verify module
type Options struct {
	Platforms platforms.Options
}

// FromConfig reads settings from cfg, which is expected to carry the service prefix
// (CPAUTH_), so keys resolve to CPAUTH_PLATFORMS_*
func FromConfig(cfg config.Conf) Options {
	return Options{
		Platforms: platforms.FromConfig(cfg.Prefix("PLATFORMS_")),
	}
}
