package config

import (
	"fmt"
	"os"
)

// EnvSiteName overrides the site name shown in page titles.
const EnvSiteName = "SITE_NAME"

// SiteConfig contains presentation settings shared by every rendered view.
type SiteConfig struct {
	Name string `toml:"name"`
}

// Finalize applies defaults, loads environment overrides, and validates the site configuration.
func (c *SiteConfig) Finalize() error {
	if c.Name == "" {
		c.Name = "Storefront"
	}
	if v := os.Getenv(EnvSiteName); v != "" {
		c.Name = v
	}
	if len(c.Name) > 64 {
		return fmt.Errorf("name exceeds 64 characters")
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *SiteConfig) Merge(overlay *SiteConfig) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
}
