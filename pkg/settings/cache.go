// SPDX-License-Identifier: MPL-2.0

package settings

type (
	// Cache describes one named cache backend.
	Cache struct {
		// Backend is the framework's cache backend identifier
		// (e.g., "django.core.cache.backends.locmem.LocMemCache").
		Backend string `json:"backend" mapstructure:"backend"`

		// Location points the backend at its store (URL, socket, directory,
		// or table depending on the backend).
		Location string `json:"location" mapstructure:"location"`

		// KeyPrefix is prepended to every cache key.
		KeyPrefix string `json:"key_prefix" mapstructure:"key_prefix"`

		// Version is the default version number for cache keys.
		Version int `json:"version" mapstructure:"version"`

		// Timeout is the default expiry in seconds; nil selects the
		// backend's own default.
		Timeout *int `json:"timeout" mapstructure:"timeout"`

		// Options holds backend-specific parameters passed through
		// verbatim.
		Options map[string]any `json:"options" mapstructure:"options"`
	}

	// Caches maps cache names ("default", ...) to their definitions.
	Caches map[string]Cache
)

// ToMap renders the cache block with the framework's keys. BACKEND always
// renders; zero-valued optional members are omitted because the framework
// treats absence as "use the backend default".
func (c Cache) ToMap() map[string]any {
	out := map[string]any{"BACKEND": c.Backend}
	if c.Location != "" {
		out["LOCATION"] = c.Location
	}
	if c.KeyPrefix != "" {
		out["KEY_PREFIX"] = c.KeyPrefix
	}
	if c.Version != 0 {
		out["VERSION"] = c.Version
	}
	if c.Timeout != nil {
		out["TIMEOUT"] = *c.Timeout
	}
	if len(c.Options) > 0 {
		out["OPTIONS"] = cloneAnyMap(c.Options)
	}
	return out
}

// ToMap renders every cache keyed by its verbatim name.
func (c Caches) ToMap() map[string]any {
	out := make(map[string]any, len(c))
	for name, cache := range c {
		out[name] = cache.ToMap()
	}
	return out
}

func (c Cache) clone() Cache {
	c.Timeout = clonePtr(c.Timeout)
	c.Options = cloneAnyMap(c.Options)
	return c
}

func (c Caches) clone() Caches {
	if c == nil {
		return nil
	}
	out := make(Caches, len(c))
	for name, cache := range c {
		out[name] = cache.clone()
	}
	return out
}
