package exportconfig

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/stackb/interop-export/pkg/decl"
	"github.com/stackb/interop-export/pkg/namer"
)

// Config is the per-run export configuration.  It is read-only after
// construction.
type Config struct {
	// FrameworkName is the configured framework name; the top-level naming
	// prefix is abbreviated from it.
	FrameworkName string
	// SupportGenerics, when false, generates every stub with zero generic
	// parameters regardless of source arity.  This is a deliberate degraded
	// mode.
	SupportGenerics bool
	// Include holds glob patterns over module names; a module matching any
	// pattern is part of this export rather than an external dependency.
	// An empty list includes every module.
	Include []string
	// Prefixes holds explicit per-module naming prefix overrides, keyed by
	// module name.
	Prefixes map[string]string
}

// IsIncluded reports whether the module's declarations are part of this
// export.  The standard library is never included.
func (c *Config) IsIncluded(m *decl.Module) bool {
	if m == nil || m.Stdlib {
		return false
	}
	if len(c.Include) == 0 {
		return true
	}
	for _, pattern := range c.Include {
		if ok, _ := doublestar.Match(pattern, m.Name); ok {
			return true
		}
	}
	return false
}

// Namer builds the name allocator for this configuration.
func (c *Config) Namer() *namer.Namer {
	return namer.New(c.FrameworkName,
		namer.WithIncluded(c.IsIncluded),
		namer.WithPrefixes(c.Prefixes),
	)
}
