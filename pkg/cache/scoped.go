package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// In the hosted API each authenticated user gets a private key namespace so
// one tenant's artifacts are never served to another.
//
// Example usage:
//
//	// User-specific keys
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Shared keys for anonymous requests
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ImageKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ImageKey(prompt string, opts ImageKeyOpts) string {
	return k.prefix + k.inner.ImageKey(prompt, opts)
}

// PaletteKey generates a prefixed key for a resolved palette.
func (k *ScopedKeyer) PaletteKey(prompt string) string {
	return k.prefix + k.inner.PaletteKey(prompt)
}
