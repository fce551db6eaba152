package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when one shared backend serves several grid deployments.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "site:docs:")
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

// StylesheetKey generates a prefixed key for rendered CSS.
func (k *ScopedKeyer) StylesheetKey(configHash string, opts StylesheetKeyOpts) string {
	return k.prefix + k.inner.StylesheetKey(configHash, opts)
}

// RulesKey generates a prefixed key for the JSON rule dump.
func (k *ScopedKeyer) RulesKey(configHash string) string {
	return k.prefix + k.inner.RulesKey(configHash)
}

// CascadeKey generates a prefixed key for a cascade diagram.
func (k *ScopedKeyer) CascadeKey(configHash string, opts CascadeKeyOpts) string {
	return k.prefix + k.inner.CascadeKey(configHash, opts)
}
