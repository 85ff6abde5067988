package cache

// ScopedKeyer wraps a Keyer with a prefix so several tools or versions can
// share one backend without colliding.
//
// Example usage:
//
//	// Keys written by this binary version only
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v"+buildinfo.Version+":")
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

// TableKey generates a prefixed key for a table.
func (k *ScopedKeyer) TableKey(data []byte) string {
	return k.prefix + k.inner.TableKey(data)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(tableHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(tableHash, opts)
}
