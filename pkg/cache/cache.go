// Package cache stores rendered artifacts between runs.
//
// Graphviz layout and rsvg conversion dominate the cost of a pipeline run,
// while their inputs are plain text. Entries are therefore content
// addressed: the key of an SVG is derived from the DOT source it was laid
// out from, and the key of a PDF or PNG from the SVG it was converted from.
// Identical pages (same seed, same options) hit the cache no matter which
// run produced them.
//
// # Implementations
//
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [MemoryCache]: a bounded in-process map, for the HTTP server
//   - [NullCache]: never stores anything
//
// Keys are built by a [Keyer]. Wrap the default keyer in a [ScopedKeyer] to
// separate namespaces, for example per release:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "pagen@"+buildinfo.Version+":")
//	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an artifact rendered from the source
	// whose hash is sourceHash.
	ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes every key component into a fixed-length key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(sourceHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sourceHash, opts)
}
