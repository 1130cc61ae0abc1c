// Package schemareg caches derived, per-schema artifacts that are
// expensive to rebuild (header-field lookup tables, today; dimensions
// layouts as more schema shapes are added) behind a bounded LRU, keyed by
// hash.Fingerprint so repeated lookups of the same schema across many
// decodes don't repeat the token-list scan.
package schemareg

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/hash"
	"github.com/sbeio/gosbe/internal/options"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/otf"
)

type entry struct {
	fingerprint uint64
	tokenCount  int
	decoder     *otf.HeaderDecoder
}

// Registry is a bounded cache of HeaderDecoder instances derived from
// header composite token lists. It is safe for concurrent use: all
// mutation goes through the underlying lru.Cache's own locking (the
// package, like mebo's internal/collision.Tracker, otherwise holds no
// shared mutable state of its own).
type Registry struct {
	cache *lru.Cache
}

type registryConfig struct {
	size    int
	onEvict func(fingerprint uint64)
}

// RegistryOption configures NewRegistry the same way blob's
// NumericEncoderOption configures NewNumericEncoder.
type RegistryOption = options.Option[*registryConfig]

// WithEvictionCallback registers a callback fired when the LRU evicts an
// entry, identified by its hash.Fingerprint. Useful for a process that
// wants to log or meter schema churn in its cache.
func WithEvictionCallback(fn func(fingerprint uint64)) RegistryOption {
	return options.New(func(c *registryConfig) error {
		c.onEvict = fn
		return nil
	})
}

// NewRegistry creates a Registry holding up to size derived entries.
func NewRegistry(size int, opts ...RegistryOption) (*Registry, error) {
	cfg := &registryConfig{size: size}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, fmt.Errorf("schemareg: %w", err)
	}

	var (
		cache *lru.Cache
		err   error
	)
	if cfg.onEvict != nil {
		cache, err = lru.NewWithEvict(cfg.size, func(key, _ any) {
			cfg.onEvict(key.(uint64))
		})
	} else {
		cache, err = lru.New(cfg.size)
	}
	if err != nil {
		return nil, fmt.Errorf("schemareg: %w", err)
	}

	return &Registry{cache: cache}, nil
}

// HeaderDecoder returns a HeaderDecoder for the given header composite
// token list, building and caching one on a miss. A fingerprint match
// against a token list of different length is treated as a genuine
// collision and reported rather than silently reused (mirroring
// internal/collision.Tracker's explicit collision path).
func (r *Registry) HeaderDecoder(tokens []ir.Token) (*otf.HeaderDecoder, error) {
	fp := hash.Fingerprint(tokens)

	if cached, ok := r.cache.Get(fp); ok {
		e := cached.(entry)
		if e.tokenCount != len(tokens) {
			return nil, fmt.Errorf("schemareg: fingerprint %x: %w", fp, errs.ErrSchemaCollision)
		}

		return e.decoder, nil
	}

	decoder, err := otf.NewHeaderDecoder(tokens)
	if err != nil {
		return nil, err
	}

	r.cache.Add(fp, entry{fingerprint: fp, tokenCount: len(tokens), decoder: decoder})

	return decoder, nil
}

// Len reports the number of entries currently cached.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Purge empties the cache.
func (r *Registry) Purge() {
	r.cache.Purge()
}
