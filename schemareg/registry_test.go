package schemareg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sbeio/gosbe/errs"
	"github.com/sbeio/gosbe/hash"
	"github.com/sbeio/gosbe/ir"
	"github.com/sbeio/gosbe/primitive"
)

func headerTokens() []ir.Token {
	return []ir.Token{
		{Signal: ir.SignalBeginComposite, Name: "messageHeader", EncodedLength: 8, ComponentTokenCount: 6},
		{Signal: ir.SignalEncoding, Name: "blockLength", PrimitiveType: primitive.TypeUint16, Offset: 0, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "templateId", PrimitiveType: primitive.TypeUint16, Offset: 2, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "schemaId", PrimitiveType: primitive.TypeUint16, Offset: 4, EncodedLength: 2},
		{Signal: ir.SignalEncoding, Name: "version", PrimitiveType: primitive.TypeUint16, Offset: 6, EncodedLength: 2},
		{Signal: ir.SignalEndComposite, Name: "messageHeader"},
	}
}

// ==============================================================================
// Cache hit / miss
// ==============================================================================

func TestRegistry_HeaderDecoder_CachesOnSecondLookup(t *testing.T) {
	r, err := NewRegistry(8)
	require.NoError(t, err)

	first, err := r.HeaderDecoder(headerTokens())
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	second, err := r.HeaderDecoder(headerTokens())
	require.NoError(t, err)
	require.Equal(t, 1, r.Len(), "the same token list must hit the cache, not grow it")
	require.Same(t, first, second, "a cache hit returns the same *HeaderDecoder instance")
}

func TestRegistry_HeaderDecoder_DistinctSchemasGetDistinctEntries(t *testing.T) {
	r, err := NewRegistry(8)
	require.NoError(t, err)

	_, err = r.HeaderDecoder(headerTokens())
	require.NoError(t, err)

	other := headerTokens()
	other[1].Offset = 99
	_, err = r.HeaderDecoder(other)
	require.NoError(t, err)

	require.Equal(t, 2, r.Len())
}

// ==============================================================================
// Purge / Len
// ==============================================================================

func TestRegistry_Purge_EmptiesCache(t *testing.T) {
	r, err := NewRegistry(8)
	require.NoError(t, err)

	_, err = r.HeaderDecoder(headerTokens())
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	r.Purge()
	require.Zero(t, r.Len())
}

func TestRegistry_Eviction_RespectsBoundedSize(t *testing.T) {
	r, err := NewRegistry(1)
	require.NoError(t, err)

	_, err = r.HeaderDecoder(headerTokens())
	require.NoError(t, err)

	other := headerTokens()
	other[1].Offset = 99
	_, err = r.HeaderDecoder(other)
	require.NoError(t, err)

	require.Equal(t, 1, r.Len(), "a size-1 registry evicts rather than growing unbounded")
}

// ==============================================================================
// Fingerprint collision reporting
// ==============================================================================

func TestRegistry_HeaderDecoder_ReportsFingerprintCollisionAgainstDifferentLengthTokens(t *testing.T) {
	r, err := NewRegistry(8)
	require.NoError(t, err)

	tokens := headerTokens()
	fp := hash.Fingerprint(tokens)

	// Simulate a genuine xxhash collision: seed the cache directly with an
	// entry whose tokenCount doesn't match a distinct token list that
	// happens to hash to the same fingerprint.
	r.cache.Add(fp, entry{fingerprint: fp, tokenCount: len(tokens) + 1, decoder: nil})

	_, err = r.HeaderDecoder(tokens)
	require.ErrorIs(t, err, errs.ErrSchemaCollision)
}

// ==============================================================================
// NewRegistry validation
// ==============================================================================

func TestNewRegistry_RejectsNonPositiveSize(t *testing.T) {
	_, err := NewRegistry(0)
	require.Error(t, err)
}

// ==============================================================================
// WithEvictionCallback
// ==============================================================================

func TestRegistry_WithEvictionCallback_FiresOnEviction(t *testing.T) {
	var evicted []uint64
	r, err := NewRegistry(1, WithEvictionCallback(func(fp uint64) {
		evicted = append(evicted, fp)
	}))
	require.NoError(t, err)

	first := headerTokens()
	firstFP := hash.Fingerprint(first)
	_, err = r.HeaderDecoder(first)
	require.NoError(t, err)

	second := headerTokens()
	second[1].Offset = 99
	_, err = r.HeaderDecoder(second)
	require.NoError(t, err)

	require.Equal(t, []uint64{firstFP}, evicted)
}
