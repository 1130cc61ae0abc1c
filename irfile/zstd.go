package irfile

// ZstdCodec compresses .sbeir payloads with Zstandard: schema token lists
// repeat string fragments (names, type strings) heavily, which zstd's
// dictionary-free mode still exploits well even on the small payloads one
// schema file typically produces.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
