package irfile

import "github.com/klauspost/compress/s2"

// S2Codec compresses .sbeir payloads with S2, klauspost's Snappy
// extension: favors compression speed, useful when a schema is
// regenerated and re-cached frequently during development.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec returns an S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
