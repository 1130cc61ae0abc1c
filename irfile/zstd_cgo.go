//go:build nobuild

package irfile

import "github.com/valyala/gozstd"

// This cgo-backed path mirrors the teacher's own dead-by-design gating
// (compress/zstd_cgo.go's identical "nobuild" tag): it documents gozstd as
// the faster alternative without ever being selected by a real build,
// since this module otherwise targets pure-Go builds throughout.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
