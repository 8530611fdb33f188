package lzw

import "bytes"

// EncodeAll compresses p in memory and returns the full `.Z` stream.
func EncodeAll(p []byte, maxbits int, blockMode bool, opts ...Option) ([]byte, error) {
	var out bytes.Buffer
	enc := NewEncoder(maxbits, blockMode, opts...)
	if err := enc.Encode(&out, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecodeAll decompresses a complete `.Z` stream held in memory.
func DecodeAll(p []byte, opts ...Option) ([]byte, error) {
	var out bytes.Buffer
	dec := NewDecoder(opts...)
	if err := dec.Decode(&out, bytes.NewReader(p)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
