package fuzzy

const (
	rollingWindow = 7
	hashPrime     = 0x01000193
	hashInit      = 0x28021967
)

// rollState is the 7-byte rolling checksum used to pick block-hash
// trigger points. It is intentionally weak and fast rather than
// cryptographic: it only needs to mark statistically regular
// boundaries in the input.
type rollState struct {
	window [rollingWindow]byte
	h1, h2, h3 uint32
	n          uint32
}

func (r *rollState) hash(c byte) {
	r.h2 -= r.h1
	r.h2 += rollingWindow * uint32(c)

	r.h1 += uint32(c)
	r.h1 -= uint32(r.window[r.n%rollingWindow])

	r.window[r.n%rollingWindow] = c
	r.n++

	r.h3 = (r.h3 << 5) ^ uint32(c)
}

func (r *rollState) sum() uint32 {
	return r.h1 + r.h2 + r.h3
}

// sumHash folds c into an FNV-style accumulator used for each
// block-hash slot's running digest character.
func sumHash(c byte, h uint32) uint32 {
	return (h * hashPrime) ^ uint32(c)
}
