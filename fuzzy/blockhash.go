package fuzzy

const (
	numBlockhashes = 31
	minBlocksize   = 3
	spamsumLength  = 64
)

const b64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// blocksize returns the block size for fan-out slot i: 3 << i.
func blocksize(i int) uint64 {
	return minBlocksize << uint(i)
}

// blockhashContext accumulates one candidate block-size's digest. h is
// reset to hashInit every time a trigger point is hit; halfh tracks a
// second, coarser-grained digest used for the trailing half of the
// second signature field.
type blockhashContext struct {
	h, halfh uint32
	digest   [spamsumLength]byte
	dlen     int
}

func newBlockhashContext() blockhashContext {
	return blockhashContext{h: hashInit, halfh: hashInit}
}

// tryFork clones the coarsest active slot into a new slot with twice its
// block size the first time a slot with an empty digest hits a trigger
// point, so the digest always has a coarser-grained second field to use.
func (h *Hasher) tryFork() {
	if h.bhend >= numBlockhashes {
		return
	}
	src := h.bh[h.bhend-1]
	h.bh[h.bhend] = blockhashContext{h: src.h, halfh: src.halfh}
	h.bhend++
}

// tryReduce drops the finest active slot once the next coarser slot has
// produced enough output to take over, so per-byte work stays bounded
// as the input grows.
func (h *Hasher) tryReduce() {
	if h.bhend-h.bhstart < 2 {
		return
	}
	if blocksize(h.bhstart)*spamsumLength >= h.totalSize {
		return
	}
	if h.bh[h.bhstart+1].dlen < spamsumLength/2 {
		return
	}
	h.bhstart++
	h.log.Debugw("fuzzy: reduced block-hash slots", "bhstart", h.bhstart)
}
